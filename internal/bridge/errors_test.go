package bridge

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDiscoveryError(t *testing.T) {
	var err error = &DiscoveryError{}
	require.Equal(t, "no Hue bridge found on the network", err.Error())

	cause := errors.New("lookup timed out")
	err = &DiscoveryError{Err: cause}
	require.Contains(t, err.Error(), "lookup timed out")
	require.ErrorIs(t, err, cause)
}

func TestPairingError(t *testing.T) {
	cause := errors.New("link button not pressed")
	var err error = &PairingError{Err: cause}
	require.Contains(t, err.Error(), "link button not pressed")
	require.Contains(t, err.Error(), "press the bridge button")
	require.ErrorIs(t, err, cause)
}
