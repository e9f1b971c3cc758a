package bridge

import "fmt"

// DiscoveryError reports that no bridge could be found on the network.
type DiscoveryError struct {
	Err error
}

func (e *DiscoveryError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("no Hue bridge found: %v", e.Err)
	}
	return "no Hue bridge found on the network"
}

func (e *DiscoveryError) Unwrap() error { return e.Err }

// PairingError reports a rejected registration, typically because the
// bridge's link button was not pressed in time.
type PairingError struct {
	Err error
}

func (e *PairingError) Error() string {
	return fmt.Sprintf("pairing failed, press the bridge button and retry: %v", e.Err)
}

func (e *PairingError) Unwrap() error { return e.Err }
