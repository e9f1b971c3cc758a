package effects

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFlickerAlternatesWithinRanges(t *testing.T) {
	const iterations = 500

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var bris []uint8
	var pauses []time.Duration

	f := &Flicker{
		rng: rand.New(rand.NewSource(1)),
		sleep: func(ctx context.Context, d time.Duration) error {
			pauses = append(pauses, d)
			return nil
		},
	}
	f.set = func(bri uint8) error {
		bris = append(bris, bri)
		if len(bris) == 2*iterations {
			cancel()
		}
		return nil
	}

	err := f.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.Len(t, bris, 2*iterations)

	// Phases alternate dim, bright, dim, bright, ...
	for i, bri := range bris {
		if i%2 == 0 {
			require.GreaterOrEqual(t, int(bri), 1)
			require.Less(t, int(bri), 50)
		} else {
			require.GreaterOrEqual(t, int(bri), 70)
			require.Less(t, int(bri), 120)
		}
	}

	for _, pause := range pauses {
		require.GreaterOrEqual(t, pause, 200*time.Millisecond)
		require.Less(t, pause, 1000*time.Millisecond)
	}
}

func TestFlickerStopsOnSetterError(t *testing.T) {
	boom := errors.New("boom")

	f := &Flicker{
		set: func(uint8) error { return boom },
		rng: rand.New(rand.NewSource(1)),
		sleep: func(ctx context.Context, d time.Duration) error {
			return nil
		},
	}

	require.ErrorIs(t, f.Run(context.Background()), boom)
}

func TestFlickerStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f := NewFlicker(func(uint8) error { return nil })
	require.ErrorIs(t, f.Run(ctx), context.Canceled)
}
