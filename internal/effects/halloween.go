// Package effects holds scripted light effects.
package effects

import (
	"context"
	"math/rand"
	"time"
)

// Brightness and pause ranges are fixed; each pair of bounds is
// half-open.
const (
	dimMin    = 1
	dimMax    = 50
	brightMin = 70
	brightMax = 120

	pauseMin = 200 * time.Millisecond
	pauseMax = 1000 * time.Millisecond
)

// Setter applies one brightness value to the target light or group.
type Setter func(bri uint8) error

// Flicker alternates a target between random dim and bright levels
// with random pauses, indefinitely. Each write is unconditional and
// overwrites whatever state the target is in.
type Flicker struct {
	set   Setter
	rng   *rand.Rand
	sleep func(ctx context.Context, d time.Duration) error
}

// NewFlicker returns a Flicker seeded from the clock.
func NewFlicker(set Setter) *Flicker {
	return &Flicker{
		set:   set,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
		sleep: sleepCtx,
	}
}

// Run loops until ctx is cancelled or a write fails.
func (f *Flicker) Run(ctx context.Context) error {
	phases := []struct{ min, max int }{
		{dimMin, dimMax},
		{brightMin, brightMax},
	}

	for {
		for _, phase := range phases {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := f.set(f.randBri(phase.min, phase.max)); err != nil {
				return err
			}
			if err := f.sleep(ctx, f.randPause()); err != nil {
				return err
			}
		}
	}
}

// randBri draws uniformly from [min, max).
func (f *Flicker) randBri(min, max int) uint8 {
	return uint8(min + f.rng.Intn(max-min))
}

func (f *Flicker) randPause() time.Duration {
	return pauseMin + time.Duration(f.rng.Int63n(int64(pauseMax-pauseMin)))
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
