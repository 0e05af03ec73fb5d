package animation

import (
	"time"

	"github.com/go-drift/togglekit/pkg/errors"
)

// RepeatInfinite configures an Animation to repeat without bound.
const RepeatInfinite = -1

// Animation is an opaque playback handle. The kit never inspects what an
// animation looks like; it only cares about how long one iteration lasts,
// how many times it repeats, and when playback starts, repeats and ends.
//
// Listeners are invoked synchronously on the goroutine that calls
// [StepTickers]. OnRepeat is best-effort (see the package documentation);
// OnEnd fires exactly once per playback of a bounded animation.
type Animation struct {
	// Name identifies the animation, mainly for logs and errors.
	Name string

	// Duration is the length of a single iteration.
	Duration time.Duration

	// RepeatCount is the number of additional iterations after the first.
	// Zero plays the animation once; RepeatInfinite loops forever.
	RepeatCount int

	// OnStart fires when playback begins.
	OnStart func()

	// OnRepeat fires when playback crosses an iteration boundary.
	// Delivery is best-effort and must not be relied upon.
	OnRepeat func()

	// OnEnd fires when a bounded playback finishes its final iteration.
	OnEnd func()
}

// Validate checks that the animation is playable.
func (a *Animation) Validate() error {
	if a.Duration <= 0 {
		return errors.New("animation.Validate", errors.KindConfig,
			"animation %q has nonpositive duration %v", a.Name, a.Duration)
	}
	if a.RepeatCount < RepeatInfinite {
		return errors.New("animation.Validate", errors.KindConfig,
			"animation %q has invalid repeat count %d", a.Name, a.RepeatCount)
	}
	return nil
}

// IsInfinite reports whether the animation repeats without bound.
func (a *Animation) IsInfinite() bool {
	return a.RepeatCount == RepeatInfinite
}

// TotalDuration returns the duration of a full playback including repeats.
// It returns zero for infinite animations.
func (a *Animation) TotalDuration() time.Duration {
	if a.IsInfinite() {
		return 0
	}
	return a.Duration * time.Duration(a.RepeatCount+1)
}
