package toggletest

import (
	"testing"
	"time"

	"github.com/go-drift/togglekit/pkg/animation"
)

// Harness installs a fake clock into the animation package and steps the
// frame loop by hand, so tests control exactly when animation listeners
// fire. The real clock is restored when the test finishes.
type Harness struct {
	t     *testing.T
	clock *FakeClock
}

// NewHarness creates a harness bound to t.
func NewHarness(t *testing.T) *Harness {
	t.Helper()
	h := &Harness{
		t:     t,
		clock: NewFakeClock(),
	}
	prev := animation.SetClock(h.clock)
	t.Cleanup(func() {
		animation.SetClock(prev)
	})
	return h
}

// Clock returns the fake clock driving the harness.
func (h *Harness) Clock() *FakeClock {
	return h.clock
}

// Pump runs one frame: every active ticker gets a callback at the current
// fake time.
func (h *Harness) Pump() {
	animation.StepTickers()
}

// Advance moves the clock forward by d and pumps one frame.
func (h *Harness) Advance(d time.Duration) {
	h.clock.Advance(d)
	h.Pump()
}
