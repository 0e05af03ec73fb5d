package animation

import (
	"time"

	"github.com/go-drift/togglekit/pkg/errors"
)

// Player plays Animation handles.
//
// A player tracks elapsed time per handle with a [Ticker] and fires the
// handle's listeners from the frame loop. All methods and all listener
// callbacks run on the goroutine that calls [StepTickers]; the player does
// no locking of its own beyond what Ticker requires.
type Player struct {
	playbacks map[*Animation]*playback
}

// playback is the per-handle progress of one Start call.
type playback struct {
	ticker        *Ticker
	lastIteration int
	ended         bool
}

// NewPlayer creates an empty player.
func NewPlayer() *Player {
	return &Player{
		playbacks: make(map[*Animation]*playback),
	}
}

// Start begins playing a from the beginning, restarting it if it is already
// playing. OnStart fires synchronously before Start returns.
func (p *Player) Start(a *Animation) error {
	if a == nil {
		return errors.New("animation.Start", errors.KindConfig, "nil animation")
	}
	if err := a.Validate(); err != nil {
		return err
	}

	p.Stop(a)

	pb := &playback{}
	pb.ticker = NewTicker(func(elapsed time.Duration) {
		p.step(a, pb, elapsed)
	})
	p.playbacks[a] = pb

	if a.OnStart != nil {
		a.OnStart()
	}
	pb.ticker.Start()
	return nil
}

// Stop halts playback of a. It is a no-op if a is not playing.
// No listeners fire.
func (p *Player) Stop(a *Animation) {
	pb, ok := p.playbacks[a]
	if !ok {
		return
	}
	pb.ticker.Stop()
	delete(p.playbacks, a)
}

// Reset halts playback and discards progress so the next Start replays the
// animation from its first iteration.
func (p *Player) Reset(a *Animation) {
	p.Stop(a)
}

// IsPlaying reports whether a is currently playing.
func (p *Player) IsPlaying(a *Animation) bool {
	_, ok := p.playbacks[a]
	return ok
}

func (p *Player) step(a *Animation, pb *playback, elapsed time.Duration) {
	if pb.ended {
		return
	}

	if !a.IsInfinite() && elapsed >= a.TotalDuration() {
		pb.ended = true
		pb.ticker.Stop()
		delete(p.playbacks, a)
		// OnEnd may start this or another animation; the map entry is
		// already gone so a reentrant Start sees a clean slate.
		if a.OnEnd != nil {
			a.OnEnd()
		}
		return
	}

	// At most one repeat notification per frame. Boundaries spanned within
	// a single frame are dropped; this is the documented best-effort
	// behavior consumers must not rely on.
	iteration := int(elapsed / a.Duration)
	if iteration > pb.lastIteration {
		pb.lastIteration = iteration
		if a.OnRepeat != nil {
			a.OnRepeat()
		}
	}
}
