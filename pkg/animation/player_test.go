package animation_test

import (
	stderrors "errors"
	"testing"
	"time"

	"github.com/go-drift/togglekit/pkg/animation"
	"github.com/go-drift/togglekit/pkg/errors"
	"github.com/go-drift/togglekit/pkg/toggletest"
)

func TestPlayer_StartFiresOnStart(t *testing.T) {
	_ = toggletest.NewHarness(t)
	player := animation.NewPlayer()

	started := false
	anim := &animation.Animation{
		Name:     "pulse",
		Duration: 100 * time.Millisecond,
		OnStart:  func() { started = true },
	}

	if err := player.Start(anim); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if !started {
		t.Error("expected OnStart to fire synchronously")
	}
	if !player.IsPlaying(anim) {
		t.Error("expected animation to be playing after Start")
	}
}

func TestPlayer_EndFiresAfterTotalDuration(t *testing.T) {
	h := toggletest.NewHarness(t)
	player := animation.NewPlayer()

	ended := 0
	anim := &animation.Animation{
		Name:        "pulse",
		Duration:    100 * time.Millisecond,
		RepeatCount: 2, // total 300ms
		OnEnd:       func() { ended++ },
	}

	if err := player.Start(anim); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	h.Advance(250 * time.Millisecond)
	if ended != 0 {
		t.Fatal("OnEnd fired before the final iteration completed")
	}

	h.Advance(50 * time.Millisecond)
	if ended != 1 {
		t.Fatalf("expected exactly one OnEnd, got %d", ended)
	}
	if player.IsPlaying(anim) {
		t.Error("animation should not be playing after OnEnd")
	}

	// Further frames must not re-fire OnEnd.
	h.Advance(500 * time.Millisecond)
	if ended != 1 {
		t.Errorf("OnEnd fired again after playback finished, count %d", ended)
	}
}

func TestPlayer_InfiniteAnimationNeverEnds(t *testing.T) {
	h := toggletest.NewHarness(t)
	player := animation.NewPlayer()

	ended := false
	anim := &animation.Animation{
		Name:        "spin",
		Duration:    50 * time.Millisecond,
		RepeatCount: animation.RepeatInfinite,
		OnEnd:       func() { ended = true },
	}

	if err := player.Start(anim); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	for range 20 {
		h.Advance(100 * time.Millisecond)
	}
	if ended {
		t.Error("infinite animation must never fire OnEnd")
	}
	if !player.IsPlaying(anim) {
		t.Error("infinite animation should still be playing")
	}
}

func TestPlayer_RepeatIsBestEffort(t *testing.T) {
	h := toggletest.NewHarness(t)
	player := animation.NewPlayer()

	repeats := 0
	anim := &animation.Animation{
		Name:        "spin",
		Duration:    100 * time.Millisecond,
		RepeatCount: animation.RepeatInfinite,
		OnRepeat:    func() { repeats++ },
	}

	if err := player.Start(anim); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	// One frame spanning three iteration boundaries delivers at most one
	// notification. This is the documented unreliability.
	h.Advance(350 * time.Millisecond)
	if repeats != 1 {
		t.Errorf("expected one best-effort repeat, got %d", repeats)
	}
}

func TestPlayer_ResetReplaysFromBeginning(t *testing.T) {
	h := toggletest.NewHarness(t)
	player := animation.NewPlayer()

	ended := 0
	anim := &animation.Animation{
		Name:     "pulse",
		Duration: 100 * time.Millisecond,
		OnEnd:    func() { ended++ },
	}

	if err := player.Start(anim); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	h.Advance(90 * time.Millisecond)

	player.Reset(anim)
	if player.IsPlaying(anim) {
		t.Fatal("animation should not be playing after Reset")
	}
	if err := player.Start(anim); err != nil {
		t.Fatalf("restart failed: %v", err)
	}

	// 90ms of the first run must not count toward the replay.
	h.Advance(90 * time.Millisecond)
	if ended != 0 {
		t.Fatal("OnEnd fired before the replay completed")
	}
	h.Advance(10 * time.Millisecond)
	if ended != 1 {
		t.Errorf("expected one OnEnd after full replay, got %d", ended)
	}
}

func TestPlayer_RestartFromOnEnd(t *testing.T) {
	h := toggletest.NewHarness(t)
	player := animation.NewPlayer()

	runs := 0
	anim := &animation.Animation{
		Name:     "cycle",
		Duration: 100 * time.Millisecond,
	}
	anim.OnEnd = func() {
		runs++
		if runs < 3 {
			player.Reset(anim)
			if err := player.Start(anim); err != nil {
				t.Fatalf("reentrant Start failed: %v", err)
			}
		}
	}

	if err := player.Start(anim); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	h.Advance(100 * time.Millisecond)
	h.Advance(100 * time.Millisecond)
	h.Advance(100 * time.Millisecond)

	if runs != 3 {
		t.Errorf("expected 3 completed runs, got %d", runs)
	}
	if player.IsPlaying(anim) {
		t.Error("animation should be stopped after the final run")
	}
}

func TestPlayer_StartValidates(t *testing.T) {
	_ = toggletest.NewHarness(t)
	player := animation.NewPlayer()

	if err := player.Start(nil); !stderrors.Is(err, errors.ErrConfig) {
		t.Errorf("Start(nil) = %v, want ErrConfig", err)
	}

	bad := &animation.Animation{Name: "bad", Duration: 0}
	if err := player.Start(bad); !stderrors.Is(err, errors.ErrConfig) {
		t.Errorf("Start with zero duration = %v, want ErrConfig", err)
	}
	if player.IsPlaying(bad) {
		t.Error("invalid animation must not be playing")
	}
}

func TestPlayer_StopWithoutStart(t *testing.T) {
	_ = toggletest.NewHarness(t)
	player := animation.NewPlayer()

	anim := &animation.Animation{Name: "pulse", Duration: time.Second}
	player.Stop(anim) // must not panic
	if player.IsPlaying(anim) {
		t.Error("animation should not be playing")
	}
}

func TestAnimation_TotalDuration(t *testing.T) {
	tests := []struct {
		name  string
		anim  animation.Animation
		want  time.Duration
		isInf bool
	}{
		{"once", animation.Animation{Duration: 100 * time.Millisecond}, 100 * time.Millisecond, false},
		{"repeated", animation.Animation{Duration: 100 * time.Millisecond, RepeatCount: 3}, 400 * time.Millisecond, false},
		{"infinite", animation.Animation{Duration: 100 * time.Millisecond, RepeatCount: animation.RepeatInfinite}, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.anim.TotalDuration(); got != tt.want {
				t.Errorf("TotalDuration() = %v, want %v", got, tt.want)
			}
			if got := tt.anim.IsInfinite(); got != tt.isInf {
				t.Errorf("IsInfinite() = %v, want %v", got, tt.isInf)
			}
		})
	}
}
