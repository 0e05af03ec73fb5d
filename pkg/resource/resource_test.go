package resource

import (
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-drift/togglekit/pkg/animation"
	"github.com/go-drift/togglekit/pkg/errors"
)

const validYAML = `
animations:
  - name: pulse
    duration: 250ms
    repeat: 2
  - name: pop
    duration: 400ms
  - name: spin
    duration: 1s
    repeat: -1
`

func TestParse(t *testing.T) {
	registry, err := Parse([]byte(validYAML))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got := len(registry.Names()); got != 3 {
		t.Fatalf("expected 3 animations, got %d", got)
	}

	pulse, err := registry.Animation("pulse")
	if err != nil {
		t.Fatalf("Animation(pulse) failed: %v", err)
	}
	if pulse.Duration != 250*time.Millisecond {
		t.Errorf("pulse duration = %v, want 250ms", pulse.Duration)
	}
	if pulse.RepeatCount != 2 {
		t.Errorf("pulse repeat = %d, want 2", pulse.RepeatCount)
	}

	spin, err := registry.Animation("spin")
	if err != nil {
		t.Fatalf("Animation(spin) failed: %v", err)
	}
	if spin.RepeatCount != animation.RepeatInfinite {
		t.Errorf("spin repeat = %d, want infinite", spin.RepeatCount)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"not yaml", `{{`},
		{"empty file", ``},
		{"no animations", `animations: []`},
		{"missing name", "animations:\n  - duration: 100ms\n"},
		{"missing duration", "animations:\n  - name: pulse\n"},
		{"bad duration", "animations:\n  - name: pulse\n    duration: fast\n"},
		{"repeat below -1", "animations:\n  - name: pulse\n    duration: 100ms\n    repeat: -2\n"},
		{"duplicate name", "animations:\n  - name: pulse\n    duration: 100ms\n  - name: pulse\n    duration: 200ms\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.yaml)); !stderrors.Is(err, errors.ErrResource) {
				t.Errorf("Parse() error = %v, want ErrResource", err)
			}
		})
	}
}

func TestAnimationMissingName(t *testing.T) {
	registry, err := Parse([]byte(validYAML))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if _, err := registry.Animation("nope"); !stderrors.Is(err, errors.ErrResource) {
		t.Errorf("Animation(nope) error = %v, want ErrResource", err)
	}
}

func TestAnimationReturnsFreshHandles(t *testing.T) {
	registry, err := Parse([]byte(validYAML))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	a, _ := registry.Animation("pop")
	b, _ := registry.Animation("pop")
	if a == b {
		t.Error("expected distinct handles per lookup")
	}
	a.OnEnd = func() {}
	if b.OnEnd != nil {
		t.Error("listener leaked between handles")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "animations.yaml")
	if err := os.WriteFile(path, []byte(validYAML), 0o644); err != nil {
		t.Fatal(err)
	}

	registry, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if _, err := registry.Animation("pulse"); err != nil {
		t.Errorf("Animation(pulse) failed: %v", err)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !stderrors.Is(err, errors.ErrResource) {
		t.Errorf("Load(missing) error = %v, want ErrResource", err)
	}
}

func TestWatcherEmitsInitialRegistry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "animations.yaml")
	if err := os.WriteFile(path, []byte(validYAML), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	registries, err := NewWatcher(path).Watch(ctx)
	if err != nil {
		t.Fatalf("Watch failed: %v", err)
	}

	select {
	case registry := <-registries:
		if registry == nil {
			t.Fatal("expected initial registry")
		}
		if _, err := registry.Animation("pulse"); err != nil {
			t.Errorf("initial registry missing pulse: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for initial registry")
	}
}

func TestWatcherEmitsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "animations.yaml")
	if err := os.WriteFile(path, []byte(validYAML), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	registries, err := NewWatcher(path).Watch(ctx)
	if err != nil {
		t.Fatalf("Watch failed: %v", err)
	}
	<-registries // initial

	updated := "animations:\n  - name: blink\n    duration: 50ms\n"
	if err := os.WriteFile(path, []byte(updated), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case registry := <-registries:
		if _, err := registry.Animation("blink"); err != nil {
			t.Errorf("updated registry missing blink: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for updated registry")
	}
}

func TestWatcherFailsOnBadInitialLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.yaml")
	if _, err := NewWatcher(path).Watch(context.Background()); !stderrors.Is(err, errors.ErrResource) {
		t.Errorf("Watch error = %v, want ErrResource", err)
	}
}
