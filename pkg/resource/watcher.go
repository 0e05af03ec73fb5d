package resource

import (
	"context"

	"github.com/fsnotify/fsnotify"

	"github.com/go-drift/togglekit/pkg/errors"
)

// Watcher watches a resource file and emits a re-parsed Registry whenever
// the file is written. This is the only concurrent piece of the kit: the
// watch loop runs on its own goroutine and hands registries to the host
// over a channel, so the host decides on which goroutine to apply them.
type Watcher struct {
	path string
}

// NewWatcher creates a Watcher for the given resource file path.
func NewWatcher(path string) *Watcher {
	return &Watcher{path: path}
}

// Watch begins watching the file. The current registry is emitted
// immediately; after that, every write that parses cleanly emits a new one.
// Writes that fail to parse are reported through the errors package and
// skipped, keeping the last good registry in effect.
//
// The channel is closed when ctx is cancelled. Watch fails if the initial
// load fails.
func (w *Watcher) Watch(ctx context.Context) (<-chan *Registry, error) {
	initial, err := Load(w.path)
	if err != nil {
		return nil, err
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap("resource.Watch", errors.KindResource, err)
	}
	if err := fsWatcher.Add(w.path); err != nil {
		fsWatcher.Close()
		return nil, errors.Wrap("resource.Watch", errors.KindResource, err)
	}

	out := make(chan *Registry)

	go func() {
		defer close(out)
		defer fsWatcher.Close()

		select {
		case out <- initial:
		case <-ctx.Done():
			return
		}

		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-fsWatcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}

				registry, err := Load(w.path)
				if err != nil {
					if terr, ok := err.(*errors.ToggleError); ok {
						errors.Report(terr)
					} else {
						errors.Report(errors.Wrap("resource.Watch", errors.KindResource, err))
					}
					continue
				}

				select {
				case out <- registry:
				case <-ctx.Done():
					return
				}

			case _, ok := <-fsWatcher.Errors:
				if !ok {
					return
				}
				// Keep watching despite filesystem errors
			}
		}
	}()

	return out, nil
}
