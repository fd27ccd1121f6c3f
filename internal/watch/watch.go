// Package watch re-runs a callback whenever a file changes on disk.
//
// It watches the file's parent directory rather than the file itself so
// editors and tools that replace the file via rename are still seen.
// Events are debounced, since a single save typically fires several.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period after the last event before the
// callback fires.
const DefaultDebounce = 200 * time.Millisecond

// Watcher invokes OnChange after the watched path is written, created, or
// renamed.
type Watcher struct {
	path     string
	debounce time.Duration
	onChange func() error
}

// New creates a Watcher for path. onChange runs on the watch goroutine;
// a non-nil error from it stops the watcher.
func New(path string, onChange func() error) *Watcher {
	return &Watcher{
		path:     filepath.Clean(path),
		debounce: DefaultDebounce,
		onChange: onChange,
	}
}

// Run blocks until ctx is cancelled or the callback fails.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("watch %s: %w", w.path, err)
	}

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	pending := false
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if pending && !timer.Stop() {
				<-timer.C
			}
			timer.Reset(w.debounce)
			pending = true

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch %s: %w", w.path, err)

		case <-timer.C:
			pending = false
			if err := w.onChange(); err != nil {
				return err
			}
		}
	}
}
