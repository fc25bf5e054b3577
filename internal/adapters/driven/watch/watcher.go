// Package watch notifies Lotus when another process changes the data
// directory, so long-running servers can reload their state.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/lotus-cli/internal/logger"
)

// DefaultDebounce collapses the burst of events a single SQLite commit causes.
const DefaultDebounce = 200 * time.Millisecond

// Watcher calls a reload function after files in a directory change.
type Watcher struct {
	dir      string
	patterns []string
	debounce time.Duration
	onChange func(ctx context.Context) error
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets how long the watcher waits for events to settle.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		w.debounce = d
	}
}

// WithFiles restricts the watcher to files in the directory whose base
// name matches one of the patterns, e.g. "lotus.db-{wal,shm}".
// Without it, every file counts.
func WithFiles(patterns ...string) Option {
	return func(w *Watcher) {
		w.patterns = append(w.patterns, patterns...)
	}
}

// New creates a watcher for dir. onChange runs on the watcher goroutine
// once per settled burst of changes.
func New(dir string, onChange func(ctx context.Context) error, opts ...Option) *Watcher {
	w := &Watcher{
		dir:      dir,
		debounce: DefaultDebounce,
		onChange: onChange,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run watches until ctx is cancelled. Errors from onChange are logged and
// do not stop the watcher.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer fsw.Close()

	if err := fsw.Add(w.dir); err != nil {
		return fmt.Errorf("watching %s: %w", w.dir, err)
	}
	logger.Debug("Watching %s", w.dir)

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	pending := false

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			logger.Debug("Change detected: %s %s", event.Op, filepath.Base(event.Name))
			if pending && !timer.Stop() {
				<-timer.C
			}
			timer.Reset(w.debounce)
			pending = true

		case <-timer.C:
			pending = false
			if err := w.onChange(ctx); err != nil {
				logger.Warn("Reload after change failed: %v", err)
			}

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watcher error: %v", err)
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}
	if len(w.patterns) == 0 {
		return true
	}
	base := filepath.Base(event.Name)
	for _, pattern := range w.patterns {
		if ok, err := doublestar.Match(pattern, base); err == nil && ok {
			return true
		}
	}
	return false
}
