// Package watch reruns generation when package sources change.
package watch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"shape-generator/internal/common"
)

// DefaultDebounce is how long the watcher waits for a burst of writes to end.
const DefaultDebounce = 200 * time.Millisecond

// ErrNoDirs is returned when there is nothing to watch.
var ErrNoDirs = errors.New("no directories to watch")

// Watcher calls a function after Go sources of the watched directories change.
type Watcher struct {
	logger        *slog.Logger
	debounce      time.Duration
	generatedFile string
}

// Option customizes a Watcher.
type Option func(*Watcher)

// WithLogger overrides the logger.
func WithLogger(l *slog.Logger) Option {
	return func(w *Watcher) {
		if l != nil {
			w.logger = l
		}
	}
}

// WithDebounce sets the quiet period before the callback runs.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithGeneratedFile sets the generated file name, whose changes are ignored.
func WithGeneratedFile(name string) Option {
	return func(w *Watcher) {
		if name != "" {
			w.generatedFile = name
		}
	}
}

// New creates a Watcher.
func New(opts ...Option) *Watcher {
	w := &Watcher{
		logger:        slog.Default(),
		debounce:      DefaultDebounce,
		generatedFile: common.DefaultGeneratedFile,
	}
	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Relevant reports whether a change to path can alter the analysis.
func (w *Watcher) Relevant(path string) bool {
	base := filepath.Base(path)

	return strings.HasSuffix(base, ".go") &&
		!strings.HasSuffix(base, "_test.go") &&
		base != w.generatedFile &&
		!strings.HasPrefix(base, ".")
}

// Run watches dirs until ctx is done, calling fn once per burst of relevant
// changes. Errors from fn are logged and watching continues.
func (w *Watcher) Run(ctx context.Context, dirs []string, fn func(context.Context) error) error {
	if common.IsEmpty(dirs) {
		return ErrNoDirs
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer fw.Close()

	for _, dir := range dirs {
		if err := fw.Add(dir); err != nil {
			return fmt.Errorf("watching %s: %w", dir, err)
		}
	}

	w.logger.Info("watching for changes", slog.Int("dirs", len(dirs)))

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}

			if ev.Op == fsnotify.Chmod || !w.Relevant(ev.Name) {
				continue
			}

			w.logger.Debug("source changed", slog.String("path", ev.Name), slog.String("op", ev.Op.String()))
			timer.Reset(w.debounce)
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}

			w.logger.Warn("watch error", slog.String("err", err.Error()))
		case <-timer.C:
			if err := fn(ctx); err != nil {
				w.logger.Error("regeneration failed", slog.String("err", err.Error()))
			}
		}
	}
}
