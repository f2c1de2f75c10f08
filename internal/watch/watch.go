// Package watch re-runs the generator when its input files change.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/openearth/nesbp-msp-knowledge-platform/internal/logfields"
	"github.com/openearth/nesbp-msp-knowledge-platform/internal/util/sets"
)

// DefaultDebounce collapses the burst of events an editor save produces.
const DefaultDebounce = 500 * time.Millisecond

// RunFunc is invoked once per debounced change.
type RunFunc func(ctx context.Context) error

// Watcher monitors input files and triggers debounced re-runs.
type Watcher struct {
	files    sets.Set[string]
	dirs     []string
	debounce time.Duration
	run      RunFunc
	watcher  *fsnotify.Watcher
}

// New creates a watcher for paths. Empty paths are ignored. Files need not
// exist yet; their directories must.
func New(paths []string, debounce time.Duration, run RunFunc) (*Watcher, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	w := &Watcher{files: sets.New[string](), debounce: debounce, run: run, watcher: fsw}
	dirs := sets.New[string]()
	for _, p := range paths {
		if p == "" {
			continue
		}
		// Resolve absolute path for consistent matching against event names
		abs, err := filepath.Abs(p)
		if err != nil {
			_ = fsw.Close()
			return nil, fmt.Errorf("failed to resolve %s: %w", p, err)
		}
		w.files.Add(abs)
		if dirs.Add(filepath.Dir(abs)) {
			w.dirs = append(w.dirs, filepath.Dir(abs))
		}
	}
	return w, nil
}

// Run watches until ctx is canceled. A failing run is logged and watching
// continues.
func (w *Watcher) Run(ctx context.Context) error {
	defer func() {
		if err := w.watcher.Close(); err != nil {
			slog.Error("Error closing file watcher", logfields.Error(err))
		}
	}()

	// Watch the directories (more reliable than the files across editor renames)
	for _, dir := range w.dirs {
		if err := w.watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch directory %s: %w", dir, err)
		}
	}
	slog.Info("Watching inputs for changes", logfields.Count(w.files.Len()))

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("Stopping watcher")
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.files.Has(filepath.Clean(event.Name)) {
				continue
			}
			switch {
			case event.Op.Has(fsnotify.Write), event.Op.Has(fsnotify.Create), event.Op.Has(fsnotify.Rename):
				slog.Debug("Input change detected", logfields.File(event.Name), slog.String("op", event.Op.String()))
				timer.Reset(w.debounce)
			case event.Op.Has(fsnotify.Remove):
				slog.Warn("Input file removed", logfields.File(event.Name))
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("Watcher error", logfields.Error(err))

		case <-timer.C:
			if err := w.run(ctx); err != nil {
				slog.Error("Re-run failed", logfields.Error(err))
			}
		}
	}
}
