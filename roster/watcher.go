// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package roster

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a Store whenever its roster file changes on disk.
type Watcher struct {
	store    *Store
	source   FileSource
	watcher  *fsnotify.Watcher
	debounce time.Duration

	// Reloaded receives the result of every reload attempt when non-nil.
	Reloaded chan error
}

// NewWatcher watches the directory holding src.Path, since editors commonly
// replace files by renaming over them.
func NewWatcher(store *Store, src FileSource) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(src.Path)); err != nil {
		w.Close()
		return nil, fmt.Errorf("watching %s: %w", src.Path, err)
	}
	return &Watcher{
		store:    store,
		source:   src,
		watcher:  w,
		debounce: 500 * time.Millisecond,
	}, nil
}

// Run blocks until ctx is cancelled, reloading after each burst of writes.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	target := filepath.Clean(w.source.Path)
	timer := time.NewTimer(w.debounce)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
				slog.Debug("roster file changed", "path", ev.Name, "op", ev.Op.String())
				timer.Reset(w.debounce)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("roster watcher error", "error", err)
		case <-timer.C:
			err := w.store.Reload(ctx, w.source)
			if err != nil {
				slog.Error("roster reload failed, keeping previous roster", "error", err)
			}
			if w.Reloaded != nil {
				select {
				case w.Reloaded <- err:
				default:
				}
			}
		}
	}
}
