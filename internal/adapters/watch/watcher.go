// Package watch signals changes to session files using fsnotify.
package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/s-age/pipe-sub004/internal/logging"
	"github.com/s-age/pipe-sub004/internal/ports"
)

// DefaultDebounceDelay coalesces the burst of events one atomic write causes
const DefaultDebounceDelay = 100 * time.Millisecond

// FSWatcher implements FileWatcher. Writes replace files by rename, which
// gives the file a new inode, so the parent directory is watched and events
// are filtered by name.
type FSWatcher struct {
	debounce time.Duration
}

// Compile-time interface verification
var _ ports.FileWatcher = (*FSWatcher)(nil)

// NewFSWatcher creates a watcher; a non-positive delay uses the default
func NewFSWatcher(debounce time.Duration) *FSWatcher {
	if debounce <= 0 {
		debounce = DefaultDebounceDelay
	}
	return &FSWatcher{debounce: debounce}
}

// Watch sends on the returned channel after path changes, at most once per
// debounce window. The channel is closed when ctx is done.
func (w *FSWatcher) Watch(ctx context.Context, path string) (<-chan struct{}, error) {
	path = filepath.Clean(path)
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create watch directory: %w", err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	changes := make(chan struct{}, 1)
	go w.loop(ctx, fsw, path, changes)

	logging.Logger.Debug("Watching session file", "path", path)
	return changes, nil
}

func (w *FSWatcher) loop(ctx context.Context, fsw *fsnotify.Watcher, path string, changes chan<- struct{}) {
	defer close(changes)
	defer fsw.Close()

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
				continue
			}
			timer.Reset(w.debounce)

		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			logging.Logger.Warn("Watcher error", "path", path, "error", err)

		case <-timer.C:
			select {
			case changes <- struct{}{}:
			default:
			}
		}
	}
}
