package ports

import "context"

// FileWatcher signals changes of a single file until ctx is done
type FileWatcher interface {
	Watch(ctx context.Context, path string) (<-chan struct{}, error)
}
