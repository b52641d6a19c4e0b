// Package filelock guards JSON files shared between processes with a
// host-local advisory lock held on a sibling ".lock" file.
package filelock

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/s-age/pipe-sub004/internal/domain"
	"github.com/s-age/pipe-sub004/internal/logging"
)

const (
	DefaultPollInterval = 100 * time.Millisecond
	DefaultTimeout      = 10 * time.Second
)

// errStaleLock means the lock was won on a file that another holder has
// already unlinked
var errStaleLock = errors.New("stale lock file")

// Options configures lock acquisition
type Options struct {
	PollInterval time.Duration
	Timeout      time.Duration
}

// Locker acquires exclusive locks on lock files
type Locker struct {
	opts Options
}

// New creates a Locker, filling unset options with defaults
func New(opts Options) *Locker {
	if opts.PollInterval <= 0 {
		opts.PollInterval = DefaultPollInterval
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	return &Locker{opts: opts}
}

// LockPath returns the conventional lock file for dataPath
func LockPath(dataPath string) string {
	return dataPath + ".lock"
}

// Lock is one held acquisition
type Lock struct {
	file *os.File
	path string
}

// Acquire blocks until the lock on lockPath is held, the timeout elapses
// (domain.ErrLockTimeout) or ctx is done (ctx.Err(), not retryable). Each
// call opens its own descriptor so goroutines of the same process exclude
// each other too.
func (l *Locker) Acquire(ctx context.Context, lockPath string) (*Lock, error) {
	if err := os.MkdirAll(filepath.Dir(lockPath), 0755); err != nil {
		return nil, domain.IOError("create lock directory", err)
	}

	deadline := time.Now().Add(l.opts.Timeout)

	for {
		lock, err := tryAcquire(lockPath)
		if err == nil {
			return lock, nil
		}
		if errors.Is(err, errStaleLock) {
			continue
		}
		if !errors.Is(err, errLockBusy) {
			return nil, err
		}

		if !time.Now().Before(deadline) {
			return nil, fmt.Errorf("%s held for more than %s: %w", lockPath, l.opts.Timeout, domain.ErrLockTimeout)
		}

		wait := time.NewTimer(l.opts.PollInterval)
		select {
		case <-ctx.Done():
			wait.Stop()
			return nil, fmt.Errorf("waiting for %s: %w", lockPath, ctx.Err())
		case <-wait.C:
		}
	}
}

// WithLock runs fn while holding the lock on lockPath
func (l *Locker) WithLock(ctx context.Context, lockPath string, fn func() error) error {
	lock, err := l.Acquire(ctx, lockPath)
	if err != nil {
		return err
	}
	defer lock.Release()
	return fn()
}

func tryAcquire(lockPath string) (*Lock, error) {
	file, err := os.OpenFile(lockPath, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return nil, domain.IOError("open lock file", err)
	}

	if err := tryLockFile(file); err != nil {
		file.Close()
		if errors.Is(err, errLockBusy) {
			return nil, err
		}
		return nil, domain.IOError("lock "+lockPath, err)
	}

	// The previous holder unlinks the lock file before unlocking. Winning
	// the lock on an unlinked inode must not count as holding lockPath.
	held, statErr := file.Stat()
	current, pathErr := os.Stat(lockPath)
	if statErr != nil || pathErr != nil || !os.SameFile(held, current) {
		_ = unlockFile(file)
		file.Close()
		return nil, errStaleLock
	}

	return &Lock{file: file, path: lockPath}, nil
}

// Release removes the lock file and drops the lock. Failures are logged,
// never returned, so release can always be deferred.
func (lk *Lock) Release() {
	if lk == nil || lk.file == nil {
		return
	}

	if removeWhileLocked {
		lk.remove()
	}
	if err := unlockFile(lk.file); err != nil {
		logging.Logger.Warn("Failed to unlock", "path", lk.path, "error", err)
	}
	if err := lk.file.Close(); err != nil {
		logging.Logger.Warn("Failed to close lock file", "path", lk.path, "error", err)
	}
	if !removeWhileLocked {
		lk.remove()
	}
	lk.file = nil
}

func (lk *Lock) remove() {
	if err := os.Remove(lk.path); err != nil && !os.IsNotExist(err) {
		logging.Logger.Warn("Failed to remove lock file", "path", lk.path, "error", err)
	}
}
