package filelock

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/s-age/pipe-sub004/internal/domain"
	"github.com/s-age/pipe-sub004/internal/logging"
)

// ErrSkipWrite can be returned by an Update callback to leave the file
// untouched. Update then returns nil.
var ErrSkipWrite = errors.New("skip write")

type loadStatus int

const (
	statusMissing loadStatus = iota
	statusLoaded
	statusCorrupt
)

// Load reads dataPath under the lock on lockPath. A missing or malformed
// file yields def and exists=false; malformed content is logged.
func Load[T any](ctx context.Context, l *Locker, lockPath, dataPath string, def T) (T, bool, error) {
	lock, err := l.Acquire(ctx, lockPath)
	if err != nil {
		return def, false, err
	}
	defer lock.Release()

	value, status, err := load(dataPath, def)
	return value, status == statusLoaded, err
}

// Read is Load without the existence flag
func Read[T any](ctx context.Context, l *Locker, lockPath, dataPath string, def T) (T, error) {
	value, _, err := Load(ctx, l, lockPath, dataPath, def)
	return value, err
}

// Write replaces dataPath with data under the lock on lockPath
func Write[T any](ctx context.Context, l *Locker, lockPath, dataPath string, data T) error {
	content, err := marshal(data)
	if err != nil {
		return err
	}

	return l.WithLock(ctx, lockPath, func() error {
		return writeFileAtomic(dataPath, content, 0644)
	})
}

// Update runs read-modify-write as one critical section. fn receives the
// current value (def when the file is missing or malformed) and whether the
// file held valid data. A malformed file is preserved next to dataPath
// before it is overwritten.
func Update[T any](ctx context.Context, l *Locker, lockPath, dataPath string, def T, fn func(value *T, exists bool) error) error {
	lock, err := l.Acquire(ctx, lockPath)
	if err != nil {
		return err
	}
	defer lock.Release()

	value, status, err := load(dataPath, def)
	if err != nil {
		return err
	}

	if err := fn(&value, status == statusLoaded); err != nil {
		if errors.Is(err, ErrSkipWrite) {
			return nil
		}
		return err
	}

	content, err := marshal(value)
	if err != nil {
		return err
	}

	if status == statusCorrupt {
		preserveCorrupt(dataPath)
	}

	return writeFileAtomic(dataPath, content, 0644)
}

func load[T any](dataPath string, def T) (T, loadStatus, error) {
	data, err := os.ReadFile(dataPath)
	if err != nil {
		if os.IsNotExist(err) {
			return def, statusMissing, nil
		}
		return def, statusMissing, domain.IOError("read "+dataPath, err)
	}

	value := def
	if err := json.Unmarshal(data, &value); err != nil {
		logging.Logger.Warn("Malformed JSON, using default", "path", dataPath, "error", err)
		return def, statusCorrupt, nil
	}
	return value, statusLoaded, nil
}

func marshal(v any) ([]byte, error) {
	content, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, domain.Validationf("failed to encode JSON: %v", err)
	}
	return append(content, '\n'), nil
}

// preserveCorrupt keeps a copy of an unreadable file for inspection
func preserveCorrupt(dataPath string) {
	target := fmt.Sprintf("%s.corrupt-%s", dataPath, time.Now().UTC().Format("20060102T150405.000000000"))
	if err := os.Rename(dataPath, target); err != nil {
		logging.Logger.Warn("Failed to preserve malformed file", "path", dataPath, "error", err)
		return
	}
	logging.Logger.Warn("Preserved malformed file before overwrite", "path", dataPath, "preserved", target)
}

// writeFileAtomic writes content to a temp file in the same directory,
// syncs it and renames it over path
func writeFileAtomic(path string, content []byte, mode os.FileMode) error {
	parent := filepath.Dir(path)
	if err := os.MkdirAll(parent, 0755); err != nil {
		return domain.IOError("create directory", err)
	}

	tempFile, err := os.CreateTemp(parent, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return domain.IOError("create temp file", err)
	}
	tempPath := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempPath)
		}
	}()

	if _, err := tempFile.Write(content); err != nil {
		_ = tempFile.Close()
		return domain.IOError("write temp file", err)
	}
	if err := tempFile.Sync(); err != nil {
		_ = tempFile.Close()
		return domain.IOError("sync temp file", err)
	}
	if err := tempFile.Chmod(mode); err != nil {
		_ = tempFile.Close()
		return domain.IOError("chmod temp file", err)
	}
	if err := tempFile.Close(); err != nil {
		return domain.IOError("close temp file", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		if runtime.GOOS != "windows" {
			return domain.IOError("rename temp file", err)
		}
		if removeErr := os.Remove(path); removeErr != nil && !os.IsNotExist(removeErr) {
			return domain.IOError("remove destination before rename", removeErr)
		}
		if renameErr := os.Rename(tempPath, path); renameErr != nil {
			return domain.IOError("rename temp file after remove", renameErr)
		}
	}
	cleanup = false

	if dir, err := os.Open(parent); err == nil {
		_ = dir.Sync()
		_ = dir.Close()
	}
	return nil
}

// WriteFileAtomic exposes the atomic write for callers that already hold
// the lock (backups, restores)
func WriteFileAtomic(path string, content []byte) error {
	return writeFileAtomic(path, content, 0644)
}
