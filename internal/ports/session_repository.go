package ports

import (
	"context"
	"errors"
	"time"

	"github.com/s-age/pipe-sub004/internal/domain"
)

// ErrNoChange tells SessionWriter.Update to leave the session file untouched
var ErrNoChange = errors.New("no change")

// SessionReader reads session files
type SessionReader interface {
	Get(ctx context.Context, id string) (*domain.Session, error)
	Path(id string) string
}

// SessionWriter creates, mutates and deletes session files.
// Update holds the session lock across the whole read-modify-write.
type SessionWriter interface {
	Create(ctx context.Context, session *domain.Session) error
	Delete(ctx context.Context, id string) ([]string, error)
	Save(ctx context.Context, session *domain.Session) error
	Update(ctx context.Context, id string, fn func(session *domain.Session) error) (*domain.Session, error)
}

// BackupFunc copies the file of a session whose lock is already held into
// the backup area and returns the copy's path
type BackupFunc func(sessionID string) (string, error)

// SessionBackupper copies session files in and out of the backup area.
// Backups protecting a destructive change are taken inside the same
// critical section as the change, so nothing can land in between.
//
// UpdateWithBackup copies the file, then runs fn with the copy's path and
// writes the result. The copy is discarded when fn fails.
//
// RemoveWithBackup locks id and every descendant, then calls fn with their
// index entries and a BackupFunc. The sessions are deleted only when fn
// returns nil. fn must not take session locks itself.
type SessionBackupper interface {
	RemoveWithBackup(ctx context.Context, id string, fn func(entries []domain.IndexEntry, backup BackupFunc) error) ([]string, error)
	Restore(ctx context.Context, backupPath, id string) error
	UpdateWithBackup(ctx context.Context, id string, fn func(session *domain.Session, backupPath string) error) (*domain.Session, error)
}

// SessionRepository is the composite interface
type SessionRepository interface {
	SessionReader
	SessionWriter
	SessionBackupper
}

// SessionIndex is the authoritative list of existing sessions
type SessionIndex interface {
	Add(ctx context.Context, entry domain.IndexEntry) error
	Delete(ctx context.Context, id string) ([]string, error)
	Find(ctx context.Context, id string) (*domain.IndexEntry, error)
	List(ctx context.Context) ([]domain.IndexEntry, error)
	Touch(ctx context.Context, id, purpose string, lastUpdated time.Time) error
}
