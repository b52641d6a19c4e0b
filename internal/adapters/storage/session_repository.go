package storage

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/s-age/pipe-sub004/internal/adapters/filelock"
	"github.com/s-age/pipe-sub004/internal/domain"
	"github.com/s-age/pipe-sub004/internal/logging"
	"github.com/s-age/pipe-sub004/internal/ports"
)

// SessionFileRepository stores each session as one JSON file. Session "a/b"
// lives at <sessionsDir>/a/b.json, below the directory of its parent.
type SessionFileRepository struct {
	backupsDir  string
	index       ports.SessionIndex
	locker      *filelock.Locker
	now         func() time.Time
	sessionsDir string
}

// Verify interface compliance at compile time
var _ ports.SessionRepository = (*SessionFileRepository)(nil)

// NewSessionFileRepository creates a SessionFileRepository
func NewSessionFileRepository(locker *filelock.Locker, index ports.SessionIndex, sessionsDir, backupsDir string) *SessionFileRepository {
	return &SessionFileRepository{
		backupsDir:  backupsDir,
		index:       index,
		locker:      locker,
		now:         func() time.Time { return time.Now().UTC() },
		sessionsDir: sessionsDir,
	}
}

// Path returns the session file of id
func (r *SessionFileRepository) Path(id string) string {
	return filepath.Join(r.sessionsDir, filepath.FromSlash(id)+".json")
}

// childrenDir holds the files of id's descendants
func (r *SessionFileRepository) childrenDir(id string) string {
	return filepath.Join(r.sessionsDir, filepath.FromSlash(id))
}

// Create registers the session in the index and writes its file. The index
// entry is rolled back when the file cannot be written.
func (r *SessionFileRepository) Create(ctx context.Context, session *domain.Session) error {
	if err := domain.ValidateSessionID(session.ID); err != nil {
		return err
	}

	now := r.now()
	if session.CreatedAt.IsZero() {
		session.CreatedAt = now
	}
	rec, err := sessionToRecord(session)
	if err != nil {
		return err
	}

	if err := r.index.Add(ctx, session.IndexEntry(now)); err != nil {
		return err
	}

	path := r.Path(session.ID)
	if err := filelock.Write(ctx, r.locker, filelock.LockPath(path), path, rec); err != nil {
		if _, rbErr := r.index.Delete(ctx, session.ID); rbErr != nil {
			logging.Logger.Warn("Failed to roll back index entry", "session_id", session.ID, "error", rbErr)
		}
		return fmt.Errorf("failed to write session %s: %w", session.ID, err)
	}

	logging.Logger.Debug("Session created", "session_id", session.ID, "path", path)
	return nil
}

// Get loads the session file of id
func (r *SessionFileRepository) Get(ctx context.Context, id string) (*domain.Session, error) {
	if err := domain.ValidateSessionID(id); err != nil {
		return nil, err
	}

	path := r.Path(id)
	rec, exists, err := filelock.Load(ctx, r.locker, filelock.LockPath(path), path, sessionRecord{})
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%s: %w", id, domain.ErrSessionNotFound)
	}

	session, err := recordToSession(rec)
	if err != nil {
		return nil, fmt.Errorf("session %s: %w", id, err)
	}
	session.ID = id
	return session, nil
}

// Save overwrites the file of an indexed session and refreshes its index entry
func (r *SessionFileRepository) Save(ctx context.Context, session *domain.Session) error {
	if err := domain.ValidateSessionID(session.ID); err != nil {
		return err
	}
	if _, err := r.index.Find(ctx, session.ID); err != nil {
		return err
	}

	rec, err := sessionToRecord(session)
	if err != nil {
		return err
	}
	path := r.Path(session.ID)
	if err := filelock.Write(ctx, r.locker, filelock.LockPath(path), path, rec); err != nil {
		return fmt.Errorf("failed to write session %s: %w", session.ID, err)
	}

	return r.index.Touch(ctx, session.ID, session.Purpose, r.now())
}

// Update runs fn on the stored session while holding the session lock and
// writes the result. Returning ports.ErrNoChange from fn skips the write.
func (r *SessionFileRepository) Update(ctx context.Context, id string, fn func(session *domain.Session) error) (*domain.Session, error) {
	return r.update(ctx, id, false, func(session *domain.Session, _ string) error {
		return fn(session)
	})
}

// UpdateWithBackup is Update with a copy of the file taken under the same
// lock before fn runs. The copy is removed again when fn fails.
func (r *SessionFileRepository) UpdateWithBackup(ctx context.Context, id string, fn func(session *domain.Session, backupPath string) error) (*domain.Session, error) {
	return r.update(ctx, id, true, fn)
}

func (r *SessionFileRepository) update(ctx context.Context, id string, backup bool, fn func(session *domain.Session, backupPath string) error) (*domain.Session, error) {
	if err := domain.ValidateSessionID(id); err != nil {
		return nil, err
	}

	var updated *domain.Session
	changed := false
	path := r.Path(id)
	err := filelock.Update(ctx, r.locker, filelock.LockPath(path), path, sessionRecord{}, func(rec *sessionRecord, exists bool) error {
		if !exists {
			return fmt.Errorf("%s: %w", id, domain.ErrSessionNotFound)
		}
		session, err := recordToSession(*rec)
		if err != nil {
			return fmt.Errorf("session %s: %w", id, err)
		}
		session.ID = id

		var backupPath string
		if backup {
			if backupPath, err = r.backupLocked(id); err != nil {
				return err
			}
		}

		if err := fn(session, backupPath); err != nil {
			if errors.Is(err, ports.ErrNoChange) {
				updated = session
				return filelock.ErrSkipWrite
			}
			r.discardBackup(backupPath)
			return err
		}

		next, err := sessionToRecord(session)
		if err != nil {
			return err
		}
		*rec = next
		updated = session
		changed = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	if changed {
		if err := r.index.Touch(ctx, id, updated.Purpose, r.now()); err != nil {
			logging.Logger.Warn("Failed to touch index entry", "session_id", id, "error", err)
		}
	}
	return updated, nil
}

// Delete removes id and its descendants from the index, then their files.
// It returns the removed ids.
func (r *SessionFileRepository) Delete(ctx context.Context, id string) ([]string, error) {
	return r.removeTree(ctx, id, nil)
}

// RemoveWithBackup deletes id and its descendants like Delete, but first
// lets fn back them up while every lock of the subtree is held
func (r *SessionFileRepository) RemoveWithBackup(ctx context.Context, id string, fn func(entries []domain.IndexEntry, backup ports.BackupFunc) error) ([]string, error) {
	return r.removeTree(ctx, id, fn)
}

func (r *SessionFileRepository) removeTree(ctx context.Context, id string, fn func(entries []domain.IndexEntry, backup ports.BackupFunc) error) ([]string, error) {
	if err := domain.ValidateSessionID(id); err != nil {
		return nil, err
	}

	entries, err := r.subtree(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("%s: %w", id, domain.ErrSessionNotFound)
	}

	ids := lockOrder(entries)
	var removed []string
	err = r.withLocks(ctx, ids, func() error {
		locked, err := r.subtree(ctx, id)
		if err != nil {
			return err
		}
		if !slices.Equal(lockOrder(locked), ids) {
			return fmt.Errorf("sessions under %s changed while locking: %w", id, domain.ErrConflict)
		}

		if fn != nil {
			if err := fn(locked, r.backupLocked); err != nil {
				return err
			}
		}

		if removed, err = r.index.Delete(ctx, id); err != nil {
			return err
		}
		for _, sid := range ids {
			path := r.Path(sid)
			if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
				return domain.IOError("remove "+path, err)
			}
		}
		return nil
	})
	if err != nil {
		return removed, err
	}

	// Lock files of descendants are gone once the locks are released
	if err := os.RemoveAll(r.childrenDir(id)); err != nil {
		return removed, domain.IOError("remove session directory", err)
	}

	logging.Logger.Info("Sessions deleted", "session_id", id, "removed", removed)
	return removed, nil
}

// subtree returns the index entries of id and its descendants
func (r *SessionFileRepository) subtree(ctx context.Context, id string) ([]domain.IndexEntry, error) {
	entries, err := r.index.List(ctx)
	if err != nil {
		return nil, err
	}
	return slices.DeleteFunc(entries, func(e domain.IndexEntry) bool {
		return !domain.IsSelfOrDescendant(e.SessionID, id)
	}), nil
}

// lockOrder sorts ids deepest first, then by name. A child is always locked
// before its parent, the same order compression approval uses.
func lockOrder(entries []domain.IndexEntry) []string {
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.SessionID)
	}
	slices.SortFunc(ids, func(a, b string) int {
		if c := cmp.Compare(strings.Count(b, domain.SessionSeparator), strings.Count(a, domain.SessionSeparator)); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})
	return ids
}

// withLocks holds the locks of ids, acquired in order, while fn runs
func (r *SessionFileRepository) withLocks(ctx context.Context, ids []string, fn func() error) error {
	if len(ids) == 0 {
		return fn()
	}
	return r.locker.WithLock(ctx, filelock.LockPath(r.Path(ids[0])), func() error {
		return r.withLocks(ctx, ids[1:], fn)
	})
}

// backupLocked copies the session file of id into the backups directory.
// The caller holds the session lock.
func (r *SessionFileRepository) backupLocked(id string) (string, error) {
	path := r.Path(id)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%s: %w", id, domain.ErrSessionNotFound)
		}
		return "", fmt.Errorf("failed to back up session %s: %w", id, domain.IOError("read "+path, err))
	}

	target := filepath.Join(r.backupsDir, backupFileName(id, r.now()))
	if err := filelock.WriteFileAtomic(target, data); err != nil {
		return "", fmt.Errorf("failed to back up session %s: %w", id, err)
	}

	logging.Logger.Debug("Session backed up", "session_id", id, "backup", target)
	return target, nil
}

func (r *SessionFileRepository) discardBackup(backupPath string) {
	if backupPath == "" {
		return
	}
	if err := os.Remove(backupPath); err != nil && !os.IsNotExist(err) {
		logging.Logger.Warn("Failed to discard unused backup", "backup", backupPath, "error", err)
	}
}

// Restore writes the backup at backupPath as session id and registers it in
// the index. It fails with a conflict when id already exists.
func (r *SessionFileRepository) Restore(ctx context.Context, backupPath, id string) error {
	if err := domain.ValidateSessionID(id); err != nil {
		return err
	}

	data, err := os.ReadFile(backupPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%s: %w", backupPath, domain.ErrBackupNotFound)
		}
		return domain.IOError("read "+backupPath, err)
	}

	var rec sessionRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return domain.Validationf("backup %s is not a session file: %v", backupPath, err)
	}
	session, err := recordToSession(rec)
	if err != nil {
		return fmt.Errorf("backup %s: %w", backupPath, err)
	}
	session.ID = id
	rec.SessionID = id
	rec.Version = schemaVersion

	if err := r.index.Add(ctx, session.IndexEntry(r.now())); err != nil {
		return err
	}

	path := r.Path(id)
	if err := filelock.Write(ctx, r.locker, filelock.LockPath(path), path, rec); err != nil {
		if _, rbErr := r.index.Delete(ctx, id); rbErr != nil {
			logging.Logger.Warn("Failed to roll back index entry", "session_id", id, "error", rbErr)
		}
		return fmt.Errorf("failed to restore session %s: %w", id, err)
	}

	logging.Logger.Info("Session restored", "session_id", id, "backup", backupPath)
	return nil
}

// backupFileName flattens id into a unique file name
func backupFileName(id string, now time.Time) string {
	flat := strings.ReplaceAll(id, domain.SessionSeparator, "__")
	return fmt.Sprintf("%s-%s-%s.json", flat, now.UTC().Format("20060102T150405Z"), uuid.NewString()[:8])
}
