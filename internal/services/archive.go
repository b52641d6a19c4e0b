package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/s-age/pipe-sub004/internal/config"
	"github.com/s-age/pipe-sub004/internal/domain"
	"github.com/s-age/pipe-sub004/internal/logging"
	"github.com/s-age/pipe-sub004/internal/ports"
)

// ArchiveService removes sessions in bulk, backing up every file first
type ArchiveService struct {
	catalog   ports.BackupCatalog
	newID     func() string
	now       func() time.Time
	processes ports.ProcessRegistry
	sessions  ports.SessionRepository
	workers   int
}

// NewArchiveService creates a new ArchiveService
func NewArchiveService(
	sessions ports.SessionRepository,
	catalog ports.BackupCatalog,
	processes ports.ProcessRegistry,
	workers int,
) *ArchiveService {
	if workers <= 0 {
		workers = config.DefaultArchiveWorkers
	}
	return &ArchiveService{
		catalog:   catalog,
		newID:     uuid.NewString,
		now:       func() time.Time { return time.Now().UTC() },
		processes: processes,
		sessions:  sessions,
		workers:   workers,
	}
}

// ArchiveSessions backs up and removes each session with its descendants
func (s *ArchiveService) ArchiveSessions(ctx context.Context, ids []string) ([]RemovalResult, error) {
	return s.removeAll(ctx, ids, domain.BackupReasonArchive)
}

// DeleteSessions removes each session with its descendants. A backup is
// still taken so the deletion can be undone with RestoreBackup.
func (s *ArchiveService) DeleteSessions(ctx context.Context, ids []string) ([]RemovalResult, error) {
	return s.removeAll(ctx, ids, domain.BackupReasonDelete)
}

// ListBackups returns catalogued backups, newest first. An empty sessionID
// lists all of them.
func (s *ArchiveService) ListBackups(ctx context.Context, sessionID string) ([]domain.BackupRecord, error) {
	return s.catalog.List(ctx, sessionID)
}

// RestoreBackup copies a backup back in place under its original id
func (s *ArchiveService) RestoreBackup(ctx context.Context, backupID string) (*domain.BackupRecord, error) {
	record, err := s.catalog.Get(ctx, backupID)
	if err != nil {
		return nil, err
	}
	if err := s.sessions.Restore(ctx, record.BackupPath, record.SessionID); err != nil {
		return nil, err
	}
	return record, nil
}

// removeAll processes ids concurrently. One result is returned per
// requested id that is not itself covered by another requested id; the
// error joins the failures of all ids.
func (s *ArchiveService) removeAll(ctx context.Context, ids []string, reason domain.BackupReason) ([]RemovalResult, error) {
	roots := topLevelIDs(ids)
	for _, id := range roots {
		if err := domain.ValidateSessionID(id); err != nil {
			return nil, err
		}
	}

	results := make([]RemovalResult, len(roots))
	var g errgroup.Group
	g.SetLimit(s.workers)
	for i, id := range roots {
		g.Go(func() error {
			results[i] = s.remove(ctx, id, reason)
			return nil
		})
	}
	_ = g.Wait()

	var errs []error
	for _, result := range results {
		if result.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", result.SessionID, result.Err))
		}
	}
	return results, errors.Join(errs...)
}

// remove backs up and deletes id and its descendants while their locks are
// held. Nothing is deleted unless every file was backed up and catalogued.
func (s *ArchiveService) remove(ctx context.Context, id string, reason domain.BackupReason) RemovalResult {
	result := RemovalResult{SessionID: id}

	removed, err := s.sessions.RemoveWithBackup(ctx, id, func(entries []domain.IndexEntry, backup ports.BackupFunc) error {
		for _, e := range entries {
			running, err := s.processes.IsRunning(ctx, e.SessionID)
			if err != nil {
				return err
			}
			if running {
				return fmt.Errorf("%s: %w", e.SessionID, domain.ErrAlreadyRunning)
			}
		}

		for _, e := range entries {
			path, err := backup(e.SessionID)
			if errors.Is(err, domain.ErrSessionNotFound) {
				logging.Logger.Warn("Indexed session has no file, nothing to back up", "session_id", e.SessionID)
				continue
			}
			if err != nil {
				return err
			}

			record := domain.BackupRecord{
				BackupPath:       path,
				CreatedAt:        s.now(),
				ID:               s.newID(),
				Purpose:          e.Purpose,
				Reason:           reason,
				SessionCreatedAt: e.CreatedAt,
				SessionID:        e.SessionID,
			}
			if err := s.catalog.Record(ctx, record); err != nil {
				return fmt.Errorf("catalog backup of %s: %w", e.SessionID, err)
			}
			result.Backups = append(result.Backups, record)
		}
		return nil
	})
	if err != nil {
		result.Err = err
		return result
	}
	result.Removed = removed

	logging.Logger.Info("Sessions removed", "session_id", id, "reason", reason, "removed", len(removed))
	return result
}

// topLevelIDs drops duplicates and ids that descend from another requested id
func topLevelIDs(ids []string) []string {
	sorted := slices.Clone(ids)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	var roots []string
	for _, id := range sorted {
		covered := slices.ContainsFunc(roots, func(root string) bool {
			return domain.IsSelfOrDescendant(id, root)
		})
		if !covered {
			roots = append(roots, id)
		}
	}
	return roots
}
