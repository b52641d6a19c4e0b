package services

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/s-age/pipe-sub004/internal/domain"
	"github.com/s-age/pipe-sub004/internal/logging"
	"github.com/s-age/pipe-sub004/internal/ports"
)

// CompressionService replaces ranges of turns with summaries. Every
// destructive change is preceded by a backup recorded in the catalog.
type CompressionService struct {
	catalog  ports.BackupCatalog
	newID    func() string
	now      func() time.Time
	sessions ports.SessionRepository
}

// NewCompressionService creates a new CompressionService
func NewCompressionService(sessions ports.SessionRepository, catalog ports.BackupCatalog) *CompressionService {
	return &CompressionService{
		catalog:  catalog,
		newID:    uuid.NewString,
		now:      func() time.Time { return time.Now().UTC() },
		sessions: sessions,
	}
}

// ReplaceTurnRangeWithSummary replaces turns [start, end] of a session with a
// single compressed_history turn. The range is checked, the file backed up
// and the turns spliced under one session lock. Nothing is changed when the
// backup cannot be taken or catalogued.
func (s *CompressionService) ReplaceTurnRangeWithSummary(ctx context.Context, id, summary string, start, end int) (*domain.BackupRecord, error) {
	if strings.TrimSpace(summary) == "" {
		return nil, domain.Validationf("summary is empty")
	}

	var record *domain.BackupRecord
	_, err := s.sessions.UpdateWithBackup(ctx, id, func(session *domain.Session, backupPath string) error {
		if err := session.ValidateTurnRange(start, end); err != nil {
			return fmt.Errorf("session %s has %d turns, got [%d, %d]: %w", id, len(session.Turns), start, end, err)
		}
		if err := session.ReplaceTurnRange(start, end, summary, s.now()); err != nil {
			return fmt.Errorf("compress %s: %w", id, err)
		}

		var err error
		record, err = s.record(ctx, session, backupPath)
		return err
	})
	if err != nil {
		return nil, err
	}

	logging.Logger.Info("Turns compressed", "session_id", id, "start", start, "end", end, "backup", record.BackupPath)
	return record, nil
}

// StartVerification creates a verifier session, a child of the target that
// carries a copy of the turns to summarise and a pending compression
// awaiting its summary.
func (s *CompressionService) StartVerification(ctx context.Context, targetID string, start, end int) (*domain.Session, error) {
	target, err := s.sessions.Get(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if err := target.ValidateTurnRange(start, end); err != nil {
		return nil, fmt.Errorf("session %s has %d turns, got [%d, %d]: %w", targetID, len(target.Turns), start, end, err)
	}

	now := s.now()
	verifier := &domain.Session{
		CreatedAt: now,
		ID:        domain.ChildID(targetID, s.newID()),
		PendingCompression: &domain.PendingCompression{
			CreatedAt:       now,
			End:             end,
			Start:           start,
			TargetSessionID: targetID,
			TargetTurnCount: len(target.Turns),
		},
		Purpose: fmt.Sprintf("Verify compression of %s turns %d-%d", targetID, start, end),
		Turns:   slices.Clone(target.Turns[start : end+1]),
	}
	if err := s.sessions.Create(ctx, verifier); err != nil {
		return nil, err
	}

	logging.Logger.Info("Compression verification started", "session_id", targetID, "verifier_id", verifier.ID)
	return verifier, nil
}

// SubmitSummary holds summary on the verifier until it is approved or denied.
// The target's current turn count is captured so Approve can detect edits.
func (s *CompressionService) SubmitSummary(ctx context.Context, verifierID, summary string) (*domain.PendingCompression, error) {
	if strings.TrimSpace(summary) == "" {
		return nil, domain.Validationf("summary is empty")
	}

	var pending domain.PendingCompression
	_, err := s.sessions.Update(ctx, verifierID, func(verifier *domain.Session) error {
		if verifier.PendingCompression == nil {
			return fmt.Errorf("verifier %s: %w", verifierID, domain.ErrNoPendingCompression)
		}
		target, err := s.sessions.Get(ctx, verifier.PendingCompression.TargetSessionID)
		if err != nil {
			return err
		}
		if err := target.ValidateTurnRange(verifier.PendingCompression.Start, verifier.PendingCompression.End); err != nil {
			return fmt.Errorf("target %s: %w", target.ID, err)
		}

		now := s.now()
		verifier.PendingCompression.Summary = summary
		verifier.PendingCompression.TargetTurnCount = len(target.Turns)
		verifier.PendingCompression.CreatedAt = now
		verifier.Turns = append(verifier.Turns, domain.NewModelResponse(summary, now))
		pending = *verifier.PendingCompression
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &pending, nil
}

// Approve applies the pending summary to the target session and clears it.
// The verifier lock is held for the whole operation and taken before the
// target lock. The target is backed up under its own lock right before the
// splice.
func (s *CompressionService) Approve(ctx context.Context, verifierID string) (*domain.BackupRecord, error) {
	var record *domain.BackupRecord
	_, err := s.sessions.Update(ctx, verifierID, func(verifier *domain.Session) error {
		pending := verifier.PendingCompression
		if pending == nil || pending.Summary == "" {
			return fmt.Errorf("verifier %s: %w", verifierID, domain.ErrNoPendingCompression)
		}

		_, err := s.sessions.UpdateWithBackup(ctx, pending.TargetSessionID, func(target *domain.Session, backupPath string) error {
			if len(target.Turns) != pending.TargetTurnCount {
				return fmt.Errorf("%s has %d turns, expected %d: %w",
					target.ID, len(target.Turns), pending.TargetTurnCount, domain.ErrTargetChanged)
			}
			if err := target.ReplaceTurnRange(pending.Start, pending.End, pending.Summary, s.now()); err != nil {
				return fmt.Errorf("compress %s: %w", target.ID, err)
			}

			var err error
			record, err = s.record(ctx, target, backupPath)
			return err
		})
		if err != nil {
			return err
		}

		verifier.PendingCompression = nil
		return nil
	})
	if err != nil {
		return nil, err
	}

	logging.Logger.Info("Compression approved", "verifier_id", verifierID, "backup", record.BackupPath)
	return record, nil
}

// Deny discards the pending summary without touching the target
func (s *CompressionService) Deny(ctx context.Context, verifierID string) error {
	_, err := s.sessions.Update(ctx, verifierID, func(verifier *domain.Session) error {
		if verifier.PendingCompression == nil {
			return fmt.Errorf("verifier %s: %w", verifierID, domain.ErrNoPendingCompression)
		}
		verifier.PendingCompression = nil
		return nil
	})
	if err != nil {
		return err
	}

	logging.Logger.Info("Compression denied", "verifier_id", verifierID)
	return nil
}

// record catalogs backupPath as the compression backup of session
func (s *CompressionService) record(ctx context.Context, session *domain.Session, backupPath string) (*domain.BackupRecord, error) {
	record := domain.BackupRecord{
		BackupPath:       backupPath,
		CreatedAt:        s.now(),
		ID:               s.newID(),
		Purpose:          session.Purpose,
		Reason:           domain.BackupReasonCompress,
		SessionCreatedAt: session.CreatedAt,
		SessionID:        session.ID,
	}
	if err := s.catalog.Record(ctx, record); err != nil {
		return nil, fmt.Errorf("catalog backup of %s: %w", session.ID, err)
	}
	return &record, nil
}
