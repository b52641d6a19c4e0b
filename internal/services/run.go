package services

import (
	"context"
	"fmt"
	"time"

	"github.com/s-age/pipe-sub004/internal/domain"
	"github.com/s-age/pipe-sub004/internal/logging"
	"github.com/s-age/pipe-sub004/internal/ports"
)

// RunService drives the turn log of an agent run: turns are staged in the
// pool while the run is in flight and committed or rolled back at the end.
// Every call takes the session lock once and releases it before returning,
// so a foreground process can interleave with the agent loop.
type RunService struct {
	expirationThreshold int
	now                 func() time.Time
	sessions            ports.SessionRepository
	toolResponseLimit   int
}

// NewRunService creates a new RunService
func NewRunService(sessions ports.SessionRepository, toolResponseLimit, expirationThreshold int) *RunService {
	if toolResponseLimit < 0 {
		toolResponseLimit = domain.DefaultToolResponseLimit
	}
	if expirationThreshold <= 0 {
		expirationThreshold = domain.DefaultExpirationThreshold
	}
	return &RunService{
		expirationThreshold: expirationThreshold,
		now:                 func() time.Time { return time.Now().UTC() },
		sessions:            sessions,
		toolResponseLimit:   toolResponseLimit,
	}
}

// AppendToPool stages turns and persists them immediately. Turns without a
// timestamp are stamped with the current time.
func (s *RunService) AppendToPool(ctx context.Context, id string, turns ...domain.Turn) error {
	if len(turns) == 0 {
		return nil
	}
	stamped := make([]domain.Turn, len(turns))
	for i, t := range turns {
		if t.Timestamp.IsZero() {
			t.Timestamp = s.now()
		}
		stamped[i] = t
	}

	_, err := s.sessions.Update(ctx, id, func(session *domain.Session) error {
		return session.AppendPool(stamped...)
	})
	return err
}

// CommitPool moves the pooled turns to the turn log and returns how many
// were committed
func (s *RunService) CommitPool(ctx context.Context, id string) (int, error) {
	committed := 0
	_, err := s.sessions.Update(ctx, id, func(session *domain.Session) error {
		committed = session.CommitPool()
		if committed == 0 {
			return ports.ErrNoChange
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	logging.Logger.Debug("Pool committed", "session_id", id, "turns", committed)
	return committed, nil
}

// RollbackPool drops the pooled turns and returns how many were dropped
func (s *RunService) RollbackPool(ctx context.Context, id string) (int, error) {
	dropped := 0
	_, err := s.sessions.Update(ctx, id, func(session *domain.Session) error {
		dropped = session.RollbackPool()
		if dropped == 0 {
			return ports.ErrNoChange
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	if dropped > 0 {
		logging.Logger.Info("Pool rolled back", "session_id", id, "turns", dropped)
	}
	return dropped, nil
}

// ExpireOldToolResponses blanks stale tool output in the stored turn log and
// reports whether anything changed
func (s *RunService) ExpireOldToolResponses(ctx context.Context, id string) (bool, error) {
	changed := false
	_, err := s.sessions.Update(ctx, id, func(session *domain.Session) error {
		turns, expired := domain.ExpireOldToolResponses(session.Turns, s.expirationThreshold)
		if !expired {
			return ports.ErrNoChange
		}
		session.Turns = turns
		changed = true
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("expire tool responses of %s: %w", id, err)
	}
	return changed, nil
}

// TurnsForPrompt returns the filtered history of a session for prompt
// construction. Pooled turns never reach the prompt.
func (s *RunService) TurnsForPrompt(ctx context.Context, id string) ([]domain.Turn, error) {
	session, err := s.sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return domain.TurnsForPrompt(session.Turns, s.toolResponseLimit), nil
}
