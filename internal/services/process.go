package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/s-age/pipe-sub004/internal/domain"
	"github.com/s-age/pipe-sub004/internal/logging"
	"github.com/s-age/pipe-sub004/internal/ports"
)

// ProcessService coordinates the background agent process of each session
type ProcessService struct {
	index     ports.SessionIndex
	processes ports.ProcessRegistry
	sessions  ports.SessionRepository
}

// NewProcessService creates a new ProcessService
func NewProcessService(
	processes ports.ProcessRegistry,
	sessions ports.SessionRepository,
	index ports.SessionIndex,
) *ProcessService {
	return &ProcessService{
		index:     index,
		processes: processes,
		sessions:  sessions,
	}
}

// Register records the agent process of an existing session
func (s *ProcessService) Register(ctx context.Context, info domain.ProcessInfo) error {
	if _, err := s.index.Find(ctx, info.SessionID); err != nil {
		return err
	}
	if err := s.processes.Register(ctx, info); err != nil {
		return err
	}

	logging.Logger.Info("Process registered", "session_id", info.SessionID, "pid", info.PID)
	return nil
}

// IsRunning reports whether the session has a live registered process
func (s *ProcessService) IsRunning(ctx context.Context, sessionID string) (bool, error) {
	return s.processes.IsRunning(ctx, sessionID)
}

// Get returns the registered process of a session
func (s *ProcessService) Get(ctx context.Context, sessionID string) (*domain.ProcessInfo, error) {
	return s.processes.Get(ctx, sessionID)
}

// List returns every registered process
func (s *ProcessService) List(ctx context.Context) ([]domain.ProcessInfo, error) {
	return s.processes.List(ctx)
}

// Cleanup forgets the process of a session; it is called by the agent on exit
func (s *ProcessService) Cleanup(ctx context.Context, sessionID string) error {
	return s.processes.Cleanup(ctx, sessionID)
}

// Stop ends the agent run of a session: the process is killed first so it
// cannot write again, then the pool is rolled back and the entry removed.
func (s *ProcessService) Stop(ctx context.Context, sessionID string) (StopResult, error) {
	var result StopResult

	gone, err := s.processes.Kill(ctx, sessionID)
	if err != nil {
		return result, err
	}
	if !gone {
		return result, fmt.Errorf("process of %s is still alive: %w", sessionID, domain.ErrConflict)
	}
	result.Killed = true

	_, err = s.sessions.Update(ctx, sessionID, func(session *domain.Session) error {
		result.RolledBack = session.RollbackPool()
		if result.RolledBack == 0 {
			return ports.ErrNoChange
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, domain.ErrSessionNotFound) {
			return result, fmt.Errorf("rollback after stop: %w", err)
		}
		logging.Logger.Warn("Stopped process of a missing session", "session_id", sessionID)
	}

	if err := s.processes.Cleanup(ctx, sessionID); err != nil {
		return result, err
	}

	logging.Logger.Info("Session stopped", "session_id", sessionID, "rolled_back", result.RolledBack)
	return result, nil
}
