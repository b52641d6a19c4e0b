package services

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/s-age/pipe-sub004/internal/domain"
	"github.com/s-age/pipe-sub004/internal/logging"
	"github.com/s-age/pipe-sub004/internal/ports"
)

// SessionService handles session lifecycle, metadata and turn editing
type SessionService struct {
	index    ports.SessionIndex
	newID    func() string
	now      func() time.Time
	sessions ports.SessionRepository
	watcher  ports.FileWatcher
}

// NewSessionService creates a new SessionService
func NewSessionService(
	sessions ports.SessionRepository,
	index ports.SessionIndex,
	watcher ports.FileWatcher,
) *SessionService {
	return &SessionService{
		index:    index,
		newID:    uuid.NewString,
		now:      func() time.Time { return time.Now().UTC() },
		sessions: sessions,
		watcher:  watcher,
	}
}

// CreateSession creates an empty session, as a child of params.ParentID when set
func (s *SessionService) CreateSession(ctx context.Context, params CreateSessionParams) (*domain.Session, error) {
	id := s.newID()
	if params.ParentID != "" {
		if _, err := s.index.Find(ctx, params.ParentID); err != nil {
			return nil, fmt.Errorf("parent session: %w", err)
		}
		id = domain.ChildID(params.ParentID, id)
	}

	session := &domain.Session{
		Artifacts:                 slices.Clone(params.Artifacts),
		Background:                params.Background,
		CreatedAt:                 s.now(),
		Hyperparameters:           params.Hyperparameters,
		ID:                        id,
		MultiStepReasoningEnabled: params.MultiStepReasoningEnabled,
		Procedure:                 params.Procedure,
		Purpose:                   params.Purpose,
		Roles:                     slices.Clone(params.Roles),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, err
	}

	logging.Logger.Info("Session created", "session_id", id, "purpose", params.Purpose)
	return session, nil
}

// GetSession loads a session
func (s *SessionService) GetSession(ctx context.Context, id string) (*domain.Session, error) {
	return s.sessions.Get(ctx, id)
}

// ListSessions returns index entries, most recently updated first
func (s *SessionService) ListSessions(ctx context.Context) ([]domain.IndexEntry, error) {
	return s.index.List(ctx)
}

// Tree returns sessions arranged by lineage
func (s *SessionService) Tree(ctx context.Context) ([]*domain.SessionNode, error) {
	entries, err := s.index.List(ctx)
	if err != nil {
		return nil, err
	}
	return domain.BuildTree(entries), nil
}

// ForkSession creates a child of parentID holding the turns before atIndex
func (s *SessionService) ForkSession(ctx context.Context, parentID string, atIndex int) (*domain.Session, error) {
	parent, err := s.sessions.Get(ctx, parentID)
	if err != nil {
		return nil, err
	}

	child, err := parent.Fork(domain.ChildID(parentID, s.newID()), atIndex, s.now())
	if err != nil {
		return nil, fmt.Errorf("fork %s at %d: %w", parentID, atIndex, err)
	}
	if err := s.sessions.Create(ctx, child); err != nil {
		return nil, err
	}

	logging.Logger.Info("Session forked", "parent_id", parentID, "session_id", child.ID, "at_index", atIndex)
	return child, nil
}

// DeleteTurns removes turns by index in one critical section
func (s *SessionService) DeleteTurns(ctx context.Context, id string, indices []int) error {
	_, err := s.sessions.Update(ctx, id, func(session *domain.Session) error {
		if len(indices) == 0 {
			return ports.ErrNoChange
		}
		if err := session.DeleteTurns(indices); err != nil {
			return fmt.Errorf("session %s: %w", id, err)
		}
		return nil
	})
	return err
}

// EditTurn updates the editable fields of one turn
func (s *SessionService) EditTurn(ctx context.Context, id string, index int, edit domain.TurnEdit) error {
	_, err := s.sessions.Update(ctx, id, func(session *domain.Session) error {
		if err := session.EditTurn(index, edit); err != nil {
			return fmt.Errorf("session %s turn %d: %w", id, index, err)
		}
		return nil
	})
	return err
}

// EditSessionMeta changes session metadata; the index purpose follows
func (s *SessionService) EditSessionMeta(ctx context.Context, id string, params EditSessionMetaParams) (*domain.Session, error) {
	return s.sessions.Update(ctx, id, func(session *domain.Session) error {
		if params.Purpose != nil {
			session.Purpose = *params.Purpose
		}
		if params.Background != nil {
			session.Background = *params.Background
		}
		if params.Roles != nil {
			session.Roles = slices.Clone(*params.Roles)
		}
		if params.Procedure != nil {
			session.Procedure = *params.Procedure
		}
		if params.Artifacts != nil {
			session.Artifacts = slices.Clone(*params.Artifacts)
		}
		if params.MultiStepReasoningEnabled != nil {
			session.MultiStepReasoningEnabled = *params.MultiStepReasoningEnabled
		}
		return nil
	})
}

// UpdateTodos replaces the todo list
func (s *SessionService) UpdateTodos(ctx context.Context, id string, todos []domain.TodoItem) error {
	for i, todo := range todos {
		if todo.Title == "" {
			return domain.Validationf("todo %d has no title", i)
		}
	}
	_, err := s.sessions.Update(ctx, id, func(session *domain.Session) error {
		session.Todos = slices.Clone(todos)
		return nil
	})
	return err
}

// DeleteTodos clears the todo list
func (s *SessionService) DeleteTodos(ctx context.Context, id string) error {
	_, err := s.sessions.Update(ctx, id, func(session *domain.Session) error {
		if len(session.Todos) == 0 {
			return ports.ErrNoChange
		}
		session.Todos = nil
		return nil
	})
	return err
}

// UpdateHyperparameters merges the set fields of hp into the session
func (s *SessionService) UpdateHyperparameters(ctx context.Context, id string, hp domain.Hyperparameters) error {
	if hp.Temperature != nil && (*hp.Temperature < 0 || *hp.Temperature > 2) {
		return domain.Validationf("temperature %v out of range [0, 2]", *hp.Temperature)
	}
	if hp.TopP != nil && (*hp.TopP < 0 || *hp.TopP > 1) {
		return domain.Validationf("top_p %v out of range [0, 1]", *hp.TopP)
	}
	if hp.TopK != nil && *hp.TopK < 1 {
		return domain.Validationf("top_k %d must be positive", *hp.TopK)
	}

	_, err := s.sessions.Update(ctx, id, func(session *domain.Session) error {
		if hp.Temperature != nil {
			session.Hyperparameters.Temperature = hp.Temperature
		}
		if hp.TopP != nil {
			session.Hyperparameters.TopP = hp.TopP
		}
		if hp.TopK != nil {
			session.Hyperparameters.TopK = hp.TopK
		}
		return nil
	})
	return err
}

// UpdateTokenCount records the prompt size of the last run
func (s *SessionService) UpdateTokenCount(ctx context.Context, id string, count int) error {
	if count < 0 {
		return domain.Validationf("token count %d is negative", count)
	}
	_, err := s.sessions.Update(ctx, id, func(session *domain.Session) error {
		if session.TokenCount == count {
			return ports.ErrNoChange
		}
		session.TokenCount = count
		return nil
	})
	return err
}

// Watch signals every change of the session file until ctx is done
func (s *SessionService) Watch(ctx context.Context, id string) (<-chan struct{}, error) {
	if err := domain.ValidateSessionID(id); err != nil {
		return nil, err
	}
	if _, err := s.index.Find(ctx, id); err != nil {
		return nil, err
	}
	return s.watcher.Watch(ctx, s.sessions.Path(id))
}
