package services

import (
	"context"
	"path/filepath"

	"github.com/s-age/pipe-sub004/internal/domain"
	"github.com/s-age/pipe-sub004/internal/ports"
)

// ReferenceService manages the files a session feeds back into prompts
type ReferenceService struct {
	defaultTTL  int
	projectRoot string
	sessions    ports.SessionRepository
}

// NewReferenceService creates a new ReferenceService. References are read
// relative to projectRoot.
func NewReferenceService(sessions ports.SessionRepository, projectRoot string, defaultTTL int) *ReferenceService {
	if defaultTTL <= 0 {
		defaultTTL = domain.DefaultReferenceTTL
	}
	return &ReferenceService{
		defaultTTL:  defaultTTL,
		projectRoot: projectRoot,
		sessions:    sessions,
	}
}

// AddReference registers path; it reports false when already present
func (s *ReferenceService) AddReference(ctx context.Context, id, path string) (bool, error) {
	if path == "" {
		return false, domain.Validationf("reference path is empty")
	}
	path = filepath.Clean(path)
	added := false
	_, err := s.sessions.Update(ctx, id, func(session *domain.Session) error {
		var err error
		added, err = session.AddReference(path, s.defaultTTL)
		if err != nil {
			return err
		}
		if !added {
			return ports.ErrNoChange
		}
		return nil
	})
	return added, err
}

// UpdateReferenceTTL sets the ttl of path; ttl <= 0 disables it
func (s *ReferenceService) UpdateReferenceTTL(ctx context.Context, id, path string, ttl int) error {
	_, err := s.sessions.Update(ctx, id, func(session *domain.Session) error {
		return session.UpdateReferenceTTL(filepath.Clean(path), ttl, s.defaultTTL)
	})
	return err
}

// ToggleReferenceDisabled flips the disabled flag of path and returns it
func (s *ReferenceService) ToggleReferenceDisabled(ctx context.Context, id, path string) (bool, error) {
	disabled := false
	_, err := s.sessions.Update(ctx, id, func(session *domain.Session) error {
		var err error
		disabled, err = session.ToggleReferenceDisabled(filepath.Clean(path), s.defaultTTL)
		return err
	})
	return disabled, err
}

// RemoveReference drops path from the session
func (s *ReferenceService) RemoveReference(ctx context.Context, id, path string) error {
	_, err := s.sessions.Update(ctx, id, func(session *domain.Session) error {
		return session.RemoveReference(filepath.Clean(path))
	})
	return err
}

// DecrementAllTTL runs one decay tick over the session's references
func (s *ReferenceService) DecrementAllTTL(ctx context.Context, id string) error {
	_, err := s.sessions.Update(ctx, id, func(session *domain.Session) error {
		if len(session.EnabledReferences()) == 0 {
			return ports.ErrNoChange
		}
		session.DecrementAllTTL(s.defaultTTL)
		return nil
	})
	return err
}

// ListReferences returns the references in prompt order
func (s *ReferenceService) ListReferences(ctx context.Context, id string) ([]domain.Reference, error) {
	session, err := s.sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	session.SortReferences(s.defaultTTL)
	return session.References, nil
}
