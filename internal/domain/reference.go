package domain

import (
	"slices"
	"sort"
)

// DefaultReferenceTTL is the number of decay ticks a new reference survives
const DefaultReferenceTTL = 3

// Reference is a file consumed by a tool and fed back into prompts until its
// TTL runs out. A nil TTL means "use the configured default".
type Reference struct {
	Disabled bool
	Path     string
	TTL      *int
}

// TTLOr returns the reference's ttl, or def when it is unset
func (r Reference) TTLOr(def int) int {
	if r.TTL == nil {
		return def
	}
	return *r.TTL
}

func intPtr(v int) *int { return &v }

func cloneReferences(refs []Reference) []Reference {
	if refs == nil {
		return nil
	}
	out := make([]Reference, len(refs))
	for i, r := range refs {
		out[i] = r
		if r.TTL != nil {
			out[i].TTL = intPtr(*r.TTL)
		}
	}
	return out
}

func (s *Session) referenceIndex(path string) int {
	return slices.IndexFunc(s.References, func(r Reference) bool { return r.Path == path })
}

// FindReference returns the reference registered under path
func (s *Session) FindReference(path string) (Reference, bool) {
	idx := s.referenceIndex(path)
	if idx < 0 {
		return Reference{}, false
	}
	return s.References[idx], true
}

// AddReference registers path with defaultTTL. It returns false when the path
// is already present, in which case nothing changes.
func (s *Session) AddReference(path string, defaultTTL int) (bool, error) {
	if path == "" {
		return false, Validationf("reference path is empty")
	}
	if s.referenceIndex(path) >= 0 {
		return false, nil
	}
	s.References = append(s.References, Reference{Path: path, TTL: intPtr(defaultTTL)})
	s.SortReferences(defaultTTL)
	return true, nil
}

// UpdateReferenceTTL sets the ttl of path; a ttl <= 0 disables it
func (s *Session) UpdateReferenceTTL(path string, ttl int, defaultTTL int) error {
	idx := s.referenceIndex(path)
	if idx < 0 {
		return ErrReferenceNotFound
	}
	s.References[idx].TTL = intPtr(ttl)
	s.References[idx].Disabled = ttl <= 0
	s.SortReferences(defaultTTL)
	return nil
}

// ToggleReferenceDisabled flips the disabled flag of path and returns the new
// value. Re-enabling an exhausted reference resets its ttl to defaultTTL.
func (s *Session) ToggleReferenceDisabled(path string, defaultTTL int) (bool, error) {
	idx := s.referenceIndex(path)
	if idx < 0 {
		return false, ErrReferenceNotFound
	}
	ref := &s.References[idx]
	ref.Disabled = !ref.Disabled
	if !ref.Disabled && ref.TTLOr(0) <= 0 {
		ref.TTL = intPtr(defaultTTL)
	}
	disabled := ref.Disabled
	s.SortReferences(defaultTTL)
	return disabled, nil
}

// RemoveReference drops path from the session
func (s *Session) RemoveReference(path string) error {
	idx := s.referenceIndex(path)
	if idx < 0 {
		return ErrReferenceNotFound
	}
	s.References = slices.Delete(s.References, idx, idx+1)
	return nil
}

// DecrementAllTTL runs one decay tick: every enabled reference loses one ttl
// and is disabled once it reaches zero. Disabled references are skipped.
func (s *Session) DecrementAllTTL(defaultTTL int) {
	for i := range s.References {
		ref := &s.References[i]
		if ref.Disabled {
			continue
		}
		next := ref.TTLOr(defaultTTL) - 1
		if next <= 0 {
			next = 0
			ref.Disabled = true
		}
		ref.TTL = intPtr(next)
	}
	s.SortReferences(defaultTTL)
}

// SortReferences orders enabled references before disabled ones, higher ttl
// first within each group.
func (s *Session) SortReferences(defaultTTL int) {
	sort.SliceStable(s.References, func(i, j int) bool {
		a, b := s.References[i], s.References[j]
		if a.Disabled != b.Disabled {
			return !a.Disabled
		}
		return a.TTLOr(defaultTTL) > b.TTLOr(defaultTTL)
	})
}

// EnabledReferences returns the references that should reach the prompt
func (s *Session) EnabledReferences() []Reference {
	var out []Reference
	for _, r := range s.References {
		if !r.Disabled {
			out = append(out, r)
		}
	}
	return out
}
