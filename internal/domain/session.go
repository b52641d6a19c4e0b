package domain

import (
	"slices"
	"strings"
	"time"
	"unicode"
)

// SessionSeparator joins lineage segments of a session id ("parent/child")
const SessionSeparator = "/"

// Session is the persisted aggregate of one conversation (domain entity)
type Session struct {
	Artifacts                 []string
	Background                string
	CreatedAt                 time.Time
	Hyperparameters           Hyperparameters
	ID                        string
	MultiStepReasoningEnabled bool
	PendingCompression        *PendingCompression
	Pools                     []Turn
	Procedure                 string
	Purpose                   string
	References                []Reference
	Roles                     []string
	Todos                     []TodoItem
	TokenCount                int
	Turns                     []Turn
}

// Hyperparameters holds optional sampling settings for the agent run
type Hyperparameters struct {
	Temperature *float64
	TopK        *int
	TopP        *float64
}

// TodoItem is one entry of a session's todo list
type TodoItem struct {
	Checked     bool
	Description string
	Title       string
}

// PendingCompression is a summary waiting for approval on a verifier session
type PendingCompression struct {
	CreatedAt       time.Time
	End             int
	Start           int
	Summary         string
	TargetSessionID string
	TargetTurnCount int
}

// IndexEntry is the lightweight metadata kept in the session index
type IndexEntry struct {
	CreatedAt   time.Time
	LastUpdated time.Time
	Purpose     string
	SessionID   string
}

// Clone returns a deep copy of the session
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	c := *s
	c.Artifacts = slices.Clone(s.Artifacts)
	c.Pools = slices.Clone(s.Pools)
	c.References = cloneReferences(s.References)
	c.Roles = slices.Clone(s.Roles)
	c.Todos = slices.Clone(s.Todos)
	c.Turns = slices.Clone(s.Turns)
	c.Hyperparameters = s.Hyperparameters.clone()
	if s.PendingCompression != nil {
		pending := *s.PendingCompression
		c.PendingCompression = &pending
	}
	return &c
}

// IndexEntry returns the index metadata for the session
func (s *Session) IndexEntry(lastUpdated time.Time) IndexEntry {
	return IndexEntry{
		CreatedAt:   s.CreatedAt,
		LastUpdated: lastUpdated,
		Purpose:     s.Purpose,
		SessionID:   s.ID,
	}
}

func (h Hyperparameters) clone() Hyperparameters {
	var c Hyperparameters
	if h.Temperature != nil {
		v := *h.Temperature
		c.Temperature = &v
	}
	if h.TopK != nil {
		v := *h.TopK
		c.TopK = &v
	}
	if h.TopP != nil {
		v := *h.TopP
		c.TopP = &v
	}
	return c
}

// ValidateSessionID checks that id is a non-empty sequence of "/"-separated
// segments made of letters, digits, '-', '_' and '.', with no "." or ".."
// segment. Ids map directly onto file paths so this is the traversal guard.
func ValidateSessionID(id string) error {
	if id == "" {
		return Validationf("session id is empty")
	}
	for _, segment := range strings.Split(id, SessionSeparator) {
		if segment == "" || segment == "." || segment == ".." {
			return Validationf("session id %q has an invalid segment", id)
		}
		for _, r := range segment {
			if unicode.IsLetter(r) || unicode.IsNumber(r) || r == '-' || r == '_' || r == '.' {
				continue
			}
			return Validationf("session id %q contains invalid character %q", id, r)
		}
	}
	return nil
}

// ParentID returns the lineage prefix of id, or "" for a root id
func ParentID(id string) string {
	idx := strings.LastIndex(id, SessionSeparator)
	if idx < 0 {
		return ""
	}
	return id[:idx]
}

// IsSelfOrDescendant reports whether id equals ancestor or lives below it
func IsSelfOrDescendant(id, ancestor string) bool {
	return id == ancestor || strings.HasPrefix(id, ancestor+SessionSeparator)
}

// ChildID appends a lineage segment to parent
func ChildID(parent, suffix string) string {
	return parent + SessionSeparator + suffix
}
