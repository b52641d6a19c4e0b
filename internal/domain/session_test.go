package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSessionID(t *testing.T) {
	tests := []struct {
		id    string
		valid bool
	}{
		{"simple", true},
		{"parent/child", true},
		{"a/b/c", true},
		{"with.dot-and_underscore", true},
		{"", false},
		{"a//b", false},
		{"/leading", false},
		{"trailing/", false},
		{"../escape", false},
		{"a/./b", false},
		{"space here", false},
		{"back\\slash", false},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			err := ValidateSessionID(tt.id)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrValidation)
			}
		})
	}
}

func TestParentID(t *testing.T) {
	assert.Equal(t, "", ParentID("root"))
	assert.Equal(t, "a", ParentID("a/b"))
	assert.Equal(t, "a/b", ParentID("a/b/c"))
}

func TestIsSelfOrDescendant(t *testing.T) {
	assert.True(t, IsSelfOrDescendant("a", "a"))
	assert.True(t, IsSelfOrDescendant("a/b", "a"))
	assert.False(t, IsSelfOrDescendant("ab", "a"))
	assert.False(t, IsSelfOrDescendant("a", "a/b"))
}

func TestClone_IsDeep(t *testing.T) {
	temp := 0.5
	s := &Session{
		ID:              "s",
		Turns:           []Turn{NewUserTask("task", at(0))},
		References:      []Reference{{Path: "a.py", TTL: intPtr(3)}},
		Hyperparameters: Hyperparameters{Temperature: &temp},
	}

	c := s.Clone()
	c.Turns[0].Instruction = "changed"
	*c.References[0].TTL = 1
	*c.Hyperparameters.Temperature = 0.9

	assert.Equal(t, "task", s.Turns[0].Instruction)
	assert.Equal(t, 3, *s.References[0].TTL)
	assert.Equal(t, 0.5, *s.Hyperparameters.Temperature)
}

func TestFork(t *testing.T) {
	parent := fiveTurnSession()
	parent.Purpose = "explore"
	parent.Pools = []Turn{NewModelResponse("in flight", at(9))}

	child, err := parent.Fork("s1/child", 2, at(30))

	require.NoError(t, err)
	assert.Equal(t, "s1/child", child.ID)
	assert.Equal(t, []string{"t0", "t1"}, contents(child.Turns))
	assert.Empty(t, child.Pools)
	assert.Equal(t, at(30), child.CreatedAt)
	assert.Equal(t, "Fork of: explore", child.Purpose)

	child.Turns = append(child.Turns, NewModelResponse("x", at(31)))
	assert.Equal(t, "t2", parent.Turns[2].Content, "child appends must not alias parent")
}

func TestFork_OutOfBounds(t *testing.T) {
	parent := fiveTurnSession()

	_, err := parent.Fork("s1/child", 5, at(0))
	assert.ErrorIs(t, err, ErrTurnIndexOutOfRange)

	_, err = parent.Fork("s1/child", -1, at(0))
	assert.ErrorIs(t, err, ErrTurnIndexOutOfRange)
}

func TestBuildTree(t *testing.T) {
	entries := []IndexEntry{
		{SessionID: "a/b/c", LastUpdated: at(1)},
		{SessionID: "x", LastUpdated: at(5)},
		{SessionID: "a", LastUpdated: at(2)},
		{SessionID: "a/b", LastUpdated: at(3)},
	}

	roots := BuildTree(entries)

	require.Len(t, roots, 2)
	assert.Equal(t, "x", roots[0].Entry.SessionID)
	assert.Equal(t, "a", roots[1].Entry.SessionID)
	require.Len(t, roots[1].Children, 1)
	b := roots[1].Children[0]
	assert.Equal(t, "a/b", b.Entry.SessionID)
	require.Len(t, b.Children, 1)
	assert.Equal(t, "a/b/c", b.Children[0].Entry.SessionID)
}

func TestBuildTree_OrphanBecomesRoot(t *testing.T) {
	roots := BuildTree([]IndexEntry{{SessionID: "missing/child", LastUpdated: at(0)}})

	require.Len(t, roots, 1)
	assert.Equal(t, "missing/child", roots[0].Entry.SessionID)
}

func TestKindOfAndRetryable(t *testing.T) {
	assert.Equal(t, KindNotFound, KindOf(ErrSessionNotFound))
	assert.Equal(t, KindConflict, KindOf(ErrAlreadyRunning))
	assert.Equal(t, KindValidation, KindOf(ErrInvalidRange))
	assert.True(t, Retryable(ErrLockTimeout))
	assert.True(t, Retryable(IOError("write session", assert.AnError)))
	assert.False(t, Retryable(ErrSessionNotFound))
	assert.Equal(t, Kind(""), KindOf(assert.AnError))
}
