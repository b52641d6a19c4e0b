package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecrementAllTTL_DisablesAtZero(t *testing.T) {
	s := &Session{}
	added, err := s.AddReference("a.py", 3)
	require.NoError(t, err)
	require.True(t, added)

	for i := 0; i < 3; i++ {
		s.DecrementAllTTL(DefaultReferenceTTL)
	}

	ref, ok := s.FindReference("a.py")
	require.True(t, ok)
	assert.True(t, ref.Disabled)
	assert.Equal(t, 0, *ref.TTL)

	s.DecrementAllTTL(DefaultReferenceTTL)
	ref, _ = s.FindReference("a.py")
	assert.True(t, ref.Disabled)
	assert.Equal(t, 0, *ref.TTL, "disabled references are skipped by decay")
}

func TestDecrementAllTTL_NilTTLUsesDefault(t *testing.T) {
	s := &Session{References: []Reference{{Path: "b.py"}}}

	s.DecrementAllTTL(5)

	ref, _ := s.FindReference("b.py")
	assert.Equal(t, 4, *ref.TTL)
	assert.False(t, ref.Disabled)
}

func TestAddReference_IsNoOpWhenPresent(t *testing.T) {
	s := &Session{}
	_, err := s.AddReference("a.py", 3)
	require.NoError(t, err)
	require.NoError(t, s.UpdateReferenceTTL("a.py", 7, 3))

	added, err := s.AddReference("a.py", 3)

	require.NoError(t, err)
	assert.False(t, added)
	assert.Len(t, s.References, 1)
	assert.Equal(t, 7, *s.References[0].TTL)
}

func TestSortReferences_EnabledFirst(t *testing.T) {
	s := &Session{References: []Reference{
		{Path: "disabled.py", Disabled: true, TTL: intPtr(99)},
		{Path: "enabled.py", TTL: intPtr(5)},
	}}

	s.SortReferences(DefaultReferenceTTL)

	assert.Equal(t, "enabled.py", s.References[0].Path)
	assert.Equal(t, "disabled.py", s.References[1].Path)
}

func TestSortReferences_HigherTTLFirst(t *testing.T) {
	s := &Session{References: []Reference{
		{Path: "low.py", TTL: intPtr(1)},
		{Path: "default.py"},
		{Path: "high.py", TTL: intPtr(9)},
	}}

	s.SortReferences(3)

	assert.Equal(t, "high.py", s.References[0].Path)
	assert.Equal(t, "default.py", s.References[1].Path)
	assert.Equal(t, "low.py", s.References[2].Path)
}

func TestUpdateReferenceTTL(t *testing.T) {
	s := &Session{}
	_, _ = s.AddReference("a.py", 3)

	require.NoError(t, s.UpdateReferenceTTL("a.py", 0, 3))
	ref, _ := s.FindReference("a.py")
	assert.True(t, ref.Disabled)

	require.NoError(t, s.UpdateReferenceTTL("a.py", 4, 3))
	ref, _ = s.FindReference("a.py")
	assert.False(t, ref.Disabled)
	assert.Equal(t, 4, *ref.TTL)

	assert.ErrorIs(t, s.UpdateReferenceTTL("missing.py", 1, 3), ErrNotFound)
}

func TestToggleReferenceDisabled_ReenableResetsTTL(t *testing.T) {
	s := &Session{References: []Reference{{Path: "a.py", Disabled: true, TTL: intPtr(0)}}}

	disabled, err := s.ToggleReferenceDisabled("a.py", 3)

	require.NoError(t, err)
	assert.False(t, disabled)
	ref, _ := s.FindReference("a.py")
	assert.Equal(t, 3, *ref.TTL)
}

func TestRemoveReference(t *testing.T) {
	s := &Session{}
	_, _ = s.AddReference("a.py", 3)

	require.NoError(t, s.RemoveReference("a.py"))
	assert.Empty(t, s.References)
	assert.ErrorIs(t, s.RemoveReference("a.py"), ErrReferenceNotFound)
}
