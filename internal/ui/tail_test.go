package ui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s-age/pipe-sub004/internal/domain"
)

func newTestTail(changes chan struct{}) *TailModel {
	return NewTailModel(context.Background(), "s1", func(context.Context) (*domain.Session, error) {
		return sampleSession(), nil
	}, changes)
}

func TestTailModel_RendersLoadedSession(t *testing.T) {
	m := newTestTail(make(chan struct{}))

	m.Update(tea.WindowSizeMsg{Width: 80, Height: 40})
	m.Update(sessionLoadedMsg{session: sampleSession()})
	view := m.View()

	assert.Contains(t, view, "Session s1")
	assert.Contains(t, view, "refactor")
	assert.Contains(t, view, "4 turns, 1 pooled")
	assert.Contains(t, view, "fix the bug")
}

func TestTailModel_ShowsLoadError(t *testing.T) {
	m := newTestTail(make(chan struct{}))

	m.Update(sessionLoadedMsg{err: domain.ErrSessionNotFound})

	assert.Contains(t, m.View(), "session not found")
}

func TestTailModel_QuitKeys(t *testing.T) {
	m := newTestTail(make(chan struct{}))

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestTailModel_WaitsForChanges(t *testing.T) {
	changes := make(chan struct{}, 1)
	m := newTestTail(changes)

	changes <- struct{}{}
	assert.Equal(t, sessionChangedMsg{}, m.waitCmd()())

	close(changes)
	assert.Equal(t, watchClosedMsg{}, m.waitCmd()())

	m.Update(watchClosedMsg{})
	m.Update(sessionLoadedMsg{session: sampleSession()})
	assert.Contains(t, m.View(), "not watching")
}

func TestTailModel_ToggleFollow(t *testing.T) {
	m := newTestTail(make(chan struct{}))
	require.True(t, m.follow)

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("f")})

	assert.False(t, m.follow)
	assert.Contains(t, m.View(), "f follow (off)")
}

func TestTailKeyMap_FollowHelpTracksState(t *testing.T) {
	keys := newTailKeyMap()

	keys.setFollow(false)
	assert.Equal(t, "follow (off)", keys.Follow.Help().Desc)

	keys.setFollow(true)
	assert.Equal(t, "follow (on)", keys.Follow.Help().Desc)
	assert.Len(t, keys.ShortHelp(), 4)
}
