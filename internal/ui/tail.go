package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/s-age/pipe-sub004/internal/domain"
	"github.com/s-age/pipe-sub004/internal/logging"
	"github.com/s-age/pipe-sub004/internal/theme"
)

// Header (title + status) and footer take three lines
const tailChromeHeight = 3

// SessionLoader returns the current state of the tailed session
type SessionLoader func(ctx context.Context) (*domain.Session, error)

type sessionLoadedMsg struct {
	err     error
	session *domain.Session
}

type sessionChangedMsg struct{}

type watchClosedMsg struct{}

// TailModel shows a session and reloads it on every change signal
type TailModel struct {
	changes   <-chan struct{}
	ctx       context.Context
	err       error
	follow    bool
	help      help.Model
	keys      TailKeyMap
	load      SessionLoader
	ready     bool
	session   *domain.Session
	sessionID string
	viewport  viewport.Model
	watching  bool
}

// NewTailModel creates a tail view of sessionID. changes delivers one value
// per modification of the session file and is closed when watching stops.
func NewTailModel(ctx context.Context, sessionID string, load SessionLoader, changes <-chan struct{}) *TailModel {
	return &TailModel{
		changes:   changes,
		ctx:       ctx,
		follow:    true,
		help:      newTailHelp(),
		keys:      newTailKeyMap(),
		load:      load,
		sessionID: sessionID,
		viewport:  viewport.New(0, 0),
		watching:  true,
	}
}

func newTailHelp() help.Model {
	h := help.New()
	h.Styles.ShortDesc = theme.HelpStyle
	h.Styles.ShortKey = theme.LabelStyle
	h.Styles.ShortSeparator = theme.MutedStyle
	return h
}

func (m *TailModel) Init() tea.Cmd {
	return tea.Batch(m.loadCmd(), m.waitCmd())
}

func (m *TailModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		session, err := m.load(m.ctx)
		return sessionLoadedMsg{err: err, session: session}
	}
}

func (m *TailModel) waitCmd() tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-m.changes; !ok {
			return watchClosedMsg{}
		}
		return sessionChangedMsg{}
	}
}

func (m *TailModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width
		m.help.Width = msg.Width
		m.viewport.Height = max(1, msg.Height-tailChromeHeight)
		m.ready = true
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Follow):
			m.follow = !m.follow
			m.keys.setFollow(m.follow)
			if m.follow {
				m.viewport.GotoBottom()
			}
			return m, nil
		}

	case sessionLoadedMsg:
		m.err = msg.err
		if msg.err != nil {
			logging.Logger.Warn("Failed to reload tailed session", "session_id", m.sessionID, "error", msg.err)
			return m, nil
		}
		m.session = msg.session
		m.refresh()
		return m, nil

	case sessionChangedMsg:
		return m, tea.Batch(m.loadCmd(), m.waitCmd())

	case watchClosedMsg:
		m.watching = false
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *TailModel) refresh() {
	if m.session == nil || !m.ready {
		return
	}
	m.viewport.SetContent(RenderSession(m.session))
	if m.follow {
		m.viewport.GotoBottom()
	}
}

func (m *TailModel) View() string {
	var b strings.Builder

	b.WriteString(theme.TitleStyle.Render("Session " + m.sessionID))
	if m.session != nil && m.session.Purpose != "" {
		b.WriteString(" " + theme.MutedStyle.Render(m.session.Purpose))
	}
	b.WriteString("\n")

	switch {
	case m.err != nil:
		b.WriteString(theme.ErrorStyle.Render(formatErrorLine(m.err, m.viewport.Width)))
	case m.session == nil:
		b.WriteString(theme.MutedStyle.Render("Loading..."))
	default:
		status := fmt.Sprintf("%d turns, %d pooled, %d tokens", len(m.session.Turns), len(m.session.Pools), m.session.TokenCount)
		if !m.watching {
			status += ", not watching"
		}
		b.WriteString(theme.LabelStyle.Render(status))
	}
	b.WriteString("\n")

	if m.ready {
		b.WriteString(m.viewport.View())
		b.WriteString("\n")
	}

	b.WriteString(m.help.View(m.keys))
	return b.String()
}
