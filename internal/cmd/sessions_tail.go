package cmd

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/s-age/pipe-sub004/internal/domain"
	"github.com/s-age/pipe-sub004/internal/logging"
	"github.com/s-age/pipe-sub004/internal/ui"
)

// SessionsTailCmd follows a session in a live view
type SessionsTailCmd struct {
	ID string `arg:"" help:"Session ID"`
}

// Run executes the tail command
func (s *SessionsTailCmd) Run(cli *CLI) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	service := cli.Container.SessionService
	changes, err := service.Watch(ctx, s.ID)
	if err != nil {
		return fmt.Errorf("failed to watch session: %w", err)
	}

	load := func(ctx context.Context) (*domain.Session, error) {
		return service.GetSession(ctx, s.ID)
	}
	p := tea.NewProgram(ui.NewTailModel(ctx, s.ID, load, changes), tea.WithAltScreen(), tea.WithContext(ctx))

	logging.Logger.Info("Starting tail view", "session_id", s.ID)
	if _, err := p.Run(); err != nil {
		logging.Logger.Error("Tail view error", "error", err)
		return fmt.Errorf("error running tail view: %w", err)
	}
	return nil
}
