package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/s-age/pipe-sub004/internal/domain"
	"github.com/s-age/pipe-sub004/internal/ui"
)

// SessionsShowCmd shows a specific session
type SessionsShowCmd struct {
	Format string `help:"Output format: text or json" enum:"text,json" default:"text"`
	ID     string `arg:"" help:"Session ID"`
	Prompt bool   `help:"Show only the turns that reach the next prompt"`
}

// Run executes the show command
func (s *SessionsShowCmd) Run(cli *CLI) error {
	ctx := context.Background()
	session, err := cli.Container.SessionService.GetSession(ctx, s.ID)
	if err != nil {
		return fmt.Errorf("failed to get session: %w", err)
	}

	if s.Prompt {
		turns, err := cli.Container.RunService.TurnsForPrompt(ctx, s.ID)
		if err != nil {
			return fmt.Errorf("failed to filter turns: %w", err)
		}
		session.Turns = turns
		session.Pools = nil
	}

	if s.Format == "json" {
		return printJSON(session)
	}

	s.printHeader(session)
	fmt.Print(ui.RenderSession(session))
	return nil
}

func (s *SessionsShowCmd) printHeader(session *domain.Session) {
	fmt.Printf("Session: %s\n", session.ID)
	fmt.Printf("Purpose: %s\n", session.Purpose)
	if session.Background != "" {
		fmt.Printf("Background: %s\n", session.Background)
	}
	if len(session.Roles) > 0 {
		fmt.Printf("Roles: %s\n", strings.Join(session.Roles, ", "))
	}
	if session.Procedure != "" {
		fmt.Printf("Procedure: %s\n", session.Procedure)
	}
	fmt.Printf("Created: %s\n", formatTime(session.CreatedAt))
	fmt.Printf("Multi-step reasoning: %t\n", session.MultiStepReasoningEnabled)
	fmt.Printf("Token count: %d\n", session.TokenCount)

	hp := session.Hyperparameters
	if hp.Temperature != nil {
		fmt.Printf("Temperature: %g\n", *hp.Temperature)
	}
	if hp.TopP != nil {
		fmt.Printf("Top-p: %g\n", *hp.TopP)
	}
	if hp.TopK != nil {
		fmt.Printf("Top-k: %d\n", *hp.TopK)
	}

	for _, todo := range session.Todos {
		mark := " "
		if todo.Checked {
			mark = "x"
		}
		fmt.Printf("[%s] %s\n", mark, todo.Title)
	}
	if pending := session.PendingCompression; pending != nil {
		fmt.Printf("Pending compression of %s turns %d-%d\n", pending.TargetSessionID, pending.Start, pending.End)
	}
	fmt.Println()
}
