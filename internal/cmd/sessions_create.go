package cmd

import (
	"context"
	"fmt"

	"github.com/s-age/pipe-sub004/internal/domain"
	"github.com/s-age/pipe-sub004/internal/logging"
	"github.com/s-age/pipe-sub004/internal/services"
)

// SessionsCreateCmd creates a new session
type SessionsCreateCmd struct {
	Artifacts   []string `help:"Artifact file produced by the session (repeatable)" name:"artifact"`
	Background  string   `help:"Background information for the agent"`
	MultiStep   bool     `help:"Enable multi-step reasoning"`
	Parent      string   `help:"Create the session as a child of this session"`
	Procedure   string   `help:"Procedure file the agent follows"`
	Purpose     string   `help:"What the session is for" required:""`
	Roles       []string `help:"Role file for the agent (repeatable)" name:"role"`
	Temperature *float64 `help:"Sampling temperature (0-2)"`
	TopK        *int     `help:"Top-k sampling"`
	TopP        *float64 `help:"Nucleus sampling (0-1)"`
}

// Run executes the create command
func (s *SessionsCreateCmd) Run(cli *CLI) error {
	logging.Logger.Debug("Executing sessions create command", "purpose", s.Purpose, "parent", s.Parent)

	session, err := cli.Container.SessionService.CreateSession(context.Background(), services.CreateSessionParams{
		Artifacts:  s.Artifacts,
		Background: s.Background,
		Hyperparameters: domain.Hyperparameters{
			Temperature: s.Temperature,
			TopK:        s.TopK,
			TopP:        s.TopP,
		},
		MultiStepReasoningEnabled: s.MultiStep,
		ParentID:                  s.Parent,
		Procedure:                 s.Procedure,
		Purpose:                   s.Purpose,
		Roles:                     s.Roles,
	})
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	fmt.Println(session.ID)
	return nil
}
