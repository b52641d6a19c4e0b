package cmd

import (
	"context"
	"fmt"

	"github.com/s-age/pipe-sub004/internal/domain"
	"github.com/s-age/pipe-sub004/internal/logging"
	"github.com/s-age/pipe-sub004/internal/services"
)

// SessionsEditCmd changes session metadata. Only the given flags are applied.
type SessionsEditCmd struct {
	ID string `arg:"" help:"Session ID"`

	Artifacts   []string `help:"Replace the artifact list (repeatable)" name:"artifact"`
	Background  *string  `help:"New background"`
	MultiStep   string   `help:"Turn multi-step reasoning on or off" placeholder:"on|off"`
	Procedure   *string  `help:"New procedure file"`
	Purpose     *string  `help:"New purpose"`
	Roles       []string `help:"Replace the role list (repeatable)" name:"role"`
	Temperature *float64 `help:"Sampling temperature (0-2)"`
	TokenCount  *int     `help:"Record the prompt size of the last run"`
	TopK        *int     `help:"Top-k sampling"`
	TopP        *float64 `help:"Nucleus sampling (0-1)"`
}

// Run executes the edit command
func (s *SessionsEditCmd) Run(cli *CLI) error {
	ctx := context.Background()
	service := cli.Container.SessionService
	logging.Logger.Debug("Executing sessions edit command", "session_id", s.ID)

	meta := services.EditSessionMetaParams{
		Background: s.Background,
		Procedure:  s.Procedure,
		Purpose:    s.Purpose,
	}
	if s.Artifacts != nil {
		meta.Artifacts = &s.Artifacts
	}
	if s.Roles != nil {
		meta.Roles = &s.Roles
	}
	switch s.MultiStep {
	case "":
	case "on", "off":
		enabled := s.MultiStep == "on"
		meta.MultiStepReasoningEnabled = &enabled
	default:
		return domain.Validationf("--multi-step must be on or off, got %q", s.MultiStep)
	}
	hp := domain.Hyperparameters{Temperature: s.Temperature, TopK: s.TopK, TopP: s.TopP}

	changed := false
	if meta != (services.EditSessionMetaParams{}) {
		if _, err := service.EditSessionMeta(ctx, s.ID, meta); err != nil {
			return fmt.Errorf("failed to edit session: %w", err)
		}
		changed = true
	}
	if hp.Temperature != nil || hp.TopK != nil || hp.TopP != nil {
		if err := service.UpdateHyperparameters(ctx, s.ID, hp); err != nil {
			return fmt.Errorf("failed to update hyperparameters: %w", err)
		}
		changed = true
	}
	if s.TokenCount != nil {
		if err := service.UpdateTokenCount(ctx, s.ID, *s.TokenCount); err != nil {
			return fmt.Errorf("failed to update token count: %w", err)
		}
		changed = true
	}

	if !changed {
		return fmt.Errorf("nothing to change: %w", domain.ErrValidation)
	}
	fmt.Printf("Session '%s' updated\n", s.ID)
	return nil
}
