package cmd

import (
	"context"
	"fmt"

	"github.com/s-age/pipe-sub004/internal/domain"
)

// TurnsCmd edits the turn log of a session
type TurnsCmd struct {
	Delete TurnsDeleteCmd `cmd:"delete" aliases:"rm" help:"Delete turns by index"`
	Edit   TurnsEditCmd   `cmd:"edit" help:"Edit the text of one turn"`
}

// TurnsDeleteCmd deletes turns
type TurnsDeleteCmd struct {
	ID      string `arg:"" help:"Session ID"`
	Indices []int  `arg:"" help:"Indices of the turns to delete" name:"index"`
}

// Run executes the delete command
func (t *TurnsDeleteCmd) Run(cli *CLI) error {
	if err := cli.Container.SessionService.DeleteTurns(context.Background(), t.ID, t.Indices); err != nil {
		return fmt.Errorf("failed to delete turns: %w", err)
	}

	fmt.Printf("Deleted %d turn(s) from '%s'\n", len(t.Indices), t.ID)
	return nil
}

// TurnsEditCmd edits one turn. Only the fields of the turn's type may be set.
type TurnsEditCmd struct {
	ID    string `arg:"" help:"Session ID"`
	Index int    `arg:"" help:"Index of the turn"`

	Content     *string `help:"New content (model_response, compressed_history)"`
	Instruction *string `help:"New instruction (user_task)"`
	Message     *string `help:"New tool output (tool_response)"`
	Response    *string `help:"New call text (function_calling)"`
	Status      *string `help:"New tool status (tool_response)" placeholder:"succeeded|failed"`
}

// Run executes the edit command
func (t *TurnsEditCmd) Run(cli *CLI) error {
	edit := domain.TurnEdit{
		Content:     t.Content,
		Instruction: t.Instruction,
		Message:     t.Message,
		Response:    t.Response,
		Status:      t.Status,
	}
	if err := cli.Container.SessionService.EditTurn(context.Background(), t.ID, t.Index, edit); err != nil {
		return fmt.Errorf("failed to edit turn: %w", err)
	}

	fmt.Printf("Turn %d of '%s' updated\n", t.Index, t.ID)
	return nil
}
