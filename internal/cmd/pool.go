package cmd

import (
	"context"
	"fmt"

	"github.com/s-age/pipe-sub004/internal/domain"
	"github.com/s-age/pipe-sub004/internal/logging"
)

// PoolCmd drives the pool of an agent run
type PoolCmd struct {
	Append   PoolAppendCmd   `cmd:"append" help:"Stage a turn in the pool"`
	Commit   PoolCommitCmd   `cmd:"commit" help:"Move pooled turns to the turn log"`
	Expire   PoolExpireCmd   `cmd:"expire" help:"Blank tool output older than the expiration threshold"`
	Rollback PoolRollbackCmd `cmd:"rollback" help:"Drop pooled turns"`
}

// PoolAppendCmd appends one turn to the pool
type PoolAppendCmd struct {
	ID   string `arg:"" help:"Session ID"`
	Text string `arg:"" help:"Instruction, content, call text or tool output, depending on the type"`

	Name   string `help:"Tool name (tool_response)"`
	Status string `help:"Tool status (tool_response)" enum:"succeeded,failed" default:"succeeded"`
	Type   string `help:"Turn type" enum:"user_task,model_response,function_calling,tool_response" default:"model_response" short:"t"`
}

// Run executes the append command
func (p *PoolAppendCmd) Run(cli *CLI) error {
	turn := domain.Turn{Type: domain.TurnType(p.Type)}
	switch turn.Type {
	case domain.TurnUserTask:
		turn.Instruction = p.Text
	case domain.TurnFunctionCalling:
		turn.Response = p.Text
	case domain.TurnToolResponse:
		turn.Name = p.Name
		turn.Result = domain.ToolResult{Message: p.Text, Status: p.Status}
	default:
		turn.Content = p.Text
	}

	logging.Logger.Debug("Executing pool append command", "session_id", p.ID, "type", p.Type)
	if err := cli.Container.RunService.AppendToPool(context.Background(), p.ID, turn); err != nil {
		return fmt.Errorf("failed to append to pool: %w", err)
	}
	return nil
}

// PoolCommitCmd commits the pool
type PoolCommitCmd struct {
	ID string `arg:"" help:"Session ID"`
}

// Run executes the commit command
func (p *PoolCommitCmd) Run(cli *CLI) error {
	n, err := cli.Container.RunService.CommitPool(context.Background(), p.ID)
	if err != nil {
		return fmt.Errorf("failed to commit pool: %w", err)
	}

	fmt.Printf("Committed %d turn(s)\n", n)
	return nil
}

// PoolRollbackCmd rolls back the pool
type PoolRollbackCmd struct {
	ID string `arg:"" help:"Session ID"`
}

// Run executes the rollback command
func (p *PoolRollbackCmd) Run(cli *CLI) error {
	n, err := cli.Container.RunService.RollbackPool(context.Background(), p.ID)
	if err != nil {
		return fmt.Errorf("failed to roll back pool: %w", err)
	}

	fmt.Printf("Dropped %d turn(s)\n", n)
	return nil
}

// PoolExpireCmd expires old tool responses
type PoolExpireCmd struct {
	ID string `arg:"" help:"Session ID"`
}

// Run executes the expire command
func (p *PoolExpireCmd) Run(cli *CLI) error {
	changed, err := cli.Container.RunService.ExpireOldToolResponses(context.Background(), p.ID)
	if err != nil {
		return err
	}

	if changed {
		fmt.Println("Expired old tool responses")
	} else {
		fmt.Println("Nothing to expire")
	}
	return nil
}
