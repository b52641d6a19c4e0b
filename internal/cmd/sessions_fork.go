package cmd

import (
	"context"
	"fmt"
)

// SessionsForkCmd forks a session
type SessionsForkCmd struct {
	ID string `arg:"" help:"Session ID to fork"`
	At int    `arg:"" help:"Turns before this index are copied to the fork"`
}

// Run executes the fork command
func (s *SessionsForkCmd) Run(cli *CLI) error {
	child, err := cli.Container.SessionService.ForkSession(context.Background(), s.ID, s.At)
	if err != nil {
		return fmt.Errorf("failed to fork session: %w", err)
	}

	fmt.Println(child.ID)
	return nil
}
