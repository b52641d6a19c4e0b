package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/s-age/pipe-sub004/internal/logging"
	"github.com/s-age/pipe-sub004/internal/services"
)

// SessionsDelCmd deletes sessions
type SessionsDelCmd struct {
	Force bool     `help:"Delete without confirmation" short:"f"`
	IDs   []string `arg:"" help:"Session IDs to delete" name:"id"`
}

// Run executes the del command
func (s *SessionsDelCmd) Run(cli *CLI) error {
	return removeSessions(cli, s.IDs, s.Force, "Delete", cli.Container.ArchiveService.DeleteSessions)
}

// SessionsArchiveCmd archives sessions
type SessionsArchiveCmd struct {
	Force bool     `help:"Archive without confirmation" short:"f"`
	IDs   []string `arg:"" help:"Session IDs to archive" name:"id"`
}

// Run executes the archive command
func (s *SessionsArchiveCmd) Run(cli *CLI) error {
	return removeSessions(cli, s.IDs, s.Force, "Archive", cli.Container.ArchiveService.ArchiveSessions)
}

type removeFunc func(ctx context.Context, ids []string) ([]services.RemovalResult, error)

func removeSessions(cli *CLI, ids []string, force bool, verb string, remove removeFunc) error {
	logging.Logger.Info("Executing sessions removal", "verb", verb, "ids", ids, "force", force)

	if !force {
		ok, err := confirm(
			fmt.Sprintf("%s %d session(s)?", verb, len(ids)),
			strings.Join(ids, "\n")+"\n\nDescendant sessions are included. A backup of every file is kept.",
		)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Cancelled")
			return nil
		}
	}

	results, err := remove(context.Background(), ids)
	for _, result := range results {
		if result.Err != nil {
			fmt.Printf("✗ %s: %v\n", result.SessionID, result.Err)
			continue
		}
		fmt.Printf("✓ %s: removed %d session(s), %d backup(s)\n", result.SessionID, len(result.Removed), len(result.Backups))
	}
	if err != nil {
		return fmt.Errorf("%s failed for some sessions: %w", strings.ToLower(verb), err)
	}
	return nil
}
