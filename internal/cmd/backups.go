package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
)

// BackupsCmd lists and restores session backups
type BackupsCmd struct {
	List    BackupsListCmd    `cmd:"list" help:"List backups, newest first" default:"1"`
	Restore BackupsRestoreCmd `cmd:"restore" help:"Restore a session from a backup"`
}

// BackupsListCmd lists backups
type BackupsListCmd struct {
	Format  string `help:"Output format: table or json" enum:"table,json" default:"table"`
	Session string `help:"Only show backups of this session" short:"s"`
}

// Run executes the list command
func (b *BackupsListCmd) Run(cli *CLI) error {
	backups, err := cli.Container.ArchiveService.ListBackups(context.Background(), b.Session)
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}

	if b.Format == "json" {
		return printJSON(backups)
	}
	if len(backups) == 0 {
		fmt.Println("No backups")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSESSION\tREASON\tCREATED\tPURPOSE")
	for _, backup := range backups {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", backup.ID, backup.SessionID, backup.Reason, formatTime(backup.CreatedAt), backup.Purpose)
	}
	return w.Flush()
}

// BackupsRestoreCmd restores a backup
type BackupsRestoreCmd struct {
	BackupID string `arg:"" help:"Backup ID"`
}

// Run executes the restore command
func (b *BackupsRestoreCmd) Run(cli *CLI) error {
	backup, err := cli.Container.ArchiveService.RestoreBackup(context.Background(), b.BackupID)
	if err != nil {
		return fmt.Errorf("failed to restore backup: %w", err)
	}

	fmt.Printf("Session '%s' restored from %s\n", backup.SessionID, formatTime(backup.CreatedAt))
	return nil
}
