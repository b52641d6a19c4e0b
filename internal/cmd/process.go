package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/s-age/pipe-sub004/internal/domain"
)

// ProcessCmd tracks the agent process of each session
type ProcessCmd struct {
	Cleanup  ProcessCleanupCmd  `cmd:"cleanup" help:"Forget the process of a session"`
	Kill     ProcessKillCmd     `cmd:"kill" help:"Stop the process of a session and roll back its pool"`
	List     ProcessListCmd     `cmd:"list" help:"List running processes" default:"1"`
	Register ProcessRegisterCmd `cmd:"register" help:"Record the process running a session"`
	Status   ProcessStatusCmd   `cmd:"status" help:"Show whether a session has a running process"`
}

// ProcessRegisterCmd registers a process
type ProcessRegisterCmd struct {
	ID string `arg:"" help:"Session ID"`

	Instruction string `help:"Instruction the process is working on"`
	LogFile     string `help:"Log file of the process" type:"path"`
	PID         int    `help:"Process ID (default: parent of this command)" name:"pid"`
}

// Run executes the register command
func (p *ProcessRegisterCmd) Run(cli *CLI) error {
	pid := p.PID
	if pid == 0 {
		pid = os.Getppid()
	}

	info := domain.ProcessInfo{
		Instruction: p.Instruction,
		LogFile:     p.LogFile,
		PID:         pid,
		SessionID:   p.ID,
		StartedAt:   time.Now(),
	}
	if err := cli.Container.ProcessService.Register(context.Background(), info); err != nil {
		return fmt.Errorf("failed to register process: %w", err)
	}

	fmt.Printf("Process %d registered for '%s'\n", pid, p.ID)
	return nil
}

// ProcessStatusCmd reports one session's process
type ProcessStatusCmd struct {
	Format string `help:"Output format: text or json" enum:"text,json" default:"text"`
	ID     string `arg:"" help:"Session ID"`
}

// Run executes the status command
func (p *ProcessStatusCmd) Run(cli *CLI) error {
	ctx := context.Background()
	running, err := cli.Container.ProcessService.IsRunning(ctx, p.ID)
	if err != nil {
		return err
	}

	var info *domain.ProcessInfo
	if running {
		if info, err = cli.Container.ProcessService.Get(ctx, p.ID); err != nil {
			return err
		}
	}

	if p.Format == "json" {
		return printJSON(map[string]any{"running": running, "process": info})
	}
	if !running {
		fmt.Printf("No process running for '%s'\n", p.ID)
		return nil
	}
	fmt.Printf("PID %d running since %s\n", info.PID, formatTime(info.StartedAt))
	if info.Instruction != "" {
		fmt.Printf("Instruction: %s\n", info.Instruction)
	}
	if info.LogFile != "" {
		fmt.Printf("Log: %s\n", info.LogFile)
	}
	return nil
}

// ProcessListCmd lists processes
type ProcessListCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the list command
func (p *ProcessListCmd) Run(cli *CLI) error {
	processes, err := cli.Container.ProcessService.List(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list processes: %w", err)
	}

	if p.Format == "json" {
		return printJSON(processes)
	}
	if len(processes) == 0 {
		fmt.Println("No processes")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SESSION\tPID\tSTARTED\tINSTRUCTION")
	for _, info := range processes {
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", info.SessionID, info.PID, formatTime(info.StartedAt), info.Instruction)
	}
	return w.Flush()
}

// ProcessKillCmd stops a process
type ProcessKillCmd struct {
	ID string `arg:"" help:"Session ID"`
}

// Run executes the kill command
func (p *ProcessKillCmd) Run(cli *CLI) error {
	result, err := cli.Container.ProcessService.Stop(context.Background(), p.ID)
	if err != nil {
		return fmt.Errorf("failed to stop process: %w", err)
	}

	fmt.Printf("Process for '%s' stopped, %d pooled turn(s) rolled back\n", p.ID, result.RolledBack)
	return nil
}

// ProcessCleanupCmd forgets a process
type ProcessCleanupCmd struct {
	ID string `arg:"" help:"Session ID"`
}

// Run executes the cleanup command
func (p *ProcessCleanupCmd) Run(cli *CLI) error {
	return cli.Container.ProcessService.Cleanup(context.Background(), p.ID)
}
