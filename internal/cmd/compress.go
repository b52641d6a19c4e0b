package cmd

import (
	"context"
	"fmt"
)

// CompressCmd replaces turn ranges with summaries, directly or through a
// verifier session
type CompressCmd struct {
	Approve CompressApproveCmd `cmd:"approve" help:"Apply the summary submitted on a verifier session"`
	Deny    CompressDenyCmd    `cmd:"deny" help:"Discard the summary submitted on a verifier session"`
	Replace CompressReplaceCmd `cmd:"replace" help:"Replace a turn range with a summary right away"`
	Start   CompressStartCmd   `cmd:"start" help:"Create a verifier session for a turn range"`
	Submit  CompressSubmitCmd  `cmd:"submit" help:"Submit a summary on a verifier session"`
}

// CompressReplaceCmd replaces a range directly
type CompressReplaceCmd struct {
	ID    string `arg:"" help:"Session ID"`
	Start int    `arg:"" help:"First turn of the range"`
	End   int    `arg:"" help:"Last turn of the range (inclusive)"`

	Summary string `help:"Summary text" required:"" short:"s"`
}

// Run executes the replace command
func (c *CompressReplaceCmd) Run(cli *CLI) error {
	backup, err := cli.Container.CompressionService.ReplaceTurnRangeWithSummary(context.Background(), c.ID, c.Summary, c.Start, c.End)
	if err != nil {
		return fmt.Errorf("failed to compress: %w", err)
	}

	fmt.Printf("Turns %d-%d of '%s' replaced (backup %s)\n", c.Start, c.End, c.ID, backup.ID)
	return nil
}

// CompressStartCmd starts a verified compression
type CompressStartCmd struct {
	ID    string `arg:"" help:"Target session ID"`
	Start int    `arg:"" help:"First turn of the range"`
	End   int    `arg:"" help:"Last turn of the range (inclusive)"`
}

// Run executes the start command
func (c *CompressStartCmd) Run(cli *CLI) error {
	verifier, err := cli.Container.CompressionService.StartVerification(context.Background(), c.ID, c.Start, c.End)
	if err != nil {
		return fmt.Errorf("failed to start verification: %w", err)
	}

	fmt.Println(verifier.ID)
	return nil
}

// CompressSubmitCmd submits a summary
type CompressSubmitCmd struct {
	VerifierID string `arg:"" help:"Verifier session ID"`
	Summary    string `arg:"" help:"Summary text"`
}

// Run executes the submit command
func (c *CompressSubmitCmd) Run(cli *CLI) error {
	pending, err := cli.Container.CompressionService.SubmitSummary(context.Background(), c.VerifierID, c.Summary)
	if err != nil {
		return fmt.Errorf("failed to submit summary: %w", err)
	}

	fmt.Printf("Summary for '%s' turns %d-%d waiting for approval\n", pending.TargetSessionID, pending.Start, pending.End)
	return nil
}

// CompressApproveCmd approves a pending summary
type CompressApproveCmd struct {
	VerifierID string `arg:"" help:"Verifier session ID"`
}

// Run executes the approve command
func (c *CompressApproveCmd) Run(cli *CLI) error {
	backup, err := cli.Container.CompressionService.Approve(context.Background(), c.VerifierID)
	if err != nil {
		return fmt.Errorf("failed to approve: %w", err)
	}

	fmt.Printf("Compression applied to '%s' (backup %s)\n", backup.SessionID, backup.ID)
	return nil
}

// CompressDenyCmd denies a pending summary
type CompressDenyCmd struct {
	VerifierID string `arg:"" help:"Verifier session ID"`
}

// Run executes the deny command
func (c *CompressDenyCmd) Run(cli *CLI) error {
	if err := cli.Container.CompressionService.Deny(context.Background(), c.VerifierID); err != nil {
		return fmt.Errorf("failed to deny: %w", err)
	}

	fmt.Println("Summary discarded")
	return nil
}
