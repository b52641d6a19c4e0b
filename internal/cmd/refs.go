package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
)

// RefsCmd manages the file references of a session
type RefsCmd struct {
	Add    RefsAddCmd    `cmd:"add" help:"Add a file reference"`
	Decay  RefsDecayCmd  `cmd:"decay" help:"Run one TTL tick over the references"`
	List   RefsListCmd   `cmd:"list" help:"List references in prompt order"`
	Remove RefsRemoveCmd `cmd:"remove" aliases:"rm" help:"Remove a reference"`
	Show   RefsShowCmd   `cmd:"show" help:"Print the content of the references that reach the prompt"`
	Toggle RefsToggleCmd `cmd:"toggle" help:"Enable or disable a reference"`
	TTL    RefsTTLCmd    `cmd:"ttl" help:"Set the TTL of a reference (0 disables it)"`
}

// RefsAddCmd adds a reference
type RefsAddCmd struct {
	ID   string `arg:"" help:"Session ID"`
	Path string `arg:"" help:"File path, relative to the project root"`
}

// Run executes the add command
func (r *RefsAddCmd) Run(cli *CLI) error {
	added, err := cli.Container.ReferenceService.AddReference(context.Background(), r.ID, r.Path)
	if err != nil {
		return fmt.Errorf("failed to add reference: %w", err)
	}

	if added {
		fmt.Printf("Reference '%s' added\n", r.Path)
	} else {
		fmt.Printf("Reference '%s' already present\n", r.Path)
	}
	return nil
}

// RefsListCmd lists references
type RefsListCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
	ID     string `arg:"" help:"Session ID"`
}

// Run executes the list command
func (r *RefsListCmd) Run(cli *CLI) error {
	refs, err := cli.Container.ReferenceService.ListReferences(context.Background(), r.ID)
	if err != nil {
		return fmt.Errorf("failed to list references: %w", err)
	}

	if r.Format == "json" {
		return printJSON(refs)
	}
	if len(refs) == 0 {
		fmt.Println("No references")
		return nil
	}

	defaultTTL := cli.Container.Options.ReferenceTTL
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PATH\tTTL\tSTATE")
	for _, ref := range refs {
		state := "enabled"
		if ref.Disabled {
			state = "disabled"
		}
		fmt.Fprintf(w, "%s\t%d\t%s\n", ref.Path, ref.TTLOr(defaultTTL), state)
	}
	return w.Flush()
}

// RefsTTLCmd sets a reference TTL
type RefsTTLCmd struct {
	ID   string `arg:"" help:"Session ID"`
	Path string `arg:"" help:"Reference path"`
	TTL  int    `arg:"" help:"New TTL"`
}

// Run executes the ttl command
func (r *RefsTTLCmd) Run(cli *CLI) error {
	if err := cli.Container.ReferenceService.UpdateReferenceTTL(context.Background(), r.ID, r.Path, r.TTL); err != nil {
		return fmt.Errorf("failed to update reference: %w", err)
	}
	return nil
}

// RefsToggleCmd toggles a reference
type RefsToggleCmd struct {
	ID   string `arg:"" help:"Session ID"`
	Path string `arg:"" help:"Reference path"`
}

// Run executes the toggle command
func (r *RefsToggleCmd) Run(cli *CLI) error {
	disabled, err := cli.Container.ReferenceService.ToggleReferenceDisabled(context.Background(), r.ID, r.Path)
	if err != nil {
		return fmt.Errorf("failed to toggle reference: %w", err)
	}

	if disabled {
		fmt.Printf("Reference '%s' disabled\n", r.Path)
	} else {
		fmt.Printf("Reference '%s' enabled\n", r.Path)
	}
	return nil
}

// RefsRemoveCmd removes a reference
type RefsRemoveCmd struct {
	ID   string `arg:"" help:"Session ID"`
	Path string `arg:"" help:"Reference path"`
}

// Run executes the remove command
func (r *RefsRemoveCmd) Run(cli *CLI) error {
	if err := cli.Container.ReferenceService.RemoveReference(context.Background(), r.ID, r.Path); err != nil {
		return fmt.Errorf("failed to remove reference: %w", err)
	}
	return nil
}

// RefsDecayCmd runs one TTL tick
type RefsDecayCmd struct {
	ID string `arg:"" help:"Session ID"`
}

// Run executes the decay command
func (r *RefsDecayCmd) Run(cli *CLI) error {
	if err := cli.Container.ReferenceService.DecrementAllTTL(context.Background(), r.ID); err != nil {
		return fmt.Errorf("failed to decay references: %w", err)
	}
	return nil
}

// RefsShowCmd prints reference contents
type RefsShowCmd struct {
	ID string `arg:"" help:"Session ID"`
}

// Run executes the show command
func (r *RefsShowCmd) Run(cli *CLI) error {
	refs, err := cli.Container.ReferenceService.ReferencesForPrompt(context.Background(), r.ID)
	if err != nil {
		return fmt.Errorf("failed to read references: %w", err)
	}

	for ref := range refs {
		fmt.Printf("==> %s <==\n%s\n", ref.Path, ref.Content)
	}
	return nil
}
