package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss/tree"

	"github.com/s-age/pipe-sub004/internal/domain"
	"github.com/s-age/pipe-sub004/internal/theme"
)

// SessionsListCmd lists all sessions
type SessionsListCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the list command
func (s *SessionsListCmd) Run(cli *CLI) error {
	entries, err := cli.Container.SessionService.ListSessions(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list sessions: %w", err)
	}

	if s.Format == "json" {
		return printJSON(entries)
	}

	if len(entries) == 0 {
		fmt.Println("No sessions found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPURPOSE\tCREATED\tLAST UPDATED")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.SessionID, e.Purpose, formatTime(e.CreatedAt), formatTime(e.LastUpdated))
	}
	return w.Flush()
}

// SessionsTreeCmd prints the session lineage
type SessionsTreeCmd struct{}

// Run executes the tree command
func (s *SessionsTreeCmd) Run(cli *CLI) error {
	roots, err := cli.Container.SessionService.Tree(context.Background())
	if err != nil {
		return fmt.Errorf("failed to build session tree: %w", err)
	}
	if len(roots) == 0 {
		fmt.Println("No sessions found")
		return nil
	}

	t := tree.New().
		Child(treeChildren(roots)...).
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(theme.TreeEnumeratorStyle).
		RootStyle(theme.TreeRootStyle).
		ItemStyle(theme.TreeItemStyle)
	fmt.Println(t.String())
	return nil
}

func treeChildren(nodes []*domain.SessionNode) []any {
	children := make([]any, 0, len(nodes))
	for _, n := range nodes {
		label := n.Entry.SessionID
		if n.Entry.Purpose != "" {
			label += " " + theme.MutedStyle.Render(n.Entry.Purpose)
		}
		if len(n.Children) == 0 {
			children = append(children, label)
			continue
		}
		children = append(children, tree.Root(label).Child(treeChildren(n.Children)...))
	}
	return children
}
