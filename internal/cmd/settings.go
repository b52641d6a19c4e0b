package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"text/tabwriter"

	"github.com/s-age/pipe-sub004/internal/config"
)

// SettingsCmd manages settings
type SettingsCmd struct {
	Meta SettingsMetaCmd `cmd:"meta" help:"Show settings file location and available options" default:"1"`
}

// SettingsMetaCmd displays settings metadata
type SettingsMetaCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the meta command
func (s *SettingsMetaCmd) Run(cli *CLI) error {
	settingsFile := config.GetSettingsPath()
	if cli.Container != nil {
		settingsFile = cli.Container.Paths.Settings
	}
	example := config.GetSettingsExample()

	if s.Format == "json" {
		return printJSON(map[string]any{
			"format":        example,
			"settings_file": settingsFile,
		})
	}

	fmt.Printf("Settings file: %s\n\n", settingsFile)
	fmt.Println("Example settings.json:")
	fmt.Println()

	keys := make([]string, 0, len(example))
	for key := range example {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, key := range keys {
		data, err := json.Marshal(example[key])
		if err != nil {
			return fmt.Errorf("failed to marshal %s: %w", key, err)
		}
		fmt.Fprintf(w, "%s\t%s\n", key, data)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("Comments and trailing commas are allowed. Every setting is optional;")
	fmt.Println("command-line flags and PIPE_* environment variables take precedence.")
	return nil
}
