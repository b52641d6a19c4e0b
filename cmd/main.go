package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/s-age/pipe-sub004/internal/cmd"
	"github.com/s-age/pipe-sub004/internal/config"
)

// Build information injected at build time via ldflags
// Example: -ldflags="-X main.Version=v1.0.0 -X main.Commit=abc123"
var (
	Commit  = "unknown"
	Date    = "unknown"
	Version = "dev"
)

const description = "Session state store for agent conversations"

func versionInfo() string {
	return fmt.Sprintf("pipe %s (commit: %s, built: %s)", Version, Commit, Date)
}

func main() {
	// Load settings from $PIPE_HOME/settings.json; --home reloads them later
	settings, err := config.LoadSettings(config.GetSettingsPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load settings: %v\n", err)
		settings = &config.Settings{}
	}

	// Container is created in CLI.AfterApply() after logging is initialized
	var cli cmd.CLI
	cli.SetSettings(settings)
	ctx := kong.Parse(&cli,
		kong.Name("pipe"),
		kong.Description(description),
		kong.Vars{
			"version": versionInfo(),
		},
		kong.UsageOnError(),
		kong.Bind(&cli),
	)
	defer cli.Close()

	if err := ctx.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
