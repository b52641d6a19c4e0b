package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"

	"github.com/s-age/pipe-sub004/internal/config"
	"github.com/s-age/pipe-sub004/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	Home        string           `help:"Store directory (default $PIPE_HOME or ~/.pipe)" type:"path"`
	LockTimeout time.Duration    `help:"How long to wait for a file lock" default:"10s" env:"PIPE_LOCK_TIMEOUT"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`
	ProjectRoot string           `help:"Directory references are resolved against (default: working directory)" type:"path" env:"PIPE_PROJECT_ROOT"`

	Backups  BackupsCmd  `cmd:"backups" help:"List and restore session backups"`
	Compress CompressCmd `cmd:"compress" help:"Replace turn ranges with summaries"`
	Pool     PoolCmd     `cmd:"pool" help:"Stage, commit or roll back turns of an agent run"`
	Process  ProcessCmd  `cmd:"process" help:"Track the background agent process of a session"`
	Refs     RefsCmd     `cmd:"refs" help:"Manage file references of a session"`
	Sessions SessionsCmd `cmd:"sessions" help:"Manage sessions (create, list, tree, show, fork, delete)"`
	Settings SettingsCmd `cmd:"settings" help:"Show settings file location and available options"`
	Todos    TodosCmd    `cmd:"todos" help:"Manage the todo list of a session"`
	Turns    TurnsCmd    `cmd:"turns" help:"Edit or delete turns of a session"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	home := config.GetPipeHome()
	if c.Home != "" {
		home = config.ExpandPath(c.Home)
		// settings.json lives in the store directory, so reload it
		settings, err := config.LoadSettings(config.NewPaths(home).Settings)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to load settings: %v\n", err)
			settings = &config.Settings{}
		}
		c.settings = settings
	}

	// Precedence: CLI flags > env vars > settings.json > defaults
	if c.settings != nil {
		if c.MaxLogFiles == logging.DefaultMaxLogFiles {
			if _, hasEnv := os.LookupEnv("PIPE_MAX_LOG_FILES"); !hasEnv {
				if c.settings.MaxLogFiles != nil {
					c.MaxLogFiles = *c.settings.MaxLogFiles
				}
			}
		}

		if !c.Debug {
			if _, hasEnv := os.LookupEnv("PIPE_DEBUG"); !hasEnv {
				if c.settings.Debug != nil && *c.settings.Debug {
					c.Debug = true
				}
			}
		}
	}

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	// Agent processes started from here inherit the same log file
	if c.Debug || c.DebugFile != "" {
		os.Setenv("PIPE_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("PIPE_DEBUG_FILE", logFilePath)
		}
	}
	if c.MaxLogFiles != logging.DefaultMaxLogFiles {
		os.Setenv("PIPE_MAX_LOG_FILES", fmt.Sprintf("%d", c.MaxLogFiles))
	}

	opts, err := c.storeOptions()
	if err != nil {
		return err
	}

	// The container is created after logging so GORM logs go to the right place
	container, err := NewContainer(config.NewPaths(home), opts)
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	logging.Logger.Debug("Store opened", "home", home, "project_root", opts.ProjectRoot, "lock_timeout", opts.LockTimeout)
	return nil
}

// storeOptions resolves the store configuration from flags, env and settings
func (c *CLI) storeOptions() (config.StoreOptions, error) {
	opts := c.settings.Apply(config.DefaultStoreOptions())

	if c.LockTimeout != config.DefaultLockTimeout {
		opts.LockTimeout = c.LockTimeout
	} else if _, hasEnv := os.LookupEnv("PIPE_LOCK_TIMEOUT"); hasEnv {
		opts.LockTimeout = c.LockTimeout
	}

	if c.ProjectRoot != "" {
		opts.ProjectRoot = c.ProjectRoot
	}
	if opts.ProjectRoot == "" {
		wd, err := os.Getwd()
		if err != nil {
			return opts, fmt.Errorf("failed to resolve project root: %w", err)
		}
		opts.ProjectRoot = wd
	}
	return opts, nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}
