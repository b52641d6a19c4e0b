package config

import (
	"os"
	"path/filepath"
)

// GetPipeHome returns PIPE_HOME or ~/.pipe default
func GetPipeHome() string {
	pipeHome := os.Getenv("PIPE_HOME")
	if pipeHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".pipe"
		}
		return filepath.Join(homeDir, ".pipe")
	}
	return ExpandPath(pipeHome)
}

// Paths lists every file and directory the store uses below one home
type Paths struct {
	BackupCatalog string
	BackupsDir    string
	Home          string
	Index         string
	Processes     string
	SessionsDir   string
	Settings      string
}

// NewPaths derives the store layout from home
func NewPaths(home string) Paths {
	return Paths{
		BackupCatalog: filepath.Join(home, "backups.db"),
		BackupsDir:    filepath.Join(home, "backups"),
		Home:          home,
		Index:         filepath.Join(home, "index.json"),
		Processes:     filepath.Join(home, "processes.json"),
		SessionsDir:   filepath.Join(home, "sessions"),
		Settings:      filepath.Join(home, "settings.json"),
	}
}

// GetSettingsPath returns $PIPE_HOME/settings.json
func GetSettingsPath() string {
	return NewPaths(GetPipeHome()).Settings
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
