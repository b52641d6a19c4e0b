package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/tidwall/jsonc"

	"github.com/s-age/pipe-sub004/internal/adapters/filelock"
	"github.com/s-age/pipe-sub004/internal/adapters/process"
	"github.com/s-age/pipe-sub004/internal/domain"
)

// Defaults applied when neither flags, environment nor settings.json say otherwise
const (
	DefaultArchiveWorkers      = 4
	DefaultExpirationThreshold = domain.DefaultExpirationThreshold
	DefaultKillGracePeriod     = process.DefaultKillGracePeriod
	DefaultLockPollInterval    = filelock.DefaultPollInterval
	DefaultLockTimeout         = filelock.DefaultTimeout
	DefaultReferenceTTL        = domain.DefaultReferenceTTL
	DefaultToolResponseLimit   = domain.DefaultToolResponseLimit
)

// Settings represents the structure of $PIPE_HOME/settings.json.
// Comments and trailing commas are accepted.
type Settings struct {
	ArchiveWorkers      *int   `json:"archive_workers,omitempty"`
	Debug               *bool  `json:"debug,omitempty"`
	ExpirationThreshold *int   `json:"expiration_threshold,omitempty"`
	KillGracePeriodMs   *int   `json:"kill_grace_period_ms,omitempty"`
	LockPollIntervalMs  *int   `json:"lock_poll_interval_ms,omitempty"`
	LockTimeoutMs       *int   `json:"lock_timeout_ms,omitempty"`
	MaxLogFiles         *int   `json:"max_log_files,omitempty"`
	ProjectRoot         string `json:"project_root,omitempty"`
	ReferenceTTL        *int   `json:"reference_ttl,omitempty"`
	ToolResponseLimit   *int   `json:"tool_response_limit,omitempty"`
}

// StoreOptions is the resolved runtime configuration of the store
type StoreOptions struct {
	ArchiveWorkers      int
	ExpirationThreshold int
	KillGracePeriod     time.Duration
	LockPollInterval    time.Duration
	LockTimeout         time.Duration
	ProjectRoot         string
	ReferenceTTL        int
	ToolResponseLimit   int
}

// DefaultStoreOptions returns the built-in defaults
func DefaultStoreOptions() StoreOptions {
	return StoreOptions{
		ArchiveWorkers:      DefaultArchiveWorkers,
		ExpirationThreshold: DefaultExpirationThreshold,
		KillGracePeriod:     DefaultKillGracePeriod,
		LockPollInterval:    DefaultLockPollInterval,
		LockTimeout:         DefaultLockTimeout,
		ReferenceTTL:        DefaultReferenceTTL,
		ToolResponseLimit:   DefaultToolResponseLimit,
	}
}

// LoadSettings loads settings from path.
// Returns empty Settings if file doesn't exist (not an error)
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(jsonc.ToJSON(data), &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	if settings.ProjectRoot != "" {
		settings.ProjectRoot = ExpandPath(settings.ProjectRoot)
	}

	return &settings, nil
}

// Apply overlays the values present in settings on top of opts
func (s *Settings) Apply(opts StoreOptions) StoreOptions {
	if s == nil {
		return opts
	}
	if s.ArchiveWorkers != nil && *s.ArchiveWorkers > 0 {
		opts.ArchiveWorkers = *s.ArchiveWorkers
	}
	if s.ExpirationThreshold != nil && *s.ExpirationThreshold > 0 {
		opts.ExpirationThreshold = *s.ExpirationThreshold
	}
	if s.KillGracePeriodMs != nil && *s.KillGracePeriodMs >= 0 {
		opts.KillGracePeriod = time.Duration(*s.KillGracePeriodMs) * time.Millisecond
	}
	if s.LockPollIntervalMs != nil && *s.LockPollIntervalMs > 0 {
		opts.LockPollInterval = time.Duration(*s.LockPollIntervalMs) * time.Millisecond
	}
	if s.LockTimeoutMs != nil && *s.LockTimeoutMs > 0 {
		opts.LockTimeout = time.Duration(*s.LockTimeoutMs) * time.Millisecond
	}
	if s.ProjectRoot != "" {
		opts.ProjectRoot = s.ProjectRoot
	}
	if s.ReferenceTTL != nil && *s.ReferenceTTL > 0 {
		opts.ReferenceTTL = *s.ReferenceTTL
	}
	if s.ToolResponseLimit != nil && *s.ToolResponseLimit >= 0 {
		opts.ToolResponseLimit = *s.ToolResponseLimit
	}
	return opts
}
