package ports

import (
	"context"
	"time"

	"github.com/s-age/pipe-sub004/internal/domain"
)

// ProcessRegistry tracks the background agent process of each session
type ProcessRegistry interface {
	Cleanup(ctx context.Context, sessionID string) error
	Get(ctx context.Context, sessionID string) (*domain.ProcessInfo, error)
	IsRunning(ctx context.Context, sessionID string) (bool, error)
	Kill(ctx context.Context, sessionID string) (bool, error)
	List(ctx context.Context) ([]domain.ProcessInfo, error)
	Register(ctx context.Context, info domain.ProcessInfo) error
}

// ProcessSignaler talks to OS processes
type ProcessSignaler interface {
	// Alive reports whether pid refers to a live process
	Alive(pid int) bool
	// Terminate asks pid to exit, escalating after grace. It reports
	// whether the process is gone.
	Terminate(ctx context.Context, pid int, grace time.Duration) (bool, error)
}
