//go:build unix

package process

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sys/unix"

	"github.com/s-age/pipe-sub004/internal/logging"
)

// killWait bounds how long Terminate waits for SIGKILL to take effect
const killWait = 2 * time.Second

// Alive reports whether pid exists (Unix implementation). EPERM means the
// process exists but belongs to someone else.
func (s *OSSignaler) Alive(pid int) bool {
	if pid <= 0 {
		return false
	}
	err := unix.Kill(pid, 0)
	return err == nil || errors.Is(err, unix.EPERM)
}

// Terminate sends SIGTERM, waits up to grace for the process to exit and
// escalates to SIGKILL (Unix implementation)
func (s *OSSignaler) Terminate(ctx context.Context, pid int, grace time.Duration) (bool, error) {
	if !s.Alive(pid) {
		return true, nil
	}

	if err := unix.Kill(pid, unix.SIGTERM); err != nil {
		if errors.Is(err, unix.ESRCH) {
			return true, nil
		}
		return false, fmt.Errorf("failed to send SIGTERM to %d: %w", pid, err)
	}

	if s.waitGone(ctx.Done(), pid, grace) {
		return true, nil
	}

	logging.Logger.Warn("Process didn't exit gracefully, sending SIGKILL", "pid", pid)
	if err := unix.Kill(pid, unix.SIGKILL); err != nil {
		if errors.Is(err, unix.ESRCH) {
			return true, nil
		}
		return false, fmt.Errorf("failed to send SIGKILL to %d: %w", pid, err)
	}

	return s.waitGone(nil, pid, killWait), nil
}
