//go:build windows

package process

import (
	"context"
	"fmt"
	"os"
	"time"

	"golang.org/x/sys/windows"
)

// stillActive is the exit code GetExitCodeProcess reports for live processes
const stillActive = 259

// Alive reports whether pid exists (Windows implementation)
func (s *OSSignaler) Alive(pid int) bool {
	if pid <= 0 {
		return false
	}
	handle, err := windows.OpenProcess(windows.PROCESS_QUERY_LIMITED_INFORMATION, false, uint32(pid))
	if err != nil {
		return false
	}
	defer windows.CloseHandle(handle)

	var code uint32
	if err := windows.GetExitCodeProcess(handle, &code); err != nil {
		return false
	}
	return code == stillActive
}

// Terminate kills pid (Windows implementation). Windows has no SIGTERM for
// console-less processes, so the grace period only bounds the wait for exit.
func (s *OSSignaler) Terminate(ctx context.Context, pid int, grace time.Duration) (bool, error) {
	if !s.Alive(pid) {
		return true, nil
	}

	proc, err := os.FindProcess(pid)
	if err != nil {
		return true, nil
	}
	if err := proc.Kill(); err != nil {
		return false, fmt.Errorf("failed to kill %d: %w", pid, err)
	}

	return s.waitGone(ctx.Done(), pid, grace), nil
}
