package process

import (
	"time"

	"github.com/s-age/pipe-sub004/internal/ports"
)

// OSSignaler implements ProcessSignaler with OS signals
type OSSignaler struct {
	pollInterval time.Duration
}

// Compile-time interface verification
var _ ports.ProcessSignaler = (*OSSignaler)(nil)

// NewOSSignaler creates a new OS signaler
func NewOSSignaler() *OSSignaler {
	return &OSSignaler{pollInterval: 50 * time.Millisecond}
}

// waitGone polls until pid exits or the deadline passes
func (s *OSSignaler) waitGone(done <-chan struct{}, pid int, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for s.Alive(pid) {
		if !time.Now().Before(deadline) {
			return false
		}
		select {
		case <-done:
			return !s.Alive(pid)
		case <-time.After(s.pollInterval):
		}
	}
	return true
}
