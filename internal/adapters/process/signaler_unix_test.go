//go:build unix

package process

import (
	"context"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// startReaped starts a command and reaps it in the background so an exited
// child does not linger as a zombie that still answers signal 0
func startReaped(t *testing.T, name string, args ...string) *exec.Cmd {
	t.Helper()
	cmd := exec.Command(name, args...)
	require.NoError(t, cmd.Start())
	go func() { _ = cmd.Wait() }()
	t.Cleanup(func() { _ = cmd.Process.Kill() })
	return cmd
}

func TestAlive(t *testing.T) {
	s := NewOSSignaler()

	assert.True(t, s.Alive(os.Getpid()))
	assert.False(t, s.Alive(0))
	assert.False(t, s.Alive(-1))
}

func TestTerminate_GracefulExit(t *testing.T) {
	s := NewOSSignaler()
	cmd := startReaped(t, "sleep", "30")

	gone, err := s.Terminate(context.Background(), cmd.Process.Pid, 2*time.Second)

	require.NoError(t, err)
	assert.True(t, gone)
	assert.False(t, s.Alive(cmd.Process.Pid))
}

func TestTerminate_EscalatesToKill(t *testing.T) {
	s := NewOSSignaler()
	cmd := startReaped(t, "sh", "-c", `trap "" TERM; exec sleep 30`)
	// Give the shell time to install the trap before signalling
	time.Sleep(200 * time.Millisecond)

	start := time.Now()
	gone, err := s.Terminate(context.Background(), cmd.Process.Pid, 100*time.Millisecond)

	require.NoError(t, err)
	assert.True(t, gone)
	assert.GreaterOrEqual(t, time.Since(start), 100*time.Millisecond)
}

func TestTerminate_AlreadyGone(t *testing.T) {
	s := NewOSSignaler()
	cmd := exec.Command("true")
	require.NoError(t, cmd.Run())

	gone, err := s.Terminate(context.Background(), cmd.Process.Pid, time.Second)

	require.NoError(t, err)
	assert.True(t, gone)
}
