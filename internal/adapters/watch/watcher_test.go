package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatch_SignalsOnRename(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "s1.json")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes, err := NewFSWatcher(20*time.Millisecond).Watch(ctx, path)
	require.NoError(t, err)

	tmp := filepath.Join(dir, ".s1.json.tmp")
	require.NoError(t, os.WriteFile(tmp, []byte("{}"), 0644))
	require.NoError(t, os.Rename(tmp, path))

	select {
	case _, ok := <-changes:
		assert.True(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("expected a change notification")
	}
}

func TestWatch_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes, err := NewFSWatcher(20*time.Millisecond).Watch(ctx, filepath.Join(dir, "s1.json"))
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.json"), []byte("{}"), 0644))

	select {
	case <-changes:
		t.Fatal("unexpected notification for another file")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatch_ClosesOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	changes, err := NewFSWatcher(0).Watch(ctx, filepath.Join(t.TempDir(), "s1.json"))
	require.NoError(t, err)
	cancel()

	select {
	case _, ok := <-changes:
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("channel was not closed")
	}
}
