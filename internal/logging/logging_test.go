package logging

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize_DisabledReturnsNoPath(t *testing.T) {
	t.Setenv("PIPE_DEBUG", "")
	t.Setenv("PIPE_DEBUG_FILE", "")

	path, err := Initialize(false, "", DefaultMaxLogFiles)

	require.NoError(t, err)
	assert.Empty(t, path)
	assert.NotNil(t, Logger)
}

func TestInitialize_CustomDebugFile(t *testing.T) {
	t.Setenv("PIPE_DEBUG", "")
	t.Setenv("PIPE_DEBUG_FILE", "")
	logPath := filepath.Join(t.TempDir(), "nested", "debug.log")

	path, err := Initialize(false, logPath, DefaultMaxLogFiles)
	require.NoError(t, err)
	assert.Equal(t, logPath, path)

	Logger.Info("hello from test")

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello from test")
}

func TestRotateLogs_RemovesOldest(t *testing.T) {
	dir := t.TempDir()
	for i, name := range []string{"a.log", "b.log", "c.log"} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
		modTime := time.Now().Add(time.Duration(i-10) * time.Minute)
		require.NoError(t, os.Chtimes(path, modTime, modTime))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "keep.txt"), []byte("x"), 0644))

	require.NoError(t, rotateLogs(dir, 2))

	_, err := os.Stat(filepath.Join(dir, "a.log"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(dir, "b.log"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(dir, "c.log"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "keep.txt"))
	assert.NoError(t, err)
}
