package services

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/s-age/pipe-sub004/internal/adapters/filelock"
	"github.com/s-age/pipe-sub004/internal/adapters/storage"
	"github.com/s-age/pipe-sub004/internal/domain"
)

var baseTime = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

// testEnv is a store rooted in a temporary home directory
type testEnv struct {
	catalog  *storage.SQLiteCatalog
	home     string
	index    *storage.IndexRepository
	sessions *storage.SessionFileRepository
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()
	home := t.TempDir()
	locker := filelock.New(filelock.Options{PollInterval: 5 * time.Millisecond, Timeout: 2 * time.Second})
	index := storage.NewIndexRepository(locker, filepath.Join(home, "index.json"))
	sessions := storage.NewSessionFileRepository(locker, index, filepath.Join(home, "sessions"), filepath.Join(home, "backups"))

	catalog, err := storage.NewSQLiteCatalog(filepath.Join(home, "backups.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = catalog.Close() })

	return testEnv{catalog: catalog, home: home, index: index, sessions: sessions}
}

// seed stores a session holding n model responses "t0".."t<n-1>"
func (e testEnv) seed(t *testing.T, id string, n int) *domain.Session {
	t.Helper()
	session := &domain.Session{ID: id, CreatedAt: baseTime, Purpose: "purpose of " + id}
	for i := 0; i < n; i++ {
		session.Turns = append(session.Turns, domain.NewModelResponse(fmt.Sprintf("t%d", i), baseTime.Add(time.Duration(i)*time.Minute)))
	}
	require.NoError(t, e.sessions.Create(t.Context(), session))
	return session
}

func contents(turns []domain.Turn) []string {
	out := make([]string, 0, len(turns))
	for _, t := range turns {
		out = append(out, t.Content)
	}
	return out
}

func sequentialIDs(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s%d", prefix, n)
	}
}
