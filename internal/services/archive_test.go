package services

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/s-age/pipe-sub004/internal/domain"
	portsmocks "github.com/s-age/pipe-sub004/internal/ports/mocks"
)

func idleRegistry(t *testing.T) *portsmocks.MockProcessRegistry {
	processes := portsmocks.NewMockProcessRegistry(t)
	processes.EXPECT().IsRunning(mock.Anything, mock.Anything).Return(false, nil).Maybe()
	return processes
}

func TestArchiveSessions_BacksUpAndRemovesDescendants(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.seed(t, "a", 2)
	env.seed(t, "a/b", 1)
	env.seed(t, "other", 1)
	service := NewArchiveService(env.sessions, env.catalog, idleRegistry(t), 2)

	results, err := service.ArchiveSessions(ctx, []string{"a"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, []string{"a", "a/b"}, results[0].Removed)
	require.Len(t, results[0].Backups, 2)
	for _, backup := range results[0].Backups {
		assert.Equal(t, domain.BackupReasonArchive, backup.Reason)
		assert.FileExists(t, backup.BackupPath)
	}

	_, err = env.index.Find(ctx, "a/b")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	assert.NoFileExists(t, env.sessions.Path("a"))
	_, err = env.index.Find(ctx, "other")
	assert.NoError(t, err)

	backups, err := service.ListBackups(ctx, "a/b")
	require.NoError(t, err)
	require.Len(t, backups, 1)
	assert.Equal(t, "purpose of a/b", backups[0].Purpose)
}

func TestArchiveSessions_RunningSessionIsConflict(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.seed(t, "a", 1)
	env.seed(t, "a/b", 1)
	processes := portsmocks.NewMockProcessRegistry(t)
	processes.EXPECT().IsRunning(mock.Anything, "a").Return(false, nil).Maybe()
	processes.EXPECT().IsRunning(mock.Anything, "a/b").Return(true, nil)
	service := NewArchiveService(env.sessions, env.catalog, processes, 1)

	results, err := service.ArchiveSessions(ctx, []string{"a"})

	require.ErrorIs(t, err, domain.ErrConflict)
	require.Len(t, results, 1)
	assert.ErrorIs(t, results[0].Err, domain.ErrAlreadyRunning)
	assert.FileExists(t, env.sessions.Path("a"))
	backups, err := env.catalog.List(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, backups)
}

func TestDeleteSessions_ReportsEachID(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.seed(t, "a", 1)
	env.seed(t, "a/b", 1)
	env.seed(t, "c", 1)
	service := NewArchiveService(env.sessions, env.catalog, idleRegistry(t), 4)

	results, err := service.DeleteSessions(ctx, []string{"c", "a/b", "ghost", "a", "c"})

	require.ErrorIs(t, err, domain.ErrSessionNotFound)
	require.Len(t, results, 3)
	byID := map[string]RemovalResult{}
	for _, result := range results {
		byID[result.SessionID] = result
	}
	assert.NoError(t, byID["a"].Err)
	assert.Equal(t, []string{"a", "a/b"}, byID["a"].Removed)
	assert.NoError(t, byID["c"].Err)
	assert.ErrorIs(t, byID["ghost"].Err, domain.ErrSessionNotFound)
	assert.Equal(t, domain.BackupReasonDelete, byID["c"].Backups[0].Reason)

	entries, err := env.index.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestArchiveSessions_WriteDuringRemovalIsNotLost(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.seed(t, "a", 2)
	writeDone := make(chan error, 1)
	processes := portsmocks.NewMockProcessRegistry(t)
	processes.EXPECT().IsRunning(mock.Anything, "a").RunAndReturn(func(ctx context.Context, id string) (bool, error) {
		go func() {
			_, err := env.sessions.Update(ctx, id, func(session *domain.Session) error {
				session.Turns = append(session.Turns, domain.NewModelResponse("late", baseTime))
				return nil
			})
			writeDone <- err
		}()
		time.Sleep(50 * time.Millisecond)
		return false, nil
	})
	service := NewArchiveService(env.sessions, env.catalog, processes, 1)

	results, err := service.ArchiveSessions(ctx, []string{"a"})
	require.NoError(t, err)
	require.Len(t, results[0].Backups, 1)

	assert.ErrorIs(t, <-writeDone, domain.ErrSessionNotFound, "the write waits for the removal and then finds nothing")
	_, err = service.RestoreBackup(ctx, results[0].Backups[0].ID)
	require.NoError(t, err)
	restored, err := env.sessions.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, []string{"t0", "t1"}, contents(restored.Turns))
}

func TestArchiveSessions_CatalogFailureKeepsSession(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.seed(t, "a", 1)
	catalog := portsmocks.NewMockBackupCatalog(t)
	catalog.EXPECT().Record(mock.Anything, mock.Anything).Return(domain.IOError("insert", assert.AnError))
	service := NewArchiveService(env.sessions, catalog, idleRegistry(t), 1)

	results, err := service.ArchiveSessions(ctx, []string{"a"})

	require.ErrorIs(t, err, domain.ErrIO)
	assert.Empty(t, results[0].Removed)
	assert.FileExists(t, env.sessions.Path("a"))
}

func TestRestoreBackup(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	original := env.seed(t, "a", 3)
	service := NewArchiveService(env.sessions, env.catalog, idleRegistry(t), 1)

	results, err := service.DeleteSessions(ctx, []string{"a"})
	require.NoError(t, err)
	backupID := results[0].Backups[0].ID

	record, err := service.RestoreBackup(ctx, backupID)
	require.NoError(t, err)
	assert.Equal(t, "a", record.SessionID)

	restored, err := env.sessions.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, contents(original.Turns), contents(restored.Turns))

	_, err = service.RestoreBackup(ctx, backupID)
	assert.ErrorIs(t, err, domain.ErrConflict)

	_, err = service.RestoreBackup(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrBackupNotFound)
}

func TestArchiveSessions_IndexedSessionWithoutFile(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.seed(t, "a", 1)
	require.NoError(t, os.Remove(env.sessions.Path("a")))
	service := NewArchiveService(env.sessions, env.catalog, idleRegistry(t), 1)

	results, err := service.ArchiveSessions(ctx, []string{"a"})

	require.NoError(t, err)
	assert.Empty(t, results[0].Backups)
	_, err = env.index.Find(ctx, "a")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestTopLevelIDs(t *testing.T) {
	got := topLevelIDs([]string{"b", "a/x", "a", "a-z", "a/x/y", "b"})

	assert.Equal(t, []string{"a", "a-z", "b"}, got)
}
