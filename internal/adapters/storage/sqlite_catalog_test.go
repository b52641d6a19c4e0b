package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s-age/pipe-sub004/internal/domain"
)

func newTestCatalog(t *testing.T) *SQLiteCatalog {
	t.Helper()
	catalog, err := NewSQLiteCatalog(filepath.Join(t.TempDir(), "backups.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = catalog.Close() })
	return catalog
}

func backupRecord(id, sessionID string, minutes int) domain.BackupRecord {
	return domain.BackupRecord{
		BackupPath:       "/backups/" + id + ".json",
		CreatedAt:        baseTime.Add(time.Duration(minutes) * time.Minute),
		ID:               id,
		Purpose:          "purpose",
		Reason:           domain.BackupReasonArchive,
		SessionCreatedAt: baseTime,
		SessionID:        sessionID,
	}
}

func TestCatalog_RecordAndGet(t *testing.T) {
	ctx := context.Background()
	catalog := newTestCatalog(t)
	record := backupRecord("b1", "s1", 0)

	require.NoError(t, catalog.Record(ctx, record))
	loaded, err := catalog.Get(ctx, "b1")

	require.NoError(t, err)
	assert.Equal(t, record.BackupPath, loaded.BackupPath)
	assert.Equal(t, record.Reason, loaded.Reason)
	assert.Equal(t, record.SessionID, loaded.SessionID)
	assert.True(t, record.CreatedAt.Equal(loaded.CreatedAt))
}

func TestCatalog_DuplicateIDIsConflict(t *testing.T) {
	ctx := context.Background()
	catalog := newTestCatalog(t)
	require.NoError(t, catalog.Record(ctx, backupRecord("b1", "s1", 0)))

	err := catalog.Record(ctx, backupRecord("b1", "s1", 1))

	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestCatalog_GetMissing(t *testing.T) {
	_, err := newTestCatalog(t).Get(context.Background(), "nope")

	assert.ErrorIs(t, err, domain.ErrBackupNotFound)
}

func TestCatalog_ListFiltersAndOrders(t *testing.T) {
	ctx := context.Background()
	catalog := newTestCatalog(t)
	require.NoError(t, catalog.Record(ctx, backupRecord("b1", "s1", 0)))
	require.NoError(t, catalog.Record(ctx, backupRecord("b2", "s2", 1)))
	require.NoError(t, catalog.Record(ctx, backupRecord("b3", "s1", 2)))

	all, err := catalog.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "b3", all[0].ID)

	s1, err := catalog.List(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, s1, 2)
	assert.Equal(t, "b3", s1[0].ID)
	assert.Equal(t, "b1", s1[1].ID)
}
