package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s-age/pipe-sub004/internal/adapters/filelock"
	"github.com/s-age/pipe-sub004/internal/domain"
	"github.com/s-age/pipe-sub004/internal/ports"
)

var baseTime = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

type testStore struct {
	home  string
	index *IndexRepository
	repo  *SessionFileRepository
}

func newTestStore(t *testing.T) testStore {
	t.Helper()
	home := t.TempDir()
	locker := filelock.New(filelock.Options{PollInterval: 5 * time.Millisecond, Timeout: 2 * time.Second})
	index := NewIndexRepository(locker, filepath.Join(home, "index.json"))
	repo := NewSessionFileRepository(locker, index, filepath.Join(home, "sessions"), filepath.Join(home, "backups"))
	tick := baseTime
	repo.now = func() time.Time {
		tick = tick.Add(time.Second)
		return tick
	}
	return testStore{home: home, index: index, repo: repo}
}

func fullSession(id string) *domain.Session {
	temp := 0.2
	topK := 40
	ttl := 2
	return &domain.Session{
		Artifacts:                 []string{"out.md"},
		Background:                "background",
		CreatedAt:                 baseTime,
		Hyperparameters:           domain.Hyperparameters{Temperature: &temp, TopK: &topK},
		ID:                        id,
		MultiStepReasoningEnabled: true,
		Pools:                     []domain.Turn{domain.NewModelResponse("pending", baseTime.Add(5*time.Minute))},
		Procedure:                 "procedures/review.md",
		Purpose:                   "refactor",
		References: []domain.Reference{
			{Path: "a.py", TTL: &ttl},
			{Path: "b.py", Disabled: true},
		},
		Roles:      []string{"roles/engineer.md"},
		Todos:      []domain.TodoItem{{Title: "write tests", Description: "cover store", Checked: true}},
		TokenCount: 1234,
		Turns: []domain.Turn{
			domain.NewUserTask("do it", baseTime),
			domain.NewFunctionCalling(`read_file({"path":"a.py"})`, baseTime.Add(time.Minute)),
			domain.NewToolResponse("read_file", domain.ToolStatusSucceeded, "contents", baseTime.Add(2*time.Minute)),
			domain.NewModelResponse("done", baseTime.Add(3*time.Minute)),
			domain.NewCompressedHistory("summary", 0, 3, baseTime.Add(4*time.Minute)),
		},
	}
}

func TestSessionRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	original := fullSession("s1")

	require.NoError(t, store.repo.Create(ctx, original))
	loaded, err := store.repo.Get(ctx, "s1")

	require.NoError(t, err)
	assert.Equal(t, original.Clone(), loaded)
}

func TestSessionFileLayout(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	require.NoError(t, store.repo.Create(ctx, fullSession("s1")))
	require.NoError(t, store.repo.Create(ctx, fullSession("s1/child")))

	assert.FileExists(t, filepath.Join(store.home, "sessions", "s1.json"))
	assert.FileExists(t, filepath.Join(store.home, "sessions", "s1", "child.json"))

	data, err := os.ReadFile(filepath.Join(store.home, "sessions", "s1.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"type": "tool_response"`)
	assert.Contains(t, string(data), `"status": "succeeded"`)
	assert.Contains(t, string(data), `"original_turns_range": [`)
}

func TestCreate_DuplicateIsConflict(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	require.NoError(t, store.repo.Create(ctx, fullSession("s1")))

	err := store.repo.Create(ctx, fullSession("s1"))

	assert.ErrorIs(t, err, domain.ErrSessionExists)
	assert.Equal(t, domain.KindConflict, domain.KindOf(err))
}

func TestCreate_RejectsTraversalID(t *testing.T) {
	store := newTestStore(t)

	err := store.repo.Create(context.Background(), &domain.Session{ID: "../escape"})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestGet_Missing(t *testing.T) {
	store := newTestStore(t)

	_, err := store.repo.Get(context.Background(), "nope")

	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestUpdate_TouchesIndex(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	require.NoError(t, store.repo.Create(ctx, fullSession("s1")))
	before, err := store.index.Find(ctx, "s1")
	require.NoError(t, err)

	updated, err := store.repo.Update(ctx, "s1", func(s *domain.Session) error {
		s.Purpose = "renamed"
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Purpose)

	after, err := store.index.Find(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "renamed", after.Purpose)
	assert.True(t, after.LastUpdated.After(before.LastUpdated))
}

func TestUpdate_NoChangeSkipsWrite(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	require.NoError(t, store.repo.Create(ctx, fullSession("s1")))
	before, err := store.index.Find(ctx, "s1")
	require.NoError(t, err)

	_, err = store.repo.Update(ctx, "s1", func(s *domain.Session) error {
		s.Purpose = "ignored"
		return ports.ErrNoChange
	})
	require.NoError(t, err)

	loaded, err := store.repo.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "refactor", loaded.Purpose)
	after, err := store.index.Find(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, before.LastUpdated, after.LastUpdated)
}

func TestUpdate_MissingSession(t *testing.T) {
	store := newTestStore(t)

	_, err := store.repo.Update(context.Background(), "ghost", func(*domain.Session) error { return nil })

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoFileExists(t, store.repo.Path("ghost"))
}

func TestDelete_Cascades(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	for _, id := range []string{"a", "a/b", "a/b/c", "ab"} {
		require.NoError(t, store.repo.Create(ctx, fullSession(id)))
	}

	removed, err := store.repo.Delete(ctx, "a")

	require.NoError(t, err)
	assert.Equal(t, []string{"a", "a/b", "a/b/c"}, removed)
	assert.NoFileExists(t, store.repo.Path("a"))
	assert.NoDirExists(t, filepath.Join(store.home, "sessions", "a"))
	assert.FileExists(t, store.repo.Path("ab"))

	entries, err := store.index.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "ab", entries[0].SessionID)
}

func TestDelete_Missing(t *testing.T) {
	store := newTestStore(t)

	_, err := store.repo.Delete(context.Background(), "ghost")

	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestUpdateWithBackup_CopiesStateBeforeChange(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	original := fullSession("s1")
	require.NoError(t, store.repo.Create(ctx, original))

	var backupPath string
	_, err := store.repo.UpdateWithBackup(ctx, "s1", func(session *domain.Session, path string) error {
		backupPath = path
		session.Turns = session.Turns[:1]
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(store.home, "backups"), filepath.Dir(backupPath))

	require.NoError(t, store.repo.Restore(ctx, backupPath, "restored"))
	restored, err := store.repo.Get(ctx, "restored")
	require.NoError(t, err)
	assert.Equal(t, original.Turns, restored.Turns)

	current, err := store.repo.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Len(t, current.Turns, 1)

	err = store.repo.Restore(ctx, backupPath, "s1")
	assert.ErrorIs(t, err, domain.ErrSessionExists)
}

func TestUpdateWithBackup_FailureDiscardsCopy(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	require.NoError(t, store.repo.Create(ctx, fullSession("s1")))

	var backupPath string
	_, err := store.repo.UpdateWithBackup(ctx, "s1", func(session *domain.Session, path string) error {
		backupPath = path
		session.Turns = nil
		return assert.AnError
	})

	require.ErrorIs(t, err, assert.AnError)
	assert.NoFileExists(t, backupPath)
	current, err := store.repo.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Len(t, current.Turns, 5)
}

func TestUpdateWithBackup_MissingSession(t *testing.T) {
	store := newTestStore(t)

	_, err := store.repo.UpdateWithBackup(context.Background(), "ghost", func(*domain.Session, string) error { return nil })

	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestRemoveWithBackup_LocksSubtreeUntilRemoved(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	require.NoError(t, store.repo.Create(ctx, fullSession("s1")))
	require.NoError(t, store.repo.Create(ctx, fullSession("s1/child")))

	writeDone := make(chan error, 1)
	var backups []string
	removed, err := store.repo.RemoveWithBackup(ctx, "s1", func(entries []domain.IndexEntry, backup ports.BackupFunc) error {
		assert.Len(t, entries, 2)
		for _, e := range entries {
			path, err := backup(e.SessionID)
			if err != nil {
				return err
			}
			backups = append(backups, path)
		}

		go func() {
			_, err := store.repo.Update(ctx, "s1", func(session *domain.Session) error {
				session.Turns = append(session.Turns, domain.NewModelResponse("late", baseTime))
				return nil
			})
			writeDone <- err
		}()
		time.Sleep(50 * time.Millisecond)
		select {
		case err := <-writeDone:
			t.Errorf("write finished while the session was locked for removal: %v", err)
		default:
		}
		return nil
	})

	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"s1", "s1/child"}, removed)
	assert.ErrorIs(t, <-writeDone, domain.ErrSessionNotFound, "the late write must not resurrect or bypass the backup")
	assert.NoFileExists(t, store.repo.Path("s1"))

	require.Len(t, backups, 2)
	for _, path := range backups {
		assert.FileExists(t, path)
	}
}

func TestRemoveWithBackup_CallbackErrorKeepsSessions(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	require.NoError(t, store.repo.Create(ctx, fullSession("s1")))

	_, err := store.repo.RemoveWithBackup(ctx, "s1", func([]domain.IndexEntry, ports.BackupFunc) error {
		return domain.ErrAlreadyRunning
	})

	require.ErrorIs(t, err, domain.ErrAlreadyRunning)
	assert.FileExists(t, store.repo.Path("s1"))
	_, err = store.index.Find(ctx, "s1")
	assert.NoError(t, err)
}

func TestRemoveWithBackup_MissingFileReportsNotFound(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	require.NoError(t, store.repo.Create(ctx, fullSession("s1")))
	require.NoError(t, os.Remove(store.repo.Path("s1")))

	var backupErr error
	removed, err := store.repo.RemoveWithBackup(ctx, "s1", func(entries []domain.IndexEntry, backup ports.BackupFunc) error {
		_, backupErr = backup("s1")
		return nil
	})

	require.NoError(t, err)
	assert.ErrorIs(t, backupErr, domain.ErrSessionNotFound)
	assert.Equal(t, []string{"s1"}, removed)
}

func TestLockOrder_ChildrenBeforeParents(t *testing.T) {
	entries := []domain.IndexEntry{{SessionID: "a"}, {SessionID: "b/c"}, {SessionID: "a/b/c"}, {SessionID: "a/b"}}

	assert.Equal(t, []string{"a/b/c", "a/b", "b/c", "a"}, lockOrder(entries))
}

func TestIndex_ListNewestFirst(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	for i, id := range []string{"old", "mid", "new"} {
		require.NoError(t, store.index.Add(ctx, domain.IndexEntry{
			SessionID:   id,
			LastUpdated: baseTime.Add(time.Duration(i) * time.Minute),
		}))
	}

	entries, err := store.index.List(ctx)

	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "new", entries[0].SessionID)
	assert.Equal(t, "mid", entries[1].SessionID)
	assert.Equal(t, "old", entries[2].SessionID)
}

func TestIndex_TouchMissing(t *testing.T) {
	store := newTestStore(t)

	err := store.index.Touch(context.Background(), "ghost", "p", baseTime)

	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestIndex_DeleteUnknownReturnsEmpty(t *testing.T) {
	store := newTestStore(t)

	removed, err := store.index.Delete(context.Background(), "ghost")

	require.NoError(t, err)
	assert.Empty(t, removed)
	assert.NoFileExists(t, filepath.Join(store.home, "index.json"))
}

func TestRecordToTurn_UnknownType(t *testing.T) {
	_, err := recordToTurn(turnRecord{Type: "bogus"})

	assert.ErrorIs(t, err, domain.ErrValidation)
}
