package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/s-age/pipe-sub004/internal/domain"
	portsmocks "github.com/s-age/pipe-sub004/internal/ports/mocks"
)

func newTestSessionService(env testEnv) *SessionService {
	service := NewSessionService(env.sessions, env.index, nil)
	service.newID = sequentialIDs("id")
	return service
}

func TestCreateSession_RootAndChild(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	service := newTestSessionService(env)

	root, err := service.CreateSession(ctx, CreateSessionParams{Purpose: "root", Roles: []string{"roles/dev.md"}})
	require.NoError(t, err)
	child, err := service.CreateSession(ctx, CreateSessionParams{Purpose: "child", ParentID: root.ID})
	require.NoError(t, err)

	assert.Equal(t, "id1", root.ID)
	assert.Equal(t, "id1/id2", child.ID)

	loaded, err := service.GetSession(ctx, root.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"roles/dev.md"}, loaded.Roles)

	roots, err := service.Tree(ctx)
	require.NoError(t, err)
	require.Len(t, roots, 1)
	require.Len(t, roots[0].Children, 1)
	assert.Equal(t, "id1/id2", roots[0].Children[0].Entry.SessionID)
}

func TestCreateSession_MissingParent(t *testing.T) {
	index := portsmocks.NewMockSessionIndex(t)
	sessions := portsmocks.NewMockSessionRepository(t)
	index.EXPECT().Find(mock.Anything, "ghost").Return(nil, domain.ErrSessionNotFound)

	service := NewSessionService(sessions, index, nil)
	_, err := service.CreateSession(context.Background(), CreateSessionParams{ParentID: "ghost"})

	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestCreateSession_PropagatesRepositoryError(t *testing.T) {
	index := portsmocks.NewMockSessionIndex(t)
	sessions := portsmocks.NewMockSessionRepository(t)
	sessions.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.IOError("write", assert.AnError))

	service := NewSessionService(sessions, index, nil)
	_, err := service.CreateSession(context.Background(), CreateSessionParams{Purpose: "p"})

	assert.ErrorIs(t, err, domain.ErrIO)
}

func TestForkSession(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.seed(t, "s1", 3)
	service := newTestSessionService(env)

	child, err := service.ForkSession(ctx, "s1", 2)
	require.NoError(t, err)

	assert.Equal(t, "s1/id1", child.ID)
	loaded, err := service.GetSession(ctx, child.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"t0", "t1"}, contents(loaded.Turns))

	parent, err := service.GetSession(ctx, "s1")
	require.NoError(t, err)
	assert.Len(t, parent.Turns, 3)
}

func TestForkSession_OutOfRange(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t, "s1", 3)
	service := newTestSessionService(env)

	_, err := service.ForkSession(context.Background(), "s1", 3)

	assert.ErrorIs(t, err, domain.ErrTurnIndexOutOfRange)
}

func TestDeleteTurns(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.seed(t, "s1", 4)
	service := newTestSessionService(env)

	require.NoError(t, service.DeleteTurns(ctx, "s1", []int{0, 2}))

	loaded, err := service.GetSession(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, []string{"t1", "t3"}, contents(loaded.Turns))
}

func TestEditTurn(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.seed(t, "s1", 2)
	service := newTestSessionService(env)
	updated := "edited"

	require.NoError(t, service.EditTurn(ctx, "s1", 1, domain.TurnEdit{Content: &updated}))
	err := service.EditTurn(ctx, "s1", 5, domain.TurnEdit{Content: &updated})

	assert.ErrorIs(t, err, domain.ErrNotFound)
	loaded, err := service.GetSession(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, []string{"t0", "edited"}, contents(loaded.Turns))
}

func TestEditSessionMeta_UpdatesIndexPurpose(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.seed(t, "s1", 1)
	service := newTestSessionService(env)
	purpose := "renamed"
	multiStep := true

	session, err := service.EditSessionMeta(ctx, "s1", EditSessionMetaParams{
		MultiStepReasoningEnabled: &multiStep,
		Purpose:                   &purpose,
	})
	require.NoError(t, err)
	assert.True(t, session.MultiStepReasoningEnabled)

	entry, err := env.index.Find(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "renamed", entry.Purpose)
}

func TestUpdateTodos(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.seed(t, "s1", 1)
	service := newTestSessionService(env)

	err := service.UpdateTodos(ctx, "s1", []domain.TodoItem{{Description: "no title"}})
	require.ErrorIs(t, err, domain.ErrValidation)

	require.NoError(t, service.UpdateTodos(ctx, "s1", []domain.TodoItem{{Title: "a"}, {Title: "b", Checked: true}}))
	loaded, err := service.GetSession(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, loaded.Todos, 2)
	assert.True(t, loaded.Todos[1].Checked)

	require.NoError(t, service.DeleteTodos(ctx, "s1"))
	require.NoError(t, service.DeleteTodos(ctx, "s1"))
	loaded, err = service.GetSession(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, loaded.Todos)
}

func TestUpdateHyperparameters(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.seed(t, "s1", 1)
	service := newTestSessionService(env)
	temp := 0.7
	topK := 20
	tooHot := 3.0

	require.NoError(t, service.UpdateHyperparameters(ctx, "s1", domain.Hyperparameters{Temperature: &temp}))
	require.NoError(t, service.UpdateHyperparameters(ctx, "s1", domain.Hyperparameters{TopK: &topK}))
	err := service.UpdateHyperparameters(ctx, "s1", domain.Hyperparameters{Temperature: &tooHot})

	assert.ErrorIs(t, err, domain.ErrValidation)
	loaded, err := service.GetSession(ctx, "s1")
	require.NoError(t, err)
	require.NotNil(t, loaded.Hyperparameters.Temperature)
	assert.Equal(t, 0.7, *loaded.Hyperparameters.Temperature)
	require.NotNil(t, loaded.Hyperparameters.TopK)
	assert.Equal(t, 20, *loaded.Hyperparameters.TopK)
	assert.Nil(t, loaded.Hyperparameters.TopP)
}

func TestUpdateTokenCount(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.seed(t, "s1", 1)
	service := newTestSessionService(env)

	require.NoError(t, service.UpdateTokenCount(ctx, "s1", 512))
	assert.ErrorIs(t, service.UpdateTokenCount(ctx, "s1", -1), domain.ErrValidation)

	loaded, err := service.GetSession(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 512, loaded.TokenCount)
}

func TestWatch_UnknownSessionIsNotWatched(t *testing.T) {
	index := portsmocks.NewMockSessionIndex(t)
	sessions := portsmocks.NewMockSessionRepository(t)
	watcher := portsmocks.NewMockFileWatcher(t)
	index.EXPECT().Find(mock.Anything, "ghost").Return(nil, domain.ErrSessionNotFound)

	service := NewSessionService(sessions, index, watcher)
	_, err := service.Watch(context.Background(), "ghost")

	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestWatch_WatchesSessionFile(t *testing.T) {
	index := portsmocks.NewMockSessionIndex(t)
	sessions := portsmocks.NewMockSessionRepository(t)
	watcher := portsmocks.NewMockFileWatcher(t)
	changes := make(chan struct{})
	index.EXPECT().Find(mock.Anything, "s1").Return(&domain.IndexEntry{SessionID: "s1"}, nil)
	sessions.EXPECT().Path("s1").Return("/home/sessions/s1.json")
	watcher.EXPECT().Watch(mock.Anything, mock.MatchedBy(func(path string) bool {
		return strings.HasSuffix(path, "s1.json")
	})).Return((<-chan struct{})(changes), nil)

	service := NewSessionService(sessions, index, watcher)
	got, err := service.Watch(context.Background(), "s1")

	require.NoError(t, err)
	assert.NotNil(t, got)
}
