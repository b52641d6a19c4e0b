package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s-age/pipe-sub004/internal/domain"
)

func TestPoolLifecycle(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.seed(t, "s1", 1)
	service := NewRunService(env.sessions, domain.DefaultToolResponseLimit, domain.DefaultExpirationThreshold)
	stamp := baseTime.Add(time.Hour)
	service.now = func() time.Time { return stamp }

	require.NoError(t, service.AppendToPool(ctx, "s1", domain.Turn{Type: domain.TurnModelResponse, Content: "a"}))
	require.NoError(t, service.AppendToPool(ctx, "s1", domain.NewModelResponse("b", baseTime)))

	loaded, err := env.sessions.Get(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, loaded.Pools, 2)
	assert.Equal(t, stamp, loaded.Pools[0].Timestamp)
	assert.Len(t, loaded.Turns, 1)

	committed, err := service.CommitPool(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 2, committed)

	loaded, err = env.sessions.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, loaded.Pools)
	assert.Equal(t, []string{"t0", "a", "b"}, contents(loaded.Turns))

	committed, err = service.CommitPool(ctx, "s1")
	require.NoError(t, err)
	assert.Zero(t, committed)
}

func TestRollbackPool(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.seed(t, "s1", 1)
	service := NewRunService(env.sessions, domain.DefaultToolResponseLimit, domain.DefaultExpirationThreshold)

	require.NoError(t, service.AppendToPool(ctx, "s1", domain.NewModelResponse("a", baseTime)))
	dropped, err := service.RollbackPool(ctx, "s1")

	require.NoError(t, err)
	assert.Equal(t, 1, dropped)
	loaded, err := env.sessions.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, loaded.Pools)
	assert.Len(t, loaded.Turns, 1)
}

func TestAppendToPool_RejectsInvalidTurn(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t, "s1", 1)
	service := NewRunService(env.sessions, domain.DefaultToolResponseLimit, domain.DefaultExpirationThreshold)

	err := service.AppendToPool(context.Background(), "s1", domain.Turn{Type: "bogus", Timestamp: baseTime})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAppendToPool_MissingSession(t *testing.T) {
	env := newTestEnv(t)
	service := NewRunService(env.sessions, domain.DefaultToolResponseLimit, domain.DefaultExpirationThreshold)

	err := service.AppendToPool(context.Background(), "ghost", domain.NewModelResponse("a", baseTime))

	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestExpireOldToolResponses_Persists(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	session := &domain.Session{ID: "s1", CreatedAt: baseTime, Turns: []domain.Turn{
		domain.NewUserTask("u1", baseTime),
		domain.NewToolResponse("read_file", domain.ToolStatusSucceeded, "old body", baseTime.Add(time.Minute)),
		domain.NewUserTask("u2", baseTime.Add(2*time.Minute)),
		domain.NewUserTask("u3", baseTime.Add(3*time.Minute)),
		domain.NewUserTask("u4", baseTime.Add(4*time.Minute)),
	}}
	require.NoError(t, env.sessions.Create(ctx, session))
	service := NewRunService(env.sessions, domain.DefaultToolResponseLimit, 3)

	changed, err := service.ExpireOldToolResponses(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, changed)

	loaded, err := env.sessions.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, domain.ExpiredToolResponseMessage, loaded.Turns[1].Result.Message)

	changed, err = service.ExpireOldToolResponses(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestTurnsForPrompt_IgnoresPool(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.seed(t, "s1", 3)
	service := NewRunService(env.sessions, domain.DefaultToolResponseLimit, domain.DefaultExpirationThreshold)
	require.NoError(t, service.AppendToPool(ctx, "s1", domain.NewModelResponse("pooled", baseTime)))

	turns, err := service.TurnsForPrompt(ctx, "s1")

	require.NoError(t, err)
	assert.Equal(t, []string{"t0", "t1"}, contents(turns))
}
