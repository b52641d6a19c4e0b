package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s-age/pipe-sub004/internal/domain"
)

func TestAddReference(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.seed(t, "s1", 1)
	service := NewReferenceService(env.sessions, t.TempDir(), 3)

	added, err := service.AddReference(ctx, "s1", "./src/a.py")
	require.NoError(t, err)
	assert.True(t, added)

	added, err = service.AddReference(ctx, "s1", "src/a.py")
	require.NoError(t, err)
	assert.False(t, added)

	_, err = service.AddReference(ctx, "s1", "")
	assert.ErrorIs(t, err, domain.ErrValidation)

	refs, err := service.ListReferences(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, refs, 1)
	assert.Equal(t, "src/a.py", refs[0].Path)
	assert.Equal(t, 3, *refs[0].TTL)
}

func TestDecrementAllTTL_DisablesAfterTTLTicks(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.seed(t, "s1", 1)
	service := NewReferenceService(env.sessions, t.TempDir(), 2)
	_, err := service.AddReference(ctx, "s1", "a.py")
	require.NoError(t, err)

	require.NoError(t, service.DecrementAllTTL(ctx, "s1"))
	require.NoError(t, service.DecrementAllTTL(ctx, "s1"))
	require.NoError(t, service.DecrementAllTTL(ctx, "s1"))

	refs, err := service.ListReferences(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, refs, 1)
	assert.True(t, refs[0].Disabled)
	assert.Equal(t, 0, *refs[0].TTL)
}

func TestReferenceTTLAndToggle(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.seed(t, "s1", 1)
	service := NewReferenceService(env.sessions, t.TempDir(), 3)
	_, err := service.AddReference(ctx, "s1", "a.py")
	require.NoError(t, err)

	require.NoError(t, service.UpdateReferenceTTL(ctx, "s1", "a.py", 9))
	disabled, err := service.ToggleReferenceDisabled(ctx, "s1", "a.py")
	require.NoError(t, err)
	assert.True(t, disabled)

	err = service.UpdateReferenceTTL(ctx, "s1", "missing.py", 1)
	assert.ErrorIs(t, err, domain.ErrReferenceNotFound)

	require.NoError(t, service.RemoveReference(ctx, "s1", "a.py"))
	refs, err := service.ListReferences(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, refs)
}

func TestReferencesForPrompt_OnlyReadableFilesInsideRoot(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.seed(t, "s1", 1)

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "pkg"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "inside.txt"), []byte("inside"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "pkg", "nested.go"), []byte("package pkg"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "disabled.txt"), []byte("disabled"), 0644))
	outside := filepath.Join(t.TempDir(), "outside.txt")
	require.NoError(t, os.WriteFile(outside, []byte("outside"), 0644))

	service := NewReferenceService(env.sessions, root, 3)
	for _, path := range []string{
		"inside.txt",
		filepath.Join(root, "pkg", "nested.go"),
		"disabled.txt",
		"missing.txt",
		outside,
		"../escape.txt",
		"pkg",
	} {
		_, err := service.AddReference(ctx, "s1", path)
		require.NoError(t, err)
	}
	_, err := service.ToggleReferenceDisabled(ctx, "s1", "disabled.txt")
	require.NoError(t, err)

	seq, err := service.ReferencesForPrompt(ctx, "s1")
	require.NoError(t, err)

	got := map[string]string{}
	for ref := range seq {
		got[ref.Path] = ref.Content
	}
	assert.Len(t, got, 2)
	assert.Equal(t, "inside", got["inside.txt"])
	assert.Equal(t, "package pkg", got[filepath.Join(root, "pkg", "nested.go")])
}

func TestReferencesForPrompt_StopsEarly(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.seed(t, "s1", 1)
	root := t.TempDir()
	service := NewReferenceService(env.sessions, root, 3)
	for _, name := range []string{"a.txt", "b.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(root, name), []byte(name), 0644))
		_, err := service.AddReference(ctx, "s1", name)
		require.NoError(t, err)
	}

	seq, err := service.ReferencesForPrompt(ctx, "s1")
	require.NoError(t, err)

	count := 0
	for range seq {
		count++
		break
	}
	assert.Equal(t, 1, count)
}

func TestReferencesForPrompt_MissingSession(t *testing.T) {
	env := newTestEnv(t)
	service := NewReferenceService(env.sessions, t.TempDir(), 3)

	_, err := service.ReferencesForPrompt(context.Background(), "ghost")

	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestRelativeToRoot(t *testing.T) {
	root := filepath.FromSlash("/project")

	rel, ok := relativeToRoot(root, "a/b.go")
	assert.True(t, ok)
	assert.Equal(t, filepath.FromSlash("a/b.go"), rel)

	_, ok = relativeToRoot(root, filepath.FromSlash("/project"))
	assert.False(t, ok)
	_, ok = relativeToRoot(root, filepath.FromSlash("/projectx/a.go"))
	assert.False(t, ok)
	_, ok = relativeToRoot(root, "../a.go")
	assert.False(t, ok)
}
