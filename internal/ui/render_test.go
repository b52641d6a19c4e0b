package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/s-age/pipe-sub004/internal/domain"
)

var baseTime = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func sampleSession() *domain.Session {
	return &domain.Session{
		ID:      "s1",
		Purpose: "refactor",
		Pools:   []domain.Turn{domain.NewModelResponse("thinking", baseTime)},
		Turns: []domain.Turn{
			domain.NewUserTask("fix the bug", baseTime),
			domain.NewFunctionCalling(`read_file({"path":"a.go"})`, baseTime),
			domain.NewToolResponse("read_file", domain.ToolStatusSucceeded, "package a", baseTime),
			domain.NewCompressedHistory("earlier work", 0, 4, baseTime),
		},
	}
}

func TestRenderSession(t *testing.T) {
	out := RenderSession(sampleSession())

	assert.Contains(t, out, "#0")
	assert.Contains(t, out, "fix the bug")
	assert.Contains(t, out, `read_file({"path":"a.go"})`)
	assert.Contains(t, out, "read_file [succeeded] package a")
	assert.Contains(t, out, "(turns 0-4) earlier work")
	assert.Contains(t, out, "pool: 1 uncommitted")
	assert.Contains(t, out, "+0")
	assert.Contains(t, out, "thinking")
}

func TestRenderSession_NoPool(t *testing.T) {
	session := sampleSession()
	session.Pools = nil

	assert.NotContains(t, RenderSession(session), "uncommitted")
}
