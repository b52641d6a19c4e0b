package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/s-age/pipe-sub004/internal/domain"
)

func TestParseTodo(t *testing.T) {
	tests := []struct {
		input    string
		expected domain.TodoItem
	}{
		{"write tests", domain.TodoItem{Title: "write tests"}},
		{"[x] ship it", domain.TodoItem{Checked: true, Title: "ship it"}},
		{"docs: update the README", domain.TodoItem{Description: "update the README", Title: "docs"}},
		{"  [x]  release:  tag v1 ", domain.TodoItem{Checked: true, Description: "tag v1", Title: "release"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseTodo(tt.input))
		})
	}
}
