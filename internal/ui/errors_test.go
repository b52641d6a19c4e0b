package ui

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatErrorLine(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		width    int
		expected string
	}{
		{"nil", nil, 20, ""},
		{"fits", errors.New("boom"), 20, "Error: boom"},
		{"no width", errors.New("a long message"), 0, "Error: a long message"},
		{"collapses newlines", errors.New("first\n  second"), 0, "Error: first second"},
		{"truncated", errors.New("session file is locked"), 16, "Error: sessio..."},
		{"empty", errors.New(""), 0, "Error: unknown error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatErrorLine(tt.err, tt.width))
		})
	}
}
