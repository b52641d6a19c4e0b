package ui

import (
	"strings"
	"unicode/utf8"
)

const (
	errorPrefix    = "Error: "
	truncationMark = "..."
)

// formatErrorLine renders err on a single line of at most maxWidth runes so
// the tail header keeps its height. maxWidth <= 0 disables truncation.
func formatErrorLine(err error, maxWidth int) string {
	if err == nil {
		return ""
	}

	message := strings.Join(strings.Fields(err.Error()), " ")
	if message == "" {
		message = "unknown error"
	}
	line := errorPrefix + message

	if maxWidth <= 0 || utf8.RuneCountInString(line) <= maxWidth {
		return line
	}
	keep := max(maxWidth-utf8.RuneCountInString(truncationMark), 0)
	return string([]rune(line)[:keep]) + truncationMark
}
