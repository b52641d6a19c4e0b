package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/s-age/pipe-sub004/internal/domain"
	"github.com/s-age/pipe-sub004/internal/theme"
)

const timeLayout = "15:04:05"

// RenderSession formats the turn log of a session followed by its
// uncommitted pool
func RenderSession(session *domain.Session) string {
	var b strings.Builder
	for i, turn := range session.Turns {
		writeTurn(&b, fmt.Sprintf("#%d", i), turn)
	}

	if len(session.Pools) > 0 {
		b.WriteString(theme.PoolStyle.Render(fmt.Sprintf("── pool: %d uncommitted ──", len(session.Pools))))
		b.WriteString("\n")
		for i, turn := range session.Pools {
			writeTurn(&b, fmt.Sprintf("+%d", i), turn)
		}
	}
	return b.String()
}

func writeTurn(b *strings.Builder, position string, turn domain.Turn) {
	label, style := turnLabel(turn)
	fmt.Fprintf(b, "%s %s %s\n",
		theme.MutedStyle.Render(position),
		style.Render(label),
		theme.MutedStyle.Render(turn.Timestamp.Local().Format(timeLayout)),
	)
	for _, line := range strings.Split(strings.TrimRight(turnBody(turn), "\n"), "\n") {
		b.WriteString("  ")
		b.WriteString(theme.NormalStyle.Render(line))
		b.WriteString("\n")
	}
}

func turnLabel(turn domain.Turn) (string, lipgloss.Style) {
	switch turn.Type {
	case domain.TurnUserTask:
		return "user", theme.UserStyle
	case domain.TurnModelResponse:
		return "model", theme.ModelStyle
	case domain.TurnFunctionCalling:
		return "call", theme.FunctionStyle
	case domain.TurnToolResponse:
		return "tool", theme.ToolStyle
	case domain.TurnCompressedHistory:
		return "summary", theme.CompressedStyle
	}
	return string(turn.Type), theme.LabelStyle
}

func turnBody(turn domain.Turn) string {
	switch turn.Type {
	case domain.TurnUserTask:
		return turn.Instruction
	case domain.TurnFunctionCalling:
		return turn.Response
	case domain.TurnToolResponse:
		return fmt.Sprintf("%s [%s] %s", turn.Name, turn.Result.Status, turn.Result.Message)
	case domain.TurnCompressedHistory:
		return fmt.Sprintf("(turns %d-%d) %s", turn.OriginalTurnsRange[0], turn.OriginalTurnsRange[1], turn.Content)
	}
	return turn.Content
}
