package theme

import "github.com/charmbracelet/lipgloss"

// Main UI styles
var (
	ErrorStyle  = lipgloss.NewStyle().Foreground(ColorError).Bold(true)
	HelpStyle   = lipgloss.NewStyle().Foreground(ColorMuted)
	LabelStyle  = lipgloss.NewStyle().Foreground(ColorSubtle)
	MutedStyle  = lipgloss.NewStyle().Foreground(ColorMuted)
	NormalStyle = lipgloss.NewStyle().Foreground(ColorNormal)
	TitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)
)

// Turn styles, keyed by the label printed before each turn
var (
	CompressedStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorCompressed)
	FunctionStyle   = lipgloss.NewStyle().Bold(true).Foreground(ColorFunction)
	ModelStyle      = lipgloss.NewStyle().Bold(true).Foreground(ColorModel)
	PoolStyle       = lipgloss.NewStyle().Bold(true).Foreground(ColorPool)
	ToolStyle       = lipgloss.NewStyle().Bold(true).Foreground(ColorTool)
	UserStyle       = lipgloss.NewStyle().Bold(true).Foreground(ColorUser)
)

// Session tree styles
var (
	TreeEnumeratorStyle = lipgloss.NewStyle().Foreground(ColorMuted).MarginRight(1)
	TreeItemStyle       = lipgloss.NewStyle().Foreground(ColorNormal)
	TreeRootStyle       = lipgloss.NewStyle().Bold(true).Foreground(ColorSecondary)
)
