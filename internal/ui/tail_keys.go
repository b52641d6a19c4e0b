package ui

import "github.com/charmbracelet/bubbles/key"

// TailKeyMap holds the key bindings of the tail view
type TailKeyMap struct {
	Down   key.Binding
	Follow key.Binding
	Quit   key.Binding
	Up     key.Binding
}

func newTailKeyMap() TailKeyMap {
	return TailKeyMap{
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Follow: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "follow (on)"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
	}
}

// setFollow keeps the help text in sync with the follow mode
func (k *TailKeyMap) setFollow(on bool) {
	state := "off"
	if on {
		state = "on"
	}
	k.Follow.SetHelp("f", "follow ("+state+")")
}

// ShortHelp implements help.KeyMap
func (k TailKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Follow, k.Quit}
}

// FullHelp implements help.KeyMap
func (k TailKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
