package bubbletea

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the block player.
type KeyMap struct {
	Replay   key.Binding
	Uncreate key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Replay: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "replay"),
		),
		Uncreate: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "uncreate"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}
