package shell

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the shell keybindings.
type KeyMap struct {
	// Submit runs the current line.
	Submit key.Binding

	// Complete expands the current line to a known command.
	Complete key.Binding

	// Prev recalls the previous history entry.
	Prev key.Binding

	// Next recalls the next history entry.
	Next key.Binding

	// Clear empties the current line.
	Clear key.Binding

	// Quit leaves the shell.
	Quit key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "run"),
		),
		Complete: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "complete"),
		),
		Prev: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑", "history"),
		),
		Next: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓", "history"),
		),
		Clear: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+d"),
			key.WithHelp("ctrl+d", "quit"),
		),
	}
}

// ShortHelp returns the bindings shown under the prompt.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Complete, k.Prev, k.Clear, k.Quit}
}
