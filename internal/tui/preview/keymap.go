package preview

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the preview.
type KeyMap struct {
	ZoomIn  key.Binding
	ZoomOut key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the default key bindings for the preview.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		ZoomIn: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "zoom in"),
		),
		ZoomOut: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "zoom out"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the short help bindings for the preview.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ZoomIn, k.ZoomOut, k.Quit}
}

// FullHelp returns the full help bindings for the preview.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.ZoomIn, k.ZoomOut, k.Quit},
	}
}
