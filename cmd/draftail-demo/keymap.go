package main

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the demo's own bindings. Everything else goes through the
// editor key binding resolver.
type KeyMap struct {
	Quit    key.Binding
	Paste   key.Binding
	Export  key.Binding
	Indent  key.Binding
	Outdent key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
		Paste:   key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste")),
		Export:  key.NewBinding(key.WithKeys("ctrl+e"), key.WithHelp("ctrl+e", "copy raw JSON")),
		Indent:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "indent")),
		Outdent: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "outdent")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit, k.Paste, k.Export, k.Indent}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Quit, k.Paste, k.Export}, {k.Indent, k.Outdent}}
}
