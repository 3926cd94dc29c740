package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Next    key.Binding
	Prev    key.Binding
	Submit  key.Binding
	Clear   key.Binding
	Samples key.Binding
	Delete  key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		Prev:    key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
		Submit:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add book")),
		Clear:   key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "clear")),
		Samples: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "add samples")),
		Delete:  key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "delete row")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Submit, k.Clear, k.Samples, k.Delete, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp(), {k.Prev}}
}
