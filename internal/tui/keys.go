package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Open      key.Binding
	Save      key.Binding
	ExportSVG key.Binding
	ExportPNG key.Binding
	Theme     key.Binding
	Diff      key.Binding
	Help      key.Binding
	Quit      key.Binding
	FocusNext key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Open:      key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "open")),
		Save:      key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		ExportSVG: key.NewBinding(key.WithKeys("ctrl+e"), key.WithHelp("ctrl+e", "export svg")),
		ExportPNG: key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "export png")),
		Theme:     key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "theme")),
		Diff:      key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "unsaved changes")),
		Help:      key.NewBinding(key.WithKeys("ctrl+h"), key.WithHelp("ctrl+h", "help")),
		Quit:      key.NewBinding(key.WithKeys("ctrl+q", "ctrl+c"), key.WithHelp("ctrl+q", "quit")),
		FocusNext: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch pane")),
	}
}
