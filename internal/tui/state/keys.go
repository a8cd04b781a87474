package state

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the bindings that work across screens
type KeyMap struct {
	Quit     key.Binding
	Help     key.Binding
	Tab      key.Binding
	ShiftTab key.Binding
	Home     key.Binding
	Create   key.Binding
	Settings key.Binding
	DarkMode key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next tab"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev tab"),
		),
		Home: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "alarms"),
		),
		Create: key.NewBinding(
			key.WithKeys("f2"),
			key.WithHelp("f2", "add"),
		),
		Settings: key.NewBinding(
			key.WithKeys("f3"),
			key.WithHelp("f3", "settings"),
		),
		DarkMode: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "dark mode"),
		),
	}
}
