package handlers

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/medreminder/internal/constants"
	"github.com/julianstephens/medreminder/internal/tui/state"
)

// HandleGlobalKeys handles key presses that work across screens. While the
// trigger overlay is up only ctrl+c is global; in the editor the letter
// keys belong to the form.
func HandleGlobalKeys(m *state.Model, msg tea.KeyMsg) (bool, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.Quitting = true
		return true, tea.Quit
	}
	if m.Trigger.Active() {
		return false, nil
	}

	switch {
	case key.Matches(msg, m.Keys.Home):
		return true, SelectScreen(m, constants.ScreenHome)
	case key.Matches(msg, m.Keys.Create):
		return true, SelectScreen(m, constants.ScreenCreate)
	case key.Matches(msg, m.Keys.Settings):
		return true, SelectScreen(m, constants.ScreenSettings)
	}

	if m.Controller.Screen() == constants.ScreenCreate {
		return false, nil
	}

	switch {
	case key.Matches(msg, m.Keys.Quit):
		m.Quitting = true
		return true, tea.Quit
	case key.Matches(msg, m.Keys.Help):
		m.Help.ShowAll = !m.Help.ShowAll
		return true, nil
	case key.Matches(msg, m.Keys.DarkMode):
		ToggleDarkMode(m)
		return true, nil
	case key.Matches(msg, m.Keys.Tab):
		return true, SelectScreen(m, cycleScreen(m.Controller.Screen(), 1))
	case key.Matches(msg, m.Keys.ShiftTab):
		return true, SelectScreen(m, cycleScreen(m.Controller.Screen(), -1))
	}
	return false, nil
}

// cycleScreen returns the tab dir positions away from s, wrapping
func cycleScreen(s constants.Screen, dir int) constants.Screen {
	n := len(constants.Screens)
	for i, screen := range constants.Screens {
		if screen == s {
			return constants.Screens[((i+dir)%n+n)%n]
		}
	}
	return constants.ScreenHome
}
