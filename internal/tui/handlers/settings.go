package handlers

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/medreminder/internal/logger"
	"github.com/julianstephens/medreminder/internal/tui/components/settings"
	"github.com/julianstephens/medreminder/internal/tui/state"
)

// HandleSettingsMessages handles messages from the settings component
func HandleSettingsMessages(m *state.Model, msg tea.Msg) (bool, tea.Cmd) {
	switch msg := msg.(type) {
	case settings.UpdateSettingsMsg:
		if err := m.Controller.UpdateSettings(msg.Settings); err != nil {
			logger.Warn("settings update rejected", "error", err)
		}
		m.Sync()
		return true, nil
	}
	return false, nil
}

// ToggleDarkMode flips the dark mode setting from anywhere in the app
func ToggleDarkMode(m *state.Model) {
	s := m.Controller.Settings()
	s.DarkMode = !s.DarkMode
	if err := m.Controller.UpdateSettings(s); err != nil {
		logger.Warn("dark mode toggle rejected", "error", err)
		return
	}
	m.Sync()
}
