package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/medreminder/internal/constants"
	"github.com/julianstephens/medreminder/internal/tui/handlers"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Help.Width = msg.Width
		m.resize()
		return m, nil
	case tea.KeyMsg:
		if handled, cmd := handlers.HandleGlobalKeys(&m.Model, msg); handled {
			if m.Form != nil {
				m.resize()
			}
			return m, cmd
		}
	}

	if handled, cmd := handlers.HandleTriggerMessages(&m.Model, msg); handled {
		return m, cmd
	}
	if handled, cmd := handlers.HandleAlarmMessages(&m.Model, msg); handled {
		if m.Form != nil {
			m.resize()
		}
		return m, cmd
	}
	if handled, cmd := handlers.HandleSettingsMessages(&m.Model, msg); handled {
		return m, cmd
	}

	var cmd tea.Cmd

	// The overlay is modal
	if m.Trigger.Active() {
		m.Trigger, cmd = m.Trigger.Update(msg)
		return m, cmd
	}

	switch m.Controller.Screen() {
	case constants.ScreenCreate:
		cmd = handlers.HandleEditorState(&m.Model, msg)
	case constants.ScreenSettings:
		m.SettingsModel, cmd = m.SettingsModel.Update(msg)
	default:
		m.AlarmList, cmd = m.AlarmList.Update(msg)
	}
	return m, cmd
}
