package handlers

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/medreminder/internal/tui/components/alarmlist"
	"github.com/julianstephens/medreminder/internal/tui/state"
)

// HandleAlarmMessages handles messages from the alarm list component
func HandleAlarmMessages(m *state.Model, msg tea.Msg) (bool, tea.Cmd) {
	switch msg := msg.(type) {
	case alarmlist.AddAlarmMsg:
		m.Controller.BeginCreate()
		return true, OpenAlarmForm(m, nil)

	case alarmlist.EditAlarmMsg:
		a, ok := m.Controller.Alarm(msg.ID)
		if !ok {
			return true, nil
		}
		m.Controller.BeginEdit(a)
		return true, OpenAlarmForm(m, &a)

	case alarmlist.DeleteAlarmMsg:
		m.Controller.DeleteAlarm(msg.ID)
		m.Sync()
		return true, nil

	case alarmlist.ToggleAlarmMsg:
		m.Controller.ToggleAlarm(msg.ID)
		m.Sync()
		return true, nil
	}
	return false, nil
}
