package state

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/medreminder/internal/controller"
	"github.com/julianstephens/medreminder/internal/tui/components/alarmlist"
	"github.com/julianstephens/medreminder/internal/tui/components/settings"
	"github.com/julianstephens/medreminder/internal/tui/components/trigger"
)

// Model represents the shared state for the TUI. Alarms, settings and
// navigation live in the controller; everything here is presentation.
type Model struct {
	Ctx           context.Context
	Controller    *controller.Controller
	Keys          KeyMap
	Help          help.Model
	AlarmList     alarmlist.Model
	Trigger       trigger.Model
	SettingsModel settings.Model
	Form          *huh.Form
	AlarmForm     *AlarmFormModel
	DemoSignal    chan struct{} // one-slot handoff from the demo timer
	Quitting      bool
	Width         int
	Height        int
	FormError     string // Error message to display for form operations
}

// New creates a state Model over ctrl with components seeded from it
func New(ctx context.Context, ctrl *controller.Controller) Model {
	overlay := trigger.New()
	overlay.SetClock(ctrl.Now)
	return Model{
		Ctx:           ctx,
		Controller:    ctrl,
		Keys:          DefaultKeyMap(),
		Help:          help.New(),
		AlarmList:     alarmlist.New(ctrl.Alarms(), 0, 0),
		Trigger:       overlay,
		SettingsModel: settings.New(ctrl.Settings(), 0, 0),
	}
}

// Sync pushes the controller's current state into the components
func (m *Model) Sync() {
	m.AlarmList.SetAlarms(m.Controller.Alarms())
	m.SettingsModel.SetSettings(m.Controller.Settings())
	if a, ok := m.Controller.Triggering(); ok {
		if !m.Trigger.Showing(a.ID) {
			m.Trigger.SetAlarm(a)
		}
	} else {
		m.Trigger.Clear()
	}
}

// Dark reports whether the dark palette is selected
func (m *Model) Dark() bool {
	return m.Controller.Settings().DarkMode
}
