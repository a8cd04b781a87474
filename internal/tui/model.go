package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/medreminder/internal/constants"
	"github.com/julianstephens/medreminder/internal/controller"
	"github.com/julianstephens/medreminder/internal/tui/components/alarmlist"
	"github.com/julianstephens/medreminder/internal/tui/components/settings"
	"github.com/julianstephens/medreminder/internal/tui/components/trigger"
	"github.com/julianstephens/medreminder/internal/tui/handlers"
	"github.com/julianstephens/medreminder/internal/tui/state"
)

// Options controls the optional behavior of the TUI
type Options struct {
	DemoEnabled bool
	DemoDelay   time.Duration
}

type Model struct {
	state.Model
	opts Options
}

func NewModel(ctx context.Context, ctrl *controller.Controller, opts Options) Model {
	if ctx == nil {
		ctx = context.Background()
	}
	m := Model{
		Model: state.New(ctx, ctrl),
		opts:  opts,
	}
	m.DemoSignal = make(chan struct{}, 1)
	return m
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.Keys.Tab, m.Keys.Quit, m.Keys.Help}
	if m.Trigger.Active() {
		tk := trigger.DefaultKeyMap()
		return []key.Binding{tk.Take, tk.Snooze, tk.Skip, tk.Note}
	}
	switch m.Controller.Screen() {
	case constants.ScreenHome:
		lk := alarmlist.DefaultKeyMap()
		keys = append(keys, lk.Add, lk.Edit, lk.Toggle, lk.Delete)
	case constants.ScreenCreate:
		keys = []key.Binding{m.Keys.Home, m.Keys.Settings}
	case constants.ScreenSettings:
		sk := settings.DefaultKeyMap()
		keys = append(keys, sk.Increase, sk.Decrease, sk.Toggle)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.Keys.Tab, m.Keys.ShiftTab, m.Keys.Quit, m.Keys.Help, m.Keys.DarkMode}
	navigation := []key.Binding{m.Keys.Home, m.Keys.Create, m.Keys.Settings}

	var actions []key.Binding
	switch m.Controller.Screen() {
	case constants.ScreenHome:
		lk := alarmlist.DefaultKeyMap()
		actions = []key.Binding{lk.Add, lk.Edit, lk.Toggle, lk.Delete}
	case constants.ScreenSettings:
		sk := settings.DefaultKeyMap()
		actions = []key.Binding{sk.Up, sk.Down, sk.Increase, sk.Decrease, sk.Toggle}
	}

	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	if !m.opts.DemoEnabled {
		return nil
	}
	delay := m.opts.DemoDelay
	if delay <= 0 {
		delay = constants.DefaultDemoTriggerDelay
	}
	// the signal channel is shared by every copy of the model
	return handlers.ArmDemoTrigger(&m.Model, delay)
}

// resize hands the space below the chrome to the components
func (m *Model) resize() {
	h := max(m.Height-chromeHeight, 0)
	w := max(m.Width-4, 0)
	m.AlarmList.SetSize(w, h)
	m.SettingsModel.SetSize(w, h)
	m.Trigger.SetSize(m.Width, h)
	if m.Form != nil {
		m.Form = m.Form.WithWidth(w)
	}
}
