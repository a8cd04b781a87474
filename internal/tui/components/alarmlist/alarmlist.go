package alarmlist

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/medreminder/internal/models"
)

type AddAlarmMsg struct{}

type EditAlarmMsg struct {
	ID string
}

type DeleteAlarmMsg struct {
	ID string
}

type ToggleAlarmMsg struct {
	ID string
}

type Item struct {
	Alarm models.Alarm
}

func (i Item) Title() string {
	title := "💊 " + i.Alarm.MedicationName
	if i.Alarm.Dose != "" {
		title += " " + i.Alarm.Dose
	}
	if !i.Alarm.Active {
		title = "[PAUSED] " + title
	}
	return title
}

func (i Item) Description() string {
	var flags []string
	if !i.Alarm.SoundEnabled {
		flags = append(flags, "sound off")
	}
	if i.Alarm.SleepHoursEnabled {
		flags = append(flags, fmt.Sprintf("quiet %s-%s", i.Alarm.SleepStartTime, i.Alarm.SleepEndTime))
	}
	desc := i.Alarm.Summary()
	if len(flags) > 0 {
		desc += " (" + strings.Join(flags, ", ") + ")"
	}
	return desc
}

func (i Item) FilterValue() string { return i.Alarm.MedicationName }

type KeyMap struct {
	Add    key.Binding
	Edit   key.Binding
	Delete key.Binding
	Toggle key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e", "enter"),
			key.WithHelp("e", "edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "t"),
			key.WithHelp("space", "on/off"),
		),
	}
}

var (
	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true).
			Padding(1, 2)
)

type Model struct {
	list   list.Model
	keys   KeyMap
	active int
}

func New(alarms []models.Alarm, width, height int) Model {
	l := list.New(toItems(alarms), list.NewDefaultDelegate(), width, height)
	l.Title = "Alarms"
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	// q belongs to the app, not the list
	l.KeyMap.Quit.SetEnabled(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Edit, keys.Toggle, keys.Delete}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Edit, keys.Toggle, keys.Delete}
	}

	return Model{
		list:   l,
		keys:   keys,
		active: countActive(alarms),
	}
}

func toItems(alarms []models.Alarm) []list.Item {
	items := make([]list.Item, len(alarms))
	for i, a := range alarms {
		items[i] = Item{Alarm: a}
	}
	return items
}

func countActive(alarms []models.Alarm) int {
	n := 0
	for _, a := range alarms {
		if a.Active {
			n++
		}
	}
	return n
}

// SetAlarms replaces the rows, keeping the cursor in range
func (m *Model) SetAlarms(alarms []models.Alarm) {
	idx := m.list.Index()
	m.list.SetItems(toItems(alarms))
	if idx >= len(alarms) && len(alarms) > 0 {
		m.list.Select(len(alarms) - 1)
	}
	m.active = countActive(alarms)
}

// Len returns the number of rows
func (m Model) Len() int {
	return len(m.list.Items())
}

// Selected returns the highlighted alarm
func (m Model) Selected() (models.Alarm, bool) {
	item, ok := m.list.SelectedItem().(Item)
	if !ok {
		return models.Alarm{}, false
	}
	return item.Alarm, true
}

// Select moves the cursor to row i
func (m *Model) Select(i int) {
	m.list.Select(i)
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddAlarmMsg{} }
		case key.Matches(msg, m.keys.Edit):
			if a, ok := m.Selected(); ok {
				return m, func() tea.Msg { return EditAlarmMsg{ID: a.ID} }
			}
			return m, nil
		case key.Matches(msg, m.keys.Delete):
			if a, ok := m.Selected(); ok {
				return m, func() tea.Msg { return DeleteAlarmMsg{ID: a.ID} }
			}
			return m, nil
		case key.Matches(msg, m.keys.Toggle):
			if a, ok := m.Selected(); ok {
				return m, func() tea.Msg { return ToggleAlarmMsg{ID: a.ID} }
			}
			return m, nil
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	header := countStyle.Render(fmt.Sprintf("%d Active", m.active))
	if m.Len() == 0 {
		return lipgloss.JoinVertical(lipgloss.Left,
			header,
			emptyStyle.Render("No medications yet. Press 'a' to add one."),
		)
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, m.list.View())
}

func (m *Model) SetSize(width, height int) {
	// one line for the header
	m.list.SetSize(width, max(height-1, 0))
}
