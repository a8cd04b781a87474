package trigger

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/medreminder/internal/constants"
	"github.com/julianstephens/medreminder/internal/models"
)

// RespondMsg carries the user's answer to the alarm on screen
type RespondMsg struct {
	Action constants.TriggerAction
	Note   string
}

type KeyMap struct {
	Take      key.Binding
	Snooze    key.Binding
	Skip      key.Binding
	Note      key.Binding
	LeaveNote key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Take: key.NewBinding(
			key.WithKeys("1", "t"),
			key.WithHelp("1/t", "take"),
		),
		Snooze: key.NewBinding(
			key.WithKeys("2", "s"),
			key.WithHelp("2/s", "snooze"),
		),
		Skip: key.NewBinding(
			key.WithKeys("3", "k"),
			key.WithHelp("3/k", "skip"),
		),
		Note: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "add note"),
		),
		LeaveNote: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "done"),
		),
	}
}

var (
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("205")).
			Padding(1, 3)

	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	nameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("255"))

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Italic(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// Model is the modal shown while an alarm is firing
type Model struct {
	alarm  *models.Alarm
	note   textarea.Model
	keys   KeyMap
	now    func() time.Time
	width  int
	height int
}

func New() Model {
	ta := textarea.New()
	ta.Placeholder = "Add a note (optional)"
	ta.ShowLineNumbers = false
	ta.CharLimit = 280
	ta.SetWidth(40)
	ta.SetHeight(3)

	return Model{
		note: ta,
		keys: DefaultKeyMap(),
		now:  time.Now,
	}
}

// SetClock overrides the time used for the sleep-hours hint
func (m *Model) SetClock(now func() time.Time) {
	m.now = now
}

// SetAlarm shows a for a fresh response with an empty note
func (m *Model) SetAlarm(a models.Alarm) {
	m.alarm = &a
	m.note.Reset()
	m.note.Blur()
}

// Clear hides the overlay
func (m *Model) Clear() {
	m.alarm = nil
	m.note.Reset()
	m.note.Blur()
}

// Showing reports whether the overlay is showing the alarm with id
func (m Model) Showing(id string) bool {
	return m.alarm != nil && m.alarm.ID == id
}

// Active reports whether any alarm is on screen
func (m Model) Active() bool {
	return m.alarm != nil
}

// typing reports whether the note has focus
func (m Model) typing() bool {
	return m.note.Focused()
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.alarm == nil {
		return m, nil
	}

	keyMsg, isKey := msg.(tea.KeyMsg)
	if m.typing() {
		if isKey && key.Matches(keyMsg, m.keys.LeaveNote) {
			m.note.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.note, cmd = m.note.Update(msg)
		return m, cmd
	}

	if !isKey {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Take):
		return m, m.respond(constants.ActionTake)
	case key.Matches(keyMsg, m.keys.Snooze):
		return m, m.respond(constants.ActionSnooze)
	case key.Matches(keyMsg, m.keys.Skip):
		return m, m.respond(constants.ActionSkip)
	case key.Matches(keyMsg, m.keys.Note):
		return m, m.note.Focus()
	}
	return m, nil
}

func (m Model) respond(action constants.TriggerAction) tea.Cmd {
	note := m.note.Value()
	return func() tea.Msg {
		return RespondMsg{Action: action, Note: note}
	}
}

// Hints lists the conditions that change how the alarm sounds right now
func (m Model) Hints() []string {
	if m.alarm == nil {
		return nil
	}
	var hints []string
	if m.alarm.IsSilencedAt(m.now()) {
		hints = append(hints, "silenced (sleep hours)")
	}
	if !m.alarm.SoundEnabled {
		hints = append(hints, "sound off")
	}
	return hints
}

func (m Model) View() string {
	if m.alarm == nil {
		return ""
	}

	title := m.alarm.MedicationName
	if m.alarm.Dose != "" {
		title += " " + m.alarm.Dose
	}

	lines := []string{
		headingStyle.Render("⏰ Time for your medication"),
		"",
		nameStyle.Render(title),
		mutedStyle.Render(m.alarm.Summary()),
	}
	if hints := m.Hints(); len(hints) > 0 {
		lines = append(lines, hintStyle.Render(strings.Join(hints, " • ")))
	}
	lines = append(lines,
		"",
		m.note.View(),
		"",
		fmt.Sprintf("[1] Take   [2] Snooze   [3] Skip   %s",
			mutedStyle.Render("n: note")),
	)

	box := boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
	if m.width == 0 || m.height == 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.note.SetWidth(min(40, max(width-12, 10)))
}
