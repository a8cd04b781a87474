package settings

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/medreminder/internal/constants"
	"github.com/julianstephens/medreminder/internal/models"
)

// UpdateSettingsMsg carries the full settings record after a change
type UpdateSettingsMsg struct {
	Settings models.AppSettings
}

// Row identifies one line of the settings screen
type Row int

const (
	RowVolume Row = iota
	RowTone
	RowDarkMode
	RowOfflineMode
	RowBatteryOptimization
	rowCount
)

type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Increase key.Binding
	Decrease key.Binding
	Toggle   key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Increase: key.NewBinding(
			key.WithKeys("right", "l", "+"),
			key.WithHelp("→/+", "increase"),
		),
		Decrease: key.NewBinding(
			key.WithKeys("left", "h", "-"),
			key.WithHelp("←/-", "decrease"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "toggle"),
		),
	}
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Width(24)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Bold(true)

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	sectionStyle = lipgloss.NewStyle().
			MarginTop(1).
			MarginBottom(1)
)

type Model struct {
	settings models.AppSettings
	keys     KeyMap
	cursor   Row
	width    int
	height   int
}

func New(settings models.AppSettings, width, height int) Model {
	return Model{
		settings: settings,
		keys:     DefaultKeyMap(),
		width:    width,
		height:   height,
	}
}

func (m *Model) SetSettings(settings models.AppSettings) {
	m.settings = settings
}

// Cursor returns the selected row
func (m Model) Cursor() Row {
	return m.cursor
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < rowCount-1 {
			m.cursor++
		}
		return m, nil
	case key.Matches(keyMsg, m.keys.Increase):
		return m, m.adjust(1)
	case key.Matches(keyMsg, m.keys.Decrease):
		return m, m.adjust(-1)
	case key.Matches(keyMsg, m.keys.Toggle):
		return m, m.adjust(0)
	}
	return m, nil
}

// adjust computes the new settings for the selected row. dir is the arrow
// direction, or 0 for toggle. Volume only moves with the arrows.
func (m Model) adjust(dir int) tea.Cmd {
	next := m.settings
	switch m.cursor {
	case RowVolume:
		if dir == 0 {
			return nil
		}
		next = next.WithVolumeDelta(dir)
	case RowTone:
		if dir == 0 {
			dir = 1
		}
		next = next.WithToneOffset(dir)
	case RowDarkMode:
		next.DarkMode = !next.DarkMode
	case RowOfflineMode:
		next.OfflineMode = !next.OfflineMode
	case RowBatteryOptimization:
		next.BatteryOptimization = !next.BatteryOptimization
	}
	if next == m.settings {
		return nil
	}
	return func() tea.Msg { return UpdateSettingsMsg{Settings: next} }
}

func onOff(b bool) string {
	if b {
		return "On"
	}
	return "Off"
}

// VolumeBar renders the volume as a ten-cell bar
func VolumeBar(volume int) string {
	filled := volume / constants.VolumeStep
	return fmt.Sprintf("%s%s %d%%",
		strings.Repeat("█", filled),
		strings.Repeat("░", constants.MaxVolume/constants.VolumeStep-filled),
		volume)
}

func (m Model) row(r Row, label, value string) string {
	cursor := "  "
	if m.cursor == r {
		cursor = cursorStyle.Render("> ")
	}
	return cursor + labelStyle.Render(label) + " " + valueStyle.Render(value)
}

func (m Model) View() string {
	if m.width == 0 {
		return ""
	}

	var sections []string

	soundTitle := titleStyle.Render("Sound")
	soundContent := lipgloss.JoinVertical(
		lipgloss.Left,
		m.row(RowVolume, "Volume:", VolumeBar(m.settings.Volume)),
		m.row(RowTone, "Alarm Tone:", "◀ "+string(m.settings.AlarmTone)+" ▶"),
	)
	sections = append(sections, sectionStyle.Render(soundTitle+"\n"+soundContent))

	appTitle := titleStyle.Render("App")
	appContent := lipgloss.JoinVertical(
		lipgloss.Left,
		m.row(RowDarkMode, "Dark Mode:", onOff(m.settings.DarkMode)),
		m.row(RowOfflineMode, "Offline Mode:", onOff(m.settings.OfflineMode)),
		m.row(RowBatteryOptimization, "Battery Optimization:", onOff(m.settings.BatteryOptimization)),
	)
	sections = append(sections, sectionStyle.Render(appTitle+"\n"+appContent))

	helpText := lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Italic(true).
		MarginTop(1).
		Render("↑/↓ select • ←/→ adjust • space toggle")
	sections = append(sections, helpText)

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Left,
		lipgloss.Top,
		lipgloss.NewStyle().Padding(1, 4).Render(content),
	)
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}
