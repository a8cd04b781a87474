package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/medreminder/internal/constants"
)

func (m Model) View() string {
	if m.Quitting {
		return ""
	}

	st := newStyles(m.Dark())

	var content string
	if m.Trigger.Active() {
		content = m.Trigger.View()
	} else {
		switch m.Controller.Screen() {
		case constants.ScreenCreate:
			content = m.viewEditor(st)
		case constants.ScreenSettings:
			content = m.SettingsModel.View()
		default:
			content = docStyle.Render(m.AlarmList.View())
		}
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewHeader(st),
		m.viewTabs(st),
		m.viewNextBanner(st),
		content,
		m.Help.View(m),
	)
}

func (m Model) viewHeader(st styles) string {
	mode := "☀ light"
	if m.Dark() {
		mode = "☾ dark"
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		st.header.Render("💊 "+constants.DisplayName),
		st.headerHint.Render(mode+" (D to switch)"),
	)
}

func (m Model) viewTabs(st styles) string {
	titles := map[constants.Screen]string{
		constants.ScreenHome:     "Home",
		constants.ScreenCreate:   "Add",
		constants.ScreenSettings: "Settings",
	}
	if _, editing := m.Controller.Editing(); editing {
		titles[constants.ScreenCreate] = "Edit"
	}

	var tabs []string
	for _, s := range constants.Screens {
		if m.Controller.Screen() == s {
			tabs = append(tabs, st.activeTab.Render(titles[s]))
		} else {
			tabs = append(tabs, st.inactiveTab.Render(titles[s]))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewNextBanner(st styles) string {
	next, ok := m.Controller.NextUpcoming()
	if !ok {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		st.banner.Render("Next: "+next.MedicationName),
		st.bannerSub.Render(next.Summary()),
	)
}

func (m Model) viewEditor(st styles) string {
	if m.Form == nil || m.AlarmForm == nil {
		return ""
	}
	parts := []string{st.formTitle.Render(m.AlarmForm.Title())}
	if m.FormError != "" {
		parts = append(parts, dangerStyle.Render(m.FormError))
	}
	parts = append(parts, m.Form.View())
	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}
