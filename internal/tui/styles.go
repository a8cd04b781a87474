package tui

import "github.com/charmbracelet/lipgloss"

// chromeHeight is the number of lines taken by the header, tabs, banner and help
const chromeHeight = 8

type palette struct {
	accent     lipgloss.Color
	text       lipgloss.Color
	muted      lipgloss.Color
	tabBg      lipgloss.Color
	bannerBg   lipgloss.Color
	bannerText lipgloss.Color
}

var (
	lightPalette = palette{
		accent:     lipgloss.Color("162"),
		text:       lipgloss.Color("235"),
		muted:      lipgloss.Color("244"),
		tabBg:      lipgloss.Color("254"),
		bannerBg:   lipgloss.Color("153"),
		bannerText: lipgloss.Color("17"),
	}

	darkPalette = palette{
		accent:     lipgloss.Color("205"),
		text:       lipgloss.Color("255"),
		muted:      lipgloss.Color("240"),
		tabBg:      lipgloss.Color("236"),
		bannerBg:   lipgloss.Color("24"),
		bannerText: lipgloss.Color("255"),
	}

	dangerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	docStyle = lipgloss.NewStyle().Padding(1, 2)
)

type styles struct {
	header      lipgloss.Style
	headerHint  lipgloss.Style
	activeTab   lipgloss.Style
	inactiveTab lipgloss.Style
	banner      lipgloss.Style
	bannerSub   lipgloss.Style
	formTitle   lipgloss.Style
}

func newStyles(dark bool) styles {
	p := lightPalette
	if dark {
		p = darkPalette
	}
	return styles{
		header: lipgloss.NewStyle().
			Foreground(p.accent).
			Bold(true).
			Padding(0, 1),
		headerHint: lipgloss.NewStyle().
			Foreground(p.muted).
			Italic(true),
		activeTab: lipgloss.NewStyle().
			Foreground(p.accent).
			Background(p.tabBg).
			Padding(0, 1).
			Bold(true),
		inactiveTab: lipgloss.NewStyle().
			Foreground(p.muted).
			Padding(0, 1),
		banner: lipgloss.NewStyle().
			Foreground(p.bannerText).
			Background(p.bannerBg).
			Bold(true).
			Padding(0, 1),
		bannerSub: lipgloss.NewStyle().
			Foreground(p.text).
			Padding(0, 1),
		formTitle: lipgloss.NewStyle().
			Foreground(p.accent).
			Bold(true).
			MarginBottom(1),
	}
}
