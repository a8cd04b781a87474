package handlers

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/medreminder/internal/constants"
	"github.com/julianstephens/medreminder/internal/models"
	"github.com/julianstephens/medreminder/internal/tui/state"
)

// FormTheme picks the huh theme matching the dark mode setting
func FormTheme(dark bool) *huh.Theme {
	if dark {
		return huh.ThemeDracula()
	}
	return huh.ThemeBase()
}

func validTime(s string) error {
	if _, err := time.Parse(constants.TimeFormat, strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("invalid time format, use HH:MM")
	}
	return nil
}

// NewAlarmForm creates the form for adding or editing an alarm. The custom
// interval and sleep window groups only show when they apply.
func NewAlarmForm(fm *state.AlarmFormModel, dark bool) *huh.Form {
	repeatOptions := make([]huh.Option[constants.RepeatPattern], 0, len(constants.RepeatPatterns))
	for _, p := range constants.RepeatPatterns {
		repeatOptions = append(repeatOptions, huh.NewOption(models.RepeatOptionLabel(p), p))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Medication Name").
				Placeholder("e.g. Lisinopril").
				Value(&fm.MedicationName).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("medication name cannot be empty")
					}
					return nil
				}),
			huh.NewInput().
				Title("Dose").
				Placeholder("e.g. 10mg").
				Value(&fm.Dose),
			huh.NewInput().
				Title("Time (HH:MM)").
				Value(&fm.Time).
				Validate(validTime),
			huh.NewSelect[constants.RepeatPattern]().
				Title("Repeat").
				Options(repeatOptions...).
				Value(&fm.RepeatPattern),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Custom Interval (hours)").
				DescriptionFunc(fm.CustomHoursCaption, &fm.CustomHours).
				Value(&fm.CustomHours).
				Validate(func(s string) error {
					_, err := state.ParseCustomHours(s)
					return err
				}),
		).WithHideFunc(func() bool {
			return fm.RepeatPattern != constants.RepeatCustom
		}),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Sound").
				Affirmative("On").
				Negative("Off").
				Value(&fm.SoundEnabled),
			huh.NewConfirm().
				Title("Silence During Sleep Hours").
				Affirmative("Yes").
				Negative("No").
				Value(&fm.SleepHoursEnabled),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Sleep Start (HH:MM)").
				Value(&fm.SleepStartTime).
				Validate(validTime),
			huh.NewInput().
				Title("Sleep End (HH:MM)").
				Value(&fm.SleepEndTime).
				Validate(validTime),
			huh.NewNote().
				DescriptionFunc(fm.SleepHint, []*string{&fm.SleepStartTime, &fm.SleepEndTime}),
		).WithHideFunc(func() bool {
			return !fm.SleepHoursEnabled
		}),
		huh.NewGroup(
			huh.NewConfirm().
				Title(fm.Title()).
				Affirmative(fm.SubmitLabel()).
				Negative("Cancel").
				Value(&fm.Confirmed),
		),
	).WithTheme(FormTheme(dark))
}

// OpenAlarmForm prepares the editor for a, or for a new alarm when a is nil.
// The controller's navigation must already point at the create screen.
func OpenAlarmForm(m *state.Model, a *models.Alarm) tea.Cmd {
	m.AlarmForm = state.NewAlarmFormModel(a)
	m.Form = NewAlarmForm(m.AlarmForm, m.Dark())
	m.FormError = ""
	return m.Form.Init()
}

// CloseAlarmForm drops the editor's transient state
func CloseAlarmForm(m *state.Model) {
	m.Form = nil
	m.AlarmForm = nil
	m.FormError = ""
}

// SelectScreen switches tabs through the controller and opens or closes the
// editor to match
func SelectScreen(m *state.Model, s constants.Screen) tea.Cmd {
	if err := m.Controller.SelectTab(s); err != nil {
		return nil
	}
	if s == constants.ScreenCreate {
		return OpenAlarmForm(m, nil)
	}
	CloseAlarmForm(m)
	return nil
}
