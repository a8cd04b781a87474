package state

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/julianstephens/medreminder/internal/constants"
	"github.com/julianstephens/medreminder/internal/models"
)

// AlarmFormModel represents the form model for alarm editing. Numeric
// fields are strings because huh inputs bind to strings.
type AlarmFormModel struct {
	MedicationName    string
	Dose              string
	Time              string
	RepeatPattern     constants.RepeatPattern
	CustomHours       string
	SoundEnabled      bool
	SleepHoursEnabled bool
	SleepStartTime    string
	SleepEndTime      string
	Confirmed         bool
	Editing           bool
}

// NewAlarmFormModel prefills the form from a, or from the editor defaults
// when a is nil
func NewAlarmFormModel(a *models.Alarm) *AlarmFormModel {
	src := models.DefaultAlarm()
	if a != nil {
		src = *a
	}
	hours := src.CustomHours
	if hours < constants.MinCustomHours || hours > constants.MaxCustomHours {
		hours = constants.DefaultCustomHours
	}
	repeat := src.RepeatPattern
	if repeat == "" {
		repeat = constants.DefaultRepeat
	}
	return &AlarmFormModel{
		MedicationName:    src.MedicationName,
		Dose:              src.Dose,
		Time:              orDefault(src.Time, constants.DefaultAlarmTime),
		RepeatPattern:     repeat,
		CustomHours:       strconv.Itoa(hours),
		SoundEnabled:      src.SoundEnabled,
		SleepHoursEnabled: src.SleepHoursEnabled,
		SleepStartTime:    orDefault(src.SleepStartTime, constants.DefaultSleepStart),
		SleepEndTime:      orDefault(src.SleepEndTime, constants.DefaultSleepEnd),
		Confirmed:         true,
		Editing:           a != nil,
	}
}

// orDefault returns def when v is blank
func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

// Title is the editor heading
func (fm *AlarmFormModel) Title() string {
	if fm.Editing {
		return "Edit Medication"
	}
	return "Add Medication"
}

// SubmitLabel is the label of the save button
func (fm *AlarmFormModel) SubmitLabel() string {
	if fm.Editing {
		return "Update"
	}
	return "Save"
}

// SleepHint describes the sleep window currently entered
func (fm *AlarmFormModel) SleepHint() string {
	return fmt.Sprintf("Alarms will be silenced from %s to %s", fm.SleepStartTime, fm.SleepEndTime)
}

// CustomHoursCaption describes the custom interval currently entered
func (fm *AlarmFormModel) CustomHoursCaption() string {
	n, err := ParseCustomHours(fm.CustomHours)
	if err != nil {
		return fmt.Sprintf("Between %d and %d hours", constants.MinCustomHours, constants.MaxCustomHours)
	}
	if n == 1 {
		return "Every 1 hour"
	}
	return fmt.Sprintf("Every %d hours", n)
}

// ParseCustomHours parses the custom interval input
func ParseCustomHours(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("custom hours must be a whole number")
	}
	if n < constants.MinCustomHours || n > constants.MaxCustomHours {
		return 0, fmt.Errorf("custom hours must be between %d and %d", constants.MinCustomHours, constants.MaxCustomHours)
	}
	return n, nil
}

// Patch converts the form into a full alarm patch. An unparsable custom
// interval is only an error when the Custom pattern is selected.
func (fm *AlarmFormModel) Patch() (models.AlarmPatch, error) {
	name := strings.TrimSpace(fm.MedicationName)
	if name == "" {
		return models.AlarmPatch{}, fmt.Errorf("medication name cannot be empty")
	}

	hours, err := ParseCustomHours(fm.CustomHours)
	if err != nil {
		if fm.RepeatPattern == constants.RepeatCustom {
			return models.AlarmPatch{}, err
		}
		hours = constants.DefaultCustomHours
	}

	return models.AlarmPatch{
		MedicationName:    &name,
		Dose:              models.Ptr(strings.TrimSpace(fm.Dose)),
		Time:              models.Ptr(strings.TrimSpace(fm.Time)),
		RepeatPattern:     models.Ptr(fm.RepeatPattern),
		CustomHours:       &hours,
		SoundEnabled:      models.Ptr(fm.SoundEnabled),
		SleepHoursEnabled: models.Ptr(fm.SleepHoursEnabled),
		SleepStartTime:    models.Ptr(strings.TrimSpace(fm.SleepStartTime)),
		SleepEndTime:      models.Ptr(strings.TrimSpace(fm.SleepEndTime)),
	}, nil
}
