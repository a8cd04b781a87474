package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/medreminder/internal/constants"
)

// Alarm is a single medication reminder
type Alarm struct {
	ID                string                  `json:"id" validate:"required"`
	MedicationName    string                  `json:"medication_name" validate:"notblank"`
	Dose              string                  `json:"dose,omitempty"`
	Time              string                  `json:"time" validate:"hhmm"` // HH:MM format
	RepeatPattern     constants.RepeatPattern `json:"repeat_pattern" validate:"repeat"`
	CustomHours       int                     `json:"custom_hours,omitempty"` // only read when RepeatPattern is Custom
	Active            bool                    `json:"active"`
	SoundEnabled      bool                    `json:"sound_enabled"`
	SleepHoursEnabled bool                    `json:"sleep_hours_enabled"`
	SleepStartTime    string                  `json:"sleep_start_time,omitempty"` // HH:MM, only read when SleepHoursEnabled
	SleepEndTime      string                  `json:"sleep_end_time,omitempty"`
	NextAlarm         time.Time               `json:"next_alarm"` // advisory, used for ordering only
}

// DefaultAlarm returns an alarm populated with the editor's defaults and no identity.
func DefaultAlarm() Alarm {
	return Alarm{
		Time:              constants.DefaultAlarmTime,
		RepeatPattern:     constants.DefaultRepeat,
		CustomHours:       constants.DefaultCustomHours,
		SoundEnabled:      constants.DefaultSoundEnabled,
		SleepHoursEnabled: false,
		SleepStartTime:    constants.DefaultSleepStart,
		SleepEndTime:      constants.DefaultSleepEnd,
	}
}

// Validate checks the alarm against its field rules
func (a *Alarm) Validate() error {
	if err := validate.Struct(a); err != nil {
		return validationError("alarm", err)
	}
	return nil
}

// RepeatLabel returns the display label for the alarm's repeat pattern
func (a *Alarm) RepeatLabel() string {
	if a.RepeatPattern == constants.RepeatCustom {
		return fmt.Sprintf("Every %dh", a.CustomHours)
	}
	return string(a.RepeatPattern)
}

// Summary returns "HH:MM • <repeat label>"
func (a *Alarm) Summary() string {
	return fmt.Sprintf("%s • %s", a.Time, a.RepeatLabel())
}

// IsSilencedAt reports whether t falls inside the alarm's sleep window.
// Windows that end before they start wrap past midnight.
func (a *Alarm) IsSilencedAt(t time.Time) bool {
	if !a.SleepHoursEnabled {
		return false
	}

	start, err := minutesOfDay(a.SleepStartTime)
	if err != nil {
		return false
	}
	end, err := minutesOfDay(a.SleepEndTime)
	if err != nil {
		return false
	}

	current := t.Hour()*60 + t.Minute()
	if end < start {
		return current >= start || current < end
	}
	return current >= start && current < end
}

// RepeatOptionLabel is the longer label shown in the editor's repeat selector
func RepeatOptionLabel(p constants.RepeatPattern) string {
	switch p {
	case constants.RepeatEvery6h:
		return "Every 6 hours"
	case constants.RepeatEvery8h:
		return "Every 8 hours"
	case constants.RepeatEvery12h:
		return "Every 12 hours"
	case constants.RepeatCustom:
		return "Custom hours"
	case constants.RepeatWeekdays:
		return "Weekdays only"
	case constants.RepeatWeekends:
		return "Weekends only"
	default:
		return string(p)
	}
}

// IsValidRepeatPattern reports whether p is one of the recognized patterns.
// Matching is case-sensitive.
func IsValidRepeatPattern(p constants.RepeatPattern) bool {
	for _, known := range constants.RepeatPatterns {
		if p == known {
			return true
		}
	}
	return false
}

func minutesOfDay(s string) (int, error) {
	t, err := time.Parse(constants.TimeFormat, strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}
