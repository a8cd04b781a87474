package models

import (
	"time"

	"github.com/julianstephens/medreminder/internal/constants"
)

// AlarmPatch carries the fields submitted by the editor. Nil fields are
// absent and keep their previous value when merged.
type AlarmPatch struct {
	MedicationName    *string
	Dose              *string
	Time              *string
	RepeatPattern     *constants.RepeatPattern
	CustomHours       *int
	SoundEnabled      *bool
	SleepHoursEnabled *bool
	SleepStartTime    *string
	SleepEndTime      *string
}

// ApplyTo merges the patch onto a copy of a. Identity, the active flag and
// NextAlarm are never touched.
func (p AlarmPatch) ApplyTo(a Alarm) Alarm {
	if p.MedicationName != nil {
		a.MedicationName = *p.MedicationName
	}
	if p.Dose != nil {
		a.Dose = *p.Dose
	}
	if p.Time != nil {
		a.Time = *p.Time
	}
	if p.RepeatPattern != nil {
		a.RepeatPattern = *p.RepeatPattern
	}
	if p.CustomHours != nil {
		a.CustomHours = *p.CustomHours
	}
	if p.SoundEnabled != nil {
		a.SoundEnabled = *p.SoundEnabled
	}
	if p.SleepHoursEnabled != nil {
		a.SleepHoursEnabled = *p.SleepHoursEnabled
	}
	if p.SleepStartTime != nil {
		a.SleepStartTime = *p.SleepStartTime
	}
	if p.SleepEndTime != nil {
		a.SleepEndTime = *p.SleepEndTime
	}
	return a
}

// NewAlarm builds a fresh, active alarm from the patch. Absent fields take
// the editor defaults and NextAlarm is placed one placeholder period after now.
func (p AlarmPatch) NewAlarm(id string, now time.Time) Alarm {
	a := p.ApplyTo(DefaultAlarm())
	a.ID = id
	a.Active = true
	a.NextAlarm = now.Add(constants.NextAlarmPlaceholder)
	return a
}

// Ptr returns a pointer to v. Handy when building partial patches.
func Ptr[T any](v T) *T {
	return &v
}
