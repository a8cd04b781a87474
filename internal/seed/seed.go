// Package seed holds the demo data the app starts with when no snapshot is given.
package seed

import (
	"time"

	"github.com/julianstephens/medreminder/internal/constants"
	"github.com/julianstephens/medreminder/internal/models"
)

// Snapshot is a complete initial state for the controller
type Snapshot struct {
	Alarms   []models.Alarm
	Settings models.AppSettings
}

// Alarms returns the demo alarms with NextAlarm offsets relative to now
func Alarms(now time.Time) []models.Alarm {
	return []models.Alarm{
		{
			ID:                "1",
			MedicationName:    "Lisinopril",
			Dose:              "10mg",
			Time:              "08:00",
			RepeatPattern:     constants.RepeatDaily,
			Active:            true,
			SoundEnabled:      true,
			SleepHoursEnabled: true,
			SleepStartTime:    "22:00",
			SleepEndTime:      "07:00",
			NextAlarm:         now.Add(2 * time.Hour),
		},
		{
			ID:                "2",
			MedicationName:    "Metformin",
			Dose:              "500mg",
			Time:              "12:00",
			RepeatPattern:     constants.RepeatCustom,
			CustomHours:       8,
			Active:            true,
			SoundEnabled:      true,
			SleepHoursEnabled: false,
			NextAlarm:         now.Add(6 * time.Hour),
		},
		{
			ID:                "3",
			MedicationName:    "Vitamin D",
			Time:              "20:00",
			RepeatPattern:     constants.RepeatDaily,
			Active:            false,
			SoundEnabled:      false,
			SleepHoursEnabled: true,
			SleepStartTime:    "23:00",
			SleepEndTime:      "06:00",
			NextAlarm:         now.Add(10 * time.Hour),
		},
	}
}

// Settings returns the demo settings
func Settings() models.AppSettings {
	return models.AppSettings{
		Volume:              80,
		AlarmTone:           constants.ToneDefault,
		DarkMode:            false,
		OfflineMode:         true,
		BatteryOptimization: true,
	}
}

// Demo returns the full demo snapshot
func Demo(now time.Time) Snapshot {
	return Snapshot{
		Alarms:   Alarms(now),
		Settings: Settings(),
	}
}

// Validate checks every record in the snapshot and that alarm IDs are unique
func (s Snapshot) Validate() error {
	seen := make(map[string]bool, len(s.Alarms))
	for i := range s.Alarms {
		a := &s.Alarms[i]
		if err := a.Validate(); err != nil {
			return err
		}
		if seen[a.ID] {
			return &DuplicateIDError{ID: a.ID}
		}
		seen[a.ID] = true
	}
	return s.Settings.Validate()
}

// DuplicateIDError reports two alarms sharing an identifier
type DuplicateIDError struct {
	ID string
}

func (e *DuplicateIDError) Error() string {
	return "duplicate alarm id: " + e.ID
}
