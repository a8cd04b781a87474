package sqlite

import (
	"fmt"
	"strconv"
	"time"

	"github.com/julianstephens/medreminder/internal/constants"
	"github.com/julianstephens/medreminder/internal/models"
	"github.com/julianstephens/medreminder/internal/seed"
)

// LoadSnapshot reads every alarm in stored order plus the settings record.
// The result is validated before it is returned.
func (s *Store) LoadSnapshot() (seed.Snapshot, error) {
	alarms, err := s.getAlarms()
	if err != nil {
		return seed.Snapshot{}, err
	}
	settings, err := s.getSettings()
	if err != nil {
		return seed.Snapshot{}, err
	}

	snap := seed.Snapshot{Alarms: alarms, Settings: settings}
	if err := snap.Validate(); err != nil {
		return seed.Snapshot{}, fmt.Errorf("snapshot in %s is invalid: %w", s.path, err)
	}
	return snap, nil
}

// SaveSnapshot replaces the stored alarms and settings with snap
func (s *Store) SaveSnapshot(snap seed.Snapshot) error {
	if err := snap.Validate(); err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec("DELETE FROM alarms"); err != nil {
		return fmt.Errorf("failed to clear alarms: %w", err)
	}

	for i, a := range snap.Alarms {
		_, err := tx.Exec(`
			INSERT INTO alarms (
				position, id, medication_name, dose, time,
				repeat_pattern, custom_hours, active, sound_enabled,
				sleep_hours_enabled, sleep_start_time, sleep_end_time, next_alarm
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`,
			i, a.ID, a.MedicationName, a.Dose, a.Time,
			string(a.RepeatPattern), a.CustomHours, a.Active, a.SoundEnabled,
			a.SleepHoursEnabled, a.SleepStartTime, a.SleepEndTime, a.NextAlarm.UTC().Format(time.RFC3339Nano),
		)
		if err != nil {
			return fmt.Errorf("failed to insert alarm %s: %w", a.ID, err)
		}
	}

	for key, value := range settingsToKeyValues(snap.Settings) {
		_, err := tx.Exec(`
			INSERT INTO settings (key, value) VALUES (?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value
		`, key, value)
		if err != nil {
			return fmt.Errorf("failed to save setting %s: %w", key, err)
		}
	}

	return tx.Commit()
}

func (s *Store) getAlarms() ([]models.Alarm, error) {
	rows, err := s.db.Query(`
		SELECT id, medication_name, dose, time,
			repeat_pattern, custom_hours, active, sound_enabled,
			sleep_hours_enabled, sleep_start_time, sleep_end_time, next_alarm
		FROM alarms
		ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query alarms: %w", err)
	}
	defer rows.Close()

	var alarms []models.Alarm
	for rows.Next() {
		var a models.Alarm
		var repeat, nextAlarm string
		if err := rows.Scan(
			&a.ID, &a.MedicationName, &a.Dose, &a.Time,
			&repeat, &a.CustomHours, &a.Active, &a.SoundEnabled,
			&a.SleepHoursEnabled, &a.SleepStartTime, &a.SleepEndTime, &nextAlarm,
		); err != nil {
			return nil, fmt.Errorf("failed to scan alarm: %w", err)
		}
		a.RepeatPattern = constants.RepeatPattern(repeat)
		a.NextAlarm, err = time.Parse(time.RFC3339Nano, nextAlarm)
		if err != nil {
			return nil, fmt.Errorf("parsing next_alarm for %s: %w", a.ID, err)
		}
		alarms = append(alarms, a)
	}
	return alarms, rows.Err()
}

func (s *Store) getSettings() (models.AppSettings, error) {
	rows, err := s.db.Query("SELECT key, value FROM settings")
	if err != nil {
		return models.AppSettings{}, err
	}
	defer rows.Close()

	settings := models.AppSettings{}
	count := 0
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return models.AppSettings{}, err
		}
		switch key {
		case "volume":
			v, err := strconv.Atoi(value)
			if err != nil {
				return models.AppSettings{}, fmt.Errorf("parsing volume: %w", err)
			}
			settings.Volume = v
		case "alarm_tone":
			settings.AlarmTone = constants.AlarmTone(value)
		case "dark_mode":
			settings.DarkMode = value == "true"
		case "offline_mode":
			settings.OfflineMode = value == "true"
		case "battery_optimization":
			settings.BatteryOptimization = value == "true"
		}
		count++
	}
	if err := rows.Err(); err != nil {
		return models.AppSettings{}, err
	}

	if count == 0 {
		return models.AppSettings{}, fmt.Errorf("settings not found")
	}

	return settings, nil
}

func settingsToKeyValues(s models.AppSettings) map[string]string {
	return map[string]string{
		"volume":               strconv.Itoa(s.Volume),
		"alarm_tone":           string(s.AlarmTone),
		"dark_mode":            strconv.FormatBool(s.DarkMode),
		"offline_mode":         strconv.FormatBool(s.OfflineMode),
		"battery_optimization": strconv.FormatBool(s.BatteryOptimization),
	}
}
