package postgres

import (
	"fmt"
	"strconv"

	"github.com/julianstephens/medreminder/internal/constants"
	"github.com/julianstephens/medreminder/internal/models"
	"github.com/julianstephens/medreminder/internal/seed"
)

// LoadSnapshot reads every alarm in stored order plus the settings record
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
		return seed.Snapshot{}, fmt.Errorf("stored snapshot is invalid: %w", err)
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
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		`,
			i, a.ID, a.MedicationName, a.Dose, a.Time,
			string(a.RepeatPattern), a.CustomHours, a.Active, a.SoundEnabled,
			a.SleepHoursEnabled, a.SleepStartTime, a.SleepEndTime, a.NextAlarm,
		)
		if err != nil {
			return fmt.Errorf("failed to insert alarm %s: %w", a.ID, err)
		}
	}

	settings := map[string]string{
		"volume":               strconv.Itoa(snap.Settings.Volume),
		"alarm_tone":           string(snap.Settings.AlarmTone),
		"dark_mode":            strconv.FormatBool(snap.Settings.DarkMode),
		"offline_mode":         strconv.FormatBool(snap.Settings.OfflineMode),
		"battery_optimization": strconv.FormatBool(snap.Settings.BatteryOptimization),
	}
	for key, value := range settings {
		_, err := tx.Exec(`
			INSERT INTO settings (key, value) VALUES ($1, $2)
			ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value
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
		var repeat string
		if err := rows.Scan(
			&a.ID, &a.MedicationName, &a.Dose, &a.Time,
			&repeat, &a.CustomHours, &a.Active, &a.SoundEnabled,
			&a.SleepHoursEnabled, &a.SleepStartTime, &a.SleepEndTime, &a.NextAlarm,
		); err != nil {
			return nil, fmt.Errorf("failed to scan alarm: %w", err)
		}
		a.RepeatPattern = constants.RepeatPattern(repeat)
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
			if settings.Volume, err = strconv.Atoi(value); err != nil {
				return models.AppSettings{}, fmt.Errorf("parsing volume: %w", err)
			}
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
