package models

import "github.com/julianstephens/medreminder/internal/constants"

// AppSettings represents application-wide preferences
type AppSettings struct {
	Volume              int                 `json:"volume" validate:"min=0,max=100,step10"` // percent, steps of 10
	AlarmTone           constants.AlarmTone `json:"alarm_tone" validate:"tone"`
	DarkMode            bool                `json:"dark_mode"`
	OfflineMode         bool                `json:"offline_mode"`
	BatteryOptimization bool                `json:"battery_optimization"`
}

// Validate checks the settings against their field rules
func (s *AppSettings) Validate() error {
	if err := validate.Struct(s); err != nil {
		return validationError("settings", err)
	}
	return nil
}

// WithVolumeDelta returns a copy with the volume moved by delta steps,
// clamped to the slider range.
func (s AppSettings) WithVolumeDelta(steps int) AppSettings {
	v := s.Volume + steps*constants.VolumeStep
	v -= v % constants.VolumeStep
	if v < constants.MinVolume {
		v = constants.MinVolume
	}
	if v > constants.MaxVolume {
		v = constants.MaxVolume
	}
	s.Volume = v
	return s
}

// WithToneOffset returns a copy with the tone moved by offset positions in
// the tone list, wrapping at either end.
func (s AppSettings) WithToneOffset(offset int) AppSettings {
	n := len(constants.AlarmTones)
	idx := 0
	for i, t := range constants.AlarmTones {
		if t == s.AlarmTone {
			idx = i
			break
		}
	}
	idx = ((idx+offset)%n + n) % n
	s.AlarmTone = constants.AlarmTones[idx]
	return s
}

// IsValidTone reports whether t is one of the recognized alarm tones
func IsValidTone(t constants.AlarmTone) bool {
	for _, known := range constants.AlarmTones {
		if t == known {
			return true
		}
	}
	return false
}
