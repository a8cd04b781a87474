package constants

import "time"

// Screen identifies one of the three top-level screens
type Screen string

// RepeatPattern is the recurrence rule of an alarm
type RepeatPattern string

// AlarmTone is the sound played when an alarm fires
type AlarmTone string

// TriggerAction is the user's response to a fired alarm
type TriggerAction string

const (
	AppName            = "medreminder"
	DisplayName        = "MedReminder"
	DefaultKeyringUser = "snapshot-connection"
	Version            = "v0.1.0"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// NextAlarmPlaceholder is how far ahead a freshly created alarm is scheduled.
	// NextAlarm is advisory and never recomputed from the repeat pattern.
	NextAlarmPlaceholder = 24 * time.Hour

	// Demo trigger
	DefaultDemoTriggerDelay = 5 * time.Second

	// Screens
	ScreenHome     Screen = "home"
	ScreenCreate   Screen = "create"
	ScreenSettings Screen = "settings"

	// Repeat patterns
	RepeatDaily    RepeatPattern = "Daily"
	RepeatEvery6h  RepeatPattern = "Every 6h"
	RepeatEvery8h  RepeatPattern = "Every 8h"
	RepeatEvery12h RepeatPattern = "Every 12h"
	RepeatCustom   RepeatPattern = "Custom"
	RepeatWeekdays RepeatPattern = "Weekdays"
	RepeatWeekends RepeatPattern = "Weekends"

	MinCustomHours = 1
	MaxCustomHours = 24

	// Alarm tones
	ToneDefault AlarmTone = "Default"
	ToneGentle  AlarmTone = "Gentle"
	ToneUrgent  AlarmTone = "Urgent"
	ToneChime   AlarmTone = "Chime"

	// Trigger actions
	ActionTake   TriggerAction = "take"
	ActionSnooze TriggerAction = "snooze"
	ActionSkip   TriggerAction = "skip"

	// Volume slider
	MinVolume  = 0
	MaxVolume  = 100
	VolumeStep = 10

	// Editor defaults
	DefaultAlarmTime    = "08:00"
	DefaultRepeat       = RepeatDaily
	DefaultCustomHours  = 6
	DefaultSoundEnabled = true
	DefaultSleepStart   = "22:00"
	DefaultSleepEnd     = "07:00"
)

// RepeatPatterns lists every recognized repeat pattern in display order
var RepeatPatterns = []RepeatPattern{
	RepeatDaily,
	RepeatEvery6h,
	RepeatEvery8h,
	RepeatEvery12h,
	RepeatCustom,
	RepeatWeekdays,
	RepeatWeekends,
}

// AlarmTones lists every recognized alarm tone in display order
var AlarmTones = []AlarmTone{ToneDefault, ToneGentle, ToneUrgent, ToneChime}

// TriggerActions lists every recognized trigger response
var TriggerActions = []TriggerAction{ActionTake, ActionSnooze, ActionSkip}

// Screens lists the tab bar screens in order
var Screens = []Screen{ScreenHome, ScreenCreate, ScreenSettings}
