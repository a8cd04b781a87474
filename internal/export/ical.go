// Package export renders alarms as an iCalendar feed so reminders can be
// mirrored into an ordinary calendar app.
package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/emersion/go-ical"
	"github.com/teambition/rrule-go"

	"github.com/julianstephens/medreminder/internal/constants"
	"github.com/julianstephens/medreminder/internal/models"
)

// ProductID identifies the generator in the PRODID property
const ProductID = "-//julianstephens//medreminder " + constants.Version + "//EN"

// Options controls what is exported
type Options struct {
	IncludePaused bool
	Location      *time.Location // zone the HH:MM alarm times are read in; defaults to time.Local
	Now           time.Time      // DTSTAMP; defaults to time.Now()
}

// Calendar builds a VCALENDAR with one recurring VEVENT per alarm
func Calendar(alarms []models.Alarm, opts Options) (*ical.Calendar, error) {
	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, ProductID)

	for _, a := range alarms {
		if !a.Active && !opts.IncludePaused {
			continue
		}
		event, err := alarmEvent(a, loc, now)
		if err != nil {
			return nil, err
		}
		cal.Children = append(cal.Children, event.Component)
	}

	return cal, nil
}

// Write encodes the calendar for alarms to w
func Write(w io.Writer, alarms []models.Alarm, opts Options) error {
	cal, err := Calendar(alarms, opts)
	if err != nil {
		return err
	}
	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		return fmt.Errorf("failed to encode calendar: %w", err)
	}
	return nil
}

func alarmEvent(a models.Alarm, loc *time.Location, now time.Time) (*ical.Event, error) {
	start, err := firstOccurrence(a, loc)
	if err != nil {
		return nil, fmt.Errorf("alarm %s: %w", a.ID, err)
	}

	event := ical.NewEvent()
	event.Props.SetText(ical.PropUID, a.ID+"@"+constants.AppName)
	event.Props.SetDateTime(ical.PropDateTimeStamp, now.UTC())
	event.Props.SetDateTime(ical.PropDateTimeStart, start.UTC())
	event.Props.SetText(ical.PropSummary, summary(a))
	event.Props.SetText(ical.PropDescription, description(a))
	if !a.Active {
		event.Props.SetText(ical.PropStatus, "CANCELLED")
	}
	event.Props.SetRecurrenceRule(recurrence(a))

	event.Children = append(event.Children, reminder(a))
	return event, nil
}

// firstOccurrence places the alarm's HH:MM on the calendar day of NextAlarm,
// moved forward to the first day the repeat pattern allows. DTSTART always
// counts as an instance, so it must match the rule's BYDAY set.
func firstOccurrence(a models.Alarm, loc *time.Location) (time.Time, error) {
	hm, err := time.Parse(constants.TimeFormat, a.Time)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q: %w", a.Time, err)
	}
	day := a.NextAlarm.In(loc)
	start := time.Date(day.Year(), day.Month(), day.Day(), hm.Hour(), hm.Minute(), 0, 0, loc)

	opt := recurrence(a)
	if len(opt.Byweekday) == 0 {
		return start, nil
	}
	opt.Dtstart = start
	rule, err := rrule.NewRRule(*opt)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid recurrence: %w", err)
	}
	if first := rule.After(start, true); !first.IsZero() {
		return first, nil
	}
	return start, nil
}

// recurrence maps a repeat pattern onto an RRULE
func recurrence(a models.Alarm) *rrule.ROption {
	switch a.RepeatPattern {
	case constants.RepeatEvery6h:
		return &rrule.ROption{Freq: rrule.HOURLY, Interval: 6}
	case constants.RepeatEvery8h:
		return &rrule.ROption{Freq: rrule.HOURLY, Interval: 8}
	case constants.RepeatEvery12h:
		return &rrule.ROption{Freq: rrule.HOURLY, Interval: 12}
	case constants.RepeatCustom:
		return &rrule.ROption{Freq: rrule.HOURLY, Interval: a.CustomHours}
	case constants.RepeatWeekdays:
		return &rrule.ROption{Freq: rrule.WEEKLY, Byweekday: []rrule.Weekday{rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR}}
	case constants.RepeatWeekends:
		return &rrule.ROption{Freq: rrule.WEEKLY, Byweekday: []rrule.Weekday{rrule.SA, rrule.SU}}
	default:
		return &rrule.ROption{Freq: rrule.DAILY}
	}
}

// reminder fires at the start of each occurrence. Audio when sound is on.
func reminder(a models.Alarm) *ical.Component {
	alarm := ical.NewComponent(ical.CompAlarm)
	action := "DISPLAY"
	if a.SoundEnabled {
		action = "AUDIO"
	}
	alarm.Props.SetText(ical.PropAction, action)

	trigger := ical.NewProp(ical.PropTrigger)
	trigger.Value = "PT0S"
	alarm.Props.Set(trigger)

	alarm.Props.SetText(ical.PropDescription, summary(a))
	return alarm
}

func summary(a models.Alarm) string {
	if a.Dose == "" {
		return a.MedicationName
	}
	return a.MedicationName + " " + a.Dose
}

func description(a models.Alarm) string {
	lines := []string{"Repeats: " + a.RepeatLabel()}
	if a.SleepHoursEnabled {
		lines = append(lines, fmt.Sprintf("Silenced from %s to %s", a.SleepStartTime, a.SleepEndTime))
	}
	if !a.SoundEnabled {
		lines = append(lines, "Sound off")
	}
	return strings.Join(lines, "\n")
}
