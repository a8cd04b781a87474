package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/emersion/go-ical"

	"github.com/julianstephens/medreminder/internal/constants"
	"github.com/julianstephens/medreminder/internal/models"
	"github.com/julianstephens/medreminder/internal/seed"
)

var exportNow = time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)

func decode(t *testing.T, data []byte) *ical.Calendar {
	t.Helper()
	cal, err := ical.NewDecoder(bytes.NewReader(data)).Decode()
	if err != nil {
		t.Fatalf("failed to decode exported calendar: %v\n%s", err, data)
	}
	return cal
}

func TestWrite_ActiveAlarmsOnly(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, seed.Alarms(exportNow), Options{Location: time.UTC, Now: exportNow})
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	cal := decode(t, buf.Bytes())
	if v, _ := cal.Props.Text(ical.PropProductID); v != ProductID {
		t.Errorf("PRODID = %q, want %q", v, ProductID)
	}

	events := cal.Events()
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2 active alarms", len(events))
	}

	first := events[0]
	if uid, _ := first.Props.Text(ical.PropUID); uid != "1@medreminder" {
		t.Errorf("UID = %q", uid)
	}
	if s, _ := first.Props.Text(ical.PropSummary); s != "Lisinopril 10mg" {
		t.Errorf("SUMMARY = %q", s)
	}
	desc, _ := first.Props.Text(ical.PropDescription)
	if !strings.Contains(desc, "Silenced from 22:00 to 07:00") {
		t.Errorf("DESCRIPTION = %q, want sleep window", desc)
	}

	start, err := first.DateTimeStart(time.UTC)
	if err != nil {
		t.Fatalf("DTSTART: %v", err)
	}
	want := time.Date(2026, 10, 15, 8, 0, 0, 0, time.UTC)
	if !start.Equal(want) {
		t.Errorf("DTSTART = %v, want %v", start, want)
	}

	if len(first.Children) != 1 || first.Children[0].Name != ical.CompAlarm {
		t.Errorf("expected one VALARM, got %+v", first.Children)
	}
}

func TestWrite_IncludePaused(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, seed.Alarms(exportNow), Options{IncludePaused: true, Location: time.UTC, Now: exportNow})
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	events := decode(t, buf.Bytes()).Events()
	if len(events) != 3 {
		t.Fatalf("got %d events, want 3", len(events))
	}
	if status, _ := events[2].Props.Text(ical.PropStatus); status != "CANCELLED" {
		t.Errorf("paused alarm STATUS = %q, want CANCELLED", status)
	}
}

func TestRecurrence(t *testing.T) {
	tests := []struct {
		pattern constants.RepeatPattern
		hours   int
		want    string
	}{
		{constants.RepeatDaily, 0, "FREQ=DAILY"},
		{constants.RepeatEvery6h, 0, "FREQ=HOURLY;INTERVAL=6"},
		{constants.RepeatEvery12h, 0, "FREQ=HOURLY;INTERVAL=12"},
		{constants.RepeatCustom, 3, "FREQ=HOURLY;INTERVAL=3"},
		{constants.RepeatWeekdays, 0, "BYDAY=MO,TU,WE,TH,FR"},
		{constants.RepeatWeekends, 0, "BYDAY=SA,SU"},
	}

	for _, tt := range tests {
		t.Run(string(tt.pattern), func(t *testing.T) {
			got := recurrence(models.Alarm{RepeatPattern: tt.pattern, CustomHours: tt.hours}).RRuleString()
			if !strings.Contains(got, tt.want) {
				t.Errorf("RRULE = %q, want it to contain %q", got, tt.want)
			}
		})
	}
}

func TestFirstOccurrenceMatchesWeekdaySet(t *testing.T) {
	// 2026-10-17 is a Saturday, 2026-10-19 a Monday
	saturday := time.Date(2026, 10, 17, 6, 0, 0, 0, time.UTC)
	monday := time.Date(2026, 10, 19, 6, 0, 0, 0, time.UTC)
	wednesday := time.Date(2026, 10, 21, 6, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		pattern   constants.RepeatPattern
		nextAlarm time.Time
		want      time.Time
	}{
		{"weekdays from saturday", constants.RepeatWeekdays, saturday, time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC)},
		{"weekdays from monday", constants.RepeatWeekdays, monday, time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC)},
		{"weekends from wednesday", constants.RepeatWeekends, wednesday, time.Date(2026, 10, 24, 8, 0, 0, 0, time.UTC)},
		{"weekends from saturday", constants.RepeatWeekends, saturday, time.Date(2026, 10, 17, 8, 0, 0, 0, time.UTC)},
		{"daily keeps the day", constants.RepeatDaily, saturday, time.Date(2026, 10, 17, 8, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := models.DefaultAlarm()
			a.ID = "w"
			a.MedicationName = "Lisinopril"
			a.Active = true
			a.Time = "08:00"
			a.RepeatPattern = tt.pattern
			a.NextAlarm = tt.nextAlarm

			var buf bytes.Buffer
			if err := Write(&buf, []models.Alarm{a}, Options{Location: time.UTC, Now: exportNow}); err != nil {
				t.Fatalf("Write() error = %v", err)
			}
			events := decode(t, buf.Bytes()).Events()
			if len(events) != 1 {
				t.Fatalf("got %d events, want 1", len(events))
			}
			start, err := events[0].DateTimeStart(time.UTC)
			if err != nil {
				t.Fatalf("DTSTART: %v", err)
			}
			if !start.Equal(tt.want) {
				t.Errorf("DTSTART = %v (%s), want %v (%s)", start, start.Weekday(), tt.want, tt.want.Weekday())
			}
		})
	}
}

func TestRecurrenceSetFollowsCustomInterval(t *testing.T) {
	a := models.DefaultAlarm()
	a.ID = "x"
	a.MedicationName = "Metformin"
	a.Active = true
	a.RepeatPattern = constants.RepeatCustom
	a.CustomHours = 6
	a.NextAlarm = exportNow

	cal, err := Calendar([]models.Alarm{a}, Options{Location: time.UTC, Now: exportNow})
	if err != nil {
		t.Fatalf("Calendar() error = %v", err)
	}
	events := cal.Events()
	if len(events) != 1 {
		t.Fatalf("got %d events", len(events))
	}

	set, err := events[0].RecurrenceSet(time.UTC)
	if err != nil || set == nil {
		t.Fatalf("RecurrenceSet() = %v, %v", set, err)
	}
	start := time.Date(2026, 10, 15, 8, 0, 0, 0, time.UTC)
	next := set.After(start, false)
	if want := start.Add(6 * time.Hour); !next.Equal(want) {
		t.Errorf("second occurrence = %v, want %v", next, want)
	}
}

func TestCalendar_InvalidTime(t *testing.T) {
	a := models.Alarm{ID: "bad", MedicationName: "X", Time: "noon", Active: true}
	if _, err := Calendar([]models.Alarm{a}, Options{}); err == nil {
		t.Error("Calendar() accepted an alarm with an invalid time")
	}
}
