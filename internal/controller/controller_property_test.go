package controller

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/julianstephens/medreminder/internal/constants"
	"github.com/julianstephens/medreminder/internal/models"
	"github.com/julianstephens/medreminder/internal/seed"
)

// buildAlarms makes one valid alarm per offset. Active flags are taken from
// flags cyclically; with no flags every alarm is active.
func buildAlarms(offsets []int, flags []bool) []models.Alarm {
	alarms := make([]models.Alarm, len(offsets))
	for i, off := range offsets {
		a := models.DefaultAlarm()
		a.ID = fmt.Sprintf("a%d", i)
		a.MedicationName = fmt.Sprintf("Med %d", i)
		a.Active = len(flags) == 0 || flags[i%len(flags)]
		a.NextAlarm = testNow.Add(time.Duration(off) * time.Hour)
		alarms[i] = a
	}
	return alarms
}

var whitespace = []string{" ", "\t", "\n", "\r"}

// sameAlarms compares collections element-wise so nil and empty are equal
func sameAlarms(a, b []models.Alarm) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func propertyController(alarms []models.Alarm) *Controller {
	return New(
		seed.Snapshot{Alarms: alarms, Settings: seed.Settings()},
		WithClock(func() time.Time { return testNow }),
		WithIDGenerator(sequentialIDs()),
		WithRecorder(&MemoryRecorder{}),
	)
}

func testParameters() *gopter.TestParameters {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	return parameters
}

func TestProperty_NextUpcoming(t *testing.T) {
	properties := gopter.NewProperties(testParameters())

	properties.Property("none exactly when no alarm is active", prop.ForAll(
		func(offsets []int, flags []bool) bool {
			alarms := buildAlarms(offsets, flags)
			_, ok := NextUpcoming(alarms)
			anyActive := false
			for _, a := range alarms {
				anyActive = anyActive || a.Active
			}
			return ok == anyActive
		},
		gen.SliceOf(gen.IntRange(0, 48)),
		gen.SliceOf(gen.Bool()),
	))

	properties.Property("earliest active alarm, first one on ties", prop.ForAll(
		func(offsets []int, flags []bool) bool {
			alarms := buildAlarms(offsets, flags)
			got, ok := NextUpcoming(alarms)
			if !ok {
				return true
			}
			if !got.Active {
				return false
			}
			for _, a := range alarms {
				if !a.Active {
					continue
				}
				if a.NextAlarm.Before(got.NextAlarm) {
					return false
				}
				// the first active alarm at the minimum must be the one returned
				if a.NextAlarm.Equal(got.NextAlarm) {
					return a.ID == got.ID
				}
			}
			return false
		},
		gen.SliceOf(gen.IntRange(0, 6)),
		gen.SliceOf(gen.Bool()),
	))

	properties.TestingRun(t)
}

func TestProperty_ToggleAndDelete(t *testing.T) {
	properties := gopter.NewProperties(testParameters())

	properties.Property("toggling twice restores the collection", prop.ForAll(
		func(offsets []int, flags []bool, pick int) bool {
			alarms := buildAlarms(offsets, flags)
			c := propertyController(alarms)
			id := fmt.Sprintf("a%d", pick)

			c.ToggleAlarm(id)
			c.ToggleAlarm(id)
			return sameAlarms(alarms, c.Alarms())
		},
		gen.SliceOf(gen.IntRange(0, 48)),
		gen.SliceOf(gen.Bool()),
		gen.IntRange(0, 10),
	))

	properties.Property("one toggle changes only the active flag of the target", prop.ForAll(
		func(offsets []int, flags []bool, pick int) bool {
			alarms := buildAlarms(offsets, flags)
			c := propertyController(alarms)
			id := fmt.Sprintf("a%d", pick)

			c.ToggleAlarm(id)
			got := c.Alarms()
			if len(got) != len(alarms) {
				return false
			}
			for i := range alarms {
				want := alarms[i]
				if want.ID == id {
					want.Active = !want.Active
				}
				if got[i] != want {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(0, 48)),
		gen.SliceOf(gen.Bool()),
		gen.IntRange(0, 10),
	))

	properties.Property("delete shrinks by one when present and is idempotent", prop.ForAll(
		func(offsets []int, pick int) bool {
			alarms := buildAlarms(offsets, nil)
			c := propertyController(alarms)
			id := fmt.Sprintf("a%d", pick)
			_, present := c.Alarm(id)

			c.DeleteAlarm(id)
			afterFirst := c.Alarms()
			want := len(alarms)
			if present {
				want--
			}
			if len(afterFirst) != want {
				return false
			}
			c.DeleteAlarm(id)
			return sameAlarms(afterFirst, c.Alarms())
		},
		gen.SliceOf(gen.IntRange(0, 48)),
		gen.IntRange(0, 10),
	))

	properties.TestingRun(t)
}

func TestProperty_SaveAlarm(t *testing.T) {
	properties := gopter.NewProperties(testParameters())

	properties.Property("create appends exactly one active alarm with a fresh id", prop.ForAll(
		func(offsets []int, name string) bool {
			alarms := buildAlarms(offsets, nil)
			c := propertyController(alarms)
			c.BeginCreate()

			created, err := c.SaveAlarm(models.AlarmPatch{MedicationName: models.Ptr(name)})
			if err != nil {
				return false
			}
			got := c.Alarms()
			if len(got) != len(alarms)+1 || got[len(got)-1] != created || !created.Active {
				return false
			}
			for _, a := range alarms {
				if a.ID == created.ID {
					return false
				}
			}
			return sameAlarms(alarms, got[:len(alarms)])
		},
		gen.SliceOf(gen.IntRange(0, 48)),
		gen.Identifier(),
	))

	properties.Property("edit keeps length and preserves absent fields", prop.ForAll(
		func(offsets []int, pick int, hour int) bool {
			if len(offsets) == 0 {
				return true
			}
			alarms := buildAlarms(offsets, nil)
			c := propertyController(alarms)
			target := alarms[pick%len(alarms)]
			c.BeginEdit(target)

			newTime := fmt.Sprintf("%02d:30", hour)
			if _, err := c.SaveAlarm(models.AlarmPatch{Time: &newTime}); err != nil {
				return false
			}
			got := c.Alarms()
			if len(got) != len(alarms) {
				return false
			}
			for i := range alarms {
				want := alarms[i]
				if want.ID == target.ID {
					want.Time = newTime
				}
				if got[i] != want {
					return false
				}
			}
			return c.Screen() == constants.ScreenHome
		},
		gen.SliceOf(gen.IntRange(0, 48)),
		gen.IntRange(0, 100),
		gen.IntRange(0, 23),
	))

	properties.Property("blank names are never saved", prop.ForAll(
		func(offsets []int, picks []int) bool {
			alarms := buildAlarms(offsets, nil)
			c := propertyController(alarms)
			c.BeginCreate()

			var b strings.Builder
			for _, p := range picks {
				b.WriteString(whitespace[p])
			}
			name := b.String()
			if _, err := c.SaveAlarm(models.AlarmPatch{MedicationName: &name}); err == nil {
				return false
			}
			return sameAlarms(alarms, c.Alarms())
		},
		gen.SliceOf(gen.IntRange(0, 48)),
		gen.SliceOf(gen.IntRange(0, len(whitespace)-1)),
	))

	properties.TestingRun(t)
}
