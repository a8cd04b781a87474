package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/medreminder/internal/constants"
	"github.com/julianstephens/medreminder/internal/controller"
	"github.com/julianstephens/medreminder/internal/seed"
	"github.com/julianstephens/medreminder/internal/tui/components/alarmlist"
	"github.com/julianstephens/medreminder/internal/tui/handlers"
)

var testNow = time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)

func newTestModel(t *testing.T, opts Options) (Model, *controller.MemoryRecorder) {
	t.Helper()
	rec := &controller.MemoryRecorder{}
	ctrl := controller.New(seed.Demo(testNow),
		controller.WithClock(func() time.Time { return testNow }),
		controller.WithRecorder(rec),
	)
	t.Cleanup(ctrl.Close)

	m := NewModel(context.Background(), ctrl, opts)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return next.(Model), rec
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_InitialView(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	view := m.View()
	for _, want := range []string{"MedReminder", "Home", "Settings", "Next: Lisinopril", "08:00 • Daily", "2 Active"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestModel_NoDemoWithoutOption(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	if cmd := m.Init(); cmd != nil {
		t.Error("Init should not arm the demo trigger when disabled")
	}
}

func TestModel_ListActionsRoundTrip(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	// space on the first row toggles Lisinopril off
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if cmd == nil {
		t.Fatal("toggle key produced no command")
	}
	m, _ = update(t, m, cmd())
	if a, _ := m.Controller.Alarm("1"); a.Active {
		t.Error("alarm 1 should be paused")
	}
	if !strings.Contains(m.View(), "Next: Metformin") {
		t.Error("banner should move to the next active alarm")
	}

	m, cmd = update(t, m, runes("a"))
	m, _ = update(t, m, cmd())
	if m.Controller.Screen() != constants.ScreenCreate || m.Form == nil {
		t.Fatal("a should open the editor")
	}
	if !strings.Contains(m.View(), "Add Medication") {
		t.Error("editor title missing")
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.Controller.Screen() != constants.ScreenHome {
		t.Errorf("esc should return home, got %q", m.Controller.Screen())
	}
}

func TestModel_EditFlowShowsFormError(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	m, _ = update(t, m, alarmlist.EditAlarmMsg{ID: "2"})
	if !strings.Contains(m.View(), "Edit Medication") {
		t.Fatal("edit title missing")
	}

	m.AlarmForm.MedicationName = ""
	handlers.SubmitAlarmForm(&m.Model)
	if !strings.Contains(m.View(), "medication name cannot be empty") {
		t.Error("rejected save should show a visible error")
	}
}

func TestModel_TriggerOverlay(t *testing.T) {
	m, rec := newTestModel(t, Options{})

	m, _ = update(t, m, handlers.DemoTriggerMsg{})
	view := m.View()
	if !strings.Contains(view, "Time for your medication") || !strings.Contains(view, "Lisinopril 10mg") {
		t.Fatalf("overlay not rendered:\n%s", view)
	}

	// tab is swallowed by the overlay
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.Controller.Screen() != constants.ScreenHome {
		t.Error("navigation changed under the overlay")
	}

	m, cmd := update(t, m, runes("1"))
	if cmd == nil {
		t.Fatal("take produced no command")
	}
	m, _ = update(t, m, cmd())
	if m.Trigger.Active() {
		t.Error("overlay should be dismissed")
	}
	if len(rec.Responses) != 1 || rec.Responses[0].Action != constants.ActionTake {
		t.Errorf("recorded = %+v", rec.Responses)
	}
}

func TestModel_DemoTriggerFromInit(t *testing.T) {
	m, _ := newTestModel(t, Options{DemoEnabled: true, DemoDelay: time.Millisecond})

	cmd := m.Init()
	if cmd == nil {
		t.Fatal("Init should arm the demo trigger")
	}
	msg := cmd()
	if _, ok := msg.(handlers.DemoTriggerMsg); !ok {
		t.Fatalf("got %#v, want DemoTriggerMsg", msg)
	}
	m, _ = update(t, m, msg)
	if !m.Trigger.Showing("1") {
		t.Error("overlay should show the first alarm")
	}
}

func TestModel_DarkModeToggleFromHeader(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	if !strings.Contains(m.View(), "light") {
		t.Fatal("expected light mode first")
	}

	m, _ = update(t, m, runes("D"))
	if !m.Controller.Settings().DarkMode || !strings.Contains(m.View(), "dark") {
		t.Error("D should switch to dark mode")
	}
}

func TestModel_QuitClearsView(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	m, cmd := update(t, m, runes("q"))
	if cmd == nil || !m.Quitting {
		t.Fatal("q should quit")
	}
	if m.View() != "" {
		t.Error("quitting view should be empty")
	}
}
