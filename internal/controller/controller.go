// Package controller owns the authoritative in-memory state of the app:
// the alarm collection, the settings record and the navigation state.
// Views only read from it and report user actions back to it.
package controller

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/medreminder/internal/constants"
	"github.com/julianstephens/medreminder/internal/logger"
	"github.com/julianstephens/medreminder/internal/models"
	"github.com/julianstephens/medreminder/internal/scheduler"
	"github.com/julianstephens/medreminder/internal/seed"
)

var (
	// ErrEmptyMedicationName is returned when a save would leave the name blank
	ErrEmptyMedicationName = errors.New("medication name cannot be empty")
	// ErrAlarmNotFound is returned when the alarm being edited no longer exists
	ErrAlarmNotFound = errors.New("alarm not found")
	// ErrUnknownAction is returned for a trigger response outside take/snooze/skip
	ErrUnknownAction = errors.New("unknown trigger action")
	// ErrUnknownScreen is returned when selecting a tab that does not exist
	ErrUnknownScreen = errors.New("unknown screen")
)

// Option configures a Controller
type Option func(*Controller)

// WithClock overrides the time source
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// WithIDGenerator overrides how new alarm identifiers are minted
func WithIDGenerator(newID func() string) Option {
	return func(c *Controller) { c.newID = newID }
}

// WithRecorder sets where trigger responses are handed off
func WithRecorder(r ResponseRecorder) Option {
	return func(c *Controller) { c.recorder = r }
}

// Controller is the single owner of mutable app state. It is not safe for
// concurrent use; every method must be called from the UI event loop.
type Controller struct {
	alarms     []models.Alarm
	settings   models.AppSettings
	screen     constants.Screen
	editingID  string
	editing    bool
	triggering *models.Alarm

	now      func() time.Time
	newID    func() string
	recorder ResponseRecorder

	demo      *scheduler.OneShot
	demoFired bool
	closed    bool
}

// New creates a controller seeded from snap. The snapshot's alarm slice is copied.
func New(snap seed.Snapshot, opts ...Option) *Controller {
	c := &Controller{
		alarms:   append([]models.Alarm(nil), snap.Alarms...),
		settings: snap.Settings,
		screen:   constants.ScreenHome,
		now:      time.Now,
		newID:    newAlarmID,
		recorder: LogRecorder{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// newAlarmID returns a time-ordered UUIDv7, falling back to a random v4
func newAlarmID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// Alarms returns a copy of the alarm collection in its canonical order
func (c *Controller) Alarms() []models.Alarm {
	return append([]models.Alarm(nil), c.alarms...)
}

// Alarm looks up one alarm by identifier
func (c *Controller) Alarm(id string) (models.Alarm, bool) {
	if i := c.indexOf(id); i >= 0 {
		return c.alarms[i], true
	}
	return models.Alarm{}, false
}

// Now returns the current time from the controller's clock
func (c *Controller) Now() time.Time {
	return c.now()
}

// Settings returns the current settings record
func (c *Controller) Settings() models.AppSettings {
	return c.settings
}

// Screen returns the selected screen
func (c *Controller) Screen() constants.Screen {
	return c.screen
}

// Editing returns the alarm the create/edit screen is modifying, if any
func (c *Controller) Editing() (models.Alarm, bool) {
	if !c.editing {
		return models.Alarm{}, false
	}
	return c.Alarm(c.editingID)
}

// Triggering returns the alarm whose trigger overlay is showing, if any
func (c *Controller) Triggering() (models.Alarm, bool) {
	if c.triggering == nil {
		return models.Alarm{}, false
	}
	return *c.triggering, true
}

// ActiveCount returns how many alarms are active
func (c *Controller) ActiveCount() int {
	n := 0
	for _, a := range c.alarms {
		if a.Active {
			n++
		}
	}
	return n
}

// NextUpcoming derives the next upcoming alarm from the current collection
func (c *Controller) NextUpcoming() (models.Alarm, bool) {
	return NextUpcoming(c.alarms)
}

// NextUpcoming returns the active alarm with the earliest NextAlarm. Ties go
// to the alarm that appears first. It reports false when no alarm is active.
func NextUpcoming(alarms []models.Alarm) (models.Alarm, bool) {
	best := -1
	for i := range alarms {
		if !alarms[i].Active {
			continue
		}
		if best < 0 || alarms[i].NextAlarm.Before(alarms[best].NextAlarm) {
			best = i
		}
	}
	if best < 0 {
		return models.Alarm{}, false
	}
	return alarms[best], true
}

// ToggleAlarm flips the active flag of the alarm with the given id.
// Unknown ids are ignored.
func (c *Controller) ToggleAlarm(id string) {
	i := c.indexOf(id)
	if i < 0 {
		logger.Debug("toggle ignored, alarm not found", "id", id)
		return
	}
	c.alarms[i].Active = !c.alarms[i].Active
	logger.Debug("alarm toggled", "id", id, "active", c.alarms[i].Active)
}

// DeleteAlarm removes the alarm with the given id. Unknown ids are ignored.
func (c *Controller) DeleteAlarm(id string) {
	i := c.indexOf(id)
	if i < 0 {
		logger.Debug("delete ignored, alarm not found", "id", id)
		return
	}
	c.alarms = append(c.alarms[:i], c.alarms[i+1:]...)
	logger.Debug("alarm deleted", "id", id, "remaining", len(c.alarms))
}

// SaveAlarm applies the editor's submission. With an editing reference set the
// patch is merged onto that alarm; otherwise a new active alarm is appended.
// On success the editing reference is cleared and navigation returns home.
// A rejected patch leaves all state, including the screen, untouched.
func (c *Controller) SaveAlarm(p models.AlarmPatch) (models.Alarm, error) {
	if p.MedicationName != nil {
		trimmed := strings.TrimSpace(*p.MedicationName)
		p.MedicationName = &trimmed
	}

	if c.editing {
		i := c.indexOf(c.editingID)
		if i < 0 {
			logger.Warn("edited alarm disappeared before save", "id", c.editingID)
			c.finishEditing()
			return models.Alarm{}, fmt.Errorf("saving alarm %s: %w", c.editingID, ErrAlarmNotFound)
		}

		updated := p.ApplyTo(c.alarms[i])
		if err := checkAlarm(updated); err != nil {
			return models.Alarm{}, err
		}
		c.alarms[i] = updated
		logger.Debug("alarm updated", "id", updated.ID, "medication", updated.MedicationName)
		c.finishEditing()
		return updated, nil
	}

	created := p.NewAlarm(c.newID(), c.now())
	if err := checkAlarm(created); err != nil {
		return models.Alarm{}, err
	}
	c.alarms = append(c.alarms, created)
	logger.Debug("alarm created", "id", created.ID, "medication", created.MedicationName)
	c.finishEditing()
	return created, nil
}

func checkAlarm(a models.Alarm) error {
	if strings.TrimSpace(a.MedicationName) == "" {
		return ErrEmptyMedicationName
	}
	return a.Validate()
}

func (c *Controller) finishEditing() {
	c.editing = false
	c.editingID = ""
	c.screen = constants.ScreenHome
}

// BeginCreate opens the create/edit screen with no alarm selected
func (c *Controller) BeginCreate() {
	c.editing = false
	c.editingID = ""
	c.screen = constants.ScreenCreate
}

// BeginEdit opens the create/edit screen for an existing alarm
func (c *Controller) BeginEdit(a models.Alarm) {
	c.editing = true
	c.editingID = a.ID
	c.screen = constants.ScreenCreate
}

// CancelEdit discards the editing reference and returns home
func (c *Controller) CancelEdit() {
	c.finishEditing()
}

// SelectTab switches screens from the tab bar. Selecting the create tab
// always starts a fresh alarm; selecting home drops any edit in progress.
func (c *Controller) SelectTab(s constants.Screen) error {
	switch s {
	case constants.ScreenHome:
		c.finishEditing()
	case constants.ScreenCreate:
		c.BeginCreate()
	case constants.ScreenSettings:
		c.screen = constants.ScreenSettings
	default:
		return fmt.Errorf("%w: %q", ErrUnknownScreen, s)
	}
	return nil
}

// UpdateSettings replaces the settings record wholesale
func (c *Controller) UpdateSettings(s models.AppSettings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	c.settings = s
	logger.Debug("settings updated", "volume", s.Volume, "tone", s.AlarmTone, "dark_mode", s.DarkMode)
	return nil
}

// RespondToTrigger dismisses the trigger overlay with the user's response.
// The response is handed to the recorder; alarms and settings are not changed.
func (c *Controller) RespondToTrigger(action constants.TriggerAction, note string) error {
	if !isKnownAction(action) {
		return fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}
	if c.triggering == nil {
		return nil
	}

	resp := TriggerResponse{
		Action: action,
		Note:   strings.TrimSpace(note),
		Alarm:  *c.triggering,
		At:     c.now(),
	}
	c.triggering = nil

	if c.recorder != nil {
		c.recorder.Record(resp)
	}
	return nil
}

func isKnownAction(a constants.TriggerAction) bool {
	for _, known := range constants.TriggerActions {
		if a == known {
			return true
		}
	}
	return false
}

// ArmDemoTrigger schedules the one-shot demo trigger. notify runs on a timer
// goroutine and must only hand off to the event loop, which then calls
// FireDemoTrigger. Arming twice, or after Close, does nothing.
func (c *Controller) ArmDemoTrigger(ctx context.Context, delay time.Duration, notify func()) {
	if c.closed || c.demo != nil || c.demoFired {
		return
	}
	c.demo = scheduler.Schedule(ctx, delay, notify)
	logger.Debug("demo trigger armed", "delay", delay)
}

// FireDemoTrigger shows the trigger overlay for the first alarm if it exists
// and is active. It takes effect at most once per controller and never after
// Close. It reports whether the overlay was set.
func (c *Controller) FireDemoTrigger() bool {
	if c.closed || c.demoFired {
		return false
	}
	c.demoFired = true

	if len(c.alarms) == 0 || !c.alarms[0].Active {
		logger.Debug("demo trigger skipped, first alarm missing or inactive")
		return false
	}
	first := c.alarms[0]
	c.triggering = &first
	logger.Info("alarm triggered", "id", first.ID, "medication", first.MedicationName)
	return true
}

// Close tears the controller down and cancels a pending demo trigger
func (c *Controller) Close() {
	if c.closed {
		return
	}
	c.closed = true
	if c.demo != nil && c.demo.Stop() {
		logger.Debug("pending demo trigger cancelled")
	}
}

func (c *Controller) indexOf(id string) int {
	for i := range c.alarms {
		if c.alarms[i].ID == id {
			return i
		}
	}
	return -1
}
