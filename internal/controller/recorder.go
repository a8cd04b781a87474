package controller

import (
	"time"

	"github.com/julianstephens/medreminder/internal/constants"
	"github.com/julianstephens/medreminder/internal/logger"
	"github.com/julianstephens/medreminder/internal/models"
)

// TriggerResponse is what the user did when an alarm fired
type TriggerResponse struct {
	Action constants.TriggerAction
	Note   string
	Alarm  models.Alarm
	At     time.Time
}

// ResponseRecorder receives trigger responses. Adherence tracking and snooze
// rescheduling would hang off this; the app itself only logs them.
type ResponseRecorder interface {
	Record(TriggerResponse)
}

// LogRecorder writes each response to the application log
type LogRecorder struct{}

// Record implements ResponseRecorder
func (LogRecorder) Record(r TriggerResponse) {
	logger.Info("alarm response",
		"action", r.Action,
		"alarm_id", r.Alarm.ID,
		"medication", r.Alarm.MedicationName,
		"note", r.Note,
		"at", r.At.Format(time.RFC3339),
	)
}

// MemoryRecorder keeps responses in memory, newest last
type MemoryRecorder struct {
	Responses []TriggerResponse
}

// Record implements ResponseRecorder
func (m *MemoryRecorder) Record(r TriggerResponse) {
	m.Responses = append(m.Responses, r)
}
