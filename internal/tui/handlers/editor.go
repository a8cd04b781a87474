package handlers

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/medreminder/internal/controller"
	"github.com/julianstephens/medreminder/internal/logger"
	"github.com/julianstephens/medreminder/internal/tui/state"
)

// HandleEditorState handles the create/edit screen
func HandleEditorState(m *state.Model, msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		CancelAlarmForm(m)
		return nil
	}

	if m.Form == nil {
		return nil
	}

	form, cmd := m.Form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.Form = f
	}

	switch m.Form.State {
	case huh.StateCompleted:
		SubmitAlarmForm(m)
	case huh.StateAborted:
		CancelAlarmForm(m)
	}
	return cmd
}

// CancelAlarmForm discards the draft and returns home
func CancelAlarmForm(m *state.Model) {
	m.Controller.CancelEdit()
	CloseAlarmForm(m)
}

// SubmitAlarmForm saves the completed form. On a rejected draft the error
// is shown and the form stays open for correction.
func SubmitAlarmForm(m *state.Model) {
	if m.AlarmForm == nil {
		return
	}
	if !m.AlarmForm.Confirmed {
		CancelAlarmForm(m)
		return
	}

	patch, err := m.AlarmForm.Patch()
	if err != nil {
		keepEditing(m, err)
		return
	}

	saved, err := m.Controller.SaveAlarm(patch)
	if errors.Is(err, controller.ErrAlarmNotFound) {
		// the controller already went home
		logger.Warn("alarm removed while editing", "error", err)
		CloseAlarmForm(m)
		m.Sync()
		return
	}
	if err != nil {
		keepEditing(m, err)
		return
	}

	logger.Info("alarm saved", "id", saved.ID, "medication", saved.MedicationName)
	CloseAlarmForm(m)
	m.Sync()
}

func keepEditing(m *state.Model, err error) {
	m.FormError = fmt.Sprintf("Cannot save: %v", err)
	if m.Form != nil {
		m.Form.State = huh.StateNormal
	}
}
