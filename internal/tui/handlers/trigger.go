package handlers

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/medreminder/internal/logger"
	"github.com/julianstephens/medreminder/internal/tui/components/trigger"
	"github.com/julianstephens/medreminder/internal/tui/state"
)

// DemoTriggerMsg is delivered when the demo timer elapses
type DemoTriggerMsg struct{}

// WaitForDemoTrigger blocks until the demo timer signals or ctx ends. A
// cancelled context yields no message.
func WaitForDemoTrigger(ctx context.Context, signal <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-signal:
			return DemoTriggerMsg{}
		case <-ctx.Done():
			return nil
		}
	}
}

// ArmDemoTrigger starts the demo timer. The timer goroutine only signals;
// the event loop applies the trigger when DemoTriggerMsg arrives.
func ArmDemoTrigger(m *state.Model, delay time.Duration) tea.Cmd {
	if m.DemoSignal == nil {
		m.DemoSignal = make(chan struct{}, 1)
	}
	signal := m.DemoSignal
	m.Controller.ArmDemoTrigger(m.Ctx, delay, func() {
		select {
		case signal <- struct{}{}:
		default:
		}
	})
	return WaitForDemoTrigger(m.Ctx, signal)
}

// HandleTriggerMessages handles the demo timer and the trigger overlay
func HandleTriggerMessages(m *state.Model, msg tea.Msg) (bool, tea.Cmd) {
	switch msg := msg.(type) {
	case DemoTriggerMsg:
		if m.Controller.FireDemoTrigger() {
			m.Sync()
		}
		return true, nil

	case trigger.RespondMsg:
		if err := m.Controller.RespondToTrigger(msg.Action, msg.Note); err != nil {
			logger.Warn("trigger response rejected", "error", err)
			return true, nil
		}
		m.Sync()
		return true, nil
	}
	return false, nil
}
