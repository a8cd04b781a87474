package system

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/medreminder/internal/cli"
	"github.com/julianstephens/medreminder/internal/controller"
	"github.com/julianstephens/medreminder/internal/logger"
	"github.com/julianstephens/medreminder/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	snap, err := ctx.Snapshot()
	if err != nil {
		return err
	}

	runCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ctrl := controller.New(snap)
	defer ctrl.Close()

	opts := tui.Options{}
	if ctx.Config != nil {
		opts.DemoEnabled = ctx.Config.Demo.Enabled
		opts.DemoDelay = ctx.Config.Demo.Delay
	}

	logger.Info("starting tui", "alarms", len(snap.Alarms), "demo", opts.DemoEnabled)
	p := tea.NewProgram(tui.NewModel(runCtx, ctrl, opts), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui exited with error: %w", err)
	}
	return nil
}
