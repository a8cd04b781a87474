package alarms

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/medreminder/internal/cli"
	"github.com/julianstephens/medreminder/internal/export"
)

type ExportCmd struct {
	Out string `help:"Path of the .ics file to write." short:"o" required:""`
	All bool   `help:"Include paused medications."`
}

func (c *ExportCmd) Run(ctx *cli.Context) error {
	snap, err := ctx.Snapshot()
	if err != nil {
		return err
	}

	if dir := filepath.Dir(c.Out); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.Create(c.Out)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", c.Out, err)
	}

	opts := export.Options{IncludePaused: c.All, Now: ctx.Clock()}
	if err := export.Write(f, snap.Alarms, opts); err != nil {
		f.Close()
		return fmt.Errorf("failed to export alarms: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", c.Out, err)
	}

	ctx.Printf("✓ Exported medications to %s\n", c.Out)
	return nil
}
