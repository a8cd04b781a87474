package alarms

import (
	"time"

	"github.com/julianstephens/medreminder/internal/cli"
	"github.com/julianstephens/medreminder/internal/controller"
)

type NextCmd struct{}

func (c *NextCmd) Run(ctx *cli.Context) error {
	snap, err := ctx.Snapshot()
	if err != nil {
		return err
	}

	next, ok := controller.NextUpcoming(snap.Alarms)
	if !ok {
		ctx.Println("No active medications.")
		return nil
	}

	title := next.MedicationName
	if next.Dose != "" {
		title += " " + next.Dose
	}
	ctx.Printf("Next: %s\n", title)
	ctx.Printf("%s\n", next.Summary())

	if until := next.NextAlarm.Sub(ctx.Clock()); until > 0 {
		ctx.Printf("Due in %s\n", until.Round(time.Minute))
	}
	return nil
}
