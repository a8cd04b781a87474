package alarms

import (
	"strings"

	"github.com/julianstephens/medreminder/internal/cli"
	"github.com/julianstephens/medreminder/internal/controller"
)

type ListCmd struct{}

func (c *ListCmd) Run(ctx *cli.Context) error {
	snap, err := ctx.Snapshot()
	if err != nil {
		return err
	}

	if len(snap.Alarms) == 0 {
		ctx.Println("No medications configured.")
		return nil
	}

	active := 0
	for _, a := range snap.Alarms {
		if a.Active {
			active++
		}
	}
	ctx.Printf("%d Active\n\n", active)

	ctx.Printf("%-10s %-24s %-12s %-6s %-12s %-8s\n", "ID", "Medication", "Dose", "Time", "Repeat", "Status")
	ctx.Println(strings.Repeat("-", 78))

	for _, a := range snap.Alarms {
		id := a.ID
		if len(id) > 8 {
			id = id[:8]
		}
		name := a.MedicationName
		if len(name) > 22 {
			name = name[:19] + "..."
		}
		dose := a.Dose
		if dose == "" {
			dose = "-"
		}
		status := "Active"
		if !a.Active {
			status = "Paused"
		}

		ctx.Printf("%-10s %-24s %-12s %-6s %-12s %-8s\n",
			id, name, dose, a.Time, a.RepeatLabel(), status)
	}

	if next, ok := controller.NextUpcoming(snap.Alarms); ok {
		ctx.Printf("\nNext: %s (%s)\n", next.MedicationName, next.Summary())
	}
	return nil
}

