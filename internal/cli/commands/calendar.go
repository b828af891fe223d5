package commands

import (
	"context"
	"fmt"
	"time"

	"FleetKeeper/internal/cli/bootstrap"
	"FleetKeeper/internal/config"
	"FleetKeeper/internal/model"
	"FleetKeeper/internal/views"
)

type calendarCmd struct{}

func (calendarCmd) Name() string        { return "calendar" }
func (calendarCmd) Description() string { return "Jobs scheduled on a calendar day" }
func (calendarCmd) Usage() string       { return "calendar <YYYY-MM-DD>" }

func (calendarCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	day, err := time.Parse(model.DateLayout, args[0])
	if err != nil {
		return fmt.Errorf("invalid date %q: expected YYYY-MM-DD", args[0])
	}
	app, done, err := bootstrap.Open(cfg)
	if err != nil {
		return err
	}
	defer done()

	if _, err := requireUser(app); err != nil {
		return err
	}
	jobs, err := app.Jobs.GetAll()
	if err != nil {
		return err
	}
	onDate := views.JobsOnDate(jobs, day)
	if len(onDate) == 0 {
		fmt.Fprintf(Out, "No jobs on %s\n", args[0])
		return nil
	}
	for _, j := range onDate {
		ship := app.Resolver.Ship(j.ShipID)
		fmt.Fprintf(Out, "- %s  %-22s ship=%s  priority=%s  status=%s\n",
			j.ID, j.Type, ship.Name, j.Priority, j.Status)
	}
	return nil
}

func init() { RegisterCmd(calendarCmd{}) }
