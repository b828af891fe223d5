package commands

import (
	"context"
	"fmt"
	"time"

	"FleetKeeper/internal/cli/bootstrap"
	"FleetKeeper/internal/config"
	"FleetKeeper/internal/views"
)

// upcomingLimit — сколько ближайших работ показывать.
const upcomingLimit = 5

type upcomingCmd struct{}

func (upcomingCmd) Name() string        { return "upcoming" }
func (upcomingCmd) Description() string { return "Next scheduled maintenance jobs" }
func (upcomingCmd) Usage() string       { return "upcoming" }

func (upcomingCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
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
	upcoming := views.UpcomingJobs(jobs, time.Now(), upcomingLimit)
	if len(upcoming) == 0 {
		fmt.Fprintln(Out, "No upcoming jobs")
		return nil
	}
	for _, j := range upcoming {
		ship := app.Resolver.Ship(j.ShipID)
		fmt.Fprintf(Out, "- %s  %-22s ship=%s  priority=%s  date=%s\n",
			j.ID, j.Type, ship.Name, j.Priority, j.ScheduledDate)
	}
	return nil
}

func init() { RegisterCmd(upcomingCmd{}) }
