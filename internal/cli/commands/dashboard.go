package commands

import (
	"context"
	"fmt"
	"time"

	"FleetKeeper/internal/cli/bootstrap"
	"FleetKeeper/internal/config"
	"FleetKeeper/internal/views"
)

type dashboardCmd struct{}

func (dashboardCmd) Name() string        { return "dashboard" }
func (dashboardCmd) Description() string { return "Fleet overview: stats and tallies" }
func (dashboardCmd) Usage() string       { return "dashboard" }

func (dashboardCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
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
	ships, err := app.Ships.GetAll()
	if err != nil {
		return err
	}
	jobs, err := app.Jobs.GetAll()
	if err != nil {
		return err
	}

	st := views.DashboardStats(ships, jobs, time.Now())
	fmt.Fprintf(Out, "Ships: %d  Overdue: %d  In progress: %d  Completed: %d\n",
		st.TotalShips, st.OverdueJobs, st.JobsInProgress, st.JobsCompleted)

	printCounts := func(title string, counts []views.Count) {
		fmt.Fprintf(Out, "%s:\n", title)
		for _, c := range counts {
			fmt.Fprintf(Out, "  %-12s %d\n", c.Name, c.Value)
		}
	}
	printCounts("Ships by status", views.ShipsByStatus(ships))
	printCounts("Jobs by status", views.JobsByStatus(jobs))
	printCounts("Jobs by priority", views.JobsByPriority(jobs))
	printCounts("Jobs per month", views.JobsPerMonth(jobs))
	return nil
}

func init() { RegisterCmd(dashboardCmd{}) }
