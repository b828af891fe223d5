package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"FleetKeeper/internal/cli/bootstrap"
	"FleetKeeper/internal/config"
	"FleetKeeper/internal/model"
)

type historyCmd struct{}

func (historyCmd) Name() string        { return "history" }
func (historyCmd) Description() string { return "Ship maintenance history" }
func (historyCmd) Usage() string {
	return "history list <shipId> | add <shipId> <type> <performedBy> [description]"
}

func (historyCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}
	app, done, err := bootstrap.Open(cfg)
	if err != nil {
		return err
	}
	defer done()

	shipID := args[1]
	switch args[0] {
	case "list":
		if len(args) != 2 {
			return ErrUsage
		}
		if _, err := requireUser(app, model.RoleAdmin, model.RoleInspector); err != nil {
			return err
		}
		recs, err := app.Ships.MaintenanceHistory(shipID)
		if err != nil {
			return err
		}
		if len(recs) == 0 {
			fmt.Fprintln(Out, "No maintenance history")
			return nil
		}
		for _, h := range recs {
			fmt.Fprintf(Out, "- %s  %s  %-20s by=%s  %s\n", h.ID, h.Date, h.Type, h.PerformedBy, h.Description)
		}
		return nil

	case "add":
		if len(args) < 4 {
			return ErrUsage
		}
		if _, err := requireUser(app, model.RoleAdmin, model.RoleInspector); err != nil {
			return err
		}
		ship, err := app.Ships.GetByID(shipID)
		if err != nil {
			return err
		}
		if ship == nil {
			fmt.Fprintf(Out, "Ship %s not found\n", shipID)
			return nil
		}
		rec := model.MaintenanceRecord{
			ID:          uuid.NewString(),
			Date:        time.Now().Format(model.DateLayout),
			Type:        args[2],
			Description: strings.Join(args[4:], " "),
			Status:      "Completed",
			PerformedBy: args[3],
		}
		if err := app.Ships.AddMaintenanceRecord(shipID, rec); err != nil {
			return err
		}
		fmt.Fprintf(Out, "Added maintenance record %s\n", rec.ID)
		return nil
	}
	return ErrUsage
}

func init() { RegisterCmd(historyCmd{}) }
