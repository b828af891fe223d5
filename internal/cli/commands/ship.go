package commands

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"FleetKeeper/internal/cli/bootstrap"
	"FleetKeeper/internal/config"
	"FleetKeeper/internal/model"
)

type shipCmd struct{}

func (shipCmd) Name() string        { return "ship" }
func (shipCmd) Description() string { return "Manage ships" }
func (shipCmd) Usage() string {
	return "ship list | show <id> | add <name> <imo> <flag> [status] | edit <id> <field> <value> | del <id>"
}

func (shipCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) == 0 {
		return ErrUsage
	}
	app, done, err := bootstrap.Open(cfg)
	if err != nil {
		return err
	}
	defer done()

	switch args[0] {
	case "list":
		if len(args) != 1 {
			return ErrUsage
		}
		if _, err := requireUser(app, model.RoleAdmin, model.RoleInspector); err != nil {
			return err
		}
		ships, err := app.Ships.GetAll()
		if err != nil {
			return err
		}
		if len(ships) == 0 {
			fmt.Fprintln(Out, "No ships")
			return nil
		}
		for _, s := range ships {
			fmt.Fprintf(Out, "- %s  %-20s %s  flag=%s  status=%s  components=%d\n",
				s.ID, s.Name, s.IMONumber, s.Flag, s.Status, len(s.Components))
		}
		return nil

	case "show":
		if len(args) != 2 {
			return ErrUsage
		}
		if _, err := requireUser(app, model.RoleAdmin, model.RoleInspector); err != nil {
			return err
		}
		ship, err := app.Ships.GetByID(args[1])
		if err != nil {
			return err
		}
		if ship == nil {
			fmt.Fprintf(Out, "Ship %s not found\n", args[1])
			return nil
		}
		fmt.Fprintf(Out, "%s  %s  flag=%s  status=%s\n", ship.Name, ship.IMONumber, ship.Flag, ship.Status)
		fmt.Fprintf(Out, "Components (%d):\n", len(ship.Components))
		for _, c := range ship.Components {
			fmt.Fprintf(Out, "  - %s  %-18s sn=%s  installed=%s  status=%s\n",
				c.ID, c.Name, c.SerialNumber, c.InstallationDate, c.Status)
		}
		fmt.Fprintf(Out, "Maintenance history (%d):\n", len(ship.MaintenanceHistory))
		for _, h := range ship.MaintenanceHistory {
			fmt.Fprintf(Out, "  - %s  %s  %s  by=%s  %s\n", h.ID, h.Date, h.Type, h.PerformedBy, h.Description)
		}
		return nil

	case "add":
		if len(args) < 4 || len(args) > 5 {
			return ErrUsage
		}
		if _, err := requireUser(app, model.RoleAdmin); err != nil {
			return err
		}
		status := model.StatusActive
		if len(args) == 5 {
			st, err := parseStatus(args[4])
			if err != nil {
				return err
			}
			status = st
		}
		ship := model.Ship{
			ID:                 uuid.NewString(),
			Name:               args[1],
			IMONumber:          args[2],
			Flag:               args[3],
			Status:             status,
			Components:         []model.Component{},
			MaintenanceHistory: []model.MaintenanceRecord{},
		}
		if err := app.Ships.Add(ship); err != nil {
			return err
		}
		fmt.Fprintf(Out, "Added ship %s (%s)\n", ship.Name, ship.ID)
		return nil

	case "edit":
		if len(args) != 4 {
			return ErrUsage
		}
		if _, err := requireUser(app, model.RoleAdmin); err != nil {
			return err
		}
		ship, err := app.Ships.GetByID(args[1])
		if err != nil {
			return err
		}
		if ship == nil {
			fmt.Fprintf(Out, "Ship %s not found\n", args[1])
			return nil
		}
		switch args[2] {
		case "name":
			ship.Name = args[3]
		case "imo":
			ship.IMONumber = args[3]
		case "flag":
			ship.Flag = args[3]
		case "status":
			st, err := parseStatus(args[3])
			if err != nil {
				return err
			}
			ship.Status = st
		default:
			return fmt.Errorf("unknown field: %s (expected: name|imo|flag|status)", args[2])
		}
		if err := app.Ships.Update(*ship); err != nil {
			return err
		}
		fmt.Fprintf(Out, "Updated ship %s\n", ship.ID)
		return nil

	case "del":
		if len(args) != 2 {
			return ErrUsage
		}
		if _, err := requireUser(app, model.RoleAdmin); err != nil {
			return err
		}
		if err := app.Ships.Delete(args[1]); err != nil {
			return err
		}
		fmt.Fprintf(Out, "Deleted ship %s\n", args[1])
		return nil
	}
	return ErrUsage
}

func init() { RegisterCmd(shipCmd{}) }
