package commands

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"FleetKeeper/internal/cli/bootstrap"
	"FleetKeeper/internal/config"
	"FleetKeeper/internal/model"
)

type compCmd struct{}

func (compCmd) Name() string        { return "comp" }
func (compCmd) Description() string { return "Manage ship components" }
func (compCmd) Usage() string {
	return "comp list <shipId> | add <shipId> <name> <serial> <installed> [status] | edit <shipId> <id> <field> <value> | del <shipId> <id>"
}

func (compCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
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
		if _, err := requireUser(app, model.RoleAdmin, model.RoleEngineer); err != nil {
			return err
		}
		comps, err := app.Components.GetAll(shipID)
		if err != nil {
			return err
		}
		if len(comps) == 0 {
			fmt.Fprintln(Out, "No components")
			return nil
		}
		for _, c := range comps {
			last := c.LastMaintenanceDate
			if last == "" {
				last = "never"
			}
			fmt.Fprintf(Out, "- %s  %-18s sn=%s  installed=%s  last=%s  status=%s\n",
				c.ID, c.Name, c.SerialNumber, c.InstallationDate, last, c.Status)
		}
		return nil

	case "add":
		if len(args) < 5 || len(args) > 6 {
			return ErrUsage
		}
		if _, err := requireUser(app, model.RoleAdmin); err != nil {
			return err
		}
		status := model.StatusActive
		if len(args) == 6 {
			st, err := parseStatus(args[5])
			if err != nil {
				return err
			}
			status = st
		}
		// Запись в несуществующее судно — тихий no-op на уровне
		// репозитория; сообщаем об этом явно.
		ship, err := app.Ships.GetByID(shipID)
		if err != nil {
			return err
		}
		if ship == nil {
			fmt.Fprintf(Out, "Ship %s not found\n", shipID)
			return nil
		}
		c := model.Component{
			ID:               uuid.NewString(),
			ShipID:           shipID,
			Name:             args[2],
			SerialNumber:     args[3],
			InstallationDate: args[4],
			Status:           status,
		}
		if err := app.Components.Add(shipID, c); err != nil {
			return err
		}
		fmt.Fprintf(Out, "Added component %s (%s)\n", c.Name, c.ID)
		return nil

	case "edit":
		if len(args) != 5 {
			return ErrUsage
		}
		if _, err := requireUser(app, model.RoleAdmin); err != nil {
			return err
		}
		c, err := app.Components.GetByID(shipID, args[2])
		if err != nil {
			return err
		}
		if c == nil {
			fmt.Fprintf(Out, "Component %s not found on ship %s\n", args[2], shipID)
			return nil
		}
		switch args[3] {
		case "name":
			c.Name = args[4]
		case "serial":
			c.SerialNumber = args[4]
		case "installed":
			c.InstallationDate = args[4]
		case "last":
			c.LastMaintenanceDate = args[4]
		case "status":
			st, err := parseStatus(args[4])
			if err != nil {
				return err
			}
			c.Status = st
		default:
			return fmt.Errorf("unknown field: %s (expected: name|serial|installed|last|status)", args[3])
		}
		if err := app.Components.Update(shipID, *c); err != nil {
			return err
		}
		fmt.Fprintf(Out, "Updated component %s\n", c.ID)
		return nil

	case "del":
		if len(args) != 3 {
			return ErrUsage
		}
		if _, err := requireUser(app, model.RoleAdmin); err != nil {
			return err
		}
		if err := app.Components.Delete(shipID, args[2]); err != nil {
			return err
		}
		fmt.Fprintf(Out, "Deleted component %s\n", args[2])
		return nil
	}
	return ErrUsage
}

func init() { RegisterCmd(compCmd{}) }
