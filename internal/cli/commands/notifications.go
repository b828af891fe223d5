package commands

import (
	"context"
	"fmt"

	"FleetKeeper/internal/cli/bootstrap"
	"FleetKeeper/internal/config"
	"FleetKeeper/internal/views"
)

type notifCmd struct{}

func (notifCmd) Name() string        { return "notif" }
func (notifCmd) Description() string { return "Show in-process notifications" }
func (notifCmd) Usage() string       { return "notif list | read <id> | del <id> | clear" }

// Уведомления живут только в памяти процесса, поэтому между запусками
// CLI центр пуст; команда существует ради полноты поверхности и для
// интерактивных обёрток поверх пакета commands.
func (notifCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) == 0 {
		return ErrUsage
	}
	app, done, err := bootstrap.Open(cfg)
	if err != nil {
		return err
	}
	defer done()

	u, err := requireUser(app)
	if err != nil {
		return err
	}

	switch args[0] {
	case "list":
		if len(args) != 1 {
			return ErrUsage
		}
		visible := app.Center.VisibleTo(*u)
		if len(visible) == 0 {
			fmt.Fprintln(Out, "No notifications")
			return nil
		}
		for _, g := range views.GroupNotificationsByDay(visible) {
			fmt.Fprintf(Out, "%s:\n", g.Date)
			for _, n := range g.Items {
				mark := " "
				if !n.Read {
					mark = "*"
				}
				fmt.Fprintf(Out, " %s %s  %s: %s\n", mark, n.ID, n.Title, n.Message)
			}
		}
		fmt.Fprintf(Out, "Unread: %d\n", app.Center.Unread(*u))
		return nil

	case "read":
		if len(args) != 2 {
			return ErrUsage
		}
		app.Center.MarkRead(args[1])
		return nil

	case "del":
		if len(args) != 2 {
			return ErrUsage
		}
		app.Center.Remove(args[1])
		return nil

	case "clear":
		if len(args) != 1 {
			return ErrUsage
		}
		app.Center.ClearAll()
		fmt.Fprintln(Out, "Cleared")
		return nil
	}
	return ErrUsage
}

func init() { RegisterCmd(notifCmd{}) }
