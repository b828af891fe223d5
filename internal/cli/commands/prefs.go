package commands

import (
	"context"
	"fmt"

	"FleetKeeper/internal/cli/bootstrap"
	"FleetKeeper/internal/config"
)

type prefsCmd struct{}

func (prefsCmd) Name() string        { return "prefs" }
func (prefsCmd) Description() string { return "Show or change UI preferences" }
func (prefsCmd) Usage() string       { return "prefs show | theme <light|dark|system> | notif <on|off>" }

func (prefsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) == 0 {
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

	switch args[0] {
	case "show":
		if len(args) != 1 {
			return ErrUsage
		}
		theme, err := app.Prefs.Theme()
		if err != nil {
			return err
		}
		enabled, err := app.Prefs.NotificationsEnabled()
		if err != nil {
			return err
		}
		state := "off"
		if enabled {
			state = "on"
		}
		fmt.Fprintf(Out, "theme=%s notifications=%s\n", theme, state)
		return nil

	case "theme":
		if len(args) != 2 {
			return ErrUsage
		}
		if err := app.Prefs.SetTheme(args[1]); err != nil {
			return err
		}
		fmt.Fprintf(Out, "Theme set to %s\n", args[1])
		return nil

	case "notif":
		if len(args) != 2 {
			return ErrUsage
		}
		switch args[1] {
		case "on":
			err = app.Prefs.SetNotificationsEnabled(true)
		case "off":
			err = app.Prefs.SetNotificationsEnabled(false)
		default:
			return ErrUsage
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(Out, "Notifications %s\n", args[1])
		return nil
	}
	return ErrUsage
}

func init() { RegisterCmd(prefsCmd{}) }
