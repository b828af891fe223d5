package commands

import (
	"context"
	"fmt"

	"FleetKeeper/internal/cli/bootstrap"
	"FleetKeeper/internal/config"
)

type whoamiCmd struct{}

func (whoamiCmd) Name() string        { return "whoami" }
func (whoamiCmd) Description() string { return "Show the current session" }
func (whoamiCmd) Usage() string       { return "whoami" }

func (whoamiCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	app, done, err := bootstrap.Open(cfg)
	if err != nil {
		return err
	}
	defer done()

	u, err := app.Session.Restore()
	if err != nil {
		return err
	}
	if u == nil {
		fmt.Fprintln(Out, "Not logged in")
		return nil
	}
	fmt.Fprintf(Out, "%s <%s> role=%s\n", u.Name, u.Email, u.Role)
	return nil
}

func init() { RegisterCmd(whoamiCmd{}) }
