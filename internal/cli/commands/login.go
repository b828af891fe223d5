package commands

import (
	"context"
	"fmt"

	"FleetKeeper/internal/cli/bootstrap"
	"FleetKeeper/internal/config"
)

type loginCmd struct{}

func (loginCmd) Name() string        { return "login" }
func (loginCmd) Description() string { return "Log in and store the session" }
func (loginCmd) Usage() string       { return "login <email> <password> <role>" }

func (loginCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 3 {
		return ErrUsage
	}
	role, err := parseRole(args[2])
	if err != nil {
		return err
	}
	app, done, err := bootstrap.Open(cfg)
	if err != nil {
		return err
	}
	defer done()

	u, err := app.Session.Login(args[0], args[1], role)
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "Logged in as %s (%s)\n", u.Name, u.Role)
	return nil
}

func init() { RegisterCmd(loginCmd{}) }
