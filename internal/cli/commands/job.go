package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"FleetKeeper/internal/cli/bootstrap"
	"FleetKeeper/internal/config"
	"FleetKeeper/internal/model"
)

type jobCmd struct{}

func (jobCmd) Name() string        { return "job" }
func (jobCmd) Description() string { return "Manage maintenance jobs" }
func (jobCmd) Usage() string {
	return "job list | show <id> | add <shipId> <compId> <type> <priority> <date> <engineerId> [description] | edit <id> <field> <value> | status <id> <status> | del <id>"
}

func (jobCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) == 0 {
		return ErrUsage
	}
	app, done, err := bootstrap.Open(cfg)
	if err != nil {
		return err
	}
	defer done()

	// Уведомления о событиях работ выводятся сразу после мутации.
	app.Center.Subscribe(func(n model.Notification) {
		fmt.Fprintf(Out, "notification: %s: %s\n", n.Title, n.Message)
	})

	switch args[0] {
	case "list":
		if len(args) != 1 {
			return ErrUsage
		}
		if _, err := requireUser(app, model.RoleAdmin, model.RoleEngineer); err != nil {
			return err
		}
		jobs, err := app.Jobs.GetAll()
		if err != nil {
			return err
		}
		if len(jobs) == 0 {
			fmt.Fprintln(Out, "No jobs")
			return nil
		}
		for _, j := range jobs {
			ship := app.Resolver.Ship(j.ShipID)
			assignee := app.Resolver.User(j.AssignedTo)
			fmt.Fprintf(Out, "- %s  %-22s ship=%s  priority=%s  status=%s  date=%s  assigned=%s\n",
				j.ID, j.Type, ship.Name, j.Priority, j.Status, j.ScheduledDate, assignee.Name)
		}
		return nil

	case "show":
		if len(args) != 2 {
			return ErrUsage
		}
		if _, err := requireUser(app, model.RoleAdmin, model.RoleEngineer); err != nil {
			return err
		}
		job, err := app.Jobs.GetByID(args[1])
		if err != nil {
			return err
		}
		if job == nil {
			fmt.Fprintf(Out, "Job %s not found\n", args[1])
			return nil
		}
		ship := app.Resolver.Ship(job.ShipID)
		comp := app.Resolver.Component(job.ShipID, job.ComponentID)
		assignee := app.Resolver.User(job.AssignedTo)
		fmt.Fprintf(Out, "%s  %s\n", job.ID, job.Type)
		fmt.Fprintf(Out, "  ship:      %s (%s)\n", ship.Name, job.ShipID)
		fmt.Fprintf(Out, "  component: %s (%s)\n", comp.Name, job.ComponentID)
		fmt.Fprintf(Out, "  assigned:  %s (%s)\n", assignee.Name, job.AssignedTo)
		fmt.Fprintf(Out, "  priority=%s  status=%s  date=%s\n", job.Priority, job.Status, job.ScheduledDate)
		if job.Description != "" {
			fmt.Fprintf(Out, "  %s\n", job.Description)
		}
		return nil

	case "add":
		if len(args) < 7 {
			return ErrUsage
		}
		if _, err := requireUser(app, model.RoleAdmin); err != nil {
			return err
		}
		priority, err := parsePriority(args[4])
		if err != nil {
			return err
		}
		job := model.Job{
			ID:            uuid.NewString(),
			ShipID:        args[1],
			ComponentID:   args[2],
			Type:          args[3],
			Priority:      priority,
			Status:        model.JobScheduled,
			ScheduledDate: args[5],
			AssignedTo:    args[6],
			Description:   strings.Join(args[7:], " "),
		}
		if err := app.JobSvc.Create(job); err != nil {
			return err
		}
		fmt.Fprintf(Out, "Added job %s\n", job.ID)
		return nil

	case "edit":
		if len(args) != 4 {
			return ErrUsage
		}
		if _, err := requireUser(app, model.RoleAdmin); err != nil {
			return err
		}
		job, err := app.Jobs.GetByID(args[1])
		if err != nil {
			return err
		}
		if job == nil {
			fmt.Fprintf(Out, "Job %s not found\n", args[1])
			return nil
		}
		switch args[2] {
		case "type":
			job.Type = args[3]
		case "priority":
			p, err := parsePriority(args[3])
			if err != nil {
				return err
			}
			job.Priority = p
		case "date":
			job.ScheduledDate = args[3]
		case "assigned":
			job.AssignedTo = args[3]
		case "description":
			job.Description = args[3]
		default:
			return fmt.Errorf("unknown field: %s (expected: type|priority|date|assigned|description)", args[2])
		}
		if err := app.JobSvc.Update(*job); err != nil {
			return err
		}
		fmt.Fprintf(Out, "Updated job %s\n", job.ID)
		return nil

	case "status":
		if len(args) != 3 {
			return ErrUsage
		}
		if _, err := requireUser(app, model.RoleAdmin, model.RoleEngineer); err != nil {
			return err
		}
		status, err := parseJobStatus(args[2])
		if err != nil {
			return err
		}
		if err := app.JobSvc.Transition(args[1], status); err != nil {
			return err
		}
		fmt.Fprintf(Out, "Job %s is now %s\n", args[1], status)
		return nil

	case "del":
		if len(args) != 2 {
			return ErrUsage
		}
		if _, err := requireUser(app, model.RoleAdmin); err != nil {
			return err
		}
		if err := app.JobSvc.Delete(args[1]); err != nil {
			return err
		}
		fmt.Fprintf(Out, "Deleted job %s\n", args[1])
		return nil
	}
	return ErrUsage
}

func init() { RegisterCmd(jobCmd{}) }
