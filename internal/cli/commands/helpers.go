package commands

import (
	"errors"
	"fmt"

	"FleetKeeper/internal/cli/bootstrap"
	"FleetKeeper/internal/model"
	"FleetKeeper/internal/service"
)

// errNotLoggedIn выводится, когда команда требует сессию, а её нет.
var errNotLoggedIn = errors.New("not logged in: run 'fleet login <email> <password> <role>' first")

// requireUser восстанавливает сессию и проверяет роль. Пустой список
// ролей — любой аутентифицированный пользователь.
func requireUser(app *bootstrap.App, roles ...model.Role) (*model.User, error) {
	u, err := app.Session.Restore()
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, errNotLoggedIn
	}
	if !service.IsAllowed(u, roles...) {
		return nil, service.ErrUnauthorized
	}
	return u, nil
}

// parseRole разбирает роль из аргумента командной строки.
func parseRole(s string) (model.Role, error) {
	switch model.Role(s) {
	case model.RoleAdmin, model.RoleInspector, model.RoleEngineer:
		return model.Role(s), nil
	}
	return "", fmt.Errorf("unknown role: %q (expected: Admin|Inspector|Engineer)", s)
}

// parseStatus разбирает статус судна или компонента.
func parseStatus(s string) (model.Status, error) {
	switch model.Status(s) {
	case model.StatusActive, model.StatusMaintenance, model.StatusInactive:
		return model.Status(s), nil
	}
	return "", fmt.Errorf("unknown status: %q (expected: Active|Maintenance|Inactive)", s)
}

// parseJobStatus разбирает статус работы.
func parseJobStatus(s string) (model.JobStatus, error) {
	switch model.JobStatus(s) {
	case model.JobScheduled, model.JobInProgress, model.JobCompleted, model.JobCancelled:
		return model.JobStatus(s), nil
	}
	return "", fmt.Errorf("unknown job status: %q (expected: Scheduled|In Progress|Completed|Cancelled)", s)
}

// parsePriority разбирает приоритет работы.
func parsePriority(s string) (model.Priority, error) {
	switch model.Priority(s) {
	case model.PriorityLow, model.PriorityMedium, model.PriorityHigh, model.PriorityCritical:
		return model.Priority(s), nil
	}
	return "", fmt.Errorf("unknown priority: %q (expected: Low|Medium|High|Critical)", s)
}
