package repo

import (
	"testing"

	"github.com/stretchr/testify/require"

	"FleetKeeper/internal/model"
	"FleetKeeper/internal/storage"
)

// newSeededStore — хранилище в памяти со стартовыми данными.
func newSeededStore(t *testing.T) storage.Store {
	t.Helper()
	s := storage.NewMemory()
	require.NoError(t, storage.SeedIfAbsent(s))
	return s
}

// newEmptyStore — пустое хранилище без стартовых данных.
func newEmptyStore(t *testing.T) storage.Store {
	t.Helper()
	return storage.NewMemory()
}

// mkShip — хелпер для создания судна без компонентов.
func mkShip(id, name string) model.Ship {
	return model.Ship{
		ID:                 id,
		Name:               name,
		IMONumber:          "IMO0000000",
		Flag:               "Panama",
		Status:             model.StatusActive,
		Components:         []model.Component{},
		MaintenanceHistory: []model.MaintenanceRecord{},
	}
}

// mkJob — хелпер для создания работы.
func mkJob(id, shipID string, status model.JobStatus) model.Job {
	return model.Job{
		ID:            id,
		ShipID:        shipID,
		ComponentID:   "c1",
		Type:          "Routine Maintenance",
		Priority:      model.PriorityMedium,
		Status:        status,
		AssignedTo:    "u3",
		ScheduledDate: "2024-06-01",
		Description:   "check",
	}
}
