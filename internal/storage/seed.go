package storage

import "FleetKeeper/internal/model"

// Стартовые наборы данных. Записываются один раз при первом запуске;
// компоненты c7–c9 намеренно без shipId — старый формат, который
// читающий код обязан переносить.

func seedUsers() []model.User {
	return []model.User{
		{ID: "u1", Email: "admin@entnt.in", Password: "admin123", Role: model.RoleAdmin, Name: "Admin User"},
		{ID: "u2", Email: "inspector@entnt.in", Password: "inspect123", Role: model.RoleInspector, Name: "Inspector User"},
		{ID: "u3", Email: "engineer@entnt.in", Password: "engine123", Role: model.RoleEngineer, Name: "Engineer User"},
	}
}

func seedShips() []model.Ship {
	return []model.Ship{
		{
			ID: "s1", Name: "Evergreen", IMONumber: "IMO1234567", Flag: "Panama", Status: model.StatusActive,
			Components: []model.Component{
				{ID: "c1", ShipID: "s1", Name: "Main Engine", SerialNumber: "ENG-001", InstallationDate: "2023-01-01", LastMaintenanceDate: "2023-06-01", Status: model.StatusActive},
				{ID: "c2", ShipID: "s1", Name: "Generator", SerialNumber: "GEN-002", InstallationDate: "2023-02-01", LastMaintenanceDate: "2023-07-01", Status: model.StatusActive},
			},
			MaintenanceHistory: []model.MaintenanceRecord{},
		},
		{
			ID: "s2", Name: "Maersk Alabama", IMONumber: "IMO7654321", Flag: "Liberia", Status: model.StatusMaintenance,
			Components: []model.Component{
				{ID: "c3", ShipID: "s2", Name: "Auxiliary Pump", SerialNumber: "PUMP-003", InstallationDate: "2023-03-01", LastMaintenanceDate: "2023-08-01", Status: model.StatusMaintenance},
			},
			MaintenanceHistory: []model.MaintenanceRecord{},
		},
		{
			ID: "s3", Name: "Atlantic Explorer", IMONumber: "IMO2468135", Flag: "Singapore", Status: model.StatusActive,
			Components: []model.Component{
				{ID: "c7", Name: "Auxiliary Engine", SerialNumber: "AUX-007", InstallationDate: "2022-12-01", LastMaintenanceDate: "2023-11-01", Status: model.StatusActive},
				{ID: "c8", Name: "Ballast System", SerialNumber: "BAL-008", InstallationDate: "2023-01-20", LastMaintenanceDate: "2023-10-20", Status: model.StatusMaintenance},
				{ID: "c9", Name: "Fire Suppression", SerialNumber: "FIRE-009", InstallationDate: "2023-02-15", LastMaintenanceDate: "2023-09-15", Status: model.StatusActive},
			},
			MaintenanceHistory: []model.MaintenanceRecord{},
		},
	}
}

func seedJobs() []model.Job {
	return []model.Job{
		{
			ID: "j1", ShipID: "s1", ComponentID: "c1", Type: "Routine Maintenance",
			Priority: model.PriorityMedium, Status: model.JobScheduled, AssignedTo: "u3",
			ScheduledDate: "2024-01-15", Description: "Regular maintenance check",
		},
		{
			ID: "j2", ShipID: "s2", ComponentID: "c3", Type: "Emergency Repair",
			Priority: model.PriorityHigh, Status: model.JobInProgress, AssignedTo: "u3",
			ScheduledDate: "2023-12-15", Description: "Engine malfunction repair",
		},
	}
}

// SeedIfAbsent записывает стартовые данные для каждого отсутствующего
// ключа. Повторный вызов ничего не перезаписывает: существующие ключи
// остаются как есть.
func SeedIfAbsent(s Store) error {
	if err := seedKey(s, KeyUsers, seedUsers()); err != nil {
		return err
	}
	if err := seedKey(s, KeyShips, seedShips()); err != nil {
		return err
	}
	return seedKey(s, KeyJobs, seedJobs())
}

func seedKey(s Store, key string, v any) error {
	if _, ok, err := s.Read(key); err != nil || ok {
		return err
	}
	return WriteJSON(s, key, v)
}
