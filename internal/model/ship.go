package model

// Status — состояние судна или компонента.
type Status string

const (
	StatusActive      Status = "Active"
	StatusMaintenance Status = "Maintenance"
	StatusInactive    Status = "Inactive"
)

// Ship — судно с встроенными компонентами и историей обслуживания.
// Компоненты и записи истории живут только внутри своего судна.
type Ship struct {
	ID                 string              `json:"id"`
	Name               string              `json:"name"`
	IMONumber          string              `json:"imoNumber"`
	Flag               string              `json:"flag"`
	Status             Status              `json:"status"`
	Components         []Component         `json:"components"`
	MaintenanceHistory []MaintenanceRecord `json:"maintenanceHistory"`
}

// Component — обслуживаемая часть судна. ShipID может отсутствовать у
// старых записей; id уникален только в пределах своего судна.
type Component struct {
	ID                  string `json:"id"`
	ShipID              string `json:"shipId,omitempty"`
	Name                string `json:"name"`
	SerialNumber        string `json:"serialNumber"`
	InstallationDate    string `json:"installationDate"`
	LastMaintenanceDate string `json:"lastMaintenanceDate,omitempty"`
	Status              Status `json:"status"`
}

// MaintenanceRecord — запись истории обслуживания. Только добавляется,
// операций изменения и удаления нет.
type MaintenanceRecord struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Status      string `json:"status"`
	PerformedBy string `json:"performedBy"`
}
