package model

// Priority — приоритет работы.
type Priority string

const (
	PriorityLow      Priority = "Low"
	PriorityMedium   Priority = "Medium"
	PriorityHigh     Priority = "High"
	PriorityCritical Priority = "Critical"
)

// JobStatus — статус работы по обслуживанию.
type JobStatus string

const (
	JobScheduled  JobStatus = "Scheduled"
	JobInProgress JobStatus = "In Progress"
	JobCompleted  JobStatus = "Completed"
	JobCancelled  JobStatus = "Cancelled"
)

// Job — запланированная работа по обслуживанию. Ссылки ShipID,
// ComponentID и AssignedTo мягкие: целостность не проверяется, работа
// может пережить судно/компонент/пользователя, на которые ссылается.
type Job struct {
	ID            string    `json:"id"`
	ShipID        string    `json:"shipId"`
	ComponentID   string    `json:"componentId"`
	Type          string    `json:"type"`
	Priority      Priority  `json:"priority"`
	Status        JobStatus `json:"status"`
	AssignedTo    string    `json:"assignedTo"`
	ScheduledDate string    `json:"scheduledDate"`
	Description   string    `json:"description"`
}
