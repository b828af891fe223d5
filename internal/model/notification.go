package model

import "time"

// Notification — временное уведомление о событиях жизненного цикла работ.
// Живёт только в памяти процесса и в хранилище не сохраняется.
type Notification struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Read      bool      `json:"read"`

	// Roles и UserIDs ограничивают видимость. Если оба пусты,
	// уведомление видно любому аутентифицированному пользователю.
	Roles   []Role   `json:"roles,omitempty"`
	UserIDs []string `json:"userIds,omitempty"`
}

// VisibleTo сообщает, должен ли пользователь видеть уведомление:
// адресовано ему лично, его роли, либо не адресовано никому конкретно.
func (n Notification) VisibleTo(u User) bool {
	for _, id := range n.UserIDs {
		if id == u.ID {
			return true
		}
	}
	for _, r := range n.Roles {
		if r == u.Role {
			return true
		}
	}
	return len(n.Roles) == 0 && len(n.UserIDs) == 0
}
