package notify

import (
	"strconv"
	"time"

	"FleetKeeper/internal/model"
)

// Center — внутрипроцессный центр уведомлений. Состояние живёт только
// в памяти и не переживает перезапуск процесса; долговечность здесь не
// обещается. Доступ однопоточный, как и весь остальной код.
type Center struct {
	items []model.Notification
	subs  []func(model.Notification)
	seq   int64
}

// NewCenter создаёт пустой центр уведомлений.
func NewCenter() *Center {
	return &Center{}
}

// Subscribe регистрирует подписчика. Подписчики вызываются синхронно
// при каждом Publish, в порядке регистрации.
func (c *Center) Subscribe(fn func(model.Notification)) {
	if fn != nil {
		c.subs = append(c.subs, fn)
	}
}

// Publish добавляет уведомление и оповещает подписчиков. Пустому id
// присваивается значение, производное от текущего времени; Read
// сбрасывается. Возвращается уведомление в том виде, в каком оно
// сохранено.
func (c *Center) Publish(n model.Notification) model.Notification {
	if n.Timestamp.IsZero() {
		n.Timestamp = time.Now()
	}
	if n.ID == "" {
		// суффикс seq отличает уведомления одной миллисекунды
		c.seq++
		n.ID = strconv.FormatInt(n.Timestamp.UnixMilli(), 10) + "-" + strconv.FormatInt(c.seq, 10)
	}
	n.Read = false
	c.items = append(c.items, n)
	for _, fn := range c.subs {
		fn(n)
	}
	return n
}

// All возвращает копию всех уведомлений в порядке поступления.
func (c *Center) All() []model.Notification {
	out := make([]model.Notification, len(c.items))
	copy(out, c.items)
	return out
}

// VisibleTo возвращает уведомления, которые должен видеть пользователь.
func (c *Center) VisibleTo(u model.User) []model.Notification {
	var out []model.Notification
	for _, n := range c.items {
		if n.VisibleTo(u) {
			out = append(out, n)
		}
	}
	return out
}

// Unread возвращает число непрочитанных уведомлений, видимых пользователю.
func (c *Center) Unread(u model.User) int {
	count := 0
	for _, n := range c.items {
		if !n.Read && n.VisibleTo(u) {
			count++
		}
	}
	return count
}

// MarkRead помечает уведомление прочитанным. Неизвестный id — no-op.
func (c *Center) MarkRead(id string) {
	for i := range c.items {
		if c.items[i].ID == id {
			c.items[i].Read = true
			return
		}
	}
}

// Remove удаляет уведомление. Неизвестный id — no-op.
func (c *Center) Remove(id string) {
	kept := c.items[:0]
	for _, n := range c.items {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	c.items = kept
}

// ClearAll удаляет все уведомления.
func (c *Center) ClearAll() {
	c.items = nil
}
