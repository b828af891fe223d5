package model

import "time"

// DateLayout — формат календарных дат в сохранённых записях.
const DateLayout = "2006-01-02"

// ParseDate разбирает дату записи. Допускаются календарная дата
// (YYYY-MM-DD) и полный RFC3339; всё остальное — ok=false.
func ParseDate(s string) (time.Time, bool) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// SameDay сообщает, приходятся ли два момента на один календарный день.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
