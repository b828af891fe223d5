package views

import (
	"sort"
	"time"

	"FleetKeeper/internal/model"
)

// Пакет views содержит чистые проекции уже загруженных коллекций для
// отображения. Состояния у проекций нет; текущее время везде
// передаётся параметром.

// Count — пара "значение → количество". Порядок групп соответствует
// первому появлению значения в исходных данных.
type Count struct {
	Name  string
	Value int
}

func countBy(n int, key func(i int) string) []Count {
	idx := map[string]int{}
	var out []Count
	for i := 0; i < n; i++ {
		k := key(i)
		if j, ok := idx[k]; ok {
			out[j].Value++
			continue
		}
		idx[k] = len(out)
		out = append(out, Count{Name: k, Value: 1})
	}
	return out
}

// JobsByStatus считает работы по статусам.
func JobsByStatus(jobs []model.Job) []Count {
	return countBy(len(jobs), func(i int) string { return string(jobs[i].Status) })
}

// JobsByPriority считает работы по приоритетам.
func JobsByPriority(jobs []model.Job) []Count {
	return countBy(len(jobs), func(i int) string { return string(jobs[i].Priority) })
}

// ShipsByStatus считает суда по статусам.
func ShipsByStatus(ships []model.Ship) []Count {
	return countBy(len(ships), func(i int) string { return string(ships[i].Status) })
}

// ComponentsByStatus считает компоненты по статусам.
func ComponentsByStatus(components []model.Component) []Count {
	return countBy(len(components), func(i int) string { return string(components[i].Status) })
}

// JobsPerMonth группирует работы по календарному месяцу запланированной
// даты (сокращённое английское имя месяца). Работы с нечитаемой датой
// пропускаются.
func JobsPerMonth(jobs []model.Job) []Count {
	idx := map[string]int{}
	var out []Count
	for _, j := range jobs {
		t, ok := model.ParseDate(j.ScheduledDate)
		if !ok {
			continue
		}
		m := t.Month().String()[:3]
		if k, seen := idx[m]; seen {
			out[k].Value++
			continue
		}
		idx[m] = len(out)
		out = append(out, Count{Name: m, Value: 1})
	}
	return out
}

// JobsOnDate возвращает работы, запланированные на указанный
// календарный день, без учёта времени суток.
func JobsOnDate(jobs []model.Job, day time.Time) []model.Job {
	var out []model.Job
	for _, j := range jobs {
		if t, ok := model.ParseDate(j.ScheduledDate); ok && model.SameDay(t, day) {
			out = append(out, j)
		}
	}
	return out
}

// UpcomingJobs возвращает не более limit работ, запланированных строго
// позже now, по возрастанию даты.
func UpcomingJobs(jobs []model.Job, now time.Time, limit int) []model.Job {
	type dated struct {
		job model.Job
		at  time.Time
	}
	var upcoming []dated
	for _, j := range jobs {
		if t, ok := model.ParseDate(j.ScheduledDate); ok && t.After(now) {
			upcoming = append(upcoming, dated{job: j, at: t})
		}
	}
	sort.SliceStable(upcoming, func(i, k int) bool { return upcoming[i].at.Before(upcoming[k].at) })
	if limit >= 0 && len(upcoming) > limit {
		upcoming = upcoming[:limit]
	}
	out := make([]model.Job, 0, len(upcoming))
	for _, d := range upcoming {
		out = append(out, d.job)
	}
	return out
}

// NotificationGroup — уведомления одного календарного дня в порядке
// поступления.
type NotificationGroup struct {
	Date  string
	Items []model.Notification
}

// GroupNotificationsByDay группирует уведомления по дню отметки
// времени (ключ YYYY-MM-DD). Порядок групп — по первому поступлению.
func GroupNotificationsByDay(items []model.Notification) []NotificationGroup {
	idx := map[string]int{}
	var out []NotificationGroup
	for _, n := range items {
		d := n.Timestamp.Format(model.DateLayout)
		if i, ok := idx[d]; ok {
			out[i].Items = append(out[i].Items, n)
			continue
		}
		idx[d] = len(out)
		out = append(out, NotificationGroup{Date: d, Items: []model.Notification{n}})
	}
	return out
}

// Stats — сводные показатели для дашборда.
type Stats struct {
	TotalShips     int
	OverdueJobs    int
	JobsInProgress int
	JobsCompleted  int
}

// DashboardStats считает сводку: всего судов, просроченные работы
// (запланированы раньше now и всё ещё в статусе Scheduled), работы в
// процессе и завершённые.
func DashboardStats(ships []model.Ship, jobs []model.Job, now time.Time) Stats {
	st := Stats{TotalShips: len(ships)}
	for _, j := range jobs {
		switch j.Status {
		case model.JobInProgress:
			st.JobsInProgress++
		case model.JobCompleted:
			st.JobsCompleted++
		case model.JobScheduled:
			if t, ok := model.ParseDate(j.ScheduledDate); ok && t.Before(now) {
				st.OverdueJobs++
			}
		}
	}
	return st
}
