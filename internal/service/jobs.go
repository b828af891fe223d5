package service

import (
	"fmt"

	"FleetKeeper/internal/model"
	"FleetKeeper/internal/notify"
	"FleetKeeper/internal/repo"
)

// JobService управляет жизненным циклом работ и публикует уведомления
// о событиях created/updated/completed. Публикация подчиняется
// переключателю notificationsEnabled.
type JobService interface {
	// Create добавляет работу и публикует "Job Created".
	Create(job model.Job) error
	// Update заменяет существующую работу и публикует "Job Updated".
	// Неизвестный id — тихий no-op без уведомления.
	Update(job model.Job) error
	// Transition меняет только статус работы. Переход в Completed
	// публикует "Job Completed", остальные переходы — "Job Updated".
	Transition(id string, status model.JobStatus) error
	// Delete удаляет работу. Уведомление не публикуется.
	Delete(id string) error
}

type jobService struct {
	jobs   repo.JobRepository
	prefs  PrefsService
	center *notify.Center
}

var _ JobService = (*jobService)(nil)

// NewJobService создаёт сервис работ поверх репозитория, настроек и
// центра уведомлений.
func NewJobService(jobs repo.JobRepository, prefs PrefsService, center *notify.Center) JobService {
	return &jobService{jobs: jobs, prefs: prefs, center: center}
}

func (s *jobService) Create(job model.Job) error {
	if err := s.jobs.Add(job); err != nil {
		return err
	}
	log.Infow("job created", "job", job.ID, "ship", job.ShipID)
	s.publish("Job Created", "created", job)
	return nil
}

func (s *jobService) Update(job model.Job) error {
	existing, err := s.jobs.GetByID(job.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return nil
	}
	if err := s.jobs.Update(job); err != nil {
		return err
	}
	log.Infow("job updated", "job", job.ID)
	s.publish("Job Updated", "updated", job)
	return nil
}

func (s *jobService) Transition(id string, status model.JobStatus) error {
	job, err := s.jobs.GetByID(id)
	if err != nil {
		return err
	}
	if job == nil {
		return nil
	}
	if err := s.jobs.UpdateStatus(id, status); err != nil {
		return err
	}
	log.Infow("job status changed", "job", id, "from", job.Status, "to", status)
	job.Status = status
	if status == model.JobCompleted {
		s.publish("Job Completed", "completed", *job)
	} else {
		s.publish("Job Updated", "updated", *job)
	}
	return nil
}

func (s *jobService) Delete(id string) error {
	if err := s.jobs.Delete(id); err != nil {
		return err
	}
	log.Infow("job deleted", "job", id)
	return nil
}

func (s *jobService) publish(title, verb string, job model.Job) {
	enabled, err := s.prefs.NotificationsEnabled()
	if err != nil || !enabled {
		return
	}
	s.center.Publish(model.Notification{
		Title:   title,
		Message: fmt.Sprintf("Job %q for ship %s was %s.", job.Type, job.ShipID, verb),
	})
}
