package repo

import (
	"FleetKeeper/internal/model"
	"FleetKeeper/internal/storage"
)

// JobRepository — доступ к коллекции работ по обслуживанию.
type JobRepository interface {
	// GetAll возвращает все работы в порядке добавления.
	GetAll() ([]model.Job, error)
	// GetByID возвращает работу по id; nil — не найдена.
	GetByID(id string) (*model.Job, error)
	// Add добавляет работу в конец коллекции.
	Add(job model.Job) error
	// Update заменяет работу с тем же id, сохраняя позицию.
	Update(job model.Job) error
	// Delete удаляет работу.
	Delete(id string) error
	// UpdateStatus меняет только статус работы, не трогая остальные
	// поля. Отсутствующий id — тихий no-op.
	UpdateStatus(id string, status model.JobStatus) error
}

type jobRepo struct {
	store storage.Store
}

var _ JobRepository = (*jobRepo)(nil)

// NewJobRepository создаёт репозиторий работ поверх хранилища.
func NewJobRepository(s storage.Store) JobRepository {
	return &jobRepo{store: s}
}

func (r *jobRepo) load() ([]model.Job, error) {
	var jobs []model.Job
	if _, err := storage.ReadJSON(r.store, storage.KeyJobs, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *jobRepo) save(jobs []model.Job) error {
	return storage.WriteJSON(r.store, storage.KeyJobs, jobs)
}

func (r *jobRepo) GetAll() ([]model.Job, error) {
	return r.load()
}

func (r *jobRepo) GetByID(id string) (*model.Job, error) {
	jobs, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range jobs {
		if jobs[i].ID == id {
			return &jobs[i], nil
		}
	}
	return nil, nil
}

func (r *jobRepo) Add(job model.Job) error {
	jobs, err := r.load()
	if err != nil {
		return err
	}
	return r.save(append(jobs, job))
}

func (r *jobRepo) Update(job model.Job) error {
	jobs, err := r.load()
	if err != nil {
		return err
	}
	for i := range jobs {
		if jobs[i].ID == job.ID {
			jobs[i] = job
			return r.save(jobs)
		}
	}
	return nil
}

func (r *jobRepo) Delete(id string) error {
	jobs, err := r.load()
	if err != nil {
		return err
	}
	kept := jobs[:0]
	for _, j := range jobs {
		if j.ID != id {
			kept = append(kept, j)
		}
	}
	return r.save(kept)
}

func (r *jobRepo) UpdateStatus(id string, status model.JobStatus) error {
	jobs, err := r.load()
	if err != nil {
		return err
	}
	for i := range jobs {
		if jobs[i].ID == id {
			jobs[i].Status = status
			return r.save(jobs)
		}
	}
	return nil
}
