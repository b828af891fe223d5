package bootstrap

import (
	"fmt"
	"path/filepath"

	"FleetKeeper/internal/config"
	"FleetKeeper/internal/notify"
	"FleetKeeper/internal/repo"
	"FleetKeeper/internal/service"
	"FleetKeeper/internal/storage"
)

// App собирает хранилище, репозитории и сервисы для одного запуска CLI.
type App struct {
	Store      storage.Store
	Users      repo.UserRepository
	Ships      repo.ShipRepository
	Components repo.ComponentRepository
	Jobs       repo.JobRepository
	Resolver   *repo.Resolver
	Session    service.SessionService
	Prefs      service.PrefsService
	JobSvc     service.JobService
	Center     *notify.Center
}

// Open открывает хранилище согласно конфигурации, выполняет первичное
// заполнение и возвращает (app, cleanup, error). cleanup необходимо
// вызвать после окончания работы, чтобы закрыть хранилище.
func Open(cfg *config.Config) (*App, func() error, error) {
	st, err := openStore(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("open storage: %w", err)
	}
	if err := storage.SeedIfAbsent(st); err != nil {
		_ = st.Close()
		return nil, nil, fmt.Errorf("seed storage: %w", err)
	}

	app := &App{Store: st}
	app.Users = repo.NewUserRepository(st)
	app.Ships = repo.NewShipRepository(st)
	app.Components = repo.NewComponentRepository(st)
	app.Jobs = repo.NewJobRepository(st)
	app.Resolver = repo.NewResolver(app.Ships, app.Components, app.Users)
	app.Session = service.NewSessionService(st, app.Users)
	app.Prefs = service.NewPrefsService(st)
	app.Center = notify.NewCenter()
	app.JobSvc = service.NewJobService(app.Jobs, app.Prefs, app.Center)

	cleanup := func() error { return st.Close() }
	return app, cleanup, nil
}

func openStore(cfg *config.Config) (storage.Store, error) {
	switch cfg.Storage {
	case config.StorageMemory:
		return storage.NewMemory(), nil
	case config.StorageSQLite:
		path := cfg.DBPath
		if path == "" {
			dir, err := storage.DefaultDir()
			if err != nil {
				return nil, err
			}
			path = filepath.Join(dir, "fleet.sqlite")
		}
		return storage.OpenSQLite(path)
	default:
		dir := cfg.DataPath
		if dir == "" {
			d, err := storage.DefaultDir()
			if err != nil {
				return nil, err
			}
			dir = d
		}
		return storage.NewFile(dir)
	}
}
