package repo

import (
	"FleetKeeper/internal/model"
	"FleetKeeper/internal/storage"
)

// ShipRepository — доступ к коллекции судов. Все мутаторы записывают
// коллекцию целиком до возврата, так что следующее чтение по любому
// пути видит изменение. Отсутствие записи — всегда тихий no-op.
type ShipRepository interface {
	// GetAll возвращает все суда в порядке добавления.
	GetAll() ([]model.Ship, error)
	// GetByID возвращает судно по id; nil — не найдено.
	GetByID(id string) (*model.Ship, error)
	// Add добавляет судно в конец коллекции. Уникальность id — на
	// совести вызывающего.
	Add(ship model.Ship) error
	// Update заменяет судно с тем же id, сохраняя его позицию.
	Update(ship model.Ship) error
	// Delete удаляет судно вместе с его компонентами и историей.
	Delete(id string) error
	// MaintenanceHistory возвращает историю обслуживания судна.
	MaintenanceHistory(shipID string) ([]model.MaintenanceRecord, error)
	// AddMaintenanceRecord дописывает запись в историю судна.
	AddMaintenanceRecord(shipID string, rec model.MaintenanceRecord) error
}

type shipRepo struct {
	store storage.Store
}

var _ ShipRepository = (*shipRepo)(nil)

// NewShipRepository создаёт репозиторий судов поверх хранилища.
func NewShipRepository(s storage.Store) ShipRepository {
	return &shipRepo{store: s}
}

func (r *shipRepo) load() ([]model.Ship, error) {
	var ships []model.Ship
	if _, err := storage.ReadJSON(r.store, storage.KeyShips, &ships); err != nil {
		return nil, err
	}
	return ships, nil
}

func (r *shipRepo) save(ships []model.Ship) error {
	return storage.WriteJSON(r.store, storage.KeyShips, ships)
}

func (r *shipRepo) GetAll() ([]model.Ship, error) {
	return r.load()
}

func (r *shipRepo) GetByID(id string) (*model.Ship, error) {
	ships, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range ships {
		if ships[i].ID == id {
			return &ships[i], nil
		}
	}
	return nil, nil
}

func (r *shipRepo) Add(ship model.Ship) error {
	ships, err := r.load()
	if err != nil {
		return err
	}
	return r.save(append(ships, ship))
}

func (r *shipRepo) Update(ship model.Ship) error {
	ships, err := r.load()
	if err != nil {
		return err
	}
	for i := range ships {
		if ships[i].ID == ship.ID {
			ships[i] = ship
			return r.save(ships)
		}
	}
	return nil
}

func (r *shipRepo) Delete(id string) error {
	ships, err := r.load()
	if err != nil {
		return err
	}
	kept := ships[:0]
	for _, s := range ships {
		if s.ID != id {
			kept = append(kept, s)
		}
	}
	return r.save(kept)
}

func (r *shipRepo) MaintenanceHistory(shipID string) ([]model.MaintenanceRecord, error) {
	ship, err := r.GetByID(shipID)
	if err != nil || ship == nil {
		return nil, err
	}
	return ship.MaintenanceHistory, nil
}

func (r *shipRepo) AddMaintenanceRecord(shipID string, rec model.MaintenanceRecord) error {
	ships, err := r.load()
	if err != nil {
		return err
	}
	for i := range ships {
		if ships[i].ID == shipID {
			ships[i].MaintenanceHistory = append(ships[i].MaintenanceHistory, rec)
			return r.save(ships)
		}
	}
	return nil
}
