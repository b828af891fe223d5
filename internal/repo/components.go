package repo

import (
	"FleetKeeper/internal/model"
	"FleetKeeper/internal/storage"
)

// ComponentRepository — доступ к компонентам в пределах одного судна.
// Все операции принимают shipID; если судно не найдено, чтения
// возвращают пустой результат, а записи ничего не меняют — в том числе
// не трогают компоненты других судов.
type ComponentRepository interface {
	// GetAll возвращает компоненты судна в порядке хранения.
	GetAll(shipID string) ([]model.Component, error)
	// GetByID возвращает компонент судна по id; nil — не найден.
	GetByID(shipID, componentID string) (*model.Component, error)
	// Add добавляет компонент в конец списка судна.
	Add(shipID string, c model.Component) error
	// Update заменяет компонент с тем же id, сохраняя позицию.
	Update(shipID string, c model.Component) error
	// Delete удаляет компонент судна.
	Delete(shipID, componentID string) error
}

type componentRepo struct {
	store storage.Store
}

var _ ComponentRepository = (*componentRepo)(nil)

// NewComponentRepository создаёт репозиторий компонентов поверх хранилища.
func NewComponentRepository(s storage.Store) ComponentRepository {
	return &componentRepo{store: s}
}

func (r *componentRepo) load() ([]model.Ship, error) {
	var ships []model.Ship
	if _, err := storage.ReadJSON(r.store, storage.KeyShips, &ships); err != nil {
		return nil, err
	}
	return ships, nil
}

func (r *componentRepo) save(ships []model.Ship) error {
	return storage.WriteJSON(r.store, storage.KeyShips, ships)
}

func shipIndex(ships []model.Ship, shipID string) int {
	for i := range ships {
		if ships[i].ID == shipID {
			return i
		}
	}
	return -1
}

func (r *componentRepo) GetAll(shipID string) ([]model.Component, error) {
	ships, err := r.load()
	if err != nil {
		return nil, err
	}
	if i := shipIndex(ships, shipID); i != -1 {
		return ships[i].Components, nil
	}
	return nil, nil
}

func (r *componentRepo) GetByID(shipID, componentID string) (*model.Component, error) {
	comps, err := r.GetAll(shipID)
	if err != nil {
		return nil, err
	}
	for i := range comps {
		if comps[i].ID == componentID {
			return &comps[i], nil
		}
	}
	return nil, nil
}

func (r *componentRepo) Add(shipID string, c model.Component) error {
	ships, err := r.load()
	if err != nil {
		return err
	}
	i := shipIndex(ships, shipID)
	if i == -1 {
		return nil
	}
	ships[i].Components = append(ships[i].Components, c)
	return r.save(ships)
}

func (r *componentRepo) Update(shipID string, c model.Component) error {
	ships, err := r.load()
	if err != nil {
		return err
	}
	i := shipIndex(ships, shipID)
	if i == -1 {
		return nil
	}
	for j := range ships[i].Components {
		if ships[i].Components[j].ID == c.ID {
			ships[i].Components[j] = c
			return r.save(ships)
		}
	}
	return nil
}

func (r *componentRepo) Delete(shipID, componentID string) error {
	ships, err := r.load()
	if err != nil {
		return err
	}
	i := shipIndex(ships, shipID)
	if i == -1 {
		return nil
	}
	comps := ships[i].Components
	kept := comps[:0]
	for _, c := range comps {
		if c.ID != componentID {
			kept = append(kept, c)
		}
	}
	ships[i].Components = kept
	return r.save(ships)
}
