package repo

import (
	"FleetKeeper/internal/model"
	"FleetKeeper/internal/storage"
)

// UserRepository читает коллекцию пользователей. Пользователи заводятся
// первичным заполнением хранилища и приложением не изменяются.
type UserRepository interface {
	// GetAll возвращает всех пользователей в порядке хранения.
	GetAll() ([]model.User, error)
	// GetByID возвращает пользователя по id; nil — не найден.
	GetByID(id string) (*model.User, error)
	// GetByEmail возвращает пользователя по email; nil — не найден.
	GetByEmail(email string) (*model.User, error)
}

type userRepo struct {
	store storage.Store
}

var _ UserRepository = (*userRepo)(nil)

// NewUserRepository создаёт репозиторий пользователей поверх хранилища.
func NewUserRepository(s storage.Store) UserRepository {
	return &userRepo{store: s}
}

func (r *userRepo) GetAll() ([]model.User, error) {
	var users []model.User
	if _, err := storage.ReadJSON(r.store, storage.KeyUsers, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepo) GetByID(id string) (*model.User, error) {
	users, err := r.GetAll()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, nil
}

func (r *userRepo) GetByEmail(email string) (*model.User, error) {
	users, err := r.GetAll()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == email {
			return &users[i], nil
		}
	}
	return nil, nil
}
