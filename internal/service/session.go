package service

import (
	"errors"

	"FleetKeeper/internal/model"
	"FleetKeeper/internal/repo"
	"FleetKeeper/internal/storage"
)

// ErrInvalidCredentials возвращается при несовпадении email, пароля или
// роли. Сохранённая сессия при этом не затрагивается.
var ErrInvalidCredentials = errors.New("invalid credentials or role mismatch")

// ErrUnauthorized возвращается, когда роль пользователя не даёт права
// на операцию.
var ErrUnauthorized = errors.New("operation is not allowed for this role")

// SessionService — юзкейс-уровень аутентификации. Сессия — это запись
// пользователя без пароля под ключом authUser; она переживает
// перезапуск и при восстановлении повторно не проверяется.
type SessionService interface {
	// Login проверяет точное совпадение email, пароля и роли и
	// сохраняет сессию. Возвращает пользователя без пароля.
	Login(email, password string, role model.Role) (*model.User, error)
	// Restore читает сохранённую сессию; nil — сессии нет.
	Restore() (*model.User, error)
	// Logout удаляет сохранённую сессию.
	Logout() error
}

type sessionService struct {
	store storage.Store
	users repo.UserRepository
}

var _ SessionService = (*sessionService)(nil)

// NewSessionService создаёт сервис сессий поверх хранилища и
// репозитория пользователей.
func NewSessionService(store storage.Store, users repo.UserRepository) SessionService {
	return &sessionService{store: store, users: users}
}

func (s *sessionService) Login(email, password string, role model.Role) (*model.User, error) {
	u, err := s.users.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if u == nil || u.Password != password || u.Role != role {
		log.Debugw("login rejected", "email", email, "role", role)
		return nil, ErrInvalidCredentials
	}
	pub := u.StripPassword()
	if err := storage.WriteJSON(s.store, storage.KeyAuthUser, pub); err != nil {
		return nil, err
	}
	log.Infow("login", "user", pub.ID, "role", pub.Role)
	return &pub, nil
}

func (s *sessionService) Restore() (*model.User, error) {
	var u model.User
	ok, err := storage.ReadJSON(s.store, storage.KeyAuthUser, &u)
	if err != nil || !ok {
		return nil, err
	}
	return &u, nil
}

func (s *sessionService) Logout() error {
	log.Infow("logout")
	return s.store.Delete(storage.KeyAuthUser)
}

// IsAllowed проверяет доступ: nil-пользователь всегда запрещён, пустой
// список ролей означает "любой аутентифицированный".
func IsAllowed(u *model.User, roles ...model.Role) bool {
	if u == nil {
		return false
	}
	if len(roles) == 0 {
		return true
	}
	for _, r := range roles {
		if u.Role == r {
			return true
		}
	}
	return false
}
