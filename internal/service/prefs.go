package service

import (
	"fmt"

	"FleetKeeper/internal/storage"
)

// Темы оформления.
const (
	ThemeLight  = "light"
	ThemeDark   = "dark"
	ThemeSystem = "system"
)

// PrefsService — пользовательские настройки. Хранятся как сырые
// строки, а не JSON: "light" / "true", в том же виде, в каком их
// читает презентационный слой.
type PrefsService interface {
	// Theme возвращает выбранную тему; неизвестное сохранённое
	// значение сводится к ThemeSystem.
	Theme() (string, error)
	// SetTheme сохраняет тему; значение вне списка — ошибка.
	SetTheme(theme string) error
	// NotificationsEnabled сообщает, включены ли уведомления
	// (по умолчанию включены).
	NotificationsEnabled() (bool, error)
	// SetNotificationsEnabled сохраняет переключатель уведомлений.
	SetNotificationsEnabled(enabled bool) error
}

type prefsService struct {
	store storage.Store
}

var _ PrefsService = (*prefsService)(nil)

// NewPrefsService создаёт сервис настроек поверх хранилища.
func NewPrefsService(store storage.Store) PrefsService {
	return &prefsService{store: store}
}

func (s *prefsService) Theme() (string, error) {
	b, ok, err := s.store.Read(storage.KeyTheme)
	if err != nil {
		return "", err
	}
	switch string(b) {
	case ThemeLight, ThemeDark, ThemeSystem:
		if ok {
			return string(b), nil
		}
	}
	return ThemeSystem, nil
}

func (s *prefsService) SetTheme(theme string) error {
	switch theme {
	case ThemeLight, ThemeDark, ThemeSystem:
		return s.store.Write(storage.KeyTheme, []byte(theme))
	}
	return fmt.Errorf("unknown theme: %q (expected: light|dark|system)", theme)
}

func (s *prefsService) NotificationsEnabled() (bool, error) {
	b, ok, err := s.store.Read(storage.KeyNotificationsEnabled)
	if err != nil {
		return false, err
	}
	if !ok {
		return true, nil
	}
	return string(b) != "false", nil
}

func (s *prefsService) SetNotificationsEnabled(enabled bool) error {
	v := "false"
	if enabled {
		v = "true"
	}
	return s.store.Write(storage.KeyNotificationsEnabled, []byte(v))
}
