package storage

import "encoding/json"

// Ключи сохраняемого состояния.
const (
	KeyUsers                = "users"
	KeyShips                = "ships"
	KeyJobs                 = "jobs"
	KeyAuthUser             = "authUser"
	KeyTheme                = "appTheme"
	KeyNotificationsEnabled = "notificationsEnabled"
)

// Store — порт хранилища "ключ → значение". Запись заменяет значение
// ключа целиком; частично записанное значение наблюдать нельзя.
// Все операции синхронные: после возврата Write любое последующее
// чтение видит новое значение.
type Store interface {
	// Read возвращает значение ключа. ok=false, если ключ отсутствует.
	Read(key string) (value []byte, ok bool, err error)
	// Write заменяет значение ключа.
	Write(key string, value []byte) error
	// Delete удаляет ключ. Отсутствие ключа не является ошибкой.
	Delete(key string) error
	// Close освобождает ресурсы хранилища.
	Close() error
}

// ReadJSON читает значение ключа и декодирует его в dst.
// Отсутствующий ключ и повреждённый JSON равнозначны: ok=false,
// dst не изменяется, ошибка наверх не поднимается.
func ReadJSON(s Store, key string, dst any) (bool, error) {
	b, ok, err := s.Read(key)
	if err != nil || !ok {
		return false, err
	}
	if json.Unmarshal(b, dst) != nil {
		return false, nil
	}
	return true, nil
}

// WriteJSON кодирует v в JSON и записывает под ключ key.
func WriteJSON(s Store, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.Write(key, b)
}
