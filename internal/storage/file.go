package storage

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// File хранит каждое значение в отдельном файле каталога dir.
// Имя файла совпадает с ключом; допустимые ключи перечислены в
// storage.go и безопасны для файловой системы.
type File struct {
	dir string
}

var _ Store = (*File)(nil)

// NewFile создаёт (при необходимости) каталог данных и возвращает
// файловое хранилище поверх него.
func NewFile(dir string) (*File, error) {
	if dir == "" {
		return nil, errors.New("empty data directory")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}
	return &File{dir: dir}, nil
}

// DefaultDir возвращает каталог данных по умолчанию в пользовательском
// конфиге (например ~/.config/FleetKeeper).
func DefaultDir() (string, error) {
	cfgDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cfgDir, "FleetKeeper"), nil
}

func (s *File) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *File) Read(key string) ([]byte, bool, error) {
	b, err := os.ReadFile(s.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

func (s *File) Write(key string, value []byte) error {
	return os.WriteFile(s.path(key), value, 0o600)
}

func (s *File) Delete(key string) error {
	err := os.Remove(s.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

func (s *File) Close() error { return nil }
