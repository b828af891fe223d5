package config

import (
	"flag"
	"path/filepath"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Бэкенды хранилища.
const (
	StorageFile   = "file"
	StorageSQLite = "sqlite"
	StorageMemory = "memory"
)

type Config struct {
	// Storage — бэкенд хранилища: file | sqlite | memory.
	Storage string `env:"FLEET_STORAGE"`
	// DataPath — каталог файлового хранилища.
	DataPath string `env:"FLEET_DATA_PATH"`
	// DBPath — путь к файлу SQLite.
	DBPath string `env:"FLEET_DB_PATH"`
	// Debug включает подробное логирование.
	Debug bool `env:"FLEET_DEBUG"`

	Version bool `env:"-"` // показать версию и выйти (только флаг)
}

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// флаги работают ТОЛЬКО если переменные из env не заданы
	flag.StringVar(&cfg.Storage, "storage", cfg.Storage, "storage backend: file|sqlite|memory")
	flag.StringVar(&cfg.DataPath, "data", cfg.DataPath, "data directory for the file backend")
	flag.StringVar(&cfg.DBPath, "db", cfg.DBPath, "path to the SQLite database file")
	flag.BoolVar(&cfg.Debug, "debug", cfg.Debug, "enable debug logging")
	flag.BoolVar(&cfg.Version, "version", cfg.Version, "show version and exit")

	flag.Parse()

	// Defaults
	switch cfg.Storage {
	case StorageFile, StorageSQLite, StorageMemory:
	default:
		cfg.Storage = StorageFile
	}
	if cfg.DBPath == "" && cfg.DataPath != "" {
		cfg.DBPath = filepath.Join(cfg.DataPath, "fleet.sqlite")
	}
	// Пустые DataPath/DBPath допустимы: bootstrap подставит
	// пользовательский каталог конфигурации.

	return cfg
}
