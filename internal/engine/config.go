package engine

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config хранит параметры запуска движка
type Config struct {
	// Seed - мастер-зерно. От него зависит перемешивание ростеров на каждом тике.
	Seed int64 `env:"COLONY_SEED"`

	// TuningPath - YAML с параметрами баланса. Пусто - значения по умолчанию.
	TuningPath string `env:"COLONY_TUNING"`

	// RecordDir - куда сохранять запись сессии. Пусто - не записывать.
	RecordDir string `env:"COLONY_RECORD_DIR"`

	// ReplayPath - файл записи для воспроизведения (только флаг)
	ReplayPath string
}

// NewConfig создает конфиг по умолчанию (случайный сид)
func NewConfig() Config {
	return Config{
		Seed: time.Now().UnixNano(),
	}
}

// LoadConfig накладывает переменные окружения поверх NewConfig.
// Незаданные переменные не меняют значения по умолчанию.
func LoadConfig() (Config, error) {
	cfg := NewConfig()
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
