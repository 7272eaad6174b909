package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config содержит конфигурацию сервера, загружаемую из переменных окружения
type Config struct {
	// Addr адрес, на котором слушает HTTP сервер
	Addr string `env:"HABITKEEPER_ADDR" envDefault:":8080"`

	// DatabasePath путь к файлу SQLite базы данных
	DatabasePath string `env:"HABITKEEPER_DB_PATH" envDefault:"habitkeeper.db"`

	// JWTSecret секрет для подписи access token-ов, обязателен
	JWTSecret string `env:"HABITKEEPER_JWT_SECRET,required"`

	// AccessTokenTTL время жизни access token
	AccessTokenTTL time.Duration `env:"HABITKEEPER_TOKEN_TTL" envDefault:"30m"`

	// CORSOrigins список разрешенных origin-ов для браузерного фронтенда
	CORSOrigins []string `env:"HABITKEEPER_CORS_ORIGINS" envDefault:"http://localhost:3000"`

	// LogLevel уровень логирования: debug, info, warn, error
	LogLevel string `env:"HABITKEEPER_LOG_LEVEL" envDefault:"info"`
}

// Load загружает конфигурацию из окружения
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
