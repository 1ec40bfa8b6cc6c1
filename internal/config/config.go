package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

const (
	StorageBackendSQLX = "sqlx"
	StorageBackendGorm = "gorm"

	minJWTSecretLen = 32
)

// Config хранит все конфигурационные параметры приложения.
type Config struct {
	DatabaseURL string `env:"DATABASE_URL,required,notEmpty"`
	ServerPort  string `env:"PORT" envDefault:"8000"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT" envDefault:"15s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	// AuthRateLimit: запросов в минуту с одного IP на /signup и /login, 0 отключает лимит
	AuthRateLimit int `env:"AUTH_RATE_LIMIT" envDefault:"20"`

	// Секрет подписи токенов приходит только из окружения
	Auth struct {
		JWTSecret  string        `env:"JWT_SECRET,required,notEmpty"`
		TokenTTL   time.Duration `env:"TOKEN_TTL" envDefault:"1h"`
		BcryptCost int           `env:"BCRYPT_COST" envDefault:"10"`
	}

	Database struct {
		StorageBackend  string        `env:"STORAGE_BACKEND" envDefault:"sqlx"`
		AutoMigrate     bool          `env:"DB_AUTO_MIGRATE" envDefault:"true"`
		MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" envDefault:"25"`
		MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"10"`
		ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"5m"`
	}
}

// LoadConfig загружает конфигурацию из переменных окружения.
// В режиме разработки пытается загрузить .env файл.
func LoadConfig() (*Config, error) {
	if _, err := os.Stat(".env"); !os.IsNotExist(err) {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("load .env file: %w", err)
		}
	}

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse config from environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate проверяет значения, которые env.Parse проверить не может.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < minJWTSecretLen {
		return fmt.Errorf("JWT_SECRET must be at least %d characters", minJWTSecretLen)
	}
	if c.Auth.BcryptCost < bcrypt.MinCost || c.Auth.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("BCRYPT_COST must be between %d and %d, got %d", bcrypt.MinCost, bcrypt.MaxCost, c.Auth.BcryptCost)
	}
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("TOKEN_TTL must be positive, got %s", c.Auth.TokenTTL)
	}

	c.Database.StorageBackend = strings.ToLower(strings.TrimSpace(c.Database.StorageBackend))
	switch c.Database.StorageBackend {
	case StorageBackendSQLX, StorageBackendGorm:
	default:
		return fmt.Errorf("unknown STORAGE_BACKEND %q (use %q or %q)", c.Database.StorageBackend, StorageBackendSQLX, StorageBackendGorm)
	}

	if c.ServerPort == "" {
		c.ServerPort = "8000"
	}
	return nil
}
