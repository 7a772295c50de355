// Package config carga la configuración de la API desde el entorno (y un .env opcional).
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Backend identifica el almacenamiento elegido para los repositorios.
type Backend string

const (
	BackendMongo    Backend = "mongo"
	BackendPostgres Backend = "postgres"
	BackendMemory   Backend = "memory"
)

type Config struct {
	Port int `env:"PORT" envDefault:"8080"`

	// Store
	MongoURL      string        `env:"MONGODB_URL"`
	MongoDatabase string        `env:"MONGODB_DATABASE" envDefault:"adoptme"`
	PostgresDSN   string        `env:"DB_DSN"`
	StoreTimeout  time.Duration `env:"STORE_TIMEOUT" envDefault:"10s"`

	// Variantes de arranque
	DocsEnabled bool `env:"DOCS_ENABLED" envDefault:"true"`
	AutoListen  bool `env:"AUTO_LISTEN" envDefault:"true"`

	// Logging
	AppName   string `env:"APP_NAME" envDefault:"adoptme-api"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

	ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"15s"`
}

// Backend: Mongo si hay MONGODB_URL, Postgres si hay DB_DSN, si no in-memory.
func (c *Config) Backend() Backend {
	switch {
	case strings.TrimSpace(c.MongoURL) != "":
		return BackendMongo
	case strings.TrimSpace(c.PostgresDSN) != "":
		return BackendPostgres
	default:
		return BackendMemory
	}
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Load lee .env (si existe) y luego el entorno del proceso.
// Las variables ya presentes en el entorno no se pisan con las del .env.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return Parse()
}

// Parse solo mira el entorno del proceso.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("parse config: invalid PORT %d", cfg.Port)
	}
	return cfg, nil
}
