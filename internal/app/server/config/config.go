package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	envPath  = ".env"
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

type Config struct {
	Env    string `env:"APP_ENV" envDefault:"local"`
	DB     db
	Server server
	Redis  redis
	Auth   auth
	Logger logger
}

type db struct {
	DatabaseURI string `env:"DATABASE_URI"`
	Migrations  bool   `env:"MIGRATIONS_ENABLED" envDefault:"true"`
}

type server struct {
	RunAddress      string        `env:"RUN_ADDRESS" envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

type redis struct {
	URL string `env:"REDIS_URL"`
}

type auth struct {
	SessionTTL      time.Duration `env:"SESSION_TTL" envDefault:"168h"`
	VerifySignature bool          `env:"AUTH_VERIFY_SIGNATURE" envDefault:"false"`
}

type logger struct {
	LogLevel string `env:"LOG_LEVEL"`
}

// Load reads .env when present and parses the environment into Config.
func Load() (*Config, error) {
	if err := godotenv.Load(envPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", envPath, err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	switch cfg.Env {
	case EnvLocal, EnvDev, EnvProd:
	default:
		return nil, fmt.Errorf("unknown APP_ENV %q", cfg.Env)
	}
	if cfg.DB.DatabaseURI == "" {
		return nil, errors.New("DATABASE_URI is required")
	}
	return &cfg, nil
}

// MustLoad is Load that panics.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}
