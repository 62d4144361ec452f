// Package config loads server settings from the environment.
package config

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/KirkDiggler/rpg-arena/internal/errors"
)

// Store selects the character persistence backend.
type Store string

// Supported stores.
const (
	StoreRedis    Store = "redis"
	StoreSQLite   Store = "sqlite"
	StorePostgres Store = "postgres"
)

// Config holds every setting the server reads at startup.
type Config struct {
	GRPCPort        int           `env:"ARENA_GRPC_PORT"         envDefault:"50051"`
	Store           Store         `env:"ARENA_STORE"             envDefault:"redis"`
	RedisAddr       string        `env:"ARENA_REDIS_ADDR"        envDefault:"localhost:6379"`
	SQLitePath      string        `env:"ARENA_SQLITE_PATH"       envDefault:"data/arena.db"`
	PostgresDSN     string        `env:"ARENA_POSTGRES_DSN"`
	CombatLogTTL    time.Duration `env:"ARENA_COMBAT_LOG_TTL"    envDefault:"24h"`
	CombatLogLimit  int           `env:"ARENA_COMBAT_LOG_LIMIT"  envDefault:"100"`
	LogLevel        string        `env:"ARENA_LOG_LEVEL"         envDefault:"info"`
	OTelEndpoint    string        `env:"ARENA_OTEL_ENDPOINT"`
	ShutdownTimeout time.Duration `env:"ARENA_SHUTDOWN_TIMEOUT"  envDefault:"30s"`
}

// Load reads dotenv files (".env" when none are given), then parses ARENA_*
// variables and validates the result. Missing dotenv files are ignored and
// variables already set in the process win over file values.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !stderrors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: load dotenv: %w", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.Wrap(err, "config: parse env")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the settings are usable together.
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("grpc_port", c.GRPCPort, 1, 65535, vb)
	errors.ValidateEnum("store", string(c.Store),
		[]string{string(StoreRedis), string(StoreSQLite), string(StorePostgres)}, vb)
	errors.ValidateEnum("log_level", strings.ToLower(c.LogLevel),
		[]string{"debug", "info", "warn", "error"}, vb)

	switch c.Store {
	case StoreRedis:
		errors.ValidateRequired("redis_addr", c.RedisAddr, vb)
	case StoreSQLite:
		errors.ValidateRequired("sqlite_path", c.SQLitePath, vb)
	case StorePostgres:
		errors.ValidateRequired("postgres_dsn", c.PostgresDSN, vb)
	}

	if c.CombatLogLimit < 1 {
		vb.Field("combat_log_limit", "must be at least 1")
	}
	if c.CombatLogTTL < 0 {
		vb.Field("combat_log_ttl", "cannot be negative")
	}
	if c.ShutdownTimeout <= 0 {
		vb.Field("shutdown_timeout", "must be positive")
	}

	return vb.Build()
}

// SlogLevel maps LogLevel onto slog. Unknown values fall back to info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
