package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/KirkDiggler/rpg-arena/internal/config"
	"github.com/KirkDiggler/rpg-arena/internal/orchestrators/combat"
	"github.com/KirkDiggler/rpg-arena/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-arena/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/rpg-arena/internal/redis"
	"github.com/KirkDiggler/rpg-arena/internal/repositories/character"
	combatlog "github.com/KirkDiggler/rpg-arena/internal/repositories/combat_log"
	"github.com/KirkDiggler/rpg-arena/internal/storage/sqldb"
)

const storePingTimeout = 5 * time.Second

// stores holds the repositories for the configured backend and whatever
// connection they share.
type stores struct {
	characters character.Repository
	combatLog  combatlog.Repository
	closers    []func() error
}

func (s *stores) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil {
			slog.Warn("failed to close store", "error", err)
		}
	}
}

// openStores connects to cfg.Store. Redis keeps both characters and combat
// logs; the SQL stores keep characters and hold combat logs in memory.
func openStores(ctx context.Context, cfg *config.Config) (*stores, error) {
	clk := clock.New()

	switch cfg.Store {
	case config.StoreRedis:
		return openRedisStores(ctx, cfg, clk)
	case config.StoreSQLite, config.StorePostgres:
		return openSQLStores(ctx, cfg, clk)
	default:
		return nil, fmt.Errorf("unsupported store %q", cfg.Store)
	}
}

func openRedisStores(ctx context.Context, cfg *config.Config, clk clock.Clock) (*stores, error) {
	client, err := redisclient.NewClient(cfg.RedisAddr, nil)
	if err != nil {
		return nil, err
	}
	if err := redisclient.Ping(ctx, client, storePingTimeout); err != nil {
		_ = client.Close()
		return nil, err
	}

	characters, err := character.NewRedis(&character.RedisConfig{Client: client, Clock: clk})
	if err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to create character repository: %w", err)
	}

	combatLog, err := combatlog.NewRedis(&combatlog.RedisConfig{
		Client: client,
		TTL:    cfg.CombatLogTTL,
		Limit:  cfg.CombatLogLimit,
	})
	if err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to create combat log repository: %w", err)
	}

	slog.InfoContext(ctx, "using redis store", "addr", cfg.RedisAddr)

	return &stores{
		characters: characters,
		combatLog:  combatLog,
		closers:    []func() error{client.Close},
	}, nil
}

func openSQLStores(ctx context.Context, cfg *config.Config, clk clock.Clock) (*stores, error) {
	var (
		db      *sql.DB
		dialect sqldb.Dialect
		err     error
	)

	switch cfg.Store {
	case config.StorePostgres:
		dialect = sqldb.DialectPostgres
		db, err = sqldb.OpenPostgres(ctx, cfg.PostgresDSN)
	default:
		dialect = sqldb.DialectSQLite
		db, err = sqldb.OpenSQLite(ctx, cfg.SQLitePath)
	}
	if err != nil {
		return nil, err
	}

	if err := sqldb.Migrate(ctx, db, dialect); err != nil {
		_ = db.Close()
		return nil, err
	}

	characters, err := character.NewSQL(&character.SQLConfig{DB: db, Dialect: dialect, Clock: clk})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create character repository: %w", err)
	}

	slog.InfoContext(ctx, "using sql store", "dialect", dialect)

	return &stores{
		characters: characters,
		combatLog: combatlog.NewInMemory(&combatlog.InMemoryConfig{
			Clock: clk,
			TTL:   cfg.CombatLogTTL,
			Limit: cfg.CombatLogLimit,
		}),
		closers: []func() error{db.Close},
	}, nil
}

// newOrchestrator wires the combat orchestrator onto s.
func newOrchestrator(s *stores) (combat.Service, error) {
	return combat.NewOrchestrator(&combat.Config{
		CharacterRepo: s.characters,
		CombatLogRepo: s.combatLog,
		IDGenerator:   idgen.NewUUID("char"),
	})
}

// setupLogger installs the JSON slog handler at the configured level.
func setupLogger(cfg *config.Config) {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()})
	slog.SetDefault(slog.New(handler))
}

// loadConfig reads the environment and applies command-line overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(envFiles...)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if grpcPort == 0 && storeName == "" {
		return cfg, nil
	}
	if grpcPort != 0 {
		cfg.GRPCPort = grpcPort
	}
	if storeName != "" {
		cfg.Store = config.Store(storeName)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid flags: %w", err)
	}
	return cfg, nil
}
