package main

import (
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-arena/internal/config"
	"github.com/KirkDiggler/rpg-arena/internal/errors"
	"github.com/KirkDiggler/rpg-arena/internal/orchestrators/battle"
	"github.com/KirkDiggler/rpg-arena/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-arena/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-arena/internal/pkg/roller"
	"github.com/KirkDiggler/rpg-arena/internal/redis"
	"github.com/KirkDiggler/rpg-arena/internal/repositories/battles"
	"github.com/KirkDiggler/rpg-arena/internal/repositories/catalog"
)

// dependencies are the pieces the battle service is assembled from
type dependencies struct {
	catalog catalog.Repository
	records battles.Repository
	bus     events.EventBus
	roller  dice.Roller
	close   func()
}

func loadCatalog(path string) (catalog.Repository, error) {
	if path == "" {
		return catalog.Default()
	}
	slog.Info("Loading catalog", "path", path)
	return catalog.LoadFile(path)
}

// buildDependencies wires storage and the catalog from config. Without a
// redis address records live in memory for the life of the process.
func buildDependencies(cfg *config.Server) (*dependencies, error) {
	cat, err := loadCatalog(cfg.CatalogPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load catalog")
	}

	deps := &dependencies{
		catalog: cat,
		bus:     events.NewBus(),
		roller:  roller.New(cfg.Battle.Seed),
		close:   func() {},
	}

	if cfg.Redis.Address == "" {
		slog.Info("No redis address configured, keeping battle records in memory")
		deps.records = battles.NewMemoryRepository(&battles.MemoryConfig{
			Clock: clock.New(),
			TTL:   cfg.Redis.TTL,
		})
		return deps, nil
	}

	client, err := redis.NewClient(cfg.Redis.Address, &redis.Options{
		DB:       cfg.Redis.DB,
		Password: cfg.Redis.Password,
		UseTLS:   cfg.Redis.UseTLS,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create redis client")
	}

	records, err := battles.NewRedisRepository(&battles.RedisConfig{
		Client: client,
		TTL:    cfg.Redis.TTL,
	})
	if err != nil {
		_ = client.Close() // nolint:errcheck // already failing
		return nil, errors.Wrap(err, "failed to create battle record repository")
	}

	slog.Info("Storing battle records in redis", "address", cfg.Redis.Address, "db", cfg.Redis.DB)
	deps.records = records
	deps.close = func() {
		if err := client.Close(); err != nil {
			slog.Warn("Failed to close redis client", "error", err)
		}
	}

	return deps, nil
}

func newBattleService(cfg *config.Server, deps *dependencies, ids idgen.Generator) (battle.Service, error) {
	return battle.NewOrchestrator(&battle.Config{
		Catalog:      deps.catalog,
		Records:      deps.records,
		EventBus:     deps.bus,
		Roller:       deps.roller,
		IDGenerator:  ids,
		Clock:        clock.New(),
		StaminaRegen: cfg.Battle.StaminaRegen,
		SkillChance:  cfg.Battle.SkillChance,
		SessionTTL:   cfg.Battle.SessionTTL,
	})
}
