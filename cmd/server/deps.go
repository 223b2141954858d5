package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/celala99/cela-geo-quest/internal/clients/datasource"
	"github.com/celala99/cela-geo-quest/internal/config"
	"github.com/celala99/cela-geo-quest/internal/engine/rpgtoolkit"
	"github.com/celala99/cela-geo-quest/internal/entities"
	"github.com/celala99/cela-geo-quest/internal/errors"
	"github.com/celala99/cela-geo-quest/internal/orchestrators/encounter"
	"github.com/celala99/cela-geo-quest/internal/orchestrators/progress"
	"github.com/celala99/cela-geo-quest/internal/pkg/clock"
	"github.com/celala99/cela-geo-quest/internal/pkg/idgen"
	"github.com/celala99/cela-geo-quest/internal/redis"
	"github.com/celala99/cela-geo-quest/internal/repositories/dex"
	"github.com/celala99/cela-geo-quest/internal/repositories/encounters"
)

// services bundles the orchestrators a command needs
type services struct {
	Dataset   *entities.Dataset
	Encounter encounter.Service
	Progress  progress.Service
	EventBus  events.EventBus

	closers []io.Closer
}

// Close releases storage handles
func (s *services) Close() {
	for _, c := range s.closers {
		if err := c.Close(); err != nil {
			slog.Warn("Failed to close resource", "error", err)
		}
	}
}

// loadDataset fetches the dataset from source, falling back to the configured
// source when empty
func loadDataset(ctx context.Context, c *config.Config, source string) (*entities.Dataset, error) {
	if source == "" {
		source = c.DatasetSource
	}

	loader, err := datasource.New(&datasource.Config{Source: source, Timeout: c.FetchTimeout})
	if err != nil {
		return nil, err
	}
	return loader.Load(ctx)
}

// buildServices wires the dataset, the Dex backend and the orchestrators
func buildServices(c *config.Config, ds *entities.Dataset) (*services, error) {
	if err := c.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}

	svc := &services{Dataset: ds, EventBus: events.NewBus()}
	clk := clock.New()

	dexRepo, err := buildDexRepository(c, clk, svc)
	if err != nil {
		svc.Close()
		return nil, err
	}

	svc.Progress, err = progress.NewOrchestrator(&progress.Config{DexRepo: dexRepo})
	if err != nil {
		svc.Close()
		return nil, err
	}

	svc.Encounter, err = encounter.NewOrchestrator(&encounter.Config{
		Dataset:       ds,
		EncounterRepo: encounters.NewInMemory(),
		Progress:      svc.Progress,
		Clock:         clk,
		IDGenerator:   idgen.NewUUID("enc"),
		EventBus:      svc.EventBus,
		CounterDelay:  c.CounterDelay,
	})
	if err != nil {
		svc.Close()
		return nil, err
	}

	rpgtoolkit.SubscribeOutcomes(svc.EventBus, func(_ context.Context, eventType, playerID, regionID string) error {
		slog.Info("Encounter outcome", "type", eventType, "player_id", playerID, "region_id", regionID)
		return nil
	})

	return svc, nil
}

func buildDexRepository(c *config.Config, clk clock.Clock, svc *services) (dex.Repository, error) {
	switch c.DexBackend {
	case config.DexBackendRedis:
		client, err := redis.NewClient(c.RedisAddr, &redis.Options{
			Password: c.RedisPassword,
			DB:       c.RedisDB,
		})
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to create redis client")
		}
		svc.closers = append(svc.closers, client)

		return dex.NewRedisRepository(&dex.RedisConfig{Client: client, Clock: clk})
	default:
		repo, err := dex.OpenSQLite(&dex.SQLiteConfig{Path: c.SQLitePath, Clock: clk})
		if err != nil {
			return nil, err
		}
		svc.closers = append(svc.closers, repo)

		return repo, nil
	}
}
