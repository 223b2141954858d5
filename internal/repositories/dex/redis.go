package dex

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/celala99/cela-geo-quest/internal/errors"
	"github.com/celala99/cela-geo-quest/internal/pkg/clock"
	redisclient "github.com/celala99/cela-geo-quest/internal/redis"
)

// Key pattern: dex:{player_id} -> hash of region_id -> capture unix seconds
const dexKeyPrefix = "dex:"

// RedisConfig holds the configuration for the Redis repository
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *RedisConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedisRepository creates a new Redis-backed Dex repository
func NewRedisRepository(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

// Add records a captured region with HSETNX so a repeat capture keeps the
// original timestamp
func (r *redisRepository) Add(ctx context.Context, input AddInput) (*AddOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}
	if input.RegionID == "" {
		return nil, errors.InvalidArgument(errRegionIDEmpty)
	}

	capturedAt := strconv.FormatInt(r.clock.Now().Unix(), 10)
	added, err := r.client.HSetNX(ctx, r.buildKey(input.PlayerID), input.RegionID, capturedAt).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to add dex entry in Redis")
	}

	return &AddOutput{Added: added}, nil
}

// List returns every captured region for a player
func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	fields, err := r.client.HGetAll(ctx, r.buildKey(input.PlayerID)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get dex from Redis")
	}

	entries := make([]Entry, 0, len(fields))
	for regionID, raw := range fields {
		entry := Entry{RegionID: regionID}
		// Older markers may not be timestamps; keep the entry either way
		if secs, err := strconv.ParseInt(raw, 10, 64); err == nil {
			entry.CapturedAt = time.Unix(secs, 0).UTC()
		}
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].RegionID < entries[j].RegionID
	})

	return &ListOutput{Entries: entries}, nil
}

// Reset removes the whole Dex hash for a player
func (r *redisRepository) Reset(ctx context.Context, input ResetInput) (*ResetOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	key := r.buildKey(input.PlayerID)
	pipe := r.client.TxPipeline()
	count := pipe.HLen(ctx, key)
	pipe.Del(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to reset dex in Redis")
	}

	return &ResetOutput{Removed: int(count.Val())}, nil
}

// buildKey creates the Redis key for a player's Dex
func (r *redisRepository) buildKey(playerID string) string {
	return fmt.Sprintf("%s%s", dexKeyPrefix, playerID)
}
