package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/ryanwiwcharyk/moodlog/internal/model"
)

const moodTypesCacheKey = "moodlog:moodtypes"

// MoodTypeCache keeps the mood reference set in Redis with a TTL. The data
// is immutable, so staleness is not a correctness concern; the TTL only
// bounds memory after a reseed.
type MoodTypeCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewMoodTypeCache creates a cache over an existing Redis client.
func NewMoodTypeCache(client *redis.Client, ttl time.Duration) *MoodTypeCache {
	return &MoodTypeCache{client: client, ttl: ttl}
}

// Get returns the cached reference set, or ok=false on a miss or any Redis
// error. A nil cache always misses, so callers need no Redis at all.
func (c *MoodTypeCache) Get(ctx context.Context) ([]model.MoodType, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	payload, err := c.client.Get(ctx, moodTypesCacheKey).Bytes()
	if err != nil {
		return nil, false
	}
	var types []model.MoodType
	if err := json.Unmarshal(payload, &types); err != nil {
		return nil, false
	}
	if len(types) == 0 {
		return nil, false
	}
	return types, true
}

// Set stores the reference set. Failures are ignored; the cache is an
// optimization, not a source of truth.
func (c *MoodTypeCache) Set(ctx context.Context, types []model.MoodType) {
	if c == nil || c.client == nil || len(types) == 0 {
		return
	}
	payload, err := json.Marshal(types)
	if err != nil {
		return
	}
	c.client.Set(ctx, moodTypesCacheKey, payload, c.ttl)
}
