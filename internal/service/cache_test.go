package service

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/ryanwiwcharyk/moodlog/internal/model"
)

func TestMoodTypeCacheRoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	cache := NewMoodTypeCache(client, time.Minute)
	ctx := context.Background()

	if _, ok := cache.Get(ctx); ok {
		t.Fatal("expected a miss on an empty cache")
	}

	cache.Set(ctx, model.SeedMoodTypes())

	types, ok := cache.Get(ctx)
	if !ok {
		t.Fatal("expected a hit after Set")
	}
	if len(types) != 8 {
		t.Fatalf("expected 8 cached mood types, got %d", len(types))
	}
	if types[0].Label != "happy" {
		t.Fatalf("cached entries must round-trip intact, got %+v", types[0])
	}
}

func TestMoodTypeCacheExpires(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	cache := NewMoodTypeCache(client, time.Minute)
	ctx := context.Background()

	cache.Set(ctx, model.SeedMoodTypes())
	mr.FastForward(2 * time.Minute)

	if _, ok := cache.Get(ctx); ok {
		t.Fatal("expected a miss after the TTL elapsed")
	}
}

func TestNilCacheAlwaysMisses(t *testing.T) {
	var cache *MoodTypeCache
	ctx := context.Background()

	if _, ok := cache.Get(ctx); ok {
		t.Fatal("nil cache must miss")
	}
	// Set on a nil cache must be a no-op, not a panic.
	cache.Set(ctx, model.SeedMoodTypes())
}

func TestMoodTypeCacheSurvivesRedisOutage(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	cache := NewMoodTypeCache(client, time.Minute)
	ctx := context.Background()

	mr.Close()

	if _, ok := cache.Get(ctx); ok {
		t.Fatal("expected a miss when redis is down")
	}
	cache.Set(ctx, model.SeedMoodTypes())
}
