// Package cache provides the Redis-backed cache for hex-encoded maze
// maps. Generation is deterministic per seed, so a cached encoding is as
// good as regenerating.
package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisMazeCache stores encoded maze maps keyed by their configuration.
type RedisMazeCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisMazeCache initializes a RedisMazeCache with the provided Redis client and TTL.
func NewRedisMazeCache(client *redis.Client, ttlSeconds int) *RedisMazeCache {
	return &RedisMazeCache{
		client: client,
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}
}

// Get returns the cached encoding for the key, if present.
func (c *RedisMazeCache) Get(ctx context.Context, key string) (string, bool) {
	encoded, err := c.client.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return encoded, true
}

// Set stores the encoding under the key with the configured TTL.
func (c *RedisMazeCache) Set(ctx context.Context, key, encoded string) error {
	return c.client.Set(ctx, key, encoded, c.ttl).Err()
}
