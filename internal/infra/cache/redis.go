// Package cache provides ResultCache adapters: a redis-backed cache for the
// shared deployment and an in-memory cache for local runs and tests. Both
// store the response as serialized JSON so a cached replay returns the
// original response byte-for-byte, including its ID.
package cache

import (
	"context"
	"encoding/json"
	"time"

	redis "github.com/redis/go-redis/v9"

	"dispatch/config"
	"dispatch/internal/domain/entity"
	"dispatch/internal/domain/repository"
	"dispatch/internal/errors"
)

// RedisResultCache memoizes optimization results in a shared redis store.
type RedisResultCache struct {
	client    redis.UniversalClient
	keyPrefix string
}

// NewRedisClient builds a redis client from configuration.
func NewRedisClient(cfg *config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})
}

// NewRedisResultCache creates a redis-backed ResultCache.
func NewRedisResultCache(client redis.UniversalClient, keyPrefix string) repository.ResultCache {
	return &RedisResultCache{
		client:    client,
		keyPrefix: keyPrefix,
	}
}

// Get fetches and deserializes the cached response for key.
func (c *RedisResultCache) Get(ctx context.Context, key string) (*entity.OptimizeResponse, error) {
	data, err := c.client.Get(ctx, c.keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, repository.ErrCacheMiss
	}
	if err != nil {
		return nil, errors.Wrapf(err, "redis get %q", key)
	}

	var res entity.OptimizeResponse
	if err := json.Unmarshal(data, &res); err != nil {
		return nil, errors.Wrapf(err, "decode cached result %q", key)
	}

	return &res, nil
}

// Set serializes the response and stores it with the given lifetime.
func (c *RedisResultCache) Set(ctx context.Context, key string, res *entity.OptimizeResponse, ttl time.Duration) error {
	data, err := json.Marshal(res)
	if err != nil {
		return errors.Wrapf(err, "encode result %q", key)
	}

	if err := c.client.Set(ctx, c.keyPrefix+key, data, ttl).Err(); err != nil {
		return errors.Wrapf(err, "redis set %q", key)
	}

	return nil
}
