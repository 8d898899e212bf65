package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/buildtrack/backend/internal/domain/catalog"
	"github.com/redis/go-redis/v9"
)

const stageCatalogKey = "catalog:stages"

// RedisStageCache implements StageCache using Redis. Suitable for
// deployments where multiple instances share the catalog cache.
type RedisStageCache struct {
	client *redis.Client
	config catalog.CacheConfig
}

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// NewRedisStageCache creates a new Redis-backed stage catalog cache
func NewRedisStageCache(cfg RedisConfig, cacheCfg catalog.CacheConfig) (*RedisStageCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisStageCache{
		client: client,
		config: cacheCfg,
	}, nil
}

// NewRedisStageCacheWithClient creates a cache with an existing Redis client.
// Useful for testing or when sharing a client across components.
func NewRedisStageCacheWithClient(client *redis.Client, cacheCfg catalog.CacheConfig) *RedisStageCache {
	return &RedisStageCache{
		client: client,
		config: cacheCfg,
	}
}

// Get returns the cached catalog. The bool reports a cache hit.
func (c *RedisStageCache) Get(ctx context.Context) ([]catalog.Stage, bool, error) {
	data, err := c.client.Get(ctx, stageCatalogKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read stage catalog from cache: %w", err)
	}

	var stages []catalog.Stage
	if err := json.Unmarshal(data, &stages); err != nil {
		return nil, false, fmt.Errorf("failed to decode cached stage catalog: %w", err)
	}

	return stages, true, nil
}

// Set replaces the cached catalog
func (c *RedisStageCache) Set(ctx context.Context, stages []catalog.Stage) error {
	data, err := json.Marshal(stages)
	if err != nil {
		return fmt.Errorf("failed to encode stage catalog: %w", err)
	}

	if err := c.client.Set(ctx, stageCatalogKey, data, c.config.TTL).Err(); err != nil {
		return fmt.Errorf("failed to cache stage catalog: %w", err)
	}

	return nil
}

// Invalidate drops the cached catalog
func (c *RedisStageCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, stageCatalogKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate stage catalog cache: %w", err)
	}
	return nil
}

// Close closes the Redis client
func (c *RedisStageCache) Close() error {
	return c.client.Close()
}

// Ensure RedisStageCache implements StageCache
var _ catalog.StageCache = (*RedisStageCache)(nil)
