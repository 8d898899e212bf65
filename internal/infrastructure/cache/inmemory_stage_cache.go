// Package cache provides stage catalog cache implementations.
package cache

import (
	"context"
	"sync"
	"time"

	"github.com/buildtrack/backend/internal/domain/catalog"
	"go.uber.org/zap"
)

// InMemoryStageCache implements StageCache using in-process storage.
// The whole catalog is held as one entry with a TTL.
type InMemoryStageCache struct {
	mu        sync.RWMutex
	stages    []catalog.Stage
	expiresAt time.Time
	config    catalog.CacheConfig
	logger    *zap.Logger
}

// InMemoryStageCacheOption is a functional option for configuring the cache
type InMemoryStageCacheOption func(*InMemoryStageCache)

// WithInMemoryConfig sets the cache configuration
func WithInMemoryConfig(config catalog.CacheConfig) InMemoryStageCacheOption {
	return func(c *InMemoryStageCache) {
		c.config = config
	}
}

// WithInMemoryLogger sets the logger for the cache
func WithInMemoryLogger(logger *zap.Logger) InMemoryStageCacheOption {
	return func(c *InMemoryStageCache) {
		c.logger = logger
	}
}

// NewInMemoryStageCache creates a new in-memory stage catalog cache
func NewInMemoryStageCache(opts ...InMemoryStageCacheOption) *InMemoryStageCache {
	cache := &InMemoryStageCache{
		config: catalog.DefaultCacheConfig(),
		logger: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(cache)
	}

	return cache
}

// Get returns the cached catalog. The bool reports a cache hit.
func (c *InMemoryStageCache) Get(ctx context.Context) ([]catalog.Stage, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.stages == nil || time.Now().After(c.expiresAt) {
		c.logger.Debug("Stage catalog cache miss")
		return nil, false, nil
	}

	stages := make([]catalog.Stage, len(c.stages))
	copy(stages, c.stages)
	c.logger.Debug("Stage catalog cache hit", zap.Int("stages", len(stages)))
	return stages, true, nil
}

// Set replaces the cached catalog
func (c *InMemoryStageCache) Set(ctx context.Context, stages []catalog.Stage) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stages = make([]catalog.Stage, len(stages))
	copy(c.stages, stages)
	c.expiresAt = time.Now().Add(c.config.TTL)
	c.logger.Debug("Cached stage catalog",
		zap.Int("stages", len(stages)),
		zap.Duration("ttl", c.config.TTL))
	return nil
}

// Invalidate drops the cached catalog
func (c *InMemoryStageCache) Invalidate(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stages = nil
	c.logger.Debug("Invalidated stage catalog cache")
	return nil
}

// Ensure InMemoryStageCache implements StageCache
var _ catalog.StageCache = (*InMemoryStageCache)(nil)
