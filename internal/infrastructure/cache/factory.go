package cache

import (
	"fmt"

	"github.com/buildtrack/backend/internal/domain/catalog"
	"github.com/buildtrack/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// StageCacheFactory creates stage catalog caches based on configuration
type StageCacheFactory struct {
	redisConfig           config.RedisConfig
	cacheConfig           catalog.CacheConfig
	logger                *zap.Logger
	allowInMemoryFallback bool
}

// StageCacheFactoryOption is a functional option for configuring the factory
type StageCacheFactoryOption func(*StageCacheFactory)

// WithLogger sets the logger for the factory
func WithLogger(logger *zap.Logger) StageCacheFactoryOption {
	return func(f *StageCacheFactory) {
		f.logger = logger
	}
}

// WithInMemoryFallback controls whether to fall back to an in-memory cache
// when Redis is unavailable. Default is true.
func WithInMemoryFallback(allow bool) StageCacheFactoryOption {
	return func(f *StageCacheFactory) {
		f.allowInMemoryFallback = allow
	}
}

// NewStageCacheFactory creates a new factory
func NewStageCacheFactory(redisCfg config.RedisConfig, cacheCfg catalog.CacheConfig, opts ...StageCacheFactoryOption) *StageCacheFactory {
	f := &StageCacheFactory{
		redisConfig:           redisCfg,
		cacheConfig:           cacheCfg,
		logger:                zap.NewNop(),
		allowInMemoryFallback: true,
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// CreateRedisCache creates a Redis-backed stage catalog cache
func (f *StageCacheFactory) CreateRedisCache() (catalog.StageCache, error) {
	cache, err := NewRedisStageCache(RedisConfig{
		Host:     f.redisConfig.Host,
		Port:     f.redisConfig.Port,
		Password: f.redisConfig.Password,
		DB:       f.redisConfig.DB,
	}, f.cacheConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Redis stage cache: %w", err)
	}

	return cache, nil
}

// CreateInMemoryCache creates an in-memory stage catalog cache.
// In-memory caches do not share invalidations across process instances,
// so admin catalog edits may take up to one TTL to appear elsewhere.
func (f *StageCacheFactory) CreateInMemoryCache() catalog.StageCache {
	return NewInMemoryStageCache(
		WithInMemoryConfig(f.cacheConfig),
		WithInMemoryLogger(f.logger),
	)
}

// CreateCache creates a stage catalog cache, trying Redis first and falling
// back to in-memory when Redis is unavailable and fallback is allowed
func (f *StageCacheFactory) CreateCache(useRedis bool) (catalog.StageCache, error) {
	if !useRedis {
		return f.CreateInMemoryCache(), nil
	}

	cache, err := f.CreateRedisCache()
	if err == nil {
		f.logger.Info("using Redis stage catalog cache")
		return cache, nil
	}

	if !f.allowInMemoryFallback {
		return nil, fmt.Errorf("Redis required for stage cache but unavailable: %w", err)
	}

	f.logger.Warn("Redis unavailable, falling back to in-memory stage catalog cache",
		zap.Error(err),
	)
	return f.CreateInMemoryCache(), nil
}
