package catalog

import (
	"context"
	"time"
)

// StageCache caches the whole stage catalog as one entry. The catalog is
// small and read on almost every request, so it is cached wholesale and
// invalidated on any admin write.
type StageCache interface {
	// Get returns the cached catalog. The bool reports a cache hit.
	Get(ctx context.Context) ([]Stage, bool, error)

	// Set replaces the cached catalog
	Set(ctx context.Context, stages []Stage) error

	// Invalidate drops the cached catalog
	Invalidate(ctx context.Context) error
}

// CacheConfig holds stage cache settings
type CacheConfig struct {
	TTL time.Duration
}

// DefaultCacheConfig returns the default cache configuration
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{
		TTL: 5 * time.Minute,
	}
}
