package cache

import (
	"context"
	"testing"
	"time"

	"github.com/buildtrack/backend/internal/domain/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStages(t *testing.T) []catalog.Stage {
	foundation, err := catalog.NewStage("foundation", "Foundation", 1)
	require.NoError(t, err)
	framing, err := catalog.NewStage("framing", "Framing", 2)
	require.NoError(t, err)
	return []catalog.Stage{*foundation, *framing}
}

func TestInMemoryStageCache(t *testing.T) {
	ctx := context.Background()

	t.Run("empty cache misses", func(t *testing.T) {
		cache := NewInMemoryStageCache()

		_, hit, err := cache.Get(ctx)
		require.NoError(t, err)
		assert.False(t, hit)
	})

	t.Run("set then get hits", func(t *testing.T) {
		cache := NewInMemoryStageCache()
		stages := testStages(t)

		require.NoError(t, cache.Set(ctx, stages))

		got, hit, err := cache.Get(ctx)
		require.NoError(t, err)
		assert.True(t, hit)
		require.Len(t, got, 2)
		assert.Equal(t, "foundation", got[0].Slug)
	})

	t.Run("invalidate drops the entry", func(t *testing.T) {
		cache := NewInMemoryStageCache()
		require.NoError(t, cache.Set(ctx, testStages(t)))
		require.NoError(t, cache.Invalidate(ctx))

		_, hit, err := cache.Get(ctx)
		require.NoError(t, err)
		assert.False(t, hit)
	})

	t.Run("expired entry misses", func(t *testing.T) {
		cache := NewInMemoryStageCache(
			WithInMemoryConfig(catalog.CacheConfig{TTL: time.Millisecond}),
		)
		require.NoError(t, cache.Set(ctx, testStages(t)))

		time.Sleep(5 * time.Millisecond)

		_, hit, err := cache.Get(ctx)
		require.NoError(t, err)
		assert.False(t, hit)
	})

	t.Run("get returns a copy", func(t *testing.T) {
		cache := NewInMemoryStageCache()
		require.NoError(t, cache.Set(ctx, testStages(t)))

		got, _, err := cache.Get(ctx)
		require.NoError(t, err)
		got[0].Title = "Mutated"

		again, _, err := cache.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Foundation", again[0].Title)
	})
}
