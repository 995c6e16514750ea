package cache

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"notifyconsole/config"
	"notifyconsole/internal/domain/entity"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func setupTestCache(t *testing.T) (*redisPackageCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	db := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = db.Close() })

	return newRedisPackageCache(db, time.Minute, discardLogger()), mr
}

func TestCatalog_SetAndGet(t *testing.T) {
	cache, _ := setupTestCache(t)
	ctx := context.Background()

	amount := 3
	expected := []*entity.Package{
		{ID: 1, Name: "Daily", Type: entity.PackageDaily, Time: entity.Length1Min},
		{ID: 2, Name: "Gold", Type: entity.PackageMonthly, Time: entity.Length30Min, Amount: &amount},
	}
	require.NoError(t, cache.SetCatalog(ctx, expected))

	actual, found, err := cache.GetCatalog(ctx)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, expected, actual)
}

func TestCatalog_Miss(t *testing.T) {
	cache, _ := setupTestCache(t)

	packages, found, err := cache.GetCatalog(context.Background())
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, packages)
}

func TestCatalog_Invalidate(t *testing.T) {
	cache, mr := setupTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.SetCatalog(ctx, []*entity.Package{{ID: 1, Name: "Daily"}}))
	require.NoError(t, cache.Invalidate(ctx))

	assert.False(t, mr.Exists(catalogKey))
	_, found, err := cache.GetCatalog(ctx)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCatalog_Expires(t *testing.T) {
	cache, mr := setupTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.SetCatalog(ctx, []*entity.Package{{ID: 1}}))
	mr.FastForward(2 * time.Minute)

	_, found, err := cache.GetCatalog(ctx)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCatalog_CorruptEntryIsMiss(t *testing.T) {
	cache, mr := setupTestCache(t)
	require.NoError(t, mr.Set(catalogKey, "not json"))

	_, found, err := cache.GetCatalog(context.Background())
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCatalog_RedisDown(t *testing.T) {
	cache, mr := setupTestCache(t)
	mr.Close()

	_, _, err := cache.GetCatalog(context.Background())
	assert.Error(t, err)
}

func TestNewPackageCache(t *testing.T) {
	t.Run("unconfigured falls back to noop", func(t *testing.T) {
		lc := fxtest.NewLifecycle(t)
		cache, err := NewPackageCache(Params{Lc: lc, Config: &config.Config{}, Logger: discardLogger()})
		require.NoError(t, err)

		require.NoError(t, cache.SetCatalog(context.Background(), []*entity.Package{{ID: 1}}))
		_, found, err := cache.GetCatalog(context.Background())
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("connects to redis", func(t *testing.T) {
		mr := miniredis.RunT(t)
		lc := fxtest.NewLifecycle(t)
		cfg := &config.Config{Redis: &config.RedisConfig{Addr: mr.Addr(), CatalogTTL: time.Minute}}

		cache, err := NewPackageCache(Params{Lc: lc, Config: cfg, Logger: discardLogger()})
		require.NoError(t, err)
		require.IsType(t, &redisPackageCache{}, cache)

		lc.RequireStart()
		require.NoError(t, cache.SetCatalog(context.Background(), []*entity.Package{{ID: 4}}))
		assert.True(t, mr.Exists(catalogKey))
		lc.RequireStop()
	})

	t.Run("unreachable redis fails", func(t *testing.T) {
		mr := miniredis.RunT(t)
		addr := mr.Addr()
		mr.Close()

		lc := fxtest.NewLifecycle(t)
		cfg := &config.Config{Redis: &config.RedisConfig{Addr: addr, Timeout: 100 * time.Millisecond}}

		_, err := NewPackageCache(Params{Lc: lc, Config: cfg, Logger: discardLogger()})
		assert.Error(t, err)
	})
}
