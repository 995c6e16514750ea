// Package cache keeps slow-changing backend reads in Redis.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"notifyconsole/config"
	"notifyconsole/internal/domain/entity"
	"notifyconsole/internal/domain/lifecycle"
	"notifyconsole/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const (
	catalogKey        = "notifyconsole:packages:catalog"
	defaultCatalogTTL = 5 * time.Minute
)

type redisPackageCache struct {
	db     *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func newRedisPackageCache(db *redis.Client, ttl time.Duration, logger *slog.Logger) *redisPackageCache {
	if ttl <= 0 {
		ttl = defaultCatalogTTL
	}

	return &redisPackageCache{db: db, ttl: ttl, logger: logger}
}

func (c *redisPackageCache) GetCatalog(ctx context.Context) ([]*entity.Package, bool, error) {
	val, err := c.db.Get(ctx, catalogKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrap(err, "failed to read package catalog")
	}

	var packages []*entity.Package
	if err := json.Unmarshal(val, &packages); err != nil {
		// A corrupt entry is treated as a miss and overwritten on the next set.
		c.logger.Warn("Discarding unreadable package catalog", slog.Any("error", err))

		return nil, false, nil
	}

	return packages, true, nil
}

func (c *redisPackageCache) SetCatalog(ctx context.Context, packages []*entity.Package) error {
	data, err := json.Marshal(packages)
	if err != nil {
		return errors.Wrap(err, "failed to encode package catalog")
	}

	return errors.Wrap(c.db.Set(ctx, catalogKey, data, c.ttl).Err(), "failed to store package catalog")
}

func (c *redisPackageCache) Invalidate(ctx context.Context) error {
	return errors.Wrap(c.db.Del(ctx, catalogKey).Err(), "failed to invalidate package catalog")
}

// noopPackageCache always misses
type noopPackageCache struct{}

func (noopPackageCache) GetCatalog(context.Context) ([]*entity.Package, bool, error) {
	return nil, false, nil
}

func (noopPackageCache) SetCatalog(context.Context, []*entity.Package) error { return nil }

func (noopPackageCache) Invalidate(context.Context) error { return nil }

// Params holds dependencies for the package cache, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewPackageCache connects to Redis when it is configured and falls back to
// a cache that always misses otherwise.
func NewPackageCache(params Params) (service.PackageCache, error) {
	cfg := params.Config.Redis
	logger := params.Logger

	if cfg == nil || cfg.Addr == "" {
		logger.Info("Redis not configured, package catalog is not cached")

		return noopPackageCache{}, nil
	}

	db := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Username:     cfg.Username,
		Password:     cfg.Password,
		DB:           cfg.DB,
		ReadTimeout:  cfg.Timeout,
		WriteTimeout: cfg.Timeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	if err := db.Ping(ctx).Err(); err != nil {
		_ = db.Close()

		return nil, errors.Wrapf(err, "failed to connect to redis at %s", cfg.Addr)
	}

	logger.Info("Package catalog cache connected", slog.String("addr", cfg.Addr))

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing Redis client")

			return db.Close()
		},
	})

	return newRedisPackageCache(db, cfg.CatalogTTL, logger), nil
}

// Module provides the cache FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewPackageCache),
)
