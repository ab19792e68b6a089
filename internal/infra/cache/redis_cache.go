// Package cache caches storefront product details.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"pharmacy/config"
	"pharmacy/internal/domain/constants"
	"pharmacy/internal/domain/entity"
	"pharmacy/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const maxTTLJitter = time.Minute

type redisCache struct {
	client  redis.UniversalClient
	baseTTL time.Duration
}

// NewRedisCache creates a CatalogCache backed by Redis.
func NewRedisCache(client redis.UniversalClient, ttl time.Duration) service.CatalogCache {
	return &redisCache{client: client, baseTTL: ttl}
}

// CacheParams holds dependencies for CatalogCache, injected by Fx
type CacheParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// New returns a Redis cache when configured, otherwise a no-op cache.
func New(params CacheParams) (service.CatalogCache, error) {
	cfg := params.Config.Cache
	if cfg == nil || cfg.Provider == "" {
		params.Logger.Info("Catalog cache disabled")

		return noopCache{}, nil
	}

	if cfg.Provider != constants.CacheProviderRedis {
		return nil, errors.Errorf("unknown cache provider: %s", cfg.Provider)
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				params.Logger.Warn("Redis is unreachable, catalog reads will fall through", slog.Any("error", err))
			}

			return nil
		},
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})

	return NewRedisCache(client, cfg.ProductTTL), nil
}

func (r *redisCache) GetProduct(ctx context.Context, slug string) (*entity.Product, error) {
	data, err := r.client.Get(ctx, productKey(slug)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, service.ErrCacheMiss
	}
	if err != nil {
		return nil, errors.Wrap(err, "redis get failed")
	}

	var product entity.Product
	if err := json.Unmarshal(data, &product); err != nil {
		return nil, errors.Wrap(err, "unmarshal product failed")
	}

	return &product, nil
}

func (r *redisCache) SetProduct(ctx context.Context, product *entity.Product) error {
	data, err := json.Marshal(product)
	if err != nil {
		return errors.Wrap(err, "marshal product failed")
	}

	// Jitter spreads expiry of products cached together.
	ttl := r.baseTTL + rand.N(maxTTLJitter)
	if err := r.client.Set(ctx, productKey(product.Slug), data, ttl).Err(); err != nil {
		return errors.Wrap(err, "redis set failed")
	}

	return nil
}

func (r *redisCache) InvalidateProduct(ctx context.Context, slug string) error {
	if err := r.client.Del(ctx, productKey(slug)).Err(); err != nil {
		return errors.Wrap(err, "redis delete failed")
	}

	return nil
}

func productKey(slug string) string {
	return fmt.Sprintf("catalog:product:%s", slug)
}

type noopCache struct{}

func (noopCache) GetProduct(context.Context, string) (*entity.Product, error) {
	return nil, service.ErrCacheMiss
}

func (noopCache) SetProduct(context.Context, *entity.Product) error { return nil }

func (noopCache) InvalidateProduct(context.Context, string) error { return nil }
