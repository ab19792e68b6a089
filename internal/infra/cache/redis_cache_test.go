package cache

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"pharmacy/config"
	"pharmacy/internal/domain/entity"
	"pharmacy/internal/domain/service"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func setupTestRedis(t *testing.T) (service.CatalogCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedisCache(client, 10*time.Minute), mr
}

func TestRedisCache_SetGetInvalidate(t *testing.T) {
	cache, mr := setupTestRedis(t)
	ctx := context.Background()

	product := &entity.Product{
		ID:   uuid.New(),
		SKU:  "SKU-1",
		Slug: "vitamin-c",
		Name: "Vitamin C",
		Variants: []*entity.ProductVariant{
			{ID: uuid.New(), PackageQuantity: 30, Price: decimal.RequireFromString("120000"), Stock: 4},
		},
	}

	require.NoError(t, cache.SetProduct(ctx, product))
	assert.True(t, mr.Exists(productKey("vitamin-c")))

	ttl := mr.TTL(productKey("vitamin-c"))
	assert.GreaterOrEqual(t, ttl, 10*time.Minute)
	assert.Less(t, ttl, 10*time.Minute+maxTTLJitter)

	got, err := cache.GetProduct(ctx, "vitamin-c")
	require.NoError(t, err)
	assert.Equal(t, product.ID, got.ID)
	require.Len(t, got.Variants, 1)
	assert.True(t, got.Variants[0].Price.Equal(decimal.RequireFromString("120000")))

	require.NoError(t, cache.InvalidateProduct(ctx, "vitamin-c"))
	_, err = cache.GetProduct(ctx, "vitamin-c")
	assert.ErrorIs(t, err, service.ErrCacheMiss)
}

func TestRedisCache_GetMiss(t *testing.T) {
	cache, _ := setupTestRedis(t)

	_, err := cache.GetProduct(context.Background(), "missing")

	assert.ErrorIs(t, err, service.ErrCacheMiss)
}

func TestRedisCache_GetCorruptedEntry(t *testing.T) {
	cache, mr := setupTestRedis(t)
	require.NoError(t, mr.Set(productKey("broken"), "{not json"))

	_, err := cache.GetProduct(context.Background(), "broken")

	require.Error(t, err)
	assert.NotErrorIs(t, err, service.ErrCacheMiss)
}

func TestRedisCache_ServerDown(t *testing.T) {
	cache, mr := setupTestRedis(t)
	mr.Close()

	_, err := cache.GetProduct(context.Background(), "any")

	require.Error(t, err)
	assert.NotErrorIs(t, err, service.ErrCacheMiss)
}

func TestNew_DisabledReturnsNoop(t *testing.T) {
	lc := fxtest.NewLifecycle(t)

	c, err := New(CacheParams{
		Lc:     lc,
		Config: &config.Config{},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	_, err = c.GetProduct(context.Background(), "x")
	assert.ErrorIs(t, err, service.ErrCacheMiss)
	assert.NoError(t, c.SetProduct(context.Background(), &entity.Product{Slug: "x"}))
	assert.NoError(t, c.InvalidateProduct(context.Background(), "x"))
}

func TestNew_UnknownProvider(t *testing.T) {
	_, err := New(CacheParams{
		Lc:     fxtest.NewLifecycle(t),
		Config: &config.Config{Cache: &config.CacheConfig{Provider: "memcached"}},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	assert.Error(t, err)
}
