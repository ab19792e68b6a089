package service

import (
	"context"

	"pharmacy/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrCacheMiss is returned when the key is not cached.
var ErrCacheMiss = errors.New("cache miss")

// CatalogCache caches storefront product details by slug.
type CatalogCache interface {
	GetProduct(ctx context.Context, slug string) (*entity.Product, error)
	SetProduct(ctx context.Context, product *entity.Product) error
	InvalidateProduct(ctx context.Context, slug string) error
}
