package impl

import (
	"context"
	"log/slog"
	"strings"

	"pharmacy/config"
	deliverycontext "pharmacy/internal/delivery/context"
	"pharmacy/internal/domain/entity"
	domainerrors "pharmacy/internal/domain/errors"
	"pharmacy/internal/domain/repository"
	"pharmacy/internal/domain/service"
	"pharmacy/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// searchLimit caps each group of /search results.
const searchLimit = 10

// catalogService implements the storefront CatalogUsecase. Blocked and deleted products are never returned.
type catalogService struct {
	productRepo  repository.ProductRepository
	variantRepo  repository.VariantRepository
	brandRepo    repository.BrandRepository
	categoryRepo repository.CategoryRepository
	cache        service.CatalogCache
	config       *config.Config
	logger       *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ProductRepo  repository.ProductRepository
	VariantRepo  repository.VariantRepository
	BrandRepo    repository.BrandRepository
	CategoryRepo repository.CategoryRepository
	Cache        service.CatalogCache
	Config       *config.Config
	Logger       *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		productRepo:  params.ProductRepo,
		variantRepo:  params.VariantRepo,
		brandRepo:    params.BrandRepo,
		categoryRepo: params.CategoryRepo,
		cache:        params.Cache,
		config:       params.Config,
		logger:       params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListProducts returns one page of purchasable products.
func (srv *catalogService) ListProducts(ctx context.Context, filter entity.ProductFilter) (*entity.PagedResult[*entity.Product], error) {
	if filter.Sort == "" {
		filter.Sort = entity.ProductSortNewest
	}
	if !filter.Sort.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown sort order")
	}
	filter.Query = strings.TrimSpace(filter.Query)
	filter.IncludeBlocked = false
	filter.Page = normalizePage(srv.config, filter.Page)

	products, total, err := srv.productRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return entity.NewPagedResult(products, filter.Page, total), nil
}

// GetProductBySlug returns the product with variants and images, served from the cache when possible.
func (srv *catalogService) GetProductBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	cached, err := srv.cache.GetProduct(ctx, slug)
	switch {
	case err == nil:
		if cached.IsBlock {
			return nil, domainerrors.ErrProductNotFound.WrapMessage("product is blocked")
		}

		return cached, nil
	case !errors.Is(err, service.ErrCacheMiss):
		srv.log(ctx).Warn("Catalog cache read failed", slog.String("slug", slug), slog.Any("error", err))
	}

	product, err := srv.productRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, mapRepoError(err, "failed to find product", mapping(repository.ErrProductNotFound, domainerrors.ErrProductNotFound))
	}
	if product.IsBlock {
		return nil, domainerrors.ErrProductNotFound.WrapMessage("product is blocked")
	}

	if err := srv.cache.SetProduct(ctx, product); err != nil {
		srv.log(ctx).Warn("Catalog cache write failed", slog.String("slug", slug), slog.Any("error", err))
	}

	return product, nil
}

// GetVariant returns a variant together with its product.
func (srv *catalogService) GetVariant(ctx context.Context, variantID uuid.UUID) (*usecase.VariantDetail, error) {
	variant, err := srv.variantRepo.FindByID(ctx, variantID)
	if err != nil {
		return nil, mapRepoError(err, "failed to find variant", mapping(repository.ErrVariantNotFound, domainerrors.ErrVariantNotFound))
	}

	product, err := srv.productRepo.FindByID(ctx, variant.ProductID)
	if err != nil {
		return nil, mapRepoError(err, "failed to find product", mapping(repository.ErrProductNotFound, domainerrors.ErrVariantNotFound))
	}
	if product.IsBlock {
		return nil, domainerrors.ErrVariantNotFound.WrapMessage("product is blocked")
	}

	return &usecase.VariantDetail{
		ProductVariant: variant,
		Product:        product,
	}, nil
}

// ListCategories returns every category ordered by name.
func (srv *catalogService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := srv.categoryRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

// ListBrands returns every brand ordered by name.
func (srv *catalogService) ListBrands(ctx context.Context) ([]*entity.Brand, error) {
	brands, err := srv.brandRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list brands")
	}

	return brands, nil
}

// Search matches the query against product names and SKUs, brand names and category names.
func (srv *catalogService) Search(ctx context.Context, query string) (*entity.SearchResult, error) {
	result := &entity.SearchResult{
		Products:   []*entity.Product{},
		Brands:     []*entity.Brand{},
		Categories: []*entity.Category{},
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return result, nil
	}

	products, _, err := srv.productRepo.List(ctx, entity.ProductFilter{
		Query: query,
		Sort:  entity.ProductSortNewest,
		Page:  entity.Page{Number: 1, Size: searchLimit},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to search products")
	}

	brands, err := srv.brandRepo.Search(ctx, query, searchLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search brands")
	}

	categories, err := srv.categoryRepo.Search(ctx, query, searchLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search categories")
	}

	if products != nil {
		result.Products = products
	}
	if brands != nil {
		result.Brands = brands
	}
	if categories != nil {
		result.Categories = categories
	}

	return result, nil
}
