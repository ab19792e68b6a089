package impl

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"pharmacy/config"
	deliverycontext "pharmacy/internal/delivery/context"
	"pharmacy/internal/domain/entity"
	domainerrors "pharmacy/internal/domain/errors"
	"pharmacy/internal/domain/repository"
	"pharmacy/internal/domain/service"
	"pharmacy/internal/usecase"
	"pharmacy/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultMaxImageBytes = 5 << 20

// imageExtensions lists the accepted upload types by sniffed content type.
var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// productAdminService implements the back-office ProductAdminUsecase.
type productAdminService struct {
	txManager     repository.TransactionManager
	productRepo   repository.ProductRepository
	variantRepo   repository.VariantRepository
	storage       service.ImageStorage
	cache         service.CatalogCache
	config        *config.Config
	maxImageBytes int64
	logger        *slog.Logger
}

// ProductAdminServiceParams holds dependencies for ProductAdminService, injected by Fx.
type ProductAdminServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ProductRepo repository.ProductRepository
	VariantRepo repository.VariantRepository
	Storage     service.ImageStorage
	Cache       service.CatalogCache
	Config      *config.Config
	Logger      *slog.Logger
}

// NewProductAdminService is the constructor for productAdminService.
func NewProductAdminService(params ProductAdminServiceParams) usecase.ProductAdminUsecase {
	maxImageBytes := int64(defaultMaxImageBytes)
	if params.Config != nil && params.Config.Storage != nil && params.Config.Storage.MaxImageBytes > 0 {
		maxImageBytes = params.Config.Storage.MaxImageBytes
	}

	return &productAdminService{
		txManager:     params.TxManager,
		productRepo:   params.ProductRepo,
		variantRepo:   params.VariantRepo,
		storage:       params.Storage,
		cache:         params.Cache,
		config:        params.Config,
		maxImageBytes: maxImageBytes,
		logger:        params.Logger,
	}
}

func (srv *productAdminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// invalidate drops cached storefront copies. Failures only cost freshness until the TTL expires.
func (srv *productAdminService) invalidate(ctx context.Context, slugs ...string) {
	for _, slug := range slugs {
		if slug == "" {
			continue
		}
		if err := srv.cache.InvalidateProduct(ctx, slug); err != nil {
			srv.log(ctx).Warn("Failed to invalidate product cache", slog.String("slug", slug), slog.Any("error", err))
		}
	}
}

var productWriteErrors = []errorMapping{
	mapping(repository.ErrDuplicateSKU, domainerrors.ErrDuplicateSKU),
	mapping(repository.ErrDuplicateSlug, domainerrors.ErrDuplicateSlug),
	mapping(repository.ErrProductNotFound, domainerrors.ErrProductNotFound),
	mapping(repository.ErrInvalidReference, domainerrors.ErrCategoryNotFound),
}

// ListProducts returns one page of products including blocked ones.
func (srv *productAdminService) ListProducts(ctx context.Context, filter entity.ProductFilter) (*entity.PagedResult[*entity.Product], error) {
	if filter.Sort == "" {
		filter.Sort = entity.ProductSortNewest
	}
	if !filter.Sort.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown sort order")
	}
	filter.Query = strings.TrimSpace(filter.Query)
	filter.IncludeBlocked = true
	filter.Page = normalizePage(srv.config, filter.Page)

	products, total, err := srv.productRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return entity.NewPagedResult(products, filter.Page, total), nil
}

// GetProduct loads a product by id, blocked or not.
func (srv *productAdminService) GetProduct(ctx context.Context, productID uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, mapRepoError(err, "failed to find product", mapping(repository.ErrProductNotFound, domainerrors.ErrProductNotFound))
	}

	return product, nil
}

// CreateProduct stores a product with its initial variants.
func (srv *productAdminService) CreateProduct(ctx context.Context, input *usecase.CreateProductInput) (*entity.Product, error) {
	if len(input.Variants) == 0 {
		return nil, domainerrors.ErrVariantRequired.WrapMessage("create product without variants")
	}

	variants := make([]*entity.ProductVariant, 0, len(input.Variants))
	for _, variantInput := range input.Variants {
		variant := &entity.ProductVariant{}
		applyVariantInput(variant, variantInput)
		if err := validateVariant(variant); err != nil {
			return nil, err
		}
		variants = append(variants, variant)
	}

	slug, err := resolveSlug(input.Slug, input.Name)
	if err != nil {
		return nil, err
	}

	product := &entity.Product{
		SKU:                  strings.TrimSpace(input.SKU),
		Slug:                 slug,
		Name:                 strings.TrimSpace(input.Name),
		Description:          input.Description,
		CategoryID:           input.CategoryID,
		BrandID:              input.BrandID,
		RequiresPrescription: input.RequiresPrescription,
	}

	var created *entity.Product
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := checkTaxonomyRefs(ctx, repoFactory, product.CategoryID, product.BrandID); err != nil {
			return err
		}

		productRepo := repoFactory.ProductRepo()
		if err := productRepo.Create(ctx, product); err != nil {
			return mapRepoError(err, "failed to create product", productWriteErrors...)
		}

		variantRepo := repoFactory.VariantRepo()
		for _, variant := range variants {
			variant.ProductID = product.ID
			if err := variantRepo.Create(ctx, variant); err != nil {
				return errors.Wrap(err, "failed to create variant")
			}
		}

		reloaded, err := productRepo.FindByID(ctx, product.ID)
		if err != nil {
			return errors.Wrap(err, "failed to reload product")
		}
		created = reloaded

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to create product", slog.String("sku", product.SKU), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute create product transaction")
	}
	srv.log(ctx).Info("Product created", slog.Any("productID", created.ID), slog.String("sku", created.SKU))

	return created, nil
}

// UpdateProduct applies the non-nil fields of the input.
func (srv *productAdminService) UpdateProduct(ctx context.Context, productID uuid.UUID, input *usecase.UpdateProductInput) (*entity.Product, error) {
	var (
		updated *entity.Product
		oldSlug string
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()

		product, err := productRepo.FindByID(ctx, productID)
		if err != nil {
			return mapRepoError(err, "failed to find product", mapping(repository.ErrProductNotFound, domainerrors.ErrProductNotFound))
		}
		oldSlug = product.Slug

		if err := applyProductUpdate(product, input); err != nil {
			return err
		}
		if err := checkTaxonomyRefs(ctx, repoFactory, product.CategoryID, product.BrandID); err != nil {
			return err
		}

		if err := productRepo.Update(ctx, product); err != nil {
			return mapRepoError(err, "failed to update product", productWriteErrors...)
		}

		reloaded, err := productRepo.FindByID(ctx, productID)
		if err != nil {
			return errors.Wrap(err, "failed to reload product")
		}
		updated = reloaded

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute update product transaction")
	}

	srv.invalidate(ctx, oldSlug, updated.Slug)

	return updated, nil
}

func applyProductUpdate(product *entity.Product, input *usecase.UpdateProductInput) error {
	if input.SKU != nil {
		product.SKU = strings.TrimSpace(*input.SKU)
	}
	if input.Name != nil {
		product.Name = strings.TrimSpace(*input.Name)
	}
	if input.Slug != nil {
		slug, err := resolveSlug(*input.Slug, product.Name)
		if err != nil {
			return err
		}
		product.Slug = slug
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.CategoryID != nil {
		product.CategoryID = *input.CategoryID
	}
	switch {
	case input.ClearBrand:
		product.BrandID = nil
	case input.BrandID != nil:
		product.BrandID = input.BrandID
	}
	if input.RequiresPrescription != nil {
		product.RequiresPrescription = *input.RequiresPrescription
	}

	return nil
}

// DeleteProduct soft-deletes the product. Orders keep their snapshots.
func (srv *productAdminService) DeleteProduct(ctx context.Context, productID uuid.UUID) error {
	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		return mapRepoError(err, "failed to find product", mapping(repository.ErrProductNotFound, domainerrors.ErrProductNotFound))
	}

	if err := srv.productRepo.SoftDelete(ctx, productID); err != nil {
		return mapRepoError(err, "failed to delete product", mapping(repository.ErrProductNotFound, domainerrors.ErrProductNotFound))
	}
	srv.invalidate(ctx, product.Slug)
	srv.log(ctx).Info("Product deleted", slog.Any("productID", productID))

	return nil
}

// SetProductBlocked hides or restores a product on the storefront.
func (srv *productAdminService) SetProductBlocked(ctx context.Context, productID uuid.UUID, blocked bool) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, mapRepoError(err, "failed to find product", mapping(repository.ErrProductNotFound, domainerrors.ErrProductNotFound))
	}

	product.IsBlock = blocked
	if err := srv.productRepo.Update(ctx, product); err != nil {
		return nil, mapRepoError(err, "failed to update product", productWriteErrors...)
	}
	srv.invalidate(ctx, product.Slug)

	return product, nil
}

// AddVariant attaches a new variant to the product.
func (srv *productAdminService) AddVariant(ctx context.Context, productID uuid.UUID, input *usecase.VariantInput) (*entity.ProductVariant, error) {
	variant := &entity.ProductVariant{ProductID: productID}
	applyVariantInput(variant, input)
	if err := validateVariant(variant); err != nil {
		return nil, err
	}

	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, mapRepoError(err, "failed to find product", mapping(repository.ErrProductNotFound, domainerrors.ErrProductNotFound))
	}

	if err := srv.variantRepo.Create(ctx, variant); err != nil {
		return nil, mapRepoError(err, "failed to create variant", mapping(repository.ErrProductNotFound, domainerrors.ErrProductNotFound))
	}
	srv.invalidate(ctx, product.Slug)

	return variant, nil
}

// UpdateVariant replaces the variant's price, stock and packaging.
func (srv *productAdminService) UpdateVariant(ctx context.Context, variantID uuid.UUID, input *usecase.VariantInput) (*entity.ProductVariant, error) {
	var updated *entity.ProductVariant

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		variantRepo := repoFactory.VariantRepo()

		variant, err := variantRepo.FindByIDForUpdate(ctx, variantID)
		if err != nil {
			return mapRepoError(err, "failed to find variant", mapping(repository.ErrVariantNotFound, domainerrors.ErrVariantNotFound))
		}

		applyVariantInput(variant, input)
		if err := validateVariant(variant); err != nil {
			return err
		}

		if err := variantRepo.Update(ctx, variant); err != nil {
			return mapRepoError(err, "failed to update variant", mapping(repository.ErrVariantNotFound, domainerrors.ErrVariantNotFound))
		}
		updated = variant

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute update variant transaction")
	}

	srv.invalidateVariantProduct(ctx, updated.ProductID)

	return updated, nil
}

// DeleteVariant removes a variant. A product always keeps at least one.
func (srv *productAdminService) DeleteVariant(ctx context.Context, variantID uuid.UUID) error {
	var productID uuid.UUID

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		variantRepo := repoFactory.VariantRepo()

		variant, err := variantRepo.FindByIDForUpdate(ctx, variantID)
		if err != nil {
			return mapRepoError(err, "failed to find variant", mapping(repository.ErrVariantNotFound, domainerrors.ErrVariantNotFound))
		}
		productID = variant.ProductID

		count, err := variantRepo.CountByProduct(ctx, variant.ProductID)
		if err != nil {
			return errors.Wrap(err, "failed to count variants")
		}
		if count <= 1 {
			return domainerrors.ErrLastVariant.WrapMessage("delete last variant")
		}

		if err := variantRepo.Delete(ctx, variantID); err != nil {
			return mapRepoError(err, "failed to delete variant", mapping(repository.ErrVariantNotFound, domainerrors.ErrVariantNotFound))
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute delete variant transaction")
	}

	srv.invalidateVariantProduct(ctx, productID)

	return nil
}

func (srv *productAdminService) invalidateVariantProduct(ctx context.Context, productID uuid.UUID) {
	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		srv.log(ctx).Warn("Failed to load product for cache invalidation", slog.Any("productID", productID), slog.Any("error", err))

		return
	}
	srv.invalidate(ctx, product.Slug)
}

// UploadImage stores the image in the bucket and records it on the product.
func (srv *productAdminService) UploadImage(ctx context.Context, productID uuid.UUID, input *usecase.UploadImageInput) (*entity.ProductImage, error) {
	if len(input.Data) == 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("empty image")
	}
	if int64(len(input.Data)) > srv.maxImageBytes {
		return nil, domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("image exceeds %s", util.FormatBytes(srv.maxImageBytes)),
		)
	}

	contentType := http.DetectContentType(input.Data)
	ext, ok := imageExtensions[contentType]
	if !ok {
		return nil, domainerrors.ErrUnsupportedImage.WrapMessage(contentType)
	}

	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, mapRepoError(err, "failed to find product", mapping(repository.ErrProductNotFound, domainerrors.ErrProductNotFound))
	}

	key := fmt.Sprintf("products/%s/%s%s", productID, uuid.NewString(), ext)
	url, err := srv.storage.Upload(ctx, key, contentType, bytes.NewReader(input.Data))
	if err != nil {
		srv.log(ctx).Error("Failed to upload product image", slog.String("key", key), slog.Any("error", err))

		return nil, domainerrors.ErrImageUploadFailed.WrapMessage(err.Error())
	}

	image := &entity.ProductImage{
		ProductID:  productID,
		StorageKey: key,
		URL:        url,
		Position:   input.Position,
	}
	if err := srv.productRepo.AddImage(ctx, image); err != nil {
		if deleteErr := srv.storage.Delete(ctx, key); deleteErr != nil {
			srv.log(ctx).Warn("Failed to remove orphaned image", slog.String("key", key), slog.Any("error", deleteErr))
		}

		return nil, mapRepoError(err, "failed to record product image", mapping(repository.ErrProductNotFound, domainerrors.ErrProductNotFound))
	}
	srv.invalidate(ctx, product.Slug)

	return image, nil
}

// DeleteImage removes the image record and its stored object.
func (srv *productAdminService) DeleteImage(ctx context.Context, productID, imageID uuid.UUID) error {
	image, err := srv.productRepo.FindImage(ctx, imageID)
	if err != nil {
		return mapRepoError(err, "failed to find product image", mapping(repository.ErrImageNotFound, domainerrors.ErrImageNotFound))
	}
	if image.ProductID != productID {
		return domainerrors.ErrImageNotFound.WrapMessage("image belongs to another product")
	}

	if err := srv.productRepo.DeleteImage(ctx, imageID); err != nil {
		return mapRepoError(err, "failed to delete product image", mapping(repository.ErrImageNotFound, domainerrors.ErrImageNotFound))
	}

	if err := srv.storage.Delete(ctx, image.StorageKey); err != nil {
		srv.log(ctx).Warn("Failed to delete stored image", slog.String("key", image.StorageKey), slog.Any("error", err))
	}
	srv.invalidateVariantProduct(ctx, productID)

	return nil
}

func applyVariantInput(variant *entity.ProductVariant, input *usecase.VariantInput) {
	variant.PackageQuantity = input.PackageQuantity
	variant.Price = input.Price
	variant.DiscountPrice = input.DiscountPrice
	variant.Stock = input.Stock
	variant.ExpiryDate = input.ExpiryDate
}

// resolveSlug normalizes an explicit slug or derives one from the name.
func resolveSlug(slug, name string) (string, error) {
	source := strings.TrimSpace(slug)
	if source == "" {
		source = name
	}

	resolved := util.Slugify(source)
	if resolved == "" {
		return "", domainerrors.ErrValidationFailed.WrapMessage("slug cannot be derived")
	}

	return resolved, nil
}

// checkTaxonomyRefs verifies the category and the optional brand exist.
func checkTaxonomyRefs(ctx context.Context, repoFactory repository.RepositoryFactory, categoryID uuid.UUID, brandID *uuid.UUID) error {
	if _, err := repoFactory.CategoryRepo().FindByID(ctx, categoryID); err != nil {
		return mapRepoError(err, "failed to find category", mapping(repository.ErrCategoryNotFound, domainerrors.ErrCategoryNotFound))
	}
	if brandID == nil {
		return nil
	}
	if _, err := repoFactory.BrandRepo().FindByID(ctx, *brandID); err != nil {
		return mapRepoError(err, "failed to find brand", mapping(repository.ErrBrandNotFound, domainerrors.ErrBrandNotFound))
	}

	return nil
}
