package handler

import (
	"log/slog"
	"net/http"

	"pharmacy/internal/delivery/api/response"
	"pharmacy/internal/domain/entity"
	"pharmacy/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CatalogHandler serves the public storefront reads.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler.
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// ProductListQuery holds the filters of a product listing.
type ProductListQuery struct {
	PageQuery
	Category string `query:"category"`
	Brand    string `query:"brand"`
	Query    string `query:"q"`
	Sort     string `query:"sort"`
}

func (q *ProductListQuery) toFilter() entity.ProductFilter {
	return entity.ProductFilter{
		CategorySlug: q.Category,
		BrandSlug:    q.Brand,
		Query:        q.Query,
		Sort:         entity.ProductSort(q.Sort),
		Page:         q.toPage(),
	}
}

// ListProducts returns one page of products for sale.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	var query ProductListQuery
	if err := c.Bind(&query); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product filter")
	}

	result, err := h.catalogUC.ListProducts(c.Request().Context(), query.toFilter())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Paged(c, result)
}

// GetProduct returns a product with its variants and images.
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	product, err := h.catalogUC.GetProductBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product)
}

// GetVariant returns a variant together with its product.
func (h *CatalogHandler) GetVariant(c echo.Context) error {
	variantID, err := paramUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid variant ID")
	}

	variant, err := h.catalogUC.GetVariant(c.Request().Context(), variantID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, variant)
}

// ListCategories returns every category.
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	categories, err := h.catalogUC.ListCategories(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, categories)
}

// ListBrands returns every brand.
func (h *CatalogHandler) ListBrands(c echo.Context) error {
	brands, err := h.catalogUC.ListBrands(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, brands)
}

// Search matches products, brands and categories against q. A blank q matches nothing.
func (h *CatalogHandler) Search(c echo.Context) error {
	result, err := h.catalogUC.Search(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}
