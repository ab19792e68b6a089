package handler

import (
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"pharmacy/internal/delivery/api/response"
	"pharmacy/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// AdminProductHandlerParams holds dependencies for AdminProductHandler, injected by Fx.
type AdminProductHandlerParams struct {
	fx.In

	ProductAdminUC usecase.ProductAdminUsecase
	Logger         *slog.Logger
}

// AdminProductHandler serves back-office product, variant and image management.
type AdminProductHandler struct {
	productAdminUC usecase.ProductAdminUsecase
	logger         *slog.Logger
}

// NewAdminProductHandler is the constructor for AdminProductHandler.
func NewAdminProductHandler(params AdminProductHandlerParams) *AdminProductHandler {
	return &AdminProductHandler{
		productAdminUC: params.ProductAdminUC,
		logger:         params.Logger,
	}
}

// VariantRequest is a variant in create and update requests.
type VariantRequest struct {
	PackageQuantity int              `json:"package_quantity" validate:"min=1"`
	Price           decimal.Decimal  `json:"price" validate:"gte=0"`
	DiscountPrice   *decimal.Decimal `json:"discount_price" validate:"omitempty,gte=0"`
	Stock           int              `json:"stock" validate:"min=0"`
	ExpiryDate      *time.Time       `json:"expiry_date"`
}

func (r *VariantRequest) toInput() *usecase.VariantInput {
	return &usecase.VariantInput{
		PackageQuantity: r.PackageQuantity,
		Price:           r.Price,
		DiscountPrice:   r.DiscountPrice,
		Stock:           r.Stock,
		ExpiryDate:      r.ExpiryDate,
	}
}

// CreateProductRequest is the body of POST /admin/products.
type CreateProductRequest struct {
	SKU                  string            `json:"sku" validate:"required,max=64"`
	Slug                 string            `json:"slug" validate:"omitempty,max=160"`
	Name                 string            `json:"name" validate:"required,max=200"`
	Description          string            `json:"description"`
	CategoryID           uuid.UUID         `json:"category_id" validate:"required"`
	BrandID              *uuid.UUID        `json:"brand_id"`
	RequiresPrescription bool              `json:"requires_prescription"`
	Variants             []*VariantRequest `json:"variants" validate:"required,min=1,dive,required"`
}

// UpdateProductRequest is the body of PATCH /admin/products/:id. Absent fields are left unchanged.
type UpdateProductRequest struct {
	SKU                  *string    `json:"sku" validate:"omitempty,min=1,max=64"`
	Slug                 *string    `json:"slug" validate:"omitempty,min=1,max=160"`
	Name                 *string    `json:"name" validate:"omitempty,min=1,max=200"`
	Description          *string    `json:"description"`
	CategoryID           *uuid.UUID `json:"category_id"`
	BrandID              *uuid.UUID `json:"brand_id"`
	ClearBrand           bool       `json:"clear_brand"`
	RequiresPrescription *bool      `json:"requires_prescription"`
}

// BlockProductRequest is the body of PUT /admin/products/:id/block.
type BlockProductRequest struct {
	Blocked bool `json:"blocked"`
}

// ListProducts returns one page of products including blocked ones.
func (h *AdminProductHandler) ListProducts(c echo.Context) error {
	var query ProductListQuery
	if err := c.Bind(&query); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product filter")
	}

	result, err := h.productAdminUC.ListProducts(c.Request().Context(), query.toFilter())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Paged(c, result)
}

// GetProduct returns a product regardless of its blocked flag.
func (h *AdminProductHandler) GetProduct(c echo.Context) error {
	productID, err := paramUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	product, err := h.productAdminUC.GetProduct(c.Request().Context(), productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product)
}

// CreateProduct creates a product with its variants.
func (h *AdminProductHandler) CreateProduct(c echo.Context) error {
	var req CreateProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	variants := make([]*usecase.VariantInput, 0, len(req.Variants))
	for _, v := range req.Variants {
		variants = append(variants, v.toInput())
	}

	product, err := h.productAdminUC.CreateProduct(c.Request().Context(), &usecase.CreateProductInput{
		SKU:                  req.SKU,
		Slug:                 req.Slug,
		Name:                 req.Name,
		Description:          req.Description,
		CategoryID:           req.CategoryID,
		BrandID:              req.BrandID,
		RequiresPrescription: req.RequiresPrescription,
		Variants:             variants,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, product)
}

// UpdateProduct applies a partial update.
func (h *AdminProductHandler) UpdateProduct(c echo.Context) error {
	productID, err := paramUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	var req UpdateProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	product, err := h.productAdminUC.UpdateProduct(c.Request().Context(), productID, &usecase.UpdateProductInput{
		SKU:                  req.SKU,
		Slug:                 req.Slug,
		Name:                 req.Name,
		Description:          req.Description,
		CategoryID:           req.CategoryID,
		BrandID:              req.BrandID,
		ClearBrand:           req.ClearBrand,
		RequiresPrescription: req.RequiresPrescription,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product)
}

// DeleteProduct soft-deletes a product.
func (h *AdminProductHandler) DeleteProduct(c echo.Context) error {
	productID, err := paramUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	if err := h.productAdminUC.DeleteProduct(c.Request().Context(), productID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// SetProductBlocked hides or republishes a product.
func (h *AdminProductHandler) SetProductBlocked(c echo.Context) error {
	productID, err := paramUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	var req BlockProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid block input")
	}

	product, err := h.productAdminUC.SetProductBlocked(c.Request().Context(), productID, req.Blocked)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product)
}

// AddVariant adds a variant to a product.
func (h *AdminProductHandler) AddVariant(c echo.Context) error {
	productID, err := paramUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	var req VariantRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid variant input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	variant, err := h.productAdminUC.AddVariant(c.Request().Context(), productID, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, variant)
}

// UpdateVariant replaces the fields of a variant.
func (h *AdminProductHandler) UpdateVariant(c echo.Context) error {
	variantID, err := paramUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid variant ID")
	}

	var req VariantRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid variant input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	variant, err := h.productAdminUC.UpdateVariant(c.Request().Context(), variantID, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, variant)
}

// DeleteVariant removes a variant unless it is the product's last one.
func (h *AdminProductHandler) DeleteVariant(c echo.Context) error {
	variantID, err := paramUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid variant ID")
	}

	if err := h.productAdminUC.DeleteVariant(c.Request().Context(), variantID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// UploadImage stores the multipart "image" file as a picture of the product.
func (h *AdminProductHandler) UploadImage(c echo.Context) error {
	productID, err := paramUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "image file is required")
	}

	position := 0
	if raw := c.FormValue("position"); raw != "" {
		if position, err = strconv.Atoi(raw); err != nil || position < 0 {
			return response.BadRequest(c, "VALIDATION_FAILED", "position must be a non-negative integer")
		}
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Unreadable image file")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Unreadable image file")
	}

	image, err := h.productAdminUC.UploadImage(c.Request().Context(), productID, &usecase.UploadImageInput{
		Filename: fileHeader.Filename,
		Data:     data,
		Position: position,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, image)
}

// DeleteImage removes a product picture.
func (h *AdminProductHandler) DeleteImage(c echo.Context) error {
	productID, err := paramUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	imageID, err := paramUUID(c, "imageId")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid image ID")
	}

	if err := h.productAdminUC.DeleteImage(c.Request().Context(), productID, imageID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
