package handler

import (
	"log/slog"
	"net/http"

	"pharmacy/internal/delivery/api/response"
	"pharmacy/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminTaxonomyHandlerParams holds dependencies for AdminTaxonomyHandler, injected by Fx.
type AdminTaxonomyHandlerParams struct {
	fx.In

	TaxonomyUC usecase.TaxonomyUsecase
	Logger     *slog.Logger
}

// AdminTaxonomyHandler serves back-office brand and category management.
type AdminTaxonomyHandler struct {
	taxonomyUC usecase.TaxonomyUsecase
	logger     *slog.Logger
}

// NewAdminTaxonomyHandler is the constructor for AdminTaxonomyHandler.
func NewAdminTaxonomyHandler(params AdminTaxonomyHandlerParams) *AdminTaxonomyHandler {
	return &AdminTaxonomyHandler{
		taxonomyUC: params.TaxonomyUC,
		logger:     params.Logger,
	}
}

// BrandRequest is the body of brand create and update requests.
type BrandRequest struct {
	Name    string `json:"name" validate:"required,max=120"`
	Slug    string `json:"slug" validate:"omitempty,max=160"`
	LogoURL string `json:"logo_url" validate:"omitempty,url"`
}

// CategoryRequest is the body of category create and update requests.
type CategoryRequest struct {
	Name     string     `json:"name" validate:"required,max=120"`
	Slug     string     `json:"slug" validate:"omitempty,max=160"`
	ParentID *uuid.UUID `json:"parent_id"`
}

// GetBrand returns a brand.
func (h *AdminTaxonomyHandler) GetBrand(c echo.Context) error {
	brandID, err := paramUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid brand ID")
	}

	brand, err := h.taxonomyUC.GetBrand(c.Request().Context(), brandID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, brand)
}

// CreateBrand creates a brand.
func (h *AdminTaxonomyHandler) CreateBrand(c echo.Context) error {
	var req BrandRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid brand input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	brand, err := h.taxonomyUC.CreateBrand(c.Request().Context(), &usecase.BrandInput{
		Name:    req.Name,
		Slug:    req.Slug,
		LogoURL: req.LogoURL,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, brand)
}

// UpdateBrand replaces the fields of a brand.
func (h *AdminTaxonomyHandler) UpdateBrand(c echo.Context) error {
	brandID, err := paramUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid brand ID")
	}

	var req BrandRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid brand input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	brand, err := h.taxonomyUC.UpdateBrand(c.Request().Context(), brandID, &usecase.BrandInput{
		Name:    req.Name,
		Slug:    req.Slug,
		LogoURL: req.LogoURL,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, brand)
}

// DeleteBrand removes a brand without products.
func (h *AdminTaxonomyHandler) DeleteBrand(c echo.Context) error {
	brandID, err := paramUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid brand ID")
	}

	if err := h.taxonomyUC.DeleteBrand(c.Request().Context(), brandID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetCategory returns a category.
func (h *AdminTaxonomyHandler) GetCategory(c echo.Context) error {
	categoryID, err := paramUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid category ID")
	}

	category, err := h.taxonomyUC.GetCategory(c.Request().Context(), categoryID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, category)
}

// CreateCategory creates a category, optionally under a parent.
func (h *AdminTaxonomyHandler) CreateCategory(c echo.Context) error {
	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	category, err := h.taxonomyUC.CreateCategory(c.Request().Context(), &usecase.CategoryInput{
		Name:     req.Name,
		Slug:     req.Slug,
		ParentID: req.ParentID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, category)
}

// UpdateCategory replaces the fields of a category.
func (h *AdminTaxonomyHandler) UpdateCategory(c echo.Context) error {
	categoryID, err := paramUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid category ID")
	}

	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	category, err := h.taxonomyUC.UpdateCategory(c.Request().Context(), categoryID, &usecase.CategoryInput{
		Name:     req.Name,
		Slug:     req.Slug,
		ParentID: req.ParentID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, category)
}

// DeleteCategory removes a category without products or subcategories.
func (h *AdminTaxonomyHandler) DeleteCategory(c echo.Context) error {
	categoryID, err := paramUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid category ID")
	}

	if err := h.taxonomyUC.DeleteCategory(c.Request().Context(), categoryID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
