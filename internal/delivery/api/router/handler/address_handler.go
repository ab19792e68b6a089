package handler

import (
	"log/slog"
	"net/http"

	"pharmacy/internal/delivery/api/middleware"
	"pharmacy/internal/delivery/api/response"
	"pharmacy/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AddressHandlerParams holds dependencies for AddressHandler, injected by Fx.
type AddressHandlerParams struct {
	fx.In

	AddressUC usecase.AddressUsecase
	Logger    *slog.Logger
}

// AddressHandler serves the caller's delivery addresses.
type AddressHandler struct {
	addressUC usecase.AddressUsecase
	logger    *slog.Logger
}

// NewAddressHandler is the constructor for AddressHandler.
func NewAddressHandler(params AddressHandlerParams) *AddressHandler {
	return &AddressHandler{
		addressUC: params.AddressUC,
		logger:    params.Logger,
	}
}

// AddressRequest is the body of address create and update requests.
type AddressRequest struct {
	FullName   string  `json:"full_name" validate:"required,max=120"`
	Phone      string  `json:"phone" validate:"required,phone"`
	Province   string  `json:"province" validate:"required,max=80"`
	City       string  `json:"city" validate:"required,max=80"`
	Street     string  `json:"street" validate:"required,max=255"`
	PostalCode string  `json:"postal_code" validate:"omitempty,max=20"`
	Latitude   float64 `json:"latitude" validate:"latitude"`
	Longitude  float64 `json:"longitude" validate:"longitude"`
	IsDefault  bool    `json:"is_default"`
}

func (r *AddressRequest) toInput() *usecase.AddressInput {
	return &usecase.AddressInput{
		FullName:   r.FullName,
		Phone:      r.Phone,
		Province:   r.Province,
		City:       r.City,
		Street:     r.Street,
		PostalCode: r.PostalCode,
		Latitude:   r.Latitude,
		Longitude:  r.Longitude,
		IsDefault:  r.IsDefault,
	}
}

// ListAddresses returns the caller's addresses, default first.
func (h *AddressHandler) ListAddresses(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	addresses, err := h.addressUC.ListAddresses(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, addresses)
}

// CreateAddress adds an address. The first address becomes the default.
func (h *AddressHandler) CreateAddress(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req AddressRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	address, err := h.addressUC.CreateAddress(c.Request().Context(), userID, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, address)
}

// UpdateAddress replaces the fields of one of the caller's addresses.
func (h *AddressHandler) UpdateAddress(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	addressID, err := paramUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid address ID")
	}

	var req AddressRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	address, err := h.addressUC.UpdateAddress(c.Request().Context(), userID, addressID, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, address)
}

// DeleteAddress removes one of the caller's addresses.
func (h *AddressHandler) DeleteAddress(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	addressID, err := paramUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid address ID")
	}

	if err := h.addressUC.DeleteAddress(c.Request().Context(), userID, addressID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// SetDefaultAddress makes the address the caller's default.
func (h *AddressHandler) SetDefaultAddress(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	addressID, err := paramUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid address ID")
	}

	address, err := h.addressUC.SetDefaultAddress(c.Request().Context(), userID, addressID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, address)
}
