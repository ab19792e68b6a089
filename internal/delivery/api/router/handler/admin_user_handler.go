package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"pharmacy/internal/delivery/api/middleware"
	"pharmacy/internal/delivery/api/response"
	"pharmacy/internal/domain/entity"
	"pharmacy/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminUserHandlerParams holds dependencies for AdminUserHandler, injected by Fx.
type AdminUserHandlerParams struct {
	fx.In

	UserAdminUC usecase.UserAdminUsecase
	Logger      *slog.Logger
}

// AdminUserHandler serves back-office account management.
type AdminUserHandler struct {
	userAdminUC usecase.UserAdminUsecase
	logger      *slog.Logger
}

// NewAdminUserHandler is the constructor for AdminUserHandler.
func NewAdminUserHandler(params AdminUserHandlerParams) *AdminUserHandler {
	return &AdminUserHandler{
		userAdminUC: params.UserAdminUC,
		logger:      params.Logger,
	}
}

// UserListQuery holds the filters of the user listing.
type UserListQuery struct {
	PageQuery
	Role    string `query:"role"`
	Blocked string `query:"blocked"`
	Phone   string `query:"phone"`
}

// ChangeRoleRequest is the body of PUT /admin/users/:id/role.
type ChangeRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=customer manager admin"`
}

// BlockUserRequest is the body of PUT /admin/users/:id/block.
type BlockUserRequest struct {
	Blocked bool `json:"blocked"`
}

// ListUsers returns one page of accounts.
func (h *AdminUserHandler) ListUsers(c echo.Context) error {
	var query UserListQuery
	if err := c.Bind(&query); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user filter")
	}

	filter := entity.UserFilter{
		Role:  entity.Role(query.Role),
		Phone: query.Phone,
		Page:  query.toPage(),
	}
	if query.Blocked != "" {
		blocked, err := strconv.ParseBool(query.Blocked)
		if err != nil {
			return response.BadRequest(c, "VALIDATION_FAILED", "blocked must be true or false")
		}
		filter.IsBlocked = &blocked
	}

	result, err := h.userAdminUC.ListUsers(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Paged(c, result)
}

// ChangeRole sets the role of another user.
func (h *AdminUserHandler) ChangeRole(c echo.Context) error {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	userID, err := paramUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	var req ChangeRoleRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid role input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	user, err := h.userAdminUC.ChangeRole(c.Request().Context(), actorID, userID, entity.Role(req.Role))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}

// SetBlocked blocks or unblocks another user.
func (h *AdminUserHandler) SetBlocked(c echo.Context) error {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	userID, err := paramUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	var req BlockUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid block input")
	}

	user, err := h.userAdminUC.SetBlocked(c.Request().Context(), actorID, userID, req.Blocked)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}
