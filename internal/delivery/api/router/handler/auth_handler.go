package handler

import (
	"log/slog"
	"net/http"

	"pharmacy/internal/delivery/api/response"
	"pharmacy/internal/domain/constants"
	"pharmacy/internal/domain/entity"
	"pharmacy/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// AuthHandler serves phone sign-in and session endpoints.
type AuthHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// RequestOTPRequest is the body of POST /auth/otp/request.
type RequestOTPRequest struct {
	Phone string `json:"phone" validate:"required,phone"`
}

// VerifyOTPRequest is the body of POST /auth/otp/verify.
type VerifyOTPRequest struct {
	Phone string `json:"phone" validate:"required,phone"`
	Code  string `json:"code" validate:"required,numeric,min=4,max=8"`
}

// RefreshTokenRequest carries the refresh token to rotate or revoke.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// RequestOTPResponse tells the client when the code expires and when it may ask again.
type RequestOTPResponse struct {
	ExpiresIn   int64 `json:"expires_in"`
	ResendAfter int64 `json:"resend_after"`
}

// LoginResponse is returned by a successful code verification.
type LoginResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	ExpiresIn    int64        `json:"expires_in"`
	IsNewUser    bool         `json:"is_new_user"`
	User         *entity.User `json:"user"`
}

// RequestOTP sends a sign-in code to the phone number.
func (h *AuthHandler) RequestOTP(c echo.Context) error {
	var req RequestOTPRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid phone input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	output, err := h.userUC.RequestOTP(c.Request().Context(), &usecase.RequestOTPInput{Phone: req.Phone})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusAccepted, RequestOTPResponse{
		ExpiresIn:   int64(output.ExpiresIn.Seconds()),
		ResendAfter: int64(output.ResendAfter.Seconds()),
	})
}

// VerifyOTP signs the user in. An anonymous cart named by X-Cart-Session is merged into the user's cart.
func (h *AuthHandler) VerifyOTP(c echo.Context) error {
	var req VerifyOTPRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	output, err := h.userUC.VerifyOTP(c.Request().Context(), &usecase.VerifyOTPInput{
		Phone:         req.Phone,
		Code:          req.Code,
		CartSessionID: c.Request().Header.Get(constants.HeaderCartSession),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	status := http.StatusOK
	if output.IsNewUser {
		status = http.StatusCreated
	}

	return response.Success(c, status, LoginResponse{
		AccessToken:  output.Tokens.AccessToken,
		RefreshToken: output.Tokens.RefreshToken,
		ExpiresIn:    output.Tokens.ExpiresIn,
		IsNewUser:    output.IsNewUser,
		User:         output.User,
	})
}

// RefreshToken exchanges a refresh token for a new token pair.
func (h *AuthHandler) RefreshToken(c echo.Context) error {
	var req RefreshTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid refresh token input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	tokens, err := h.userUC.RefreshToken(c.Request().Context(), &usecase.RefreshTokenInput{RefreshToken: req.RefreshToken})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, tokens)
}

// Logout revokes the session behind the refresh token.
func (h *AuthHandler) Logout(c echo.Context) error {
	var req RefreshTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid logout input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	if err := h.userUC.Logout(c.Request().Context(), &usecase.LogoutInput{RefreshToken: req.RefreshToken}); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
