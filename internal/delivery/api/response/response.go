// Package response writes the JSON envelope every API endpoint answers with:
// {"data": ..., "meta": {...}} on success and {"error": {...}, "meta": {...}}
// on failure.
package response

import (
	"net/http"

	"pharmacy/internal/delivery/api/validator"
	deliverycontext "pharmacy/internal/delivery/context"
	"pharmacy/internal/domain/entity"
	domainerrors "pharmacy/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type MetaInfo struct {
	RequestID string `json:"request_id"`
}

func meta(c echo.Context) *MetaInfo {
	return &MetaInfo{RequestID: deliverycontext.GetRequestID(c)}
}

func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{Data: data, Meta: meta(c)})
}

// Paged writes a listing; the page numbers travel inside data.
func Paged[T any](c echo.Context, result *entity.PagedResult[T]) error {
	return Success(c, http.StatusOK, result)
}

// Error writes the error envelope. Details are withheld from server errors
// and from auth failures so neither leaks internals.
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	switch statusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		details = nil
	default:
		if statusCode >= http.StatusInternalServerError {
			details = nil
		}
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: &ErrorInfo{Code: errorCode, Message: message, Details: details},
		Meta:  meta(c),
	})
}

func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// BindingError is used when the body or query cannot be decoded at all.
func BindingError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

func Unauthorized(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message, nil)
}

func Forbidden(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusForbidden, errorCode, message, nil)
}

func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}

// ValidationFailed lists the offending request fields as details.
func ValidationFailed(c echo.Context, err error) error {
	var details any = err.Error()
	var verr *validator.ValidationError
	if errors.As(err, &verr) {
		details = verr.Fields
	}

	return Error(c, http.StatusBadRequest, domainerrors.ErrValidationFailed.ErrorCode(), domainerrors.ErrValidationFailed.Message(), details)
}

// HandleAppError renders a domain error with its own status and code. Any
// other error is returned unchanged for echo's error handler, which answers 500.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if !errors.As(err, &appErr) {
		return errors.WithStack(err)
	}

	var details any
	if d := appErr.Details(); d != "" {
		details = d
	}

	return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), details)
}
