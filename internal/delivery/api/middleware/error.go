package middleware

import (
	"log/slog"
	"net/http"

	"pharmacy/internal/delivery/api/response"
	"pharmacy/internal/delivery/api/validator"
	deliverycontext "pharmacy/internal/delivery/context"
	domainerrors "pharmacy/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// echoErrorCodes names the framework level failures clients can see.
var echoErrorCodes = map[int]string{
	http.StatusBadRequest:            "BAD_REQUEST",
	http.StatusNotFound:              "ROUTE_NOT_FOUND",
	http.StatusMethodNotAllowed:      "METHOD_NOT_ALLOWED",
	http.StatusRequestEntityTooLarge: "PAYLOAD_TOO_LARGE",
	http.StatusUnsupportedMediaType:  "UNSUPPORTED_MEDIA_TYPE",
	http.StatusTooManyRequests:       "RATE_LIMITED",
}

// ErrorMiddleware renders every error leaving a handler as the JSON error envelope.
type ErrorMiddleware struct {
	logger *slog.Logger
}

func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError is installed as echo's HTTPErrorHandler.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var (
		appErr  domainerrors.AppError
		verr    *validator.ValidationError
		httpErr *echo.HTTPError
	)
	switch {
	case errors.As(err, &appErr):
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logFailure(c, err)
		}
		_ = response.HandleAppError(c, appErr)
	case errors.As(err, &verr):
		_ = response.ValidationFailed(c, verr)
	case errors.As(err, &httpErr):
		m.writeHTTPError(c, httpErr)
	default:
		m.logFailure(c, err)
		_ = response.InternalServerError(c, domainerrors.ErrInternalError.ErrorCode(), "Internal server error, please try again later")
	}
}

func (m *ErrorMiddleware) writeHTTPError(c echo.Context, httpErr *echo.HTTPError) {
	if httpErr.Code >= http.StatusInternalServerError {
		m.logFailure(c, httpErr)
		_ = response.InternalServerError(c, domainerrors.ErrInternalError.ErrorCode(), "Internal server error, please try again later")

		return
	}

	code, ok := echoErrorCodes[httpErr.Code]
	if !ok {
		code = "HTTP_ERROR"
	}
	message := http.StatusText(httpErr.Code)
	if msg, ok := httpErr.Message.(string); ok && msg != "" {
		message = msg
	}

	_ = response.Error(c, httpErr.Code, code, message, nil)
}

func (m *ErrorMiddleware) logFailure(c echo.Context, err error) {
	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)
	logger.Error("request failed",
		slog.Any("error", err),
		slog.String("method", c.Request().Method),
		slog.String("route", c.Path()),
	)
}
