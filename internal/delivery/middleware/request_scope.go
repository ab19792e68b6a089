package middleware

import (
	"log/slog"

	deliverycontext "pharmacy/internal/delivery/context"
	"pharmacy/internal/domain/constants"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// maxRequestIDLength bounds ids accepted from clients or upstream proxies.
const maxRequestIDLength = 64

// RequestScope tags every request with an id and stores a logger bound to it
// in the request context. When the caller sends a cart session the logger
// carries it too, so anonymous checkouts can be traced end to end.
type RequestScope struct {
	logger *slog.Logger
}

func NewRequestScope(logger *slog.Logger) *RequestScope {
	return &RequestScope{logger: logger}
}

// Process is the echo middleware func.
func (m *RequestScope) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()

		requestID := acceptRequestID(req.Header.Get(deliverycontext.HeaderXRequestID))
		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		attrs := []any{slog.String("request_id", requestID)}
		if session, err := uuid.Parse(req.Header.Get(constants.HeaderCartSession)); err == nil {
			attrs = append(attrs, slog.String("cart_session", session.String()))
		}

		ctx := deliverycontext.WithRequestID(req.Context(), requestID)
		ctx = deliverycontext.WithLogger(ctx, m.logger.With(attrs...))
		c.SetRequest(req.WithContext(ctx))

		return next(c)
	}
}

// acceptRequestID keeps a supplied id when it is short printable ASCII and
// otherwise mints a fresh one.
func acceptRequestID(id string) string {
	if id == "" || len(id) > maxRequestIDLength {
		return uuid.NewString()
	}
	for i := 0; i < len(id); i++ {
		if id[i] <= ' ' || id[i] > '~' {
			return uuid.NewString()
		}
	}

	return id
}
