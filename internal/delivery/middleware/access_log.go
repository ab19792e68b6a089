package middleware

import (
	"fmt"
	"log/slog"
	"time"

	"pharmacy/config"
	deliverycontext "pharmacy/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

const (
	healthPath           = "/health"
	slowRequestThreshold = time.Second
)

// AccessLog writes one line per finished request. Failed and slow requests
// are always logged; everything else only when debug is on.
type AccessLog struct {
	logger *slog.Logger
	debug  bool
}

func NewAccessLog(logger *slog.Logger, cfg *config.Config) *AccessLog {
	return &AccessLog{
		logger: logger,
		debug:  cfg.Env.Debug,
	}
}

// Handle is the echo middleware func.
func (m *AccessLog) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if c.Request().URL.Path == healthPath {
			return next(c)
		}

		start := time.Now()
		err := next(c)
		if err != nil {
			// Resolve the final status before logging; the response is committed afterwards.
			c.Error(err)
		}

		latency := time.Since(start)
		level, ok := m.level(c.Response().Status, latency)
		if !ok {
			return nil
		}

		logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)
		logger.LogAttrs(c.Request().Context(), level, "http request", requestAttrs(c, latency, err)...)

		return nil
	}
}

func (m *AccessLog) level(status int, latency time.Duration) (slog.Level, bool) {
	switch {
	case status >= 500:
		return slog.LevelError, true
	case status >= 400, latency >= slowRequestThreshold:
		return slog.LevelWarn, true
	case m.debug:
		return slog.LevelInfo, true
	default:
		return 0, false
	}
}

func requestAttrs(c echo.Context, latency time.Duration, err error) []slog.Attr {
	req := c.Request()
	attrs := []slog.Attr{
		slog.String("method", req.Method),
		slog.String("route", c.Path()),
		slog.String("uri", req.URL.Path),
		slog.Int("status", c.Response().Status),
		slog.Int64("bytes_out", c.Response().Size),
		slog.Duration("latency", latency),
		slog.String("remote_ip", c.RealIP()),
		slog.String("user_agent", req.UserAgent()),
	}
	if req.URL.RawQuery != "" {
		attrs = append(attrs, slog.String("query", req.URL.RawQuery))
	}
	if userID, ok := c.Get("userID").(fmt.Stringer); ok {
		attrs = append(attrs, slog.String("user_id", userID.String()))
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}

	return attrs
}
