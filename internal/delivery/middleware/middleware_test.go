package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pharmacy/config"
	deliverycontext "pharmacy/internal/delivery/context"
	"pharmacy/internal/domain/constants"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcceptRequestID(t *testing.T) {
	tests := []struct {
		name string
		in   string
		keep bool
	}{
		{name: "empty", in: "", keep: false},
		{name: "upstream id", in: "lb-7f3a9c", keep: true},
		{name: "too long", in: strings.Repeat("a", maxRequestIDLength+1), keep: false},
		{name: "contains space", in: "abc def", keep: false},
		{name: "control character", in: "abc\ndef", keep: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := acceptRequestID(tt.in)
			if tt.keep {
				assert.Equal(t, tt.in, got)
				return
			}
			_, err := uuid.Parse(got)
			assert.NoError(t, err)
		})
	}
}

func TestRequestScope_Process(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	session := uuid.New()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-42")
	req.Header.Set(constants.HeaderCartSession, session.String())
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := NewRequestScope(logger).Process(func(c echo.Context) error {
		ctx := c.Request().Context()
		assert.Equal(t, "req-42", deliverycontext.GetRequestIDFromContext(ctx))
		deliverycontext.GetLogger(ctx).Info("inside")

		return nil
	})(c)

	require.NoError(t, err)
	assert.Equal(t, "req-42", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Equal(t, "req-42", deliverycontext.GetRequestID(c))
	assert.Contains(t, buf.String(), `"request_id":"req-42"`)
	assert.Contains(t, buf.String(), `"cart_session":"`+session.String()+`"`)
}

func TestRequestScope_IgnoresMalformedCartSession(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	req.Header.Set(constants.HeaderCartSession, "not-a-session")
	c := e.NewContext(req, httptest.NewRecorder())

	err := NewRequestScope(logger).Process(func(c echo.Context) error {
		deliverycontext.GetLogger(c.Request().Context()).Info("inside")
		return nil
	})(c)

	require.NoError(t, err)
	assert.NotContains(t, buf.String(), "cart_session")
}

func TestAccessLog_Handle(t *testing.T) {
	tests := []struct {
		name    string
		debug   bool
		path    string
		handler echo.HandlerFunc
		wantLog string
	}{
		{
			name:    "success hidden outside debug",
			path:    "/api/v1/products",
			handler: func(c echo.Context) error { return c.NoContent(http.StatusOK) },
		},
		{
			name:    "success logged in debug",
			debug:   true,
			path:    "/api/v1/products",
			handler: func(c echo.Context) error { return c.NoContent(http.StatusOK) },
			wantLog: `"level":"INFO"`,
		},
		{
			name:    "client error logged as warning",
			path:    "/api/v1/orders",
			handler: func(c echo.Context) error { return echo.ErrNotFound },
			wantLog: `"level":"WARN"`,
		},
		{
			name:    "server error logged as error",
			path:    "/api/v1/orders",
			handler: func(c echo.Context) error { return echo.ErrInternalServerError },
			wantLog: `"level":"ERROR"`,
		},
		{
			name:    "health probe never logged",
			debug:   true,
			path:    healthPath,
			handler: func(c echo.Context) error { return c.NoContent(http.StatusOK) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
			cfg := &config.Config{}
			cfg.Env.Debug = tt.debug

			e := echo.New()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, tt.path, nil), httptest.NewRecorder())

			err := NewAccessLog(logger, cfg).Handle(tt.handler)(c)

			require.NoError(t, err)
			if tt.wantLog == "" {
				assert.Empty(t, buf.String())
				return
			}
			assert.Contains(t, buf.String(), tt.wantLog)
			assert.Contains(t, buf.String(), `"msg":"http request"`)
		})
	}
}
