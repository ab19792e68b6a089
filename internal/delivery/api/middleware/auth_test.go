package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"pharmacy/internal/domain/entity"
	"pharmacy/internal/domain/service"
	mockSvc "pharmacy/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func newAuthContext(header string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name       string
		header     string
		setup      func(tokenSvc *mockSvc.MockTokenService)
		wantStatus int
		wantUser   bool
	}{
		{
			name:       "missing header",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "not a bearer token",
			header:     "Basic dXNlcjpwYXNz",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "invalid token",
			header: "Bearer expired",
			setup: func(tokenSvc *mockSvc.MockTokenService) {
				tokenSvc.EXPECT().ValidateAccessToken("expired").Return(nil, errors.New("token is expired"))
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "valid token",
			header: "Bearer good",
			setup: func(tokenSvc *mockSvc.MockTokenService) {
				tokenSvc.EXPECT().ValidateAccessToken("good").Return(&service.Claims{
					UserID: userID,
					Roles:  []string{"customer"},
				}, nil)
			},
			wantStatus: http.StatusOK,
			wantUser:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mockSvc.NewMockTokenService(t)
			if tt.setup != nil {
				tt.setup(tokenSvc)
			}
			m := NewAuthMiddleware(tokenSvc)
			c, rec := newAuthContext(tt.header)

			require.NoError(t, m.Authenticate(okHandler)(c))
			assert.Equal(t, tt.wantStatus, rec.Code)

			got, ok := GetUserID(c)
			assert.Equal(t, tt.wantUser, ok)
			if tt.wantUser {
				assert.Equal(t, userID, got)
				roles, ok := GetRoles(c)
				require.True(t, ok)
				assert.Equal(t, entity.Roles{entity.RoleCustomer}, roles)
			}
		})
	}
}

func TestAuthMiddleware_OptionalAuth(t *testing.T) {
	t.Run("anonymous passes through", func(t *testing.T) {
		m := NewAuthMiddleware(mockSvc.NewMockTokenService(t))
		c, rec := newAuthContext("")

		require.NoError(t, m.OptionalAuth(okHandler)(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		_, ok := GetUserID(c)
		assert.False(t, ok)
	})

	t.Run("invalid token is rejected", func(t *testing.T) {
		tokenSvc := mockSvc.NewMockTokenService(t)
		tokenSvc.EXPECT().ValidateAccessToken("stale").Return(nil, errors.New("token is expired"))
		m := NewAuthMiddleware(tokenSvc)
		c, rec := newAuthContext("Bearer stale")

		require.NoError(t, m.OptionalAuth(okHandler)(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	tests := []struct {
		name       string
		roles      []string
		required   []entity.Role
		wantStatus int
	}{
		{name: "customer on back office", roles: []string{"customer"}, required: []entity.Role{entity.RoleManager, entity.RoleAdmin}, wantStatus: http.StatusForbidden},
		{name: "manager on back office", roles: []string{"manager"}, required: []entity.Role{entity.RoleManager, entity.RoleAdmin}, wantStatus: http.StatusOK},
		{name: "manager on role management", roles: []string{"manager"}, required: []entity.Role{entity.RoleAdmin}, wantStatus: http.StatusForbidden},
		{name: "admin on role management", roles: []string{"customer", "admin"}, required: []entity.Role{entity.RoleAdmin}, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mockSvc.NewMockTokenService(t)
			tokenSvc.EXPECT().ValidateAccessToken("token").Return(&service.Claims{UserID: uuid.New(), Roles: tt.roles}, nil)
			m := NewAuthMiddleware(tokenSvc)
			c, rec := newAuthContext("Bearer token")

			chain := m.Authenticate(m.RequireRole(tt.required...)(okHandler))

			require.NoError(t, chain(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestAuthMiddleware_RequireRole_WithoutAuthenticate(t *testing.T) {
	m := NewAuthMiddleware(mockSvc.NewMockTokenService(t))
	c, rec := newAuthContext("")

	require.NoError(t, m.RequireRole(entity.RoleAdmin)(okHandler)(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
