package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/project_marketplace/internal/tokens"
)

var secret = []byte("test-secret")

func newEcho() *echo.Echo {
	e := echo.New()
	e.GET("/admin", func(c echo.Context) error {
		return c.String(http.StatusOK, ClaimsFrom(c).Subject)
	}, RequireAdmin(secret))
	return e
}

func do(e *echo.Echo, authz string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	if authz != "" {
		req.Header.Set(echo.HeaderAuthorization, authz)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRequireAdmin(t *testing.T) {
	e := newEcho()

	tok, _, err := tokens.SignAdminToken("admin", secret, time.Now(), time.Hour)
	require.NoError(t, err)

	rec := do(e, "Bearer "+tok)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "admin", rec.Body.String())

	require.Equal(t, http.StatusUnauthorized, do(e, "").Code)
	require.Equal(t, http.StatusUnauthorized, do(e, "Bearer garbage").Code)

	other, _, err := tokens.SignAdminToken("admin", []byte("other"), time.Now(), time.Hour)
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, do(e, "Bearer "+other).Code)

	expired, _, err := tokens.SignAdminToken("admin", secret, time.Now().Add(-2*time.Hour), time.Hour)
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, do(e, "Bearer "+expired).Code)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, tokens.AdminClaims{Role: tokens.RoleAdmin}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, do(e, "Bearer "+unsigned).Code)
}

func TestRequireAdminWrongRole(t *testing.T) {
	e := newEcho()

	claims := tokens.AdminClaims{
		Role: "customer",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "someone",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	require.NoError(t, err)

	require.Equal(t, http.StatusForbidden, do(e, "Bearer "+tok).Code)
}
