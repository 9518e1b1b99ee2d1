package auth

import (
	"net/http"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/project_marketplace/internal/tokens"
)

const ContextKey = "admin"

// RequireAdmin accepts only requests bearing a valid admin token in the
// Authorization header.
func RequireAdmin(secret []byte) echo.MiddlewareFunc {
	verify := echojwt.WithConfig(echojwt.Config{
		ContextKey:  ContextKey,
		TokenLookup: "header:Authorization:Bearer ",
		ParseTokenFunc: func(_ echo.Context, auth string) (any, error) {
			return tokens.AdminClaimsFromToken(auth, secret)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid or missing admin token")
		},
	})

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return verify(func(c echo.Context) error {
			claims := ClaimsFrom(c)
			if claims == nil || claims.Role != tokens.RoleAdmin {
				return echo.NewHTTPError(http.StatusForbidden, "admin access required")
			}
			return next(c)
		})
	}
}

func ClaimsFrom(c echo.Context) *tokens.AdminClaims {
	claims, _ := c.Get(ContextKey).(*tokens.AdminClaims)
	return claims
}
