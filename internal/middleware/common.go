package middleware

import (
	"github.com/labstack/echo/v4"
	ecM "github.com/labstack/echo/v4/middleware"

	"github.com/Skotchmaster/project_marketplace/internal/transport"
)

// Common is the stack every request passes through before routing.
func Common() []echo.MiddlewareFunc {
	return []echo.MiddlewareFunc{
		ecM.Recover(),
		ecM.RequestID(),
		ecM.Secure(),
		ecM.BodyLimit("1M"),
		ecM.CORSWithConfig(ecM.CORSConfig{
			AllowOrigins:  []string{"*"},
			AllowHeaders:  []string{echo.HeaderContentType, echo.HeaderAuthorization, transport.SessionHeader},
			ExposeHeaders: []string{transport.SessionHeader},
		}),
	}
}
