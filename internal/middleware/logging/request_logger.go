package loggingmw

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/project_marketplace/internal/logging"
	"github.com/Skotchmaster/project_marketplace/internal/middleware/auth"
	"github.com/Skotchmaster/project_marketplace/internal/transport"
)

// cartSession returns the cart session the client sent, if any.
func cartSession(c echo.Context) string {
	if sid := c.Request().Header.Get(transport.SessionHeader); sid != "" {
		return sid
	}
	if ck, err := c.Cookie(transport.SessionCookie); err == nil {
		return ck.Value
	}
	return ""
}

// RequestLogger puts a request-scoped logger into the context and logs one
// line per request, tagged with the cart session and admin subject when known.
func RequestLogger(base *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rid := c.Request().Header.Get(echo.HeaderXRequestID)
			if rid == "" {
				rid = c.Response().Header().Get(echo.HeaderXRequestID)
			}

			l := base.With(
				"method", c.Request().Method,
				"path", c.Path(),
				"url", c.Request().URL.Path,
				"remote_ip", c.RealIP(),
				"user_agent", c.Request().UserAgent(),
			)
			if rid != "" {
				l = l.With("request_id", rid)
				c.Response().Header().Set(echo.HeaderXRequestID, rid)
			}
			sid := cartSession(c)
			if sid != "" {
				l = l.With("session_id", sid)
			}

			req := c.Request().WithContext(logging.IntoContext(c.Request().Context(), l))
			c.SetRequest(req)

			start := time.Now()
			err := next(c)
			dur := time.Since(start)
			status := c.Response().Status

			if err != nil {
				c.Echo().HTTPErrorHandler(err, c)
				status = c.Response().Status
			}

			// a session issued by the handler only shows up on the response
			if sid == "" {
				if issued := c.Response().Header().Get(transport.SessionHeader); issued != "" {
					l = l.With("session_id", issued)
				}
			}
			if claims := auth.ClaimsFrom(c); claims != nil {
				l = l.With("admin", claims.Subject)
			}

			switch {
			case status >= 500:
				l.Error("request completed", "status", status, "duration_ms", dur.Milliseconds(), "error", errStr(err))
			case status >= 400:
				l.Warn("request completed", "status", status, "duration_ms", dur.Milliseconds(), "error", errStr(err))
			default:
				l.Info("request completed", "status", status, "duration_ms", dur.Milliseconds(), "bytes", c.Response().Size)
			}
			return nil
		}
	}
}

func errStr(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("%v", err)
}
