package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/project_marketplace/internal/logging"
	"github.com/Skotchmaster/project_marketplace/internal/service"
	"github.com/Skotchmaster/project_marketplace/internal/transport"
)

type AdminHTTP struct {
	Svc *service.AdminService
}

func (h *AdminHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.login")

	var req transport.AdminLoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	res, err := h.Svc.Login(ctx, req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			l.Warn("admin_login_error", "status", 401, "username", req.Username)
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid credentials")
		}
		l.Error("admin_login_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Login failed")
	}

	l.Info("admin_login_success", "username", req.Username)
	return c.JSON(http.StatusOK, res)
}
