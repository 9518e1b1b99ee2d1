package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/project_marketplace/internal/logging"
	"github.com/Skotchmaster/project_marketplace/internal/service"
	"github.com/Skotchmaster/project_marketplace/internal/transport"
)

type UserHTTP struct {
	Svc *service.UserService
}

func (h *UserHTTP) List(c echo.Context) error {
	ctx := c.Request().Context()
	users, err := h.Svc.List(ctx)
	if err != nil {
		logging.FromContext(ctx).With("handler", "user.list").Error("list_users_error", "error", err)
	}
	return c.JSON(http.StatusOK, orEmpty(users))
}

func (h *UserHTTP) Create(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.create")

	var req transport.CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	u, err := h.Svc.Create(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			l.Warn("create_user_error", "status", 400, "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrConflict):
			l.Warn("create_user_error", "status", 409, "reason", "email taken")
			return echo.NewHTTPError(http.StatusConflict, "Email already registered")
		}
		l.Error("create_user_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create user")
	}

	l.Info("create_user_success", "user_id", u.ID)
	return c.JSON(http.StatusCreated, u)
}

func (h *UserHTTP) Ban(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.ban")

	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.Svc.Ban(ctx, id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		l.Error("ban_user_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to ban user")
	}

	l.Info("ban_user_success", "user_id", id)
	return c.JSON(http.StatusOK, map[string]any{"success": true})
}
