package httpserver

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/project_marketplace/internal/logging"
	"github.com/Skotchmaster/project_marketplace/internal/service"
	"github.com/Skotchmaster/project_marketplace/internal/transport"
)

type NotificationHTTP struct {
	Svc *service.NotificationService
}

func (h *NotificationHTTP) List(c echo.Context) error {
	ctx := c.Request().Context()
	items, err := h.Svc.List(ctx)
	if err != nil {
		logging.FromContext(ctx).With("handler", "notification.list").Error("list_notifications_error", "error", err)
	}
	return c.JSON(http.StatusOK, orEmpty(items))
}

func (h *NotificationHTTP) Create(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "notification.create")

	var req transport.CreateNotificationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	n, err := h.Svc.Create(ctx, req)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("create_notification_error", "status", 400, "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		l.Error("create_notification_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create notification")
	}
	return c.JSON(http.StatusCreated, n)
}

func (h *NotificationHTTP) MarkRead(c echo.Context) error {
	return h.mutate(c, "notification.mark_read", h.Svc.MarkRead)
}

func (h *NotificationHTTP) Delete(c echo.Context) error {
	return h.mutate(c, "notification.delete", h.Svc.Delete)
}

func (h *NotificationHTTP) mutate(c echo.Context, name string, fn func(ctx context.Context, id uint) error) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", name)

	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := fn(ctx, id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("notification_error", "status", 404, "id", id)
			return echo.NewHTTPError(http.StatusNotFound, "Notification not found")
		}
		l.Error("notification_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update notification")
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true})
}
