package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/project_marketplace/internal/logging"
	"github.com/Skotchmaster/project_marketplace/internal/models"
	"github.com/Skotchmaster/project_marketplace/internal/service"
	"github.com/Skotchmaster/project_marketplace/internal/transport"
)

type OrderHTTP struct {
	Svc *service.OrderService
}

func (h *OrderHTTP) CreateOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.create")

	var req transport.CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_order_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	order, items, err := h.Svc.CreateOrder(ctx, req)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("create_order_error", "status", 400, "reason", "validation", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		l.Error("create_order_error", "status", 500, "reason", "transaction failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create order")
	}

	l.Info("create_order_success", "order_id", order.ID, "items", len(items))
	return c.JSON(http.StatusCreated, map[string]any{
		"success": true,
		"orderId": order.ID,
		"order":   order,
	})
}

func (h *OrderHTTP) ListOrders(c echo.Context) error {
	ctx := c.Request().Context()

	orders, err := h.Svc.ListOrders(ctx, c.QueryParam("status"))
	if err != nil {
		logging.FromContext(ctx).With("handler", "order.list").Error("list_orders_error", "error", err)
	}
	return c.JSON(http.StatusOK, orEmpty(orders))
}

func (h *OrderHTTP) GetOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.get")

	id, err := parseID(c)
	if err != nil {
		return err
	}

	details, err := h.Svc.GetOrder(ctx, id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("get_order_error", "status", 404, "reason", "order not found", "id", id)
			return echo.NewHTTPError(http.StatusNotFound, "Order not found")
		}
		l.Error("get_order_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch order")
	}
	details.Items = orEmpty(details.Items)
	return c.JSON(http.StatusOK, details)
}

func (h *OrderHTTP) UpdateStatus(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.update_status")

	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req transport.UpdateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_order_status_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	order, err := h.Svc.UpdateStatus(ctx, id, req.Status)
	switch {
	case err == nil:
	case errors.Is(err, service.ErrValidation):
		l.Warn("update_order_status_error", "status", 400, "reason", "invalid status", "value", req.Status)
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid status")
	case errors.Is(err, service.ErrNotFound):
		l.Warn("update_order_status_error", "status", 404, "reason", "order not found", "id", id)
		return echo.NewHTTPError(http.StatusNotFound, "Order not found")
	case errors.Is(err, service.ErrConflict):
		l.Warn("update_order_status_error", "status", 409, "reason", "terminal status", "error", err)
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	default:
		l.Error("update_order_status_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update order")
	}

	l.Info("update_order_status_success", "order_id", order.ID, "new_status", order.Status)
	return c.JSON(http.StatusOK, order)
}

func (h *OrderHTTP) Stats(c echo.Context) error {
	ctx := c.Request().Context()

	stats, err := h.Svc.Stats(ctx)
	if err != nil {
		logging.FromContext(ctx).With("handler", "order.stats").Error("order_stats_error", "error", err)
		stats = &models.OrderStats{}
	}
	return c.JSON(http.StatusOK, stats)
}
