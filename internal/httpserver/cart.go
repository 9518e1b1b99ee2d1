package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/project_marketplace/internal/logging"
	"github.com/Skotchmaster/project_marketplace/internal/service"
	"github.com/Skotchmaster/project_marketplace/internal/transport"
)

type CartHTTP struct {
	Svc *service.CartService
}

func (h *CartHTTP) GetCart(c echo.Context) error {
	ctx := c.Request().Context()
	sid := sessionID(c)

	items, err := h.Svc.GetCart(ctx, sid)
	if err != nil {
		logging.FromContext(ctx).With("handler", "cart.get").Error("get_cart_error", "session_id", sid, "error", err)
	}
	return c.JSON(http.StatusOK, orEmpty(items))
}

func (h *CartHTTP) AddToCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.add")
	sid := sessionID(c)

	var req transport.AddToCartRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("add_to_cart_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	item, err := h.Svc.AddItem(ctx, sid, req)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("add_to_cart_error", "status", 400, "reason", "validation", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		l.Error("add_to_cart_error", "status", 500, "reason", "cannot add to cart", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to add to cart")
	}

	l.Info("add_to_cart_success", "session_id", sid, "project_id", item.ProjectID)
	return c.JSON(http.StatusCreated, item)
}

func (h *CartHTTP) RemoveFromCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.remove")
	sid := sessionID(c)

	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.Svc.RemoveItem(ctx, sid, id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("remove_from_cart_error", "status", 404, "reason", "item not in cart", "id", id)
			return echo.NewHTTPError(http.StatusNotFound, "Cart item not found")
		}
		l.Error("remove_from_cart_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to remove from cart")
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true})
}

func (h *CartHTTP) ClearCart(c echo.Context) error {
	ctx := c.Request().Context()
	sid := sessionID(c)

	n, err := h.Svc.Clear(ctx, sid)
	if err != nil {
		logging.FromContext(ctx).With("handler", "cart.clear").Error("clear_cart_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to clear cart")
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "removed": n})
}
