package service

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/Skotchmaster/project_marketplace/internal/logging"
	"github.com/Skotchmaster/project_marketplace/internal/metrics"
	"github.com/Skotchmaster/project_marketplace/internal/models"
	"github.com/Skotchmaster/project_marketplace/internal/mykafka"
	"github.com/Skotchmaster/project_marketplace/internal/repo"
	"github.com/Skotchmaster/project_marketplace/internal/transport"
)

const (
	defaultCustomerName = "Guest"
	// order_items.quantity is an INTEGER column
	maxQuantity = math.MaxInt32
)

type OrderService struct {
	Repo      *repo.GormRepo
	Publisher Publisher
	Metrics   *metrics.Metrics
}

func (s *OrderService) CreateOrder(ctx context.Context, req transport.CreateOrderRequest) (*models.Order, []models.OrderItem, error) {
	if len(req.Items) == 0 {
		return nil, nil, fmt.Errorf("%w: items required", ErrValidation)
	}

	var total int64
	items := make([]models.OrderItem, 0, len(req.Items))

	for i := range req.Items {
		if req.Items[i].ProjectID == 0 {
			return nil, nil, fmt.Errorf("%w: items[%d]: project_id required", ErrValidation, i)
		}
		if req.Items[i].Quantity <= 0 {
			return nil, nil, fmt.Errorf("%w: items[%d]: quantity must be > 0", ErrValidation, i)
		}
		if req.Items[i].Quantity > maxQuantity {
			return nil, nil, fmt.Errorf("%w: items[%d]: quantity must be <= %d", ErrValidation, i, maxQuantity)
		}
		if req.Items[i].Price < 0 {
			return nil, nil, fmt.Errorf("%w: items[%d]: price must be >= 0", ErrValidation, i)
		}

		qty := int64(req.Items[i].Quantity)
		if price := req.Items[i].Price; price > 0 && qty > (math.MaxInt64-total)/price {
			return nil, nil, fmt.Errorf("%w: items[%d]: order total out of range", ErrValidation, i)
		}
		total += qty * req.Items[i].Price
		items = append(items, models.OrderItem{
			ProjectID: req.Items[i].ProjectID,
			Quantity:  req.Items[i].Quantity,
			Price:     req.Items[i].Price,
		})
	}

	if req.TotalAmount != nil {
		if *req.TotalAmount < 0 {
			return nil, nil, fmt.Errorf("%w: total_amount must be >= 0", ErrValidation)
		}
		if *req.TotalAmount != total {
			return nil, nil, fmt.Errorf("%w: total_amount %d does not match items total %d", ErrValidation, *req.TotalAmount, total)
		}
	}

	name := strings.TrimSpace(req.CustomerName)
	if name == "" {
		name = defaultCustomerName
	}

	order := &models.Order{
		TotalAmount:     total,
		Status:          models.OrderStatusPending,
		CustomerName:    name,
		CustomerEmail:   strings.TrimSpace(req.CustomerEmail),
		CustomerPhone:   strings.TrimSpace(req.CustomerPhone),
		CustomerAddress: req.CustomerAddress,
		Notes:           req.Notes,
	}

	err := s.Repo.CreateOrder(ctx, order, items, func(o *models.Order) *models.Notification {
		return &models.Notification{
			Title:   fmt.Sprintf("New Order #%d", o.ID),
			Message: fmt.Sprintf("Order placed for ₹%d", o.TotalAmount),
			Type:    models.NotificationTypeOrder,
		}
	})
	if err != nil {
		s.Metrics.OrderError("create")
		return nil, nil, err
	}

	s.Metrics.OrderCreated(order.TotalAmount, len(items))
	publish(ctx, s.Publisher, mykafka.TopicOrderEvents, order.ID, map[string]any{
		"type":         "order_created",
		"orderID":      order.ID,
		"totalAmount":  order.TotalAmount,
		"items":        len(items),
		"customerName": order.CustomerName,
	})

	logging.FromContext(ctx).Info("order_created", "order_id", order.ID, "customer", order.CustomerName, "total_amount", order.TotalAmount, "items", len(items))
	return order, items, nil
}

func validTargetStatus(status string) bool {
	switch models.OrderStatus(status) {
	case models.OrderStatusConfirmed, models.OrderStatusCancelled:
		return true
	}
	return false
}

// UpdateStatus moves a pending order to confirmed or cancelled. Repeating the
// current terminal status is accepted and recorded again; switching between
// terminal statuses is a conflict.
func (s *OrderService) UpdateStatus(ctx context.Context, id uint, status string) (*models.Order, error) {
	if !validTargetStatus(status) {
		return nil, fmt.Errorf("%w: status must be confirmed or cancelled", ErrValidation)
	}
	target := models.OrderStatus(status)

	var previous models.OrderStatus
	order, err := s.Repo.TransitionOrder(ctx, id, func(o *models.Order) (*models.Notification, error) {
		previous = o.Status
		if o.Status != models.OrderStatusPending && o.Status != target {
			return nil, fmt.Errorf("%w: order %d is already %s", ErrConflict, o.ID, o.Status)
		}
		o.Status = target
		return &models.Notification{
			Title:   fmt.Sprintf("Order #%d %s", o.ID, target),
			Message: fmt.Sprintf("Order status changed to %s", target),
			Type:    models.NotificationTypeOrder,
		}, nil
	})
	if err != nil {
		s.Metrics.OrderError("update_status")
		return nil, notFound(err, fmt.Sprintf("order %d", id))
	}

	s.Metrics.OrderStatusChanged(status)
	publish(ctx, s.Publisher, mykafka.TopicOrderEvents, order.ID, map[string]any{
		"type":           "order_status_changed",
		"orderID":        order.ID,
		"previousStatus": previous,
		"status":         order.Status,
	})
	return order, nil
}

func (s *OrderService) GetOrder(ctx context.Context, id uint) (*models.OrderDetails, error) {
	order, err := s.Repo.GetOrder(ctx, id)
	if err != nil {
		return nil, notFound(err, fmt.Sprintf("order %d", id))
	}

	items, err := s.Repo.ListOrderItems(ctx, id)
	if err != nil {
		return nil, err
	}
	return &models.OrderDetails{Order: *order, Items: items}, nil
}

func (s *OrderService) ListOrders(ctx context.Context, status string) ([]models.Order, error) {
	return s.Repo.ListOrders(ctx, status)
}

func (s *OrderService) Stats(ctx context.Context) (*models.OrderStats, error) {
	return s.Repo.OrderStats(ctx)
}
