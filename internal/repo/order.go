package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/Skotchmaster/project_marketplace/internal/models"
)

// CreateOrder writes the order header, its lines and the admin notification in
// one transaction. Any failure leaves no trace of the order.
func (r *GormRepo) CreateOrder(ctx context.Context, order *models.Order, items []models.OrderItem, notify func(*models.Order) *models.Notification) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}

		for i := range items {
			items[i].OrderID = order.ID
			if err := tx.Create(&items[i]).Error; err != nil {
				return err
			}
		}

		return tx.Create(notify(order)).Error
	})
}

// TransitionOrder loads the order, lets next decide the new state and the
// notification to record, and persists both atomically.
func (r *GormRepo) TransitionOrder(ctx context.Context, id uint, next func(*models.Order) (*models.Notification, error)) (*models.Order, error) {
	var order models.Order
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&order, id).Error; err != nil {
			return err
		}

		n, err := next(&order)
		if err != nil {
			return err
		}

		if err := tx.Save(&order).Error; err != nil {
			return err
		}
		return tx.Create(n).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *GormRepo) ListOrders(ctx context.Context, status string) ([]models.Order, error) {
	q := r.DB.WithContext(ctx).Order("created_at DESC, id DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var orders []models.Order
	if err := q.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *GormRepo) GetOrder(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	if err := r.DB.WithContext(ctx).First(&order, id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *GormRepo) ListOrderItems(ctx context.Context, orderID uint) ([]models.OrderItemView, error) {
	items := []models.OrderItemView{}
	err := r.DB.WithContext(ctx).
		Table("order_items").
		Select("order_items.id, order_items.order_id, order_items.project_id, order_items.quantity, order_items.price, projects.topic, projects.subject, projects.college").
		Joins("JOIN projects ON projects.id = order_items.project_id").
		Where("order_items.order_id = ?", orderID).
		Order("order_items.id ASC").
		Scan(&items).Error
	return items, err
}

func (r *GormRepo) OrderStats(ctx context.Context) (*models.OrderStats, error) {
	var rows []struct {
		Status string
		Count  int64
	}
	if err := r.DB.WithContext(ctx).
		Model(&models.Order{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	stats := &models.OrderStats{}
	for _, row := range rows {
		switch models.OrderStatus(row.Status) {
		case models.OrderStatusPending:
			stats.Pending = row.Count
		case models.OrderStatusConfirmed:
			stats.Confirmed = row.Count
		case models.OrderStatusCancelled:
			stats.Cancelled = row.Count
		}
	}

	if err := r.DB.WithContext(ctx).
		Model(&models.Order{}).
		Select("COALESCE(SUM(total_amount), 0)").
		Where("status = ?", models.OrderStatusConfirmed).
		Row().
		Scan(&stats.TotalRevenue); err != nil {
		return nil, err
	}
	return stats, nil
}
