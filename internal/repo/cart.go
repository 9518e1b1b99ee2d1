package repo

import (
	"context"

	"github.com/Skotchmaster/project_marketplace/internal/models"
)

func (r *GormRepo) ListCart(ctx context.Context, sessionID string) ([]models.CartItemView, error) {
	items := []models.CartItemView{}
	err := r.DB.WithContext(ctx).
		Table("cart_items").
		Select("cart_items.id, cart_items.project_id, cart_items.quantity, projects.topic, projects.price, projects.subject, projects.college").
		Joins("JOIN projects ON projects.id = cart_items.project_id").
		Where("cart_items.session_id = ?", sessionID).
		Order("cart_items.created_at DESC, cart_items.id DESC").
		Scan(&items).Error
	return items, err
}

func (r *GormRepo) AddCartItem(ctx context.Context, item *models.CartItem) error {
	return r.DB.WithContext(ctx).Create(item).Error
}

func (r *GormRepo) RemoveCartItem(ctx context.Context, sessionID string, id uint) error {
	return affected(r.DB.WithContext(ctx).
		Where("id = ? AND session_id = ?", id, sessionID).
		Delete(&models.CartItem{}))
}

func (r *GormRepo) ClearCart(ctx context.Context, sessionID string) (int64, error) {
	res := r.DB.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Delete(&models.CartItem{})
	return res.RowsAffected, res.Error
}
