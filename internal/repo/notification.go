package repo

import (
	"context"

	"github.com/Skotchmaster/project_marketplace/internal/models"
)

func (r *GormRepo) ListNotifications(ctx context.Context, limit int) ([]models.Notification, error) {
	var out []models.Notification
	err := r.DB.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&out).Error
	return out, err
}

func (r *GormRepo) CreateNotification(ctx context.Context, n *models.Notification) error {
	return r.DB.WithContext(ctx).Create(n).Error
}

func (r *GormRepo) MarkNotificationRead(ctx context.Context, id uint) error {
	return affected(r.DB.WithContext(ctx).
		Model(&models.Notification{}).
		Where("id = ?", id).
		Update("is_read", true))
}

func (r *GormRepo) DeleteNotification(ctx context.Context, id uint) error {
	return affected(r.DB.WithContext(ctx).Delete(&models.Notification{}, id))
}
