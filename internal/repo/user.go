package repo

import (
	"context"

	"github.com/Skotchmaster/project_marketplace/internal/models"
)

func (r *GormRepo) ListActiveUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := r.DB.WithContext(ctx).
		Where("is_banned = ?", false).
		Order("created_at DESC, id DESC").
		Find(&users).Error
	return users, err
}

func (r *GormRepo) CreateUser(ctx context.Context, u *models.User) error {
	return r.DB.WithContext(ctx).Create(u).Error
}

func (r *GormRepo) BanUser(ctx context.Context, id uint) error {
	return affected(r.DB.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Update("is_banned", true))
}
