package repo

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/Skotchmaster/project_marketplace/internal/models"
)

func (r *GormRepo) ListProjects(ctx context.Context) ([]models.Project, error) {
	var items []models.Project
	if err := r.DB.WithContext(ctx).Order("created_at DESC, id DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) GetProject(ctx context.Context, id uint) (*models.Project, error) {
	var p models.Project
	if err := r.DB.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *GormRepo) CreateProject(ctx context.Context, p *models.Project) error {
	return r.DB.WithContext(ctx).Create(p).Error
}

// DeleteProject removes the project; cart and order lines pointing at it go with it.
func (r *GormRepo) DeleteProject(ctx context.Context, id uint) error {
	return affected(r.DB.WithContext(ctx).Delete(&models.Project{}, id))
}

func (r *GormRepo) IncrementDownloads(ctx context.Context, id uint) (*models.Project, error) {
	res := r.DB.WithContext(ctx).
		Model(&models.Project{}).
		Where("id = ?", id).
		UpdateColumn("downloads", gorm.Expr("downloads + ?", 1))
	if err := affected(res); err != nil {
		return nil, err
	}
	return r.GetProject(ctx, id)
}

func (r *GormRepo) DistinctSubjects(ctx context.Context) ([]string, error) {
	var out []string
	err := r.DB.WithContext(ctx).
		Model(&models.Project{}).
		Distinct().
		Order("subject").
		Pluck("subject", &out).Error
	return out, err
}

func (r *GormRepo) DistinctColleges(ctx context.Context) ([]string, error) {
	var out []string
	err := r.DB.WithContext(ctx).
		Model(&models.Project{}).
		Where("college IS NOT NULL AND college <> ''").
		Distinct().
		Order("college").
		Pluck("college", &out).Error
	return out, err
}

// SearchProjects is the plain SQL search used when no search index is configured.
func (r *GormRepo) SearchProjects(ctx context.Context, q string, offset, limit int) (int64, []models.Project, error) {
	pattern := "%" + strings.ToLower(strings.TrimSpace(q)) + "%"
	where := "LOWER(topic) LIKE ? OR LOWER(subject) LIKE ? OR LOWER(college) LIKE ? OR LOWER(description) LIKE ?"

	var total int64
	if err := r.DB.WithContext(ctx).
		Model(&models.Project{}).
		Where(where, pattern, pattern, pattern, pattern).
		Count(&total).Error; err != nil {
		return 0, nil, err
	}

	items := make([]models.Project, 0, limit)
	if err := r.DB.WithContext(ctx).
		Where(where, pattern, pattern, pattern, pattern).
		Order("downloads DESC, id ASC").
		Offset(offset).
		Limit(limit).
		Find(&items).Error; err != nil {
		return 0, nil, err
	}
	return total, items, nil
}
