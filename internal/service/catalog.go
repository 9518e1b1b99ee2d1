package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Skotchmaster/project_marketplace/internal/logging"
	"github.com/Skotchmaster/project_marketplace/internal/metrics"
	"github.com/Skotchmaster/project_marketplace/internal/models"
	"github.com/Skotchmaster/project_marketplace/internal/mykafka"
	"github.com/Skotchmaster/project_marketplace/internal/repo"
	"github.com/Skotchmaster/project_marketplace/internal/transport"
	"github.com/Skotchmaster/project_marketplace/internal/util"
)

const defaultCollege = "General"

type CatalogService struct {
	Repo      *repo.GormRepo
	Index     SearchIndex
	Publisher Publisher
	Metrics   *metrics.Metrics
}

func (s *CatalogService) ListProjects(ctx context.Context) ([]models.Project, error) {
	return s.Repo.ListProjects(ctx)
}

func (s *CatalogService) GetProject(ctx context.Context, id uint) (*models.Project, error) {
	p, err := s.Repo.GetProject(ctx, id)
	if err != nil {
		return nil, notFound(err, fmt.Sprintf("project %d", id))
	}
	return p, nil
}

func (s *CatalogService) CreateProject(ctx context.Context, req transport.CreateProjectRequest) (*models.Project, error) {
	subject := strings.TrimSpace(req.Subject)
	topic := strings.TrimSpace(req.Topic)
	if subject == "" || topic == "" {
		return nil, fmt.Errorf("%w: subject and topic required", ErrValidation)
	}
	if req.Price < 0 {
		return nil, fmt.Errorf("%w: price must be >= 0", ErrValidation)
	}
	if req.Pages != nil && *req.Pages < 0 {
		return nil, fmt.Errorf("%w: pages must be >= 0", ErrValidation)
	}

	college := strings.TrimSpace(req.College)
	if college == "" {
		college = defaultCollege
	}
	file := strings.TrimSpace(req.File)
	if file == "" {
		file = util.Slug(topic) + ".zip"
	}

	p := &models.Project{
		Subject:         subject,
		College:         college,
		Topic:           topic,
		Price:           req.Price,
		File:            file,
		Pages:           req.Pages,
		Description:     req.Description,
		PackageIncludes: req.PackageIncludes,
		PrimaryPhoto:    req.PrimaryPhoto,
		OtherPhotos:     models.StringList(req.OtherPhotos),
	}
	if err := s.Repo.CreateProject(ctx, p); err != nil {
		return nil, err
	}

	if s.Index != nil {
		if err := s.Index.IndexProject(ctx, p); err != nil {
			logging.FromContext(ctx).Warn("project_index_failed", "project_id", p.ID, "error", err)
		}
	}
	publish(ctx, s.Publisher, mykafka.TopicProjectEvents, p.ID, map[string]any{
		"type":      "project_created",
		"projectID": p.ID,
		"topic":     p.Topic,
		"subject":   p.Subject,
		"price":     p.Price,
	})
	return p, nil
}

func (s *CatalogService) DeleteProject(ctx context.Context, id uint) error {
	if err := s.Repo.DeleteProject(ctx, id); err != nil {
		return notFound(err, fmt.Sprintf("project %d", id))
	}

	if s.Index != nil {
		if err := s.Index.DeleteProject(ctx, id); err != nil {
			logging.FromContext(ctx).Warn("project_unindex_failed", "project_id", id, "error", err)
		}
	}
	publish(ctx, s.Publisher, mykafka.TopicProjectEvents, id, map[string]any{
		"type":      "project_deleted",
		"projectID": id,
	})
	return nil
}

func (s *CatalogService) RegisterDownload(ctx context.Context, id uint) (*models.Project, error) {
	p, err := s.Repo.IncrementDownloads(ctx, id)
	if err != nil {
		return nil, notFound(err, fmt.Sprintf("project %d", id))
	}
	s.Metrics.ProjectDownloaded()
	return p, nil
}

func (s *CatalogService) Subjects(ctx context.Context) ([]string, error) {
	return s.Repo.DistinctSubjects(ctx)
}

func (s *CatalogService) Colleges(ctx context.Context) ([]string, error) {
	return s.Repo.DistinctColleges(ctx)
}

// Search prefers the search index and falls back to SQL when it is absent or failing.
func (s *CatalogService) Search(ctx context.Context, q string, offset, limit int) (int64, []models.Project, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return 0, nil, fmt.Errorf("%w: q required", ErrValidation)
	}

	if s.Index != nil {
		total, items, err := s.Index.SearchProjects(ctx, q, offset, limit)
		if err == nil {
			return total, items, nil
		}
		logging.FromContext(ctx).Warn("search_index_failed", "query", q, "error", err)
	}
	return s.Repo.SearchProjects(ctx, q, offset, limit)
}
