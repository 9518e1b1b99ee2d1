package service

import (
	"context"
	"strconv"
	"time"

	"github.com/Skotchmaster/project_marketplace/internal/logging"
	"github.com/Skotchmaster/project_marketplace/internal/models"
)

const publishTimeout = 5 * time.Second

type Publisher interface {
	PublishEvent(ctx context.Context, topic, key string, event any) error
}

type SearchIndex interface {
	IndexProject(ctx context.Context, p *models.Project) error
	DeleteProject(ctx context.Context, id uint) error
	SearchProjects(ctx context.Context, query string, from, size int) (int64, []models.Project, error)
}

// publish never fails the caller: the write has already been committed.
func publish(ctx context.Context, p Publisher, topic string, id uint, event map[string]any) {
	if p == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := p.PublishEvent(ctx, topic, strconv.FormatUint(uint64(id), 10), event); err != nil {
		logging.FromContext(ctx).Warn("event_publish_failed", "topic", topic, "type", event["type"], "error", err)
	}
}
