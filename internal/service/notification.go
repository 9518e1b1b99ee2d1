package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Skotchmaster/project_marketplace/internal/models"
	"github.com/Skotchmaster/project_marketplace/internal/repo"
	"github.com/Skotchmaster/project_marketplace/internal/transport"
)

const notificationFeedSize = 50

type NotificationService struct {
	Repo *repo.GormRepo
}

func (s *NotificationService) List(ctx context.Context) ([]models.Notification, error) {
	return s.Repo.ListNotifications(ctx, notificationFeedSize)
}

func (s *NotificationService) Create(ctx context.Context, req transport.CreateNotificationRequest) (*models.Notification, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title required", ErrValidation)
	}
	typ := strings.TrimSpace(req.Type)
	if typ == "" {
		typ = models.NotificationTypeInfo
	}

	n := &models.Notification{Title: title, Message: req.Message, Type: typ}
	if err := s.Repo.CreateNotification(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

func (s *NotificationService) MarkRead(ctx context.Context, id uint) error {
	return notFound(s.Repo.MarkNotificationRead(ctx, id), fmt.Sprintf("notification %d", id))
}

func (s *NotificationService) Delete(ctx context.Context, id uint) error {
	return notFound(s.Repo.DeleteNotification(ctx, id), fmt.Sprintf("notification %d", id))
}
