package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Skotchmaster/project_marketplace/internal/models"
)

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) PublishEvent(ctx context.Context, topic, key string, event any) error {
	args := m.Called(ctx, topic, key, event)
	return args.Error(0)
}

type mockIndex struct {
	mock.Mock
}

func (m *mockIndex) IndexProject(ctx context.Context, p *models.Project) error {
	return m.Called(ctx, p).Error(0)
}

func (m *mockIndex) DeleteProject(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockIndex) SearchProjects(ctx context.Context, query string, from, size int) (int64, []models.Project, error) {
	args := m.Called(ctx, query, from, size)
	items, _ := args.Get(1).([]models.Project)
	return args.Get(0).(int64), items, args.Error(2)
}

func eventType(typ string) any {
	return mock.MatchedBy(func(ev map[string]any) bool { return ev["type"] == typ })
}
