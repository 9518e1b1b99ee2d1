package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/project_marketplace/internal/db/dbtest"
	"github.com/Skotchmaster/project_marketplace/internal/models"
	"github.com/Skotchmaster/project_marketplace/internal/mykafka"
	"github.com/Skotchmaster/project_marketplace/internal/repo"
	"github.com/Skotchmaster/project_marketplace/internal/transport"
)

func TestCreateProject_DefaultsAndEvents(t *testing.T) {
	db := dbtest.Open(t)
	pub := &mockPublisher{}
	idx := &mockIndex{}
	svc := &CatalogService{Repo: repo.New(db), Index: idx, Publisher: pub}

	idx.On("IndexProject", mock.Anything, mock.AnythingOfType("*models.Project")).Return(errors.New("es down")).Once()
	pub.On("PublishEvent", mock.Anything, mykafka.TopicProjectEvents, mock.Anything, eventType("project_created")).Return(nil).Once()

	p, err := svc.CreateProject(context.Background(), transport.CreateProjectRequest{
		Subject:     "Electronics",
		Topic:       "Line Follower Robot",
		Price:       1200,
		OtherPhotos: []string{"a.png", "b.png"},
	})
	require.NoError(t, err)
	require.Equal(t, "General", p.College)
	require.Equal(t, "line-follower-robot.zip", p.File)
	require.Zero(t, p.Downloads)

	stored, err := svc.GetProject(context.Background(), p.ID)
	require.NoError(t, err)
	require.Equal(t, models.StringList{"a.png", "b.png"}, stored.OtherPhotos)

	idx.AssertExpectations(t)
	pub.AssertExpectations(t)
}

func TestCreateProject_Validation(t *testing.T) {
	svc := &CatalogService{Repo: repo.New(dbtest.Open(t))}

	_, err := svc.CreateProject(context.Background(), transport.CreateProjectRequest{Topic: "x", Price: 1})
	require.ErrorIs(t, err, ErrValidation)
	_, err = svc.CreateProject(context.Background(), transport.CreateProjectRequest{Subject: "x", Price: 1})
	require.ErrorIs(t, err, ErrValidation)
	_, err = svc.CreateProject(context.Background(), transport.CreateProjectRequest{Subject: "x", Topic: "y", Price: -5})
	require.ErrorIs(t, err, ErrValidation)
}

func TestDeleteProject_CascadesAndNotFound(t *testing.T) {
	db := dbtest.Open(t)
	svc := &CatalogService{Repo: repo.New(db)}
	p := seedProject(t, db, "Doomed", 10)
	require.NoError(t, db.Create(&models.CartItem{ProjectID: p.ID, Quantity: 1, SessionID: "s"}).Error)

	require.NoError(t, svc.DeleteProject(context.Background(), p.ID))
	require.Zero(t, count(t, db, &models.CartItem{}))

	require.ErrorIs(t, svc.DeleteProject(context.Background(), p.ID), ErrNotFound)
	_, err := svc.GetProject(context.Background(), p.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestRegisterDownload(t *testing.T) {
	db := dbtest.Open(t)
	svc := &CatalogService{Repo: repo.New(db)}
	p := seedProject(t, db, "Popular", 10)

	for i := 0; i < 3; i++ {
		_, err := svc.RegisterDownload(context.Background(), p.ID)
		require.NoError(t, err)
	}
	got, err := svc.GetProject(context.Background(), p.ID)
	require.NoError(t, err)
	require.EqualValues(t, 3, got.Downloads)

	_, err = svc.RegisterDownload(context.Background(), 777)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestSubjectsAndColleges(t *testing.T) {
	db := dbtest.Open(t)
	svc := &CatalogService{Repo: repo.New(db)}
	require.NoError(t, db.Create(&[]models.Project{
		{Subject: "Physics", College: "MIT", Topic: "a", Price: 1},
		{Subject: "Biology", College: "", Topic: "b", Price: 1},
		{Subject: "Physics", College: "Anna", Topic: "c", Price: 1},
	}).Error)

	subjects, err := svc.Subjects(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"Biology", "Physics"}, subjects)

	colleges, err := svc.Colleges(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"Anna", "MIT"}, colleges)
}

func TestSearch_FallsBackToSQL(t *testing.T) {
	db := dbtest.Open(t)
	idx := &mockIndex{}
	svc := &CatalogService{Repo: repo.New(db), Index: idx}
	seedProject(t, db, "Smart Irrigation", 10)
	seedProject(t, db, "Compiler Design", 10)

	idx.On("SearchProjects", mock.Anything, "irrigation", 0, 10).Return(int64(0), nil, errors.New("es down")).Once()

	total, items, err := svc.Search(context.Background(), "irrigation", 0, 10)
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	require.Len(t, items, 1)
	require.Equal(t, "Smart Irrigation", items[0].Topic)
	idx.AssertExpectations(t)

	_, _, err = svc.Search(context.Background(), "  ", 0, 10)
	require.ErrorIs(t, err, ErrValidation)
}

func TestSearch_UsesIndex(t *testing.T) {
	idx := &mockIndex{}
	svc := &CatalogService{Repo: repo.New(dbtest.Open(t)), Index: idx}
	idx.On("SearchProjects", mock.Anything, "robot", 10, 10).Return(int64(11), []models.Project{{ID: 5, Topic: "Robot"}}, nil).Once()

	total, items, err := svc.Search(context.Background(), "robot", 10, 10)
	require.NoError(t, err)
	require.EqualValues(t, 11, total)
	require.Len(t, items, 1)
	idx.AssertExpectations(t)
}
