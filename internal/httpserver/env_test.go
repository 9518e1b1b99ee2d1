package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Skotchmaster/project_marketplace/internal/db/dbtest"
	"github.com/Skotchmaster/project_marketplace/internal/models"
	"github.com/Skotchmaster/project_marketplace/internal/repo"
	"github.com/Skotchmaster/project_marketplace/internal/service"
)

const (
	testAdminUser = "admin"
	testAdminPass = "admin-pass"
)

var testSecret = []byte("test-jwt-secret")

type testEnv struct {
	E  *echo.Echo
	DB *gorm.DB
	D  *Deps
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := dbtest.Open(t)
	r := repo.New(db)

	adminSvc, err := service.NewAdminService(testAdminUser, "", testAdminPass, testSecret, time.Hour)
	require.NoError(t, err)

	d := &Deps{
		Projects:      &ProjectHTTP{Svc: &service.CatalogService{Repo: r}},
		Cart:          &CartHTTP{Svc: &service.CartService{Repo: r}},
		Orders:        &OrderHTTP{Svc: &service.OrderService{Repo: r}},
		Notifications: &NotificationHTTP{Svc: &service.NotificationService{Repo: r}},
		Users:         &UserHTTP{Svc: &service.UserService{Repo: r}},
		Admin:         &AdminHTTP{Svc: adminSvc},
		JWTSecret:     testSecret,
	}

	e := echo.New()
	e.HTTPErrorHandler = ErrorHandler
	Register(e, d)
	return &testEnv{E: e, DB: db, D: d}
}

func (env *testEnv) do(t *testing.T, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	env.E.ServeHTTP(rec, req)
	return rec
}

// newContext builds a bare echo context for calling a handler directly.
func (env *testEnv) newContext(t *testing.T, method, path string, body any) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return rec, env.E.NewContext(req, rec)
}

func (env *testEnv) adminHeaders(t *testing.T) map[string]string {
	t.Helper()
	rec := env.do(t, http.MethodPost, "/api/admin/login", map[string]string{
		"username": testAdminUser,
		"password": testAdminPass,
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return map[string]string{echo.HeaderAuthorization: "Bearer " + resp.Token}
}

func (env *testEnv) seedProject(t *testing.T, topic string, price int64) models.Project {
	t.Helper()
	p := models.Project{Subject: "Computer Science", College: "General", Topic: topic, Price: price}
	require.NoError(t, env.DB.Create(&p).Error)
	return p
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}
