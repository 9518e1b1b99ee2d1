package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/project_marketplace/internal/logging"
	"github.com/Skotchmaster/project_marketplace/internal/service"
	"github.com/Skotchmaster/project_marketplace/internal/transport"
	"github.com/Skotchmaster/project_marketplace/internal/util"
)

type ProjectHTTP struct {
	Svc *service.CatalogService
}

func (h *ProjectHTTP) ListProjects(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "project.list")

	items, err := h.Svc.ListProjects(ctx)
	if err != nil {
		l.Error("list_projects_error", "status", 200, "reason", "cannot load projects", "error", err)
	}
	return c.JSON(http.StatusOK, orEmpty(items))
}

func (h *ProjectHTTP) GetProject(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "project.get")

	id, err := parseID(c)
	if err != nil {
		l.Warn("get_project_error", "status", 400, "reason", "invalid id", "id", c.Param("id"))
		return err
	}

	p, err := h.Svc.GetProject(ctx, id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("get_project_error", "status", 404, "reason", "project not found", "id", id)
			return echo.NewHTTPError(http.StatusNotFound, "Project not found")
		}
		l.Error("get_project_error", "status", 500, "reason", "cannot get project", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch project")
	}
	return c.JSON(http.StatusOK, p)
}

func (h *ProjectHTTP) CreateProject(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "project.create")

	var req transport.CreateProjectRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_project_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	p, err := h.Svc.CreateProject(ctx, req)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("create_project_error", "status", 400, "reason", "validation", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		l.Error("create_project_error", "status", 500, "reason", "cannot add project to db", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to add project")
	}

	l.Info("create_project_success", "project_id", p.ID)
	return c.JSON(http.StatusCreated, p)
}

func (h *ProjectHTTP) DeleteProject(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "project.delete")

	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.Svc.DeleteProject(ctx, id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("delete_project_error", "status", 404, "reason", "project not found", "id", id)
			return echo.NewHTTPError(http.StatusNotFound, "Project not found")
		}
		l.Error("delete_project_error", "status", 500, "reason", "cannot delete project", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete project")
	}

	l.Info("delete_project_success", "project_id", id)
	return c.JSON(http.StatusOK, map[string]any{"success": true})
}

func (h *ProjectHTTP) Download(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "project.download")

	id, err := parseID(c)
	if err != nil {
		return err
	}

	p, err := h.Svc.RegisterDownload(ctx, id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Project not found")
		}
		l.Error("download_project_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to record download")
	}
	return c.JSON(http.StatusOK, p)
}

func (h *ProjectHTTP) Search(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "project.search")

	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	size := util.ParseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	offset, limit := util.Calculate(page, size)
	if page < 1 {
		page = 1
	}

	total, items, err := h.Svc.Search(ctx, c.QueryParam("q"), offset, limit)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("search_error", "status", 400, "reason", "empty query")
			return echo.NewHTTPError(http.StatusBadRequest, "q is required")
		}
		l.Error("search_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "search failed")
	}

	return c.JSON(http.StatusOK, map[string]any{
		"data": orEmpty(items),
		"meta": map[string]any{
			"page":        page,
			"size":        limit,
			"total":       total,
			"total_pages": (total + int64(limit) - 1) / int64(limit),
			"has_prev":    page > 1,
			"has_next":    int64(offset+limit) < total,
		},
	})
}

func (h *ProjectHTTP) Subjects(c echo.Context) error {
	ctx := c.Request().Context()
	subjects, err := h.Svc.Subjects(ctx)
	if err != nil {
		logging.FromContext(ctx).Error("list_subjects_error", "error", err)
	}
	return c.JSON(http.StatusOK, orEmpty(subjects))
}

func (h *ProjectHTTP) Colleges(c echo.Context) error {
	ctx := c.Request().Context()
	colleges, err := h.Svc.Colleges(ctx)
	if err != nil {
		logging.FromContext(ctx).Error("list_colleges_error", "error", err)
	}
	return c.JSON(http.StatusOK, orEmpty(colleges))
}
