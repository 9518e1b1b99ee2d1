package httpserver

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/project_marketplace/internal/middleware/auth"
)

type Deps struct {
	Projects      *ProjectHTTP
	Cart          *CartHTTP
	Orders        *OrderHTTP
	Notifications *NotificationHTTP
	Users         *UserHTTP
	Admin         *AdminHTTP

	JWTSecret []byte
	Ready     func(ctx context.Context) error
	Metrics   http.Handler
	StaticDir string
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error {
		if d.Ready != nil {
			if err := d.Ready(c.Request().Context()); err != nil {
				return echo.NewHTTPError(http.StatusServiceUnavailable, "database unavailable")
			}
		}
		return c.NoContent(http.StatusOK)
	})
	if d.Metrics != nil {
		e.GET("/metrics", echo.WrapHandler(d.Metrics))
	}

	admin := auth.RequireAdmin(d.JWTSecret)
	api := e.Group("/api")

	api.POST("/admin/login", d.Admin.Login)

	projects := api.Group("/projects")
	projects.GET("", d.Projects.ListProjects)
	projects.GET("/search", d.Projects.Search)
	projects.GET("/:id", d.Projects.GetProject)
	projects.POST("/:id/download", d.Projects.Download)
	projects.POST("", d.Projects.CreateProject, admin)
	projects.DELETE("/:id", d.Projects.DeleteProject, admin)

	api.GET("/subjects", d.Projects.Subjects)
	api.GET("/colleges", d.Projects.Colleges)

	cart := api.Group("/cart")
	cart.GET("", d.Cart.GetCart)
	cart.POST("", d.Cart.AddToCart)
	cart.DELETE("", d.Cart.ClearCart)
	cart.DELETE("/:id", d.Cart.RemoveFromCart)

	orders := api.Group("/orders")
	orders.POST("", d.Orders.CreateOrder)
	orders.GET("/stats/summary", d.Orders.Stats, admin)
	orders.GET("", d.Orders.ListOrders, admin)
	orders.GET("/:id", d.Orders.GetOrder)
	orders.PATCH("/:id", d.Orders.UpdateStatus, admin)

	notifications := api.Group("/notifications", admin)
	notifications.GET("", d.Notifications.List)
	notifications.POST("", d.Notifications.Create)
	notifications.PATCH("/:id/read", d.Notifications.MarkRead)
	notifications.DELETE("/:id", d.Notifications.Delete)

	users := api.Group("/users")
	users.POST("", d.Users.Create)
	users.GET("", d.Users.List, admin)
	users.PATCH("/:id/ban", d.Users.Ban, admin)

	if d.StaticDir != "" {
		e.Static("/", d.StaticDir)
	}
}
