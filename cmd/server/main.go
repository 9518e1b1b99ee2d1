package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/Skotchmaster/project_marketplace/internal/config"
	"github.com/Skotchmaster/project_marketplace/internal/db"
	"github.com/Skotchmaster/project_marketplace/internal/httpserver"
	"github.com/Skotchmaster/project_marketplace/internal/logging"
	"github.com/Skotchmaster/project_marketplace/internal/metrics"
	appmw "github.com/Skotchmaster/project_marketplace/internal/middleware"
	loggingmw "github.com/Skotchmaster/project_marketplace/internal/middleware/logging"
	"github.com/Skotchmaster/project_marketplace/internal/mykafka"
	"github.com/Skotchmaster/project_marketplace/internal/repo"
	"github.com/Skotchmaster/project_marketplace/internal/search"
	"github.com/Skotchmaster/project_marketplace/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config error", "error", err)
		os.Exit(1)
	}

	log := logging.New(cfg.LogLevel, cfg.LogFormat).With("service", cfg.ServiceName)
	slog.SetDefault(log)

	ctx := context.Background()

	if cfg.MigrationsEnabled {
		if err := db.Migrate(cfg.DatabaseURL); err != nil {
			log.Error("migrations failed", "error", err)
			os.Exit(1)
		}
		log.Info("migrations applied")
	}

	gdb, err := db.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db init failed", "error", err)
		os.Exit(1)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	prod := mykafka.NewProducer(cfg.KafkaBrokers)
	if !prod.Enabled() {
		log.Info("kafka brokers not configured, events disabled")
	}

	r := repo.New(gdb)
	catalog := &service.CatalogService{Repo: r, Publisher: prod, Metrics: m}
	if cfg.ESURL != "" {
		es, err := search.NewClient(search.ClientConfig{URL: cfg.ESURL, User: cfg.ESUser, Password: cfg.ESPassword}, log)
		if err != nil {
			log.Warn("elasticsearch unavailable, using sql search", "error", err)
		} else {
			catalog.Index = &search.Index{ES: es, Name: cfg.ESIndex}
		}
	}

	adminSvc, err := service.NewAdminService(cfg.AdminUsername, cfg.AdminPasswordHash, cfg.AdminPassword, []byte(cfg.JWTSecret), cfg.AdminTokenTTL)
	if err != nil {
		log.Error("admin credentials", "error", err)
		os.Exit(1)
	}

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = httpserver.ErrorHandler
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(appmw.Common()...)
	e.Use(m.Middleware(), loggingmw.RequestLogger(log))

	httpserver.Register(e, &httpserver.Deps{
		Projects:      &httpserver.ProjectHTTP{Svc: catalog},
		Cart:          &httpserver.CartHTTP{Svc: &service.CartService{Repo: r, Publisher: prod}},
		Orders:        &httpserver.OrderHTTP{Svc: &service.OrderService{Repo: r, Publisher: prod, Metrics: m}},
		Notifications: &httpserver.NotificationHTTP{Svc: &service.NotificationService{Repo: r}},
		Users:         &httpserver.UserHTTP{Svc: &service.UserService{Repo: r}},
		Admin:         &httpserver.AdminHTTP{Svc: adminSvc},
		JWTSecret:     []byte(cfg.JWTSecret),
		Ready:         func(ctx context.Context) error { return db.Ping(ctx, gdb) },
		Metrics:       metrics.Handler(reg),
		StaticDir:     cfg.StaticDir,
	})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		log.Info("http server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	go func() {
		<-quit
		log.Warn("force exit")
		os.Exit(1)
	}()

	log.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown error", "error", err)
	}
	if err := prod.Close(); err != nil {
		log.Error("kafka close error", "error", err)
	}
	if err := db.Close(gdb); err != nil {
		log.Error("db close error", "error", err)
	}

	log.Info("shutdown complete")
}
