package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	ordersCreated      prometheus.Counter
	orderRevenue       prometheus.Counter
	orderItems         prometheus.Histogram
	orderStatusChanges *prometheus.CounterVec
	orderErrors        *prometheus.CounterVec
	projectDownloads   prometheus.Counter
	httpDuration       *prometheus.HistogramVec
}

func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		ordersCreated: f.NewCounter(prometheus.CounterOpts{
			Name: "marketplace_orders_created_total",
			Help: "Orders placed.",
		}),
		orderRevenue: f.NewCounter(prometheus.CounterOpts{
			Name: "marketplace_orders_amount_total",
			Help: "Sum of total_amount over placed orders.",
		}),
		orderItems: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "marketplace_order_items",
			Help:    "Line items per placed order.",
			Buckets: []float64{1, 2, 3, 5, 10, 20},
		}),
		orderStatusChanges: f.NewCounterVec(prometheus.CounterOpts{
			Name: "marketplace_order_status_changes_total",
			Help: "Order status updates by target status.",
		}, []string{"status"}),
		orderErrors: f.NewCounterVec(prometheus.CounterOpts{
			Name: "marketplace_order_errors_total",
			Help: "Failed order operations.",
		}, []string{"operation"}),
		projectDownloads: f.NewCounter(prometheus.CounterOpts{
			Name: "marketplace_project_downloads_total",
			Help: "Recorded project downloads.",
		}),
		httpDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "marketplace_http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
}

func (m *Metrics) OrderCreated(amount int64, items int) {
	if m == nil {
		return
	}
	m.ordersCreated.Inc()
	m.orderRevenue.Add(float64(amount))
	m.orderItems.Observe(float64(items))
}

func (m *Metrics) OrderStatusChanged(status string) {
	if m == nil {
		return
	}
	m.orderStatusChanges.WithLabelValues(status).Inc()
}

func (m *Metrics) OrderError(operation string) {
	if m == nil {
		return
	}
	m.orderErrors.WithLabelValues(operation).Inc()
}

func (m *Metrics) ProjectDownloaded() {
	if m == nil {
		return
	}
	m.projectDownloads.Inc()
}

func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if m == nil {
				return next(c)
			}
			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if he, ok := err.(*echo.HTTPError); ok {
				status = he.Code
			}
			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			m.httpDuration.
				WithLabelValues(c.Request().Method, route, strconv.Itoa(status)).
				Observe(time.Since(start).Seconds())
			return err
		}
	}
}

func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
