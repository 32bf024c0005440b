package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type MetricsBuilder struct {
	summaryVec *prometheus.SummaryVec
	counterVec *prometheus.CounterVec
}

// NewMetricsBuilder registers the request metrics on reg.
func NewMetricsBuilder(reg prometheus.Registerer) *MetricsBuilder {
	factory := promauto.With(reg)
	summaryVec := factory.NewSummaryVec(
		prometheus.SummaryOpts{
			Name: "http_request_duration_seconds",
			Help: "HTTP request duration in seconds",
			Objectives: map[float64]float64{
				0.5:  0.05,
				0.9:  0.01,
				0.95: 0.005,
				0.99: 0.001,
			},
		},
		[]string{"method", "path", "status_code"},
	)
	counterVec := factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)
	return &MetricsBuilder{summaryVec: summaryVec, counterVec: counterVec}
}

// Build returns the echo middleware.  Register it outside the request
// logger so the error handler has already set the final status.
func (m *MetricsBuilder) Build() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			duration := time.Since(start).Seconds()

			path := c.Path()
			if path == "" {
				path = "unmatched"
			}
			status := c.Response().Status
			if err != nil && !c.Response().Committed {
				status = http.StatusInternalServerError
				var he *echo.HTTPError
				if errors.As(err, &he) {
					status = he.Code
				}
			}
			code := strconv.Itoa(status)
			m.summaryVec.WithLabelValues(c.Request().Method, path, code).Observe(duration)
			m.counterVec.WithLabelValues(c.Request().Method, path, code).Inc()
			return err
		}
	}
}
