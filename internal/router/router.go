// Package router builds the echo instance and registers every route
// group with its middleware.
package router

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/iliyamo/fashion-trend-analysis/internal/config"
	"github.com/iliyamo/fashion-trend-analysis/internal/handler"
	"github.com/iliyamo/fashion-trend-analysis/internal/logging"
	"github.com/iliyamo/fashion-trend-analysis/internal/middleware"
)

// Handlers bundles everything the routes dispatch to.
type Handlers struct {
	Health   echo.HandlerFunc
	Auth     *handler.AuthHandler
	Category *handler.CategoryHandler
	Designer *handler.DesignerHandler
	Product  *handler.ProductHandler
	Trend    *handler.TrendHandler
	Analysis *handler.AnalysisHandler
	User     *handler.UserHandler
}

// New returns a configured echo instance with all routes registered.
// rdb may be nil, which disables rate limiting.
func New(cfg config.Config, log logrus.FieldLogger, rdb *redis.Client, reg *prometheus.Registry, h Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = handler.ErrorHandler(log)

	e.Use(echomw.Recover())
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{AllowOrigins: cfg.CORS.AllowOrigins}))
	e.Use(echomw.BodyLimit("1M"))
	// metrics sits outside the request logger so it sees the final status
	e.Use(middleware.NewMetricsBuilder(reg).Build())
	e.Use(logging.RequestLogger(log))

	limiter := middleware.NewTokenBucket(cfg.RateLimit, rdb, log)
	secret := cfg.Auth.JWTSecret

	RegisterRoutes(e, h.Health, reg)
	RegisterAuth(e, h.Auth, secret, limiter)
	RegisterCatalog(e, h, secret, limiter)
	RegisterAnalysis(e, h.Analysis, secret, limiter)
	RegisterUsers(e, h.User, secret, limiter)
	return e
}

// RegisterRoutes registers the unauthenticated operational endpoints.
func RegisterRoutes(e *echo.Echo, health echo.HandlerFunc, reg *prometheus.Registry) {
	e.GET("/healthz", health)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
}

// RegisterAuth registers registration, login and token endpoints.  They
// are open but rate limited; /api/me needs a valid access token.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string, limiter echo.MiddlewareFunc) {
	open := e.Group("/api", limiter)
	open.POST("/register", a.Register)
	open.POST("/login", a.Login)
	open.POST("/auth/refresh", a.Refresh)
	open.POST("/auth/refresh-access", a.RefreshAccess)
	open.POST("/auth/logout", a.Logout)

	e.GET("/api/me", a.Me, middleware.JWTAuth(jwtSecret), limiter)
}
