package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/fashion-trend-analysis/internal/handler"
	"github.com/iliyamo/fashion-trend-analysis/internal/middleware"
)

// RegisterAnalysis registers the aggregate endpoints (analytics:read).
func RegisterAnalysis(e *echo.Echo, a *handler.AnalysisHandler, jwtSecret string, limiter echo.MiddlewareFunc) {
	g := e.Group("/api/analysis",
		middleware.JWTAuth(jwtSecret),
		limiter,
		middleware.RequirePermission(middleware.AnalyticsRead),
	)
	g.GET("/categories/season/:season", a.CategoriesBySeason)
	g.GET("/designers", a.Designers)
	g.GET("/products", a.Products)
	g.GET("/trends", a.Trends)
	g.GET("/products/by-category", a.ProductsByCategory)
	g.GET("/trends/by-category", a.TrendsByCategory)
	g.GET("/trends/season/:season", a.TrendsBySeason)
}

// RegisterUsers registers user administration (users:manage).
func RegisterUsers(e *echo.Echo, u *handler.UserHandler, jwtSecret string, limiter echo.MiddlewareFunc) {
	g := e.Group("/api/users",
		middleware.JWTAuth(jwtSecret),
		limiter,
		middleware.RequirePermission(middleware.UsersManage),
	)
	g.GET("", u.List)
	g.GET("/:id", u.Get)
	g.PUT("/:id", u.Update)
	g.DELETE("/:id", u.Delete)
}
