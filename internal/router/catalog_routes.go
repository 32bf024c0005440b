package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/fashion-trend-analysis/internal/middleware"
)

// RegisterCatalog registers the category, designer, product and trend
// routes.  Reads need catalog:read, everything else catalog:write.
func RegisterCatalog(e *echo.Echo, h Handlers, jwtSecret string, limiter echo.MiddlewareFunc) {
	guard := []echo.MiddlewareFunc{middleware.JWTAuth(jwtSecret), limiter, middleware.ReadWrite()}

	// ---- Categories ----
	c := e.Group("/api/categories", guard...)
	c.GET("", h.Category.List)
	c.POST("", h.Category.Create)
	c.GET("/:id", h.Category.Get)
	c.PUT("/:id", h.Category.Update)
	c.DELETE("/:id", h.Category.Delete)
	c.GET("/trend/:trendId", h.Category.ByTrend)
	c.GET("/product/:productId", h.Category.ByProduct)
	c.POST("/:id/popularity/:season", h.Category.SetPopularity)
	c.GET("/:id/popularity/:season", h.Category.GetPopularity)
	c.GET("/:id/all-popularities", h.Category.AllPopularities)
	c.GET("/:id/popularity-overview", h.Category.Overview)

	// ---- Designers ----
	d := e.Group("/api/designers", guard...)
	d.GET("", h.Designer.List)
	d.POST("", h.Designer.Create)
	d.GET("/:id", h.Designer.Get)
	d.PUT("/:id", h.Designer.Update)
	d.DELETE("/:id", h.Designer.Delete)
	d.GET("/location/:location", h.Designer.ByLocation)
	d.GET("/:id/trendCount", h.Designer.TrendCount)
	d.GET("/:id/popularityScore", h.Designer.PopularityScore)
	d.GET("/:id/products", h.Designer.Products)

	// ---- Products ----
	p := e.Group("/api/products", guard...)
	p.GET("", h.Product.List)
	p.POST("", h.Product.Create)
	p.GET("/count-by-category", h.Product.CountByCategory)
	p.GET("/:id", h.Product.Get)
	p.PUT("/:id", h.Product.Update)
	p.DELETE("/:id", h.Product.Delete)
	p.GET("/designer/:designerId", h.Product.ByDesigner)
	p.GET("/category/:categoryId", h.Product.ByCategory)
	p.POST("/:id/associateDesigner/:designerId", h.Product.AssociateDesigner)
	p.DELETE("/:id/dissociateDesigner/:designerId", h.Product.DissociateDesigner)
	p.GET("/:id/designers", h.Product.Designers)
	p.POST("/:id/popularity/:trendId", h.Product.SetPopularity)
	p.GET("/:id/popularity/:trendId", h.Product.GetPopularity)
	p.GET("/:id/all-popularities", h.Product.AllPopularities)

	// ---- Trends ----
	t := e.Group("/api/trends", guard...)
	t.GET("", h.Trend.List)
	t.POST("", h.Trend.Create)
	t.GET("/:id", h.Trend.Get)
	t.PUT("/:id", h.Trend.Update)
	t.DELETE("/:id", h.Trend.Delete)
	t.GET("/category/:categoryId", h.Trend.ByCategory)
	t.GET("/designer/:designerId", h.Trend.ByDesigner)
	t.GET("/location/:location", h.Trend.ByLocation)
	t.GET("/season/:season", h.Trend.BySeason)
	t.POST("/:id/categories/:categoryId", h.Trend.AssociateCategory)
	t.DELETE("/:id/categories/:categoryId", h.Trend.DissociateCategory)
	t.POST("/:id/setPopularity/:score", h.Trend.SetPopularity)
	t.GET("/:id/getPopularity", h.Trend.GetPopularity)
	t.GET("/:id/popularity-history", h.Trend.PopularityHistory)
}
