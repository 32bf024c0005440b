package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
)

// AnalysisService is implemented by *service.AnalysisService.  Every
// method maps an entity name to its average score; nil means no scores.
type AnalysisService interface {
	CategoryAverageBySeason(ctx context.Context, season string) (map[string]*float64, error)
	DesignerAverage(ctx context.Context) (map[string]*float64, error)
	ProductAverage(ctx context.Context) (map[string]*float64, error)
	TrendAverage(ctx context.Context) (map[string]*float64, error)
	ProductAverageByCategory(ctx context.Context) (map[string]*float64, error)
	TrendAverageByCategory(ctx context.Context) (map[string]*float64, error)
	TrendAverageBySeason(ctx context.Context, season string) (map[string]*float64, error)
}

type AnalysisHandler struct {
	svc AnalysisService
}

func NewAnalysisHandler(svc AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{svc: svc}
}

type averageFunc func(ctx context.Context) (map[string]*float64, error)

func (h *AnalysisHandler) serve(c echo.Context, fn averageFunc) error {
	ctx, cancel := requestContext(c)
	defer cancel()
	avgs, err := fn(ctx)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, avgs)
}

func (h *AnalysisHandler) CategoriesBySeason(c echo.Context) error {
	season := c.Param("season")
	return h.serve(c, func(ctx context.Context) (map[string]*float64, error) {
		return h.svc.CategoryAverageBySeason(ctx, season)
	})
}

func (h *AnalysisHandler) Designers(c echo.Context) error {
	return h.serve(c, h.svc.DesignerAverage)
}

func (h *AnalysisHandler) Products(c echo.Context) error {
	return h.serve(c, h.svc.ProductAverage)
}

func (h *AnalysisHandler) Trends(c echo.Context) error {
	return h.serve(c, h.svc.TrendAverage)
}

func (h *AnalysisHandler) ProductsByCategory(c echo.Context) error {
	return h.serve(c, h.svc.ProductAverageByCategory)
}

func (h *AnalysisHandler) TrendsByCategory(c echo.Context) error {
	return h.serve(c, h.svc.TrendAverageByCategory)
}

func (h *AnalysisHandler) TrendsBySeason(c echo.Context) error {
	season := c.Param("season")
	return h.serve(c, func(ctx context.Context) (map[string]*float64, error) {
		return h.svc.TrendAverageBySeason(ctx, season)
	})
}
