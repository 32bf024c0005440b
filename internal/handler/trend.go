package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/fashion-trend-analysis/internal/model"
)

// TrendService is implemented by *service.TrendService.
type TrendService interface {
	List(ctx context.Context) ([]model.Trend, error)
	Get(ctx context.Context, id int64) (*model.Trend, error)
	Create(ctx context.Context, t model.Trend) (int64, error)
	Update(ctx context.Context, id int64, t model.Trend) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
	ListByCategory(ctx context.Context, categoryID int64) ([]model.Trend, error)
	ListByDesigner(ctx context.Context, designerID int64) ([]model.Trend, error)
	ListByLocation(ctx context.Context, location string) ([]model.Trend, error)
	ListBySeason(ctx context.Context, season string) ([]model.Trend, error)
	AssociateCategory(ctx context.Context, trendID, categoryID int64) (bool, error)
	DissociateCategory(ctx context.Context, trendID, categoryID int64) (bool, error)
	SetPopularity(ctx context.Context, id int64, score int) (bool, error)
	GetPopularity(ctx context.Context, id int64) (int, error)
	PopularityHistory(ctx context.Context, id int64) ([]model.TrendPopularity, error)
}

type TrendHandler struct {
	svc TrendService
}

func NewTrendHandler(svc TrendService) *TrendHandler {
	return &TrendHandler{svc: svc}
}

type trendReq struct {
	Name            string `json:"name" validate:"required,max=100"`
	Description     string `json:"description" validate:"max=1000"`
	CategoryID      *int64 `json:"category_id" validate:"omitempty,gt=0"`
	DesignerID      *int64 `json:"designer_id" validate:"omitempty,gt=0"`
	Location        string `json:"location" validate:"max=100"`
	Season          string `json:"season" validate:"max=50"`
	PopularityScore int    `json:"popularity_score" validate:"gte=0,max=2147483647"`
}

func (r trendReq) model() model.Trend {
	return model.Trend{
		Name:            r.Name,
		Description:     r.Description,
		CategoryID:      r.CategoryID,
		DesignerID:      r.DesignerID,
		Location:        r.Location,
		Season:          r.Season,
		PopularityScore: r.PopularityScore,
	}
}

func (h *TrendHandler) List(c echo.Context) error {
	ctx, cancel := requestContext(c)
	defer cancel()
	items, err := h.svc.List(ctx)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

func (h *TrendHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	ctx, cancel := requestContext(c)
	defer cancel()
	t, err := h.svc.Get(ctx, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, t)
}

func (h *TrendHandler) Create(c echo.Context) error {
	var req trendReq
	if err := bind(c, &req); err != nil {
		return err
	}
	ctx, cancel := requestContext(c)
	defer cancel()
	id, err := h.svc.Create(ctx, req.model())
	if err != nil {
		return err
	}
	return created(c, id)
}

func (h *TrendHandler) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req trendReq
	if err := bind(c, &req); err != nil {
		return err
	}
	ctx, cancel := requestContext(c)
	defer cancel()
	ok, err := h.svc.Update(ctx, id, req.model())
	if err != nil {
		return err
	}
	return updated(c, ok)
}

func (h *TrendHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	ctx, cancel := requestContext(c)
	defer cancel()
	ok, err := h.svc.Delete(ctx, id)
	if err != nil {
		return err
	}
	return deleted(c, ok)
}

func (h *TrendHandler) ByCategory(c echo.Context) error {
	categoryID, err := parseID(c, "categoryId")
	if err != nil {
		return err
	}
	ctx, cancel := requestContext(c)
	defer cancel()
	items, err := h.svc.ListByCategory(ctx, categoryID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

func (h *TrendHandler) ByDesigner(c echo.Context) error {
	designerID, err := parseID(c, "designerId")
	if err != nil {
		return err
	}
	ctx, cancel := requestContext(c)
	defer cancel()
	items, err := h.svc.ListByDesigner(ctx, designerID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

func (h *TrendHandler) ByLocation(c echo.Context) error {
	ctx, cancel := requestContext(c)
	defer cancel()
	items, err := h.svc.ListByLocation(ctx, c.Param("location"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

func (h *TrendHandler) BySeason(c echo.Context) error {
	ctx, cancel := requestContext(c)
	defer cancel()
	items, err := h.svc.ListBySeason(ctx, c.Param("season"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

func (h *TrendHandler) AssociateCategory(c echo.Context) error {
	trendID, categoryID, err := parseIDs(c, "id", "categoryId")
	if err != nil {
		return err
	}
	ctx, cancel := requestContext(c)
	defer cancel()
	createdRow, err := h.svc.AssociateCategory(ctx, trendID, categoryID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"associated": true, "created": createdRow})
}

func (h *TrendHandler) DissociateCategory(c echo.Context) error {
	trendID, categoryID, err := parseIDs(c, "id", "categoryId")
	if err != nil {
		return err
	}
	ctx, cancel := requestContext(c)
	defer cancel()
	removed, err := h.svc.DissociateCategory(ctx, trendID, categoryID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"dissociated": removed})
}

// SetPopularity takes the score from the path.  404 when the trend does
// not exist.
func (h *TrendHandler) SetPopularity(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	n, err := strconv.ParseInt(c.Param("score"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid score")
	}
	score := int(n)
	ctx, cancel := requestContext(c)
	defer cancel()
	ok, err := h.svc.SetPopularity(ctx, id, score)
	if err != nil {
		return err
	}
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}
	return c.JSON(http.StatusOK, echo.Map{"trend_id": id, "score": score})
}

func (h *TrendHandler) GetPopularity(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	ctx, cancel := requestContext(c)
	defer cancel()
	score, err := h.svc.GetPopularity(ctx, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, score)
}

func (h *TrendHandler) PopularityHistory(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	ctx, cancel := requestContext(c)
	defer cancel()
	rows, err := h.svc.PopularityHistory(ctx, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rows)
}
