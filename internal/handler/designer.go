package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/fashion-trend-analysis/internal/model"
)

// DesignerService is implemented by *service.DesignerService.
type DesignerService interface {
	List(ctx context.Context) ([]model.Designer, error)
	Get(ctx context.Context, id int64) (*model.Designer, error)
	Create(ctx context.Context, d model.Designer) (int64, error)
	Update(ctx context.Context, id int64, d model.Designer) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
	ListByLocation(ctx context.Context, location string) ([]model.Designer, error)
	TrendCount(ctx context.Context, id int64) (int, error)
	PopularityScore(ctx context.Context, id int64) (int, error)
	ListProducts(ctx context.Context, id int64) ([]model.Product, error)
}

type DesignerHandler struct {
	svc DesignerService
}

func NewDesignerHandler(svc DesignerService) *DesignerHandler {
	return &DesignerHandler{svc: svc}
}

type designerReq struct {
	Name            string `json:"name" validate:"required,max=100"`
	Location        string `json:"location" validate:"max=100"`
	TrendCount      int    `json:"trend_count" validate:"gte=0,max=2147483647"`
	PopularityScore int    `json:"popularity_score" validate:"gte=0,max=2147483647"`
}

func (r designerReq) model() model.Designer {
	return model.Designer{
		Name:            r.Name,
		Location:        r.Location,
		TrendCount:      r.TrendCount,
		PopularityScore: r.PopularityScore,
	}
}

func (h *DesignerHandler) List(c echo.Context) error {
	ctx, cancel := requestContext(c)
	defer cancel()
	items, err := h.svc.List(ctx)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

func (h *DesignerHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	ctx, cancel := requestContext(c)
	defer cancel()
	d, err := h.svc.Get(ctx, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, d)
}

func (h *DesignerHandler) Create(c echo.Context) error {
	var req designerReq
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

func (h *DesignerHandler) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req designerReq
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

func (h *DesignerHandler) Delete(c echo.Context) error {
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

func (h *DesignerHandler) ByLocation(c echo.Context) error {
	ctx, cancel := requestContext(c)
	defer cancel()
	items, err := h.svc.ListByLocation(ctx, c.Param("location"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

func (h *DesignerHandler) TrendCount(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	ctx, cancel := requestContext(c)
	defer cancel()
	n, err := h.svc.TrendCount(ctx, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, n)
}

func (h *DesignerHandler) PopularityScore(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	ctx, cancel := requestContext(c)
	defer cancel()
	n, err := h.svc.PopularityScore(ctx, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, n)
}

// Products lists the products linked to the designer through the
// association table.
func (h *DesignerHandler) Products(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	ctx, cancel := requestContext(c)
	defer cancel()
	items, err := h.svc.ListProducts(ctx, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}
