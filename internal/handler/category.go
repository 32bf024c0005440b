package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/fashion-trend-analysis/internal/model"
)

// CategoryService is implemented by *service.CategoryService.
type CategoryService interface {
	List(ctx context.Context) ([]model.Category, error)
	Get(ctx context.Context, id int64) (*model.Category, error)
	Create(ctx context.Context, c model.Category) (int64, error)
	Update(ctx context.Context, id int64, c model.Category) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
	ListByTrend(ctx context.Context, trendID int64) ([]model.Category, error)
	ListByProduct(ctx context.Context, productID int64) ([]model.Category, error)
	SetPopularity(ctx context.Context, id int64, season string, score int) error
	GetPopularity(ctx context.Context, id int64, season string) (int, error)
	AllPopularities(ctx context.Context, id int64) ([]int, error)
	Overview(ctx context.Context, id int64) ([]model.CategoryPopularity, error)
}

type CategoryHandler struct {
	svc CategoryService
}

func NewCategoryHandler(svc CategoryService) *CategoryHandler {
	return &CategoryHandler{svc: svc}
}

type categoryReq struct {
	Name string `json:"name" validate:"required,max=100"`
}

func (r categoryReq) model() model.Category { return model.Category{Name: r.Name} }

func (h *CategoryHandler) List(c echo.Context) error {
	ctx, cancel := requestContext(c)
	defer cancel()
	items, err := h.svc.List(ctx)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

func (h *CategoryHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	ctx, cancel := requestContext(c)
	defer cancel()
	cat, err := h.svc.Get(ctx, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cat)
}

func (h *CategoryHandler) Create(c echo.Context) error {
	var req categoryReq
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

func (h *CategoryHandler) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req categoryReq
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

func (h *CategoryHandler) Delete(c echo.Context) error {
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

// ByTrend lists the categories associated with a trend.
func (h *CategoryHandler) ByTrend(c echo.Context) error {
	trendID, err := parseID(c, "trendId")
	if err != nil {
		return err
	}
	ctx, cancel := requestContext(c)
	defer cancel()
	items, err := h.svc.ListByTrend(ctx, trendID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// ByProduct lists the category of a product.
func (h *CategoryHandler) ByProduct(c echo.Context) error {
	productID, err := parseID(c, "productId")
	if err != nil {
		return err
	}
	ctx, cancel := requestContext(c)
	defer cancel()
	items, err := h.svc.ListByProduct(ctx, productID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

func (h *CategoryHandler) SetPopularity(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	score, err := readScore(c)
	if err != nil {
		return err
	}
	season := c.Param("season")
	ctx, cancel := requestContext(c)
	defer cancel()
	if err := h.svc.SetPopularity(ctx, id, season, score); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, echo.Map{"category_id": id, "season": model.NormalizeSeason(season), "score": score})
}

func (h *CategoryHandler) GetPopularity(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	ctx, cancel := requestContext(c)
	defer cancel()
	score, err := h.svc.GetPopularity(ctx, id, c.Param("season"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, score)
}

func (h *CategoryHandler) AllPopularities(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	ctx, cancel := requestContext(c)
	defer cancel()
	scores, err := h.svc.AllPopularities(ctx, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, scores)
}

// Overview returns every season score of a category in season order.
func (h *CategoryHandler) Overview(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	ctx, cancel := requestContext(c)
	defer cancel()
	rows, err := h.svc.Overview(ctx, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rows)
}
