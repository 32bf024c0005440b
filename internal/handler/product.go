package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/fashion-trend-analysis/internal/model"
)

// ProductService is implemented by *service.ProductService.
type ProductService interface {
	List(ctx context.Context) ([]model.Product, error)
	Get(ctx context.Context, id int64) (*model.Product, error)
	Create(ctx context.Context, p model.Product) (int64, error)
	Update(ctx context.Context, id int64, p model.Product) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
	ListByDesigner(ctx context.Context, designerID int64) ([]model.Product, error)
	ListByCategory(ctx context.Context, categoryID int64) ([]model.Product, error)
	CountByCategory(ctx context.Context) (map[string]int, error)
	AssociateDesigner(ctx context.Context, productID, designerID int64) (bool, error)
	DissociateDesigner(ctx context.Context, productID, designerID int64) (bool, error)
	ListDesigners(ctx context.Context, productID int64) ([]model.Designer, error)
	SetPopularity(ctx context.Context, productID, trendID int64, score int) error
	GetPopularity(ctx context.Context, productID, trendID int64) (int, error)
	AllPopularities(ctx context.Context, productID int64) ([]int, error)
}

type ProductHandler struct {
	svc ProductService
}

func NewProductHandler(svc ProductService) *ProductHandler {
	return &ProductHandler{svc: svc}
}

type productReq struct {
	Name        string `json:"name" validate:"required,max=100"`
	CategoryID  *int64 `json:"category_id" validate:"omitempty,gt=0"`
	DesignerID  *int64 `json:"designer_id" validate:"omitempty,gt=0"`
	Description string `json:"description" validate:"max=1000"`
}

func (r productReq) model() model.Product {
	return model.Product{
		Name:        r.Name,
		CategoryID:  r.CategoryID,
		DesignerID:  r.DesignerID,
		Description: r.Description,
	}
}

func (h *ProductHandler) List(c echo.Context) error {
	ctx, cancel := requestContext(c)
	defer cancel()
	items, err := h.svc.List(ctx)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

func (h *ProductHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	ctx, cancel := requestContext(c)
	defer cancel()
	p, err := h.svc.Get(ctx, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

func (h *ProductHandler) Create(c echo.Context) error {
	var req productReq
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

func (h *ProductHandler) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req productReq
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

func (h *ProductHandler) Delete(c echo.Context) error {
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

func (h *ProductHandler) ByDesigner(c echo.Context) error {
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

func (h *ProductHandler) ByCategory(c echo.Context) error {
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

// CountByCategory maps every category name to its product count.
func (h *ProductHandler) CountByCategory(c echo.Context) error {
	ctx, cancel := requestContext(c)
	defer cancel()
	counts, err := h.svc.CountByCategory(ctx)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, counts)
}

func (h *ProductHandler) AssociateDesigner(c echo.Context) error {
	productID, designerID, err := parseIDs(c, "id", "designerId")
	if err != nil {
		return err
	}
	ctx, cancel := requestContext(c)
	defer cancel()
	createdRow, err := h.svc.AssociateDesigner(ctx, productID, designerID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"associated": true, "created": createdRow})
}

func (h *ProductHandler) DissociateDesigner(c echo.Context) error {
	productID, designerID, err := parseIDs(c, "id", "designerId")
	if err != nil {
		return err
	}
	ctx, cancel := requestContext(c)
	defer cancel()
	removed, err := h.svc.DissociateDesigner(ctx, productID, designerID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"dissociated": removed})
}

func (h *ProductHandler) Designers(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	ctx, cancel := requestContext(c)
	defer cancel()
	items, err := h.svc.ListDesigners(ctx, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

func (h *ProductHandler) SetPopularity(c echo.Context) error {
	productID, trendID, err := parseIDs(c, "id", "trendId")
	if err != nil {
		return err
	}
	score, err := readScore(c)
	if err != nil {
		return err
	}
	ctx, cancel := requestContext(c)
	defer cancel()
	if err := h.svc.SetPopularity(ctx, productID, trendID, score); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, echo.Map{"product_id": productID, "trend_id": trendID, "score": score})
}

func (h *ProductHandler) GetPopularity(c echo.Context) error {
	productID, trendID, err := parseIDs(c, "id", "trendId")
	if err != nil {
		return err
	}
	ctx, cancel := requestContext(c)
	defer cancel()
	score, err := h.svc.GetPopularity(ctx, productID, trendID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, score)
}

func (h *ProductHandler) AllPopularities(c echo.Context) error {
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
