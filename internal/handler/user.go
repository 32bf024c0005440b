package handler

import (
	"context"
	"net/http"

	"github.com/ecodeclub/ekit/slice"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/fashion-trend-analysis/internal/model"
	"github.com/iliyamo/fashion-trend-analysis/internal/service"
)

// UserService is implemented by *service.UserService.
type UserService interface {
	List(ctx context.Context) ([]model.User, error)
	Get(ctx context.Context, id int64) (*model.User, error)
	Update(ctx context.Context, id int64, in service.UserUpdate) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// UserHandler serves the user administration endpoints.  Responses never
// carry the password hash.
type UserHandler struct {
	svc UserService
}

func NewUserHandler(svc UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

type userUpdateReq struct {
	Username     string `json:"username" validate:"required,max=50"`
	Email        string `json:"email" validate:"required,email,max=100"`
	Password     string `json:"password" validate:"omitempty,min=6,max=72"` // empty keeps the current one
	DesignerName string `json:"designer_name" validate:"max=100"`
	Address      string `json:"address" validate:"max=255"`
	Phone        string `json:"phone" validate:"max=20"`
	Role         string `json:"role"`
}

func (h *UserHandler) List(c echo.Context) error {
	ctx, cancel := requestContext(c)
	defer cancel()
	users, err := h.svc.List(ctx)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, slice.Map(users, func(_ int, u model.User) userPart {
		return toUserPart(u)
	}))
}

func (h *UserHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	ctx, cancel := requestContext(c)
	defer cancel()
	u, err := h.svc.Get(ctx, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserPart(*u))
}

func (h *UserHandler) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req userUpdateReq
	if err := bind(c, &req); err != nil {
		return err
	}
	ctx, cancel := requestContext(c)
	defer cancel()
	ok, err := h.svc.Update(ctx, id, service.UserUpdate{
		Username:     req.Username,
		Email:        req.Email,
		Password:     req.Password,
		DesignerName: req.DesignerName,
		Address:      req.Address,
		Phone:        req.Phone,
		Role:         req.Role,
	})
	if err != nil {
		return err
	}
	return updated(c, ok)
}

func (h *UserHandler) Delete(c echo.Context) error {
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
