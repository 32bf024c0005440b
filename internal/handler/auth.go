package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/fashion-trend-analysis/internal/middleware"
	"github.com/iliyamo/fashion-trend-analysis/internal/model"
	"github.com/iliyamo/fashion-trend-analysis/internal/service"
	"github.com/iliyamo/fashion-trend-analysis/internal/utils"
)

// AuthService is implemented by *service.AuthService.
type AuthService interface {
	Register(ctx context.Context, in service.RegisterInput) (int64, error)
	Login(ctx context.Context, username, password string) (*service.Session, error)
	Refresh(ctx context.Context, raw string) (*service.Session, error)
	RefreshAccess(ctx context.Context, raw string) (utils.AccessToken, error)
	Logout(ctx context.Context, raw string, userID int64) error
}

// AuthHandler serves registration, login and token endpoints.
type AuthHandler struct {
	svc       AuthService
	jwtSecret string
}

func NewAuthHandler(svc AuthService, jwtSecret string) *AuthHandler {
	return &AuthHandler{svc: svc, jwtSecret: jwtSecret}
}

// ----- DTOs -----

type registerReq struct {
	Username     string `json:"username" validate:"required,max=50"`
	Email        string `json:"email" validate:"required,email,max=100"`
	Password     string `json:"password" validate:"required,min=6,max=72"`
	DesignerName string `json:"designer_name" validate:"max=100"`
	Address      string `json:"address" validate:"max=255"`
	Phone        string `json:"phone" validate:"max=20"`
	Role         string `json:"role"` // USER | ANALYST | DESIGNER
}
type loginReq struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
type refreshReq struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type tokenPart struct {
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
}
type userPart struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	DesignerName string `json:"designer_name,omitempty"`
	Address      string `json:"address,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Role         string `json:"role"`
}
type authResp struct {
	User    userPart  `json:"user"`
	Access  tokenPart `json:"access"`
	Refresh tokenPart `json:"refresh"`
}

func toUserPart(u model.User) userPart {
	return userPart{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		DesignerName: u.DesignerName,
		Address:      u.Address,
		Phone:        u.Phone,
		Role:         u.Role,
	}
}

func toAuthResp(s *service.Session) authResp {
	return authResp{
		User:    toUserPart(s.User),
		Access:  tokenPart{Token: s.Access.Token, Expires: s.Access.Exp},
		Refresh: tokenPart{Token: s.Refresh.Raw, Expires: s.Refresh.Exp}, // raw back to client
	}
}

// Register: create the user, no tokens.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := bind(c, &req); err != nil {
		return err
	}
	ctx, cancel := requestContext(c)
	defer cancel()

	id, err := h.svc.Register(ctx, service.RegisterInput{
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
	return c.JSON(http.StatusCreated, echo.Map{"id": id, "message": "user registered"})
}

// Login: verify and return a new pair.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := bind(c, &req); err != nil {
		return err
	}
	ctx, cancel := requestContext(c)
	defer cancel()

	sess, err := h.svc.Login(ctx, req.Username, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAuthResp(sess))
}

// Refresh: revoke the presented refresh token and issue a new pair.
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req refreshReq
	if err := bind(c, &req); err != nil {
		return err
	}
	ctx, cancel := requestContext(c)
	defer cancel()

	sess, err := h.svc.Refresh(ctx, req.RefreshToken)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAuthResp(sess))
}

// RefreshAccess: new access token, the refresh token is kept.
func (h *AuthHandler) RefreshAccess(c echo.Context) error {
	var req refreshReq
	if err := bind(c, &req); err != nil {
		return err
	}
	ctx, cancel := requestContext(c)
	defer cancel()

	access, err := h.svc.RefreshAccess(ctx, req.RefreshToken)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"access": tokenPart{Token: access.Token, Expires: access.Exp},
	})
}

// Logout revokes every session of the caller when a valid bearer token is
// presented without a refresh token, otherwise only the given refresh
// token.  The route is open, so the bearer is parsed here.
func (h *AuthHandler) Logout(c echo.Context) error {
	var uid int64
	if raw, ok := middleware.BearerToken(c); ok {
		if claims, err := utils.ParseAccessToken(h.jwtSecret, raw); err == nil {
			uid, _ = claims.UserID()
		}
	}

	var req refreshReq
	_ = c.Bind(&req) // an empty body is fine when a bearer is present
	refresh := strings.TrimSpace(req.RefreshToken)
	if refresh != "" {
		uid = 0
	}

	ctx, cancel := requestContext(c)
	defer cancel()
	if err := h.svc.Logout(ctx, refresh, uid); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Me returns the authenticated principal.
func (h *AuthHandler) Me(c echo.Context) error {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	return c.JSON(http.StatusOK, echo.Map{
		"user_id":   p.UserID,
		"username":  p.Username,
		"role":      p.Role,
		"authority": p.Authority(),
	})
}
