package middleware // package middleware contains the echo middleware shared by all route groups

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/fashion-trend-analysis/internal/utils"
)

// JWTAuth validates the Bearer access token and stores the caller as a
// Principal in the context.  Requests without a valid token are rejected
// with 401.
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, ok := BearerToken(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
			}
			claims, err := utils.ParseAccessToken(secret, raw)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}
			uid, _ := claims.UserID() // validated by ParseAccessToken
			SetPrincipal(c, Principal{
				UserID:   uid,
				Username: claims.Username,
				Role:     strings.ToUpper(claims.Role),
			})
			return next(c)
		}
	}
}

// BearerToken extracts the token from an "Authorization: Bearer ..." header.
func BearerToken(c echo.Context) (string, bool) {
	auth := c.Request().Header.Get(echo.HeaderAuthorization)
	if !strings.HasPrefix(auth, "Bearer ") {
		return "", false
	}
	raw := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
	return raw, raw != ""
}
