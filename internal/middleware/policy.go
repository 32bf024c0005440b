package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/fashion-trend-analysis/internal/model"
)

// Permission names an operation class guarded by the policy.
type Permission string

const (
	CatalogRead   Permission = "catalog:read"
	CatalogWrite  Permission = "catalog:write"
	AnalyticsRead Permission = "analytics:read"
	UsersManage   Permission = "users:manage"
)

var rolePermissions = map[string][]Permission{
	model.RoleUser:     {CatalogRead},
	model.RoleAnalyst:  {CatalogRead, AnalyticsRead},
	model.RoleDesigner: {CatalogRead, CatalogWrite, AnalyticsRead},
	model.RoleAdmin:    {CatalogRead, CatalogWrite, AnalyticsRead, UsersManage},
}

// Allowed reports whether role grants p.  Unknown roles grant nothing.
func Allowed(role string, p Permission) bool {
	for _, granted := range rolePermissions[role] {
		if granted == p {
			return true
		}
	}
	return false
}

// RequirePermission rejects callers whose role lacks p: 401 when no
// principal is present, 403 otherwise.  Must run after JWTAuth.
func RequirePermission(p Permission) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, ok := PrincipalFrom(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			if !Allowed(principal.Role, p) {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			return next(c)
		}
	}
}

// ReadWrite picks CatalogRead for safe methods and CatalogWrite for the
// rest, so one group can carry both.
func ReadWrite() echo.MiddlewareFunc {
	read, write := RequirePermission(CatalogRead), RequirePermission(CatalogWrite)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		r, w := read(next), write(next)
		return func(c echo.Context) error {
			switch c.Request().Method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
				return r(c)
			default:
				return w(c)
			}
		}
	}
}
