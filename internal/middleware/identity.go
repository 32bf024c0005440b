package middleware

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// Principal is the authenticated caller, stored in the echo context by
// JWTAuth.
type Principal struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Authority returns the role-derived permission label, e.g. ROLE_ADMIN.
func (p Principal) Authority() string {
	if p.Role == "" {
		return ""
	}
	return "ROLE_" + p.Role
}

const principalKey = "principal"

// SetPrincipal stores p in the context.  The legacy "user_id" and "role"
// keys are kept for handlers that only need one of them.
func SetPrincipal(c echo.Context, p Principal) {
	c.Set(principalKey, p)
	c.Set("user_id", p.UserID)
	c.Set("role", p.Role)
}

// PrincipalFrom returns the principal set by JWTAuth, if any.
func PrincipalFrom(c echo.Context) (Principal, bool) {
	p, ok := c.Get(principalKey).(Principal)
	return p, ok
}

// currentUserID returns the caller's id for rate limit keys, or "anon".
func currentUserID(c echo.Context) string {
	if p, ok := PrincipalFrom(c); ok && p.UserID > 0 {
		return strconv.FormatInt(p.UserID, 10)
	}
	return "anon"
}
