package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Health is the liveness endpoint used by load balancers.  With a
// non-nil db it also checks the store and answers 503 when the ping
// fails.
func Health(db Pinger) echo.HandlerFunc {
	return func(c echo.Context) error {
		if db != nil {
			ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
			defer cancel()
			if db.PingContext(ctx) != nil {
				return c.JSON(http.StatusServiceUnavailable, echo.Map{"status": "unavailable"})
			}
		}
		return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
	}
}
