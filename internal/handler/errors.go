// Package handler holds the echo handlers.  Handlers bind and validate
// the request, call one service method and hand any error to
// ErrorHandler, which is the only place errors become status codes.
package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/iliyamo/fashion-trend-analysis/internal/repository"
	"github.com/iliyamo/fashion-trend-analysis/internal/service"
)

// ErrorHandler maps the error taxonomy to HTTP responses of the form
// {"error": "<message>"}.
func ErrorHandler(log logrus.FieldLogger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		status, msg := classify(err)

		entry := log.WithFields(logrus.Fields{
			"method": c.Request().Method,
			"path":   c.Path(),
			"status": status,
		}).WithError(err)
		if status >= http.StatusInternalServerError || isDataAccess(err) {
			entry.Error("request failed")
		} else {
			entry.Debug("request rejected")
		}

		var werr error
		if c.Request().Method == http.MethodHead {
			werr = c.NoContent(status)
		} else {
			werr = c.JSON(status, echo.Map{"error": msg})
		}
		if werr != nil {
			log.WithError(werr).Warn("write error response")
		}
	}
}

func classify(err error) (int, string) {
	var (
		ve  *service.ValidationError
		dae *repository.DataAccessError
		he  *echo.HTTPError
	)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound, "not found"
	case errors.Is(err, service.ErrInvalidCredentials), errors.Is(err, service.ErrInvalidRefreshToken):
		return http.StatusUnauthorized, err.Error()
	case errors.As(err, &ve):
		return http.StatusBadRequest, ve.Error()
	case errors.As(err, &dae):
		if dae.IsConstraint() {
			return http.StatusBadRequest, "request conflicts with stored data (" + dae.Code + ")"
		}
		return http.StatusInternalServerError, "data access failed"
	case errors.As(err, &he):
		if m, ok := he.Message.(string); ok {
			return he.Code, m
		}
		return he.Code, http.StatusText(he.Code)
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

func isDataAccess(err error) bool {
	var dae *repository.DataAccessError
	return errors.As(err, &dae)
}
