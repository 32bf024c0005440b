package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/fashion-trend-analysis/internal/service"
)

// requestTimeout bounds the store calls made on behalf of one request.
const requestTimeout = 5 * time.Second

func requestContext(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), requestTimeout)
}

// Validator adapts go-playground/validator to echo.Validator.
type Validator struct {
	v *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{v: v}
}

// Validate returns a *service.ValidationError naming the first failing
// field.
func (cv *Validator) Validate(i interface{}) error {
	err := cv.v.Struct(i)
	if err == nil {
		return nil
	}
	if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
		fe := verrs[0]
		return &service.ValidationError{Field: fe.Field(), Msg: "failed on " + fe.Tag()}
	}
	return &service.ValidationError{Msg: err.Error()}
}

// bind decodes the JSON body into req and validates it.
func bind(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return &service.ValidationError{Msg: "invalid body"}
	}
	return c.Validate(req)
}

// parseID reads a positive integer path parameter.
func parseID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}

// parseIDs reads two positive integer path parameters.
func parseIDs(c echo.Context, a, b string) (int64, int64, error) {
	first, err := parseID(c, a)
	if err != nil {
		return 0, 0, err
	}
	second, err := parseID(c, b)
	if err != nil {
		return 0, 0, err
	}
	return first, second, nil
}

type scoreReq struct {
	Score *int `json:"score"`
}

// readScore accepts either a bare JSON number or {"score": n}. A null in
// either position is rejected rather than read as zero.
func readScore(c echo.Context) (int, error) {
	body, err := io.ReadAll(io.LimitReader(c.Request().Body, 1<<10))
	if err != nil {
		return 0, &service.ValidationError{Field: "score", Msg: "unreadable body"}
	}
	var n *int
	if err := json.Unmarshal(body, &n); err == nil {
		if n == nil {
			return 0, &service.ValidationError{Field: "score", Msg: "must not be null"}
		}
		return *n, nil
	}
	var req scoreReq
	if err := json.Unmarshal(body, &req); err != nil || req.Score == nil {
		return 0, &service.ValidationError{Field: "score", Msg: "expected a number or {\"score\": n}"}
	}
	return *req.Score, nil
}

func created(c echo.Context, id int64) error {
	return c.JSON(http.StatusCreated, echo.Map{"id": id})
}

// updated answers a PUT: 200 when a row changed, 404 otherwise.
func updated(c echo.Context, ok bool) error {
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}
	return c.JSON(http.StatusOK, echo.Map{"updated": true})
}

// deleted answers a DELETE: 204 when a row was removed, 404 otherwise.
func deleted(c echo.Context, ok bool) error {
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}
	return c.NoContent(http.StatusNoContent)
}
