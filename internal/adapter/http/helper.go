package http

import (
	"net/http"
	"strconv"

	"manhour-tracker/internal/domain/apperr"

	"github.com/labstack/echo/v4"
)

type messageResponse struct {
	Message string `json:"message"`
}

type createdResponse struct {
	Message string `json:"message"`
	ID      uint64 `json:"id"`
}

// statusOf maps an error kind to its HTTP status.
func statusOf(err error) int {
	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		return http.StatusBadRequest
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindConflict:
		return http.StatusConflict
	case apperr.KindProcessing:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeError(c echo.Context, err error) error {
	return c.JSON(statusOf(err), ErrorResponse{Error: err.Error()})
}

// bindValid binds v and runs the echo validator on it. On false the error
// response has already been written.
func bindValid(c echo.Context, v any) (bool, error) {
	if err := c.Bind(v); err != nil {
		return false, c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(v); err != nil {
		return false, c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	return true, nil
}

// bindQuery binds and validates query params only. On false the error
// response has already been written.
func bindQuery(c echo.Context, v any) (bool, error) {
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, v); err != nil {
		return false, c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid query"})
	}
	if err := c.Validate(v); err != nil {
		return false, c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	return true, nil
}

// bindFields decodes a JSON object body without binding path or query params.
func bindFields(c echo.Context) (map[string]any, error) {
	var m map[string]any
	if err := (&echo.DefaultBinder{}).BindBody(c, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// pathID returns false for ids that are not positive integers.
func pathID(c echo.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}
