// Package response provides the JSON helpers shared by all HTTP handlers.
// Successful responses carry the resource directly; error responses carry a
// single "detail" field with a human-readable message.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	domainerrors "quickbite/internal/domain/errors"
)

// ErrorBody is the wire shape of every error response.
type ErrorBody struct {
	Detail string `json:"detail"`
}

// JSON writes data as the response body with the given status code.
func JSON(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

// NoContent writes an empty 204 response.
func NoContent(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

// Detail writes an error response with the given status and message.
func Detail(c echo.Context, statusCode int, detail string) error {
	return c.JSON(statusCode, ErrorBody{Detail: detail})
}

// BadRequest writes a 400 error response.
func BadRequest(c echo.Context, detail string) error {
	return Detail(c, http.StatusBadRequest, detail)
}

// Unauthorized writes a 401 error response.
func Unauthorized(c echo.Context, detail string) error {
	return Detail(c, http.StatusUnauthorized, detail)
}

// Forbidden writes a 403 error response.
func Forbidden(c echo.Context, detail string) error {
	return Detail(c, http.StatusForbidden, detail)
}

// HandleAppError maps domain errors to their HTTP status and detail message.
// Unknown errors become an opaque 500.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		detail := appErr.Message()
		if appErr.Details() != "" {
			detail = appErr.Details()
		}

		return Detail(c, appErr.HTTPCode(), detail)
	}

	return Detail(c, http.StatusInternalServerError, "internal server error")
}
