// Package response defines the wire shapes of the JSON API.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorBody is the single-message error shape, e.g. {"error": "Unauthorized"}.
type ErrorBody struct {
	Error string `json:"error"`
}

// ValidationBody carries every validation reason at once,
// e.g. {"errors": ["Title is required."]}.
type ValidationBody struct {
	Errors []string `json:"errors"`
}

// JSON writes a success payload as-is. Views from the usecase layer are
// already sanitized, so no mapping happens here.
func JSON(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

// NoContent writes an empty 204 response.
func NoContent(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

// Unauthorized writes the fixed 401 body.
func Unauthorized(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, ErrorBody{Error: "Unauthorized"})
}

// ValidationFailed writes the collected reasons as a 422.
func ValidationFailed(c echo.Context, reasons []string) error {
	return c.JSON(http.StatusUnprocessableEntity, ValidationBody{Errors: reasons})
}

// InternalError writes the generic 500 body; the real cause stays in the logs.
func InternalError(c echo.Context) error {
	return c.JSON(http.StatusInternalServerError, ErrorBody{Error: "Internal server error"})
}

// Error writes an arbitrary status with the single-message shape.
func Error(c echo.Context, statusCode int, message string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, ErrorBody{Error: message})
}
