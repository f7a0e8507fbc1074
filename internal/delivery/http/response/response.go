// Package response renders the unified API envelope. Every endpoint answers
// {"success": ..., "data"/"error": ...}, with "count" on list responses.
package response

import (
	"github.com/labstack/echo/v4"
)

// Envelope unified API response structure
type Envelope struct {
	Success bool   `json:"success"`
	Count   *int   `json:"count,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Stack   string `json:"stack,omitempty"`
}

// Success renders a successful response wrapping the payload.
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, Envelope{
		Success: true,
		Data:    data,
	})
}

// SuccessWithCount renders a successful list response carrying the number of
// items alongside the payload.
func SuccessWithCount(c echo.Context, statusCode int, count int, data any) error {
	return c.JSON(statusCode, Envelope{
		Success: true,
		Count:   &count,
		Data:    data,
	})
}

// Deleted renders the fixed empty-object payload used by delete endpoints.
func Deleted(c echo.Context, statusCode int) error {
	return Success(c, statusCode, map[string]any{})
}

// Failure renders an error response. The stack is only populated in debug
// environments by the error handler.
func Failure(c echo.Context, statusCode int, message string, stack string) error {
	return c.JSON(statusCode, Envelope{
		Success: false,
		Error:   message,
		Stack:   stack,
	})
}
