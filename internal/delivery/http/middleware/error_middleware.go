// Package middleware contains the HTTP middleware for the application.
package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/riaj03/savyo/config"
	"github.com/riaj03/savyo/internal/delivery/http/response"
	domainerrors "github.com/riaj03/savyo/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware is the single funnel turning errors into wire responses.
// Handlers and middleware return errors; nothing else writes an error body.
type ErrorMiddleware struct {
	logger *slog.Logger
	debug  bool
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger, cfg *config.Config) *ErrorMiddleware {
	debug := cfg != nil && cfg.Env.Debug

	return &ErrorMiddleware{
		logger: logger,
		debug:  debug,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	// Try to parse as AppError
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		m.respond(c, appErr.HTTPCode(), appErr.Message(), err)

		return
	}

	// Check if it's Echo's HTTPError (unknown route, oversized body, etc.)
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		m.respond(c, httpErr.Code, fmt.Sprintf("%v", httpErr.Message), err)

		return
	}

	// Default to internal error, log and return a generic message.
	m.logger.Error("Unhandled error",
		slog.String("error", err.Error()),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	m.respond(c, http.StatusInternalServerError, domainerrors.ErrInternalError.Message(), err)
}

func (m *ErrorMiddleware) respond(c echo.Context, statusCode int, message string, err error) {
	stack := ""
	if m.debug {
		// pkg/errors records the stack at wrap time; %+v prints it.
		stack = fmt.Sprintf("%+v", err)
	}

	if writeErr := response.Failure(c, statusCode, message, stack); writeErr != nil {
		m.logger.Error("Failed to write error response", slog.Any("error", writeErr))
	}
}
