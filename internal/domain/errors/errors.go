// Package errors defines the application error taxonomy. Every handler
// failure funnels into one of these kinds; the HTTP error handler is the
// single place that turns them into a wire status and message.
package errors

import (
	"fmt"
	"net/http"

	"github.com/riaj03/savyo/internal/errors"
)

// AppError defines the interface for application-specific errors.
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-facing error message
}

// BaseError is a basic error structure that implements the AppError interface.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
}

// NewBaseError creates a new base error.
func NewBaseError(httpCode int, errorCode, message string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
	}
}

// Error implements the error interface.
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code.
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code.
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-facing error message.
func (e *BaseError) Message() string {
	return e.message
}

// WithMessage derives an error of the same kind carrying a different
// user-facing message.
func (e *BaseError) WithMessage(message string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   message,
	}
}

// Is lets a derived error (WithMessage) match its catalog ancestor, so
// errors.Is(err, ErrNotFound) works regardless of the customized message.
func (e *BaseError) Is(target error) bool {
	other, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == other.errorCode
}

// Predefined error kinds
var (
	// ErrValidationFailed covers bad or missing input on any create/update path.
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Invalid input data",
	)

	// ErrUserAlreadyExists is returned when registering an email that is taken.
	// The source reports this as a 400, not a conflict.
	ErrUserAlreadyExists = NewBaseError(
		http.StatusBadRequest,
		"USER_ALREADY_EXISTS",
		"User already exists",
	)

	// ErrInvalidCredentials is deliberately identical for a wrong password and
	// an unknown email, so login failures cannot enumerate accounts.
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid credentials",
	)

	// ErrUnauthenticated covers a missing, malformed, expired or tampered token.
	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"Not authorized to access this route",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
	)

	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
	)

	ErrCategoryNotFound = NewBaseError(
		http.StatusNotFound,
		"CATEGORY_NOT_FOUND",
		"Category not found",
	)

	ErrCategoryAlreadyExists = NewBaseError(
		http.StatusBadRequest,
		"CATEGORY_ALREADY_EXISTS",
		"Category name already in use",
	)

	ErrStoreNotFound = NewBaseError(
		http.StatusNotFound,
		"STORE_NOT_FOUND",
		"Store not found",
	)

	ErrStoreAlreadyExists = NewBaseError(
		http.StatusBadRequest,
		"STORE_ALREADY_EXISTS",
		"Store name already in use",
	)

	ErrDealNotFound = NewBaseError(
		http.StatusNotFound,
		"DEAL_NOT_FOUND",
		"Deal not found",
	)

	// ErrDealOwnership denies a mutation by an account that neither created
	// the deal nor holds the admin role.
	ErrDealOwnership = NewBaseError(
		http.StatusForbidden,
		"DEAL_OWNERSHIP_VIOLATION",
		"Not authorized to modify this deal",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal Server Error",
	)
)

// RoleNotAuthorized builds the role-gate denial for a specific role.
func RoleNotAuthorized(role string) *BaseError {
	return ErrForbidden.WithMessage(
		fmt.Sprintf("User role %s is not authorized to access this route", role),
	)
}

// DatabaseExecuteError represents a database execution error, implementing
// the AppError interface.
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error.
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface.
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, e.details).Error()
}

// HTTPCode returns the HTTP status code.
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code.
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-facing error message.
func (e *DatabaseExecuteError) Message() string {
	return "Internal Server Error"
}

// Unwrap exposes the wrapped database error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}
