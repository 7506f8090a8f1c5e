package errors

import (
	"net/http"

	"tracker/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-facing error message, written verbatim to the wire
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-facing error message
func (e *BaseError) Message() string {
	return e.message
}

// Predefined error types. The messages are part of the public API contract
// and must not change: clients match on them, and the login/ownership paths
// rely on failures being byte-identical across causes.
var (
	// Registration and login errors
	ErrPasswordTooShort = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_TOO_SHORT",
		"Password must be at least 6 characters",
	)

	ErrInvalidBody = NewBaseError(
		http.StatusBadRequest,
		"INVALID_BODY",
		"Invalid request body",
	)

	ErrMissingFields = NewBaseError(
		http.StatusBadRequest,
		"MISSING_FIELDS",
		"Username, email and password are required",
	)

	// ErrUserExists covers both the pre-insert lookup and the unique
	// constraint violation a concurrent registration can still hit.
	ErrUserExists = NewBaseError(
		http.StatusBadRequest,
		"USER_EXISTS",
		"Email or username already exists",
	)

	// ErrInvalidCredentials is returned for an unknown email and for a wrong
	// password alike, so login failures never reveal which accounts exist.
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid credentials",
	)

	// Token errors. Missing and rejected credentials are deliberately
	// distinct statuses.
	ErrTokenRequired = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_REQUIRED",
		"Access token required",
	)

	ErrTokenInvalid = NewBaseError(
		http.StatusForbidden,
		"TOKEN_INVALID",
		"Invalid or expired token",
	)

	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
	)

	// Project errors. ErrProjectNotFound also masks ownership mismatches.
	ErrProjectNotFound = NewBaseError(
		http.StatusNotFound,
		"PROJECT_NOT_FOUND",
		"Project not found",
	)

	ErrProjectNameRequired = NewBaseError(
		http.StatusBadRequest,
		"PROJECT_NAME_REQUIRED",
		"Project name is required",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Server error",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface.
// The underlying cause is kept for logging but never written to the wire.
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-facing error message
func (e *DatabaseExecuteError) Message() string {
	return "Server error"
}

// Details returns the internal error description for logs
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
