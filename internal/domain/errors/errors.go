package errors

import (
	"net/http"

	"ledger/internal/errors"
)

// AppError defines the interface for application-specific errors.
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error.
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
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

// Message returns the user-friendly error message.
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information.
func (e *BaseError) Details() string {
	return e.details
}

// Predefined error types
var (
	// ErrValidationFailed covers missing or malformed request input.
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Missing or invalid input",
		"",
	)

	// ErrUserAlreadyExists signals a duplicate registration email.
	// The API contract maps conflicts to 400, not 409.
	ErrUserAlreadyExists = NewBaseError(
		http.StatusBadRequest,
		"USER_ALREADY_EXISTS",
		"A user with this email already exists",
		"",
	)

	// ErrInvalidCredentials is returned for every login failure cause.
	// The message must not distinguish an unknown user from a wrong password.
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid username or password",
		"",
	)

	// ErrTokenExpired signals a structurally valid token past its expiry claim.
	ErrTokenExpired = NewBaseError(
		http.StatusForbidden,
		"TOKEN_EXPIRED",
		"Expired",
		"",
	)

	// ErrTokenInvalid signals a malformed token or signature mismatch.
	ErrTokenInvalid = NewBaseError(
		http.StatusForbidden,
		"TOKEN_INVALID",
		"Invalid token",
		"",
	)

	ErrRefreshTokenRevoked = NewBaseError(
		http.StatusForbidden,
		"REFRESH_TOKEN_REVOKED",
		"Refresh token is no longer valid",
		"",
	)

	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrHashingFailed = NewBaseError(
		http.StatusInternalServerError,
		"HASHING_FAILED",
		"Failed to process credentials",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface.
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
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code.
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code.
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message.
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information.
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
