// Package errors defines the application error taxonomy shared between the
// use case layer and the HTTP delivery layer.
package errors

import (
	"net/http"

	"zilptext/internal/errors"
)

// AppError defines the interface for application-specific errors.
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code carried on the wire
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

// Predefined error types. Unknown login identifier and bad password share
// ErrWrongCredentials on purpose so a caller cannot probe which accounts exist.
var (
	ErrWrongCredentials = NewBaseError(
		http.StatusUnauthorized,
		"wrong_credentials",
		"wrong credentials",
	)

	ErrAccountNotVerified = NewBaseError(
		http.StatusUnauthorized,
		"account_not_verified",
		"account has not been verified",
	)

	ErrAccountNotFound = NewBaseError(
		http.StatusNotFound,
		"account_not_found",
		"account not found",
	)

	ErrTokenInvalid = NewBaseError(
		http.StatusBadRequest,
		"token_invalid",
		"verification token is invalid or expired",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"internal_error",
		"internal server error",
	)
)

// ValidationError is a field-level validation failure. It carries per-field
// message lists in the shape the API exposes: {"field": ["validation.rule"]}.
type ValidationError struct {
	httpCode int
	fields   map[string][]string
}

// NewValidationError creates a field-level validation error with the given
// HTTP status code.
func NewValidationError(httpCode int, fields map[string][]string) *ValidationError {
	return &ValidationError{httpCode: httpCode, fields: fields}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return "validation failed"
}

// HTTPCode returns the HTTP status code.
func (e *ValidationError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code.
func (e *ValidationError) ErrorCode() string {
	return "validation_failed"
}

// Fields returns the per-field validation messages.
func (e *ValidationError) Fields() map[string][]string {
	return e.fields
}

// WrapMessage wraps the error with additional context message.
func (e *ValidationError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// Registration conflicts surfaced as field-level validation errors.
// A plate conflict keeps the legacy success-status envelope (HTTP 200 with
// success:false); email and phone conflicts answer as ordinary validation
// failures so they are indistinguishable from input validation.
var (
	ErrPlateAlreadyOwned = NewValidationError(http.StatusOK, map[string][]string{
		"plateNumber": {"validation.unique"},
	})

	ErrEmailTaken = NewValidationError(http.StatusBadRequest, map[string][]string{
		"email": {"validation.unique"},
	})

	ErrPhoneTaken = NewValidationError(http.StatusBadRequest, map[string][]string{
		"phone": {"validation.unique"},
	})
)
