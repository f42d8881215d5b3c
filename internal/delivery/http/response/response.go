// Package response holds the unified API response envelopes.
package response

import (
	"github.com/labstack/echo/v4"
)

// ErrorBody is the error envelope: {"success":false,"error":"wrong_credentials"}.
type ErrorBody struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// FieldErrorBody is the field-level validation envelope:
// {"success":false,"errors":{"plateNumber":["validation.unique"]}}.
type FieldErrorBody struct {
	Success bool                `json:"success"`
	Errors  map[string][]string `json:"errors"`
}

// Success writes a payload as-is. Payload structs carry their own success
// field so the wire shape stays flat.
func Success(c echo.Context, statusCode int, payload any) error {
	return c.JSON(statusCode, payload)
}

// Error writes the business error code envelope.
func Error(c echo.Context, statusCode int, errorCode string) error {
	return c.JSON(statusCode, ErrorBody{Success: false, Error: errorCode})
}

// FieldErrors writes the per-field validation envelope.
func FieldErrors(c echo.Context, statusCode int, fields map[string][]string) error {
	return c.JSON(statusCode, FieldErrorBody{Success: false, Errors: fields})
}
