package middleware

import (
	"log/slog"
	"net/http"

	"zilptext/internal/delivery/http/response"
	domainerrors "zilptext/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	// Field-level validation failures carry per-field messages
	var validationErr *domainerrors.ValidationError
	if errors.As(err, &validationErr) {
		response.FieldErrors(c, validationErr.HTTPCode(), validationErr.Fields()) //nolint:errcheck
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		response.Error(c, appErr.HTTPCode(), appErr.ErrorCode()) //nolint:errcheck
		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		response.Error(c, httpErr.Code, http.StatusText(httpErr.Code)) //nolint:errcheck
		return
	}

	// Default to internal error, log error and return generic error
	m.logger.Error("Unhandled error",
		"error", err.Error(),
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
	)

	response.Error(c, //nolint:errcheck
		domainerrors.ErrInternalError.HTTPCode(),
		domainerrors.ErrInternalError.ErrorCode(),
	)
}
