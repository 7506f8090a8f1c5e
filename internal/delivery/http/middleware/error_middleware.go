package middleware

import (
	"log/slog"
	"net/http"

	"tracker/internal/delivery/http/response"
	domainerrors "tracker/internal/domain/errors"

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

// HandleHTTPError handles errors as Echo's HTTPErrorHandler.
// Expected conditions arrive as AppError and are written with their
// contractual status and message. Anything else is an unexpected failure:
// it is logged with full detail and the client only ever sees a generic
// server error.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if writeErr := response.Error(c, appErr.HTTPCode(), appErr.Message()); writeErr != nil {
			m.logger.Error("Failed to write error response", slog.Any("error", writeErr))
		}

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		msg, ok := httpErr.Message.(string)
		if !ok {
			msg = http.StatusText(httpErr.Code)
		}
		if writeErr := response.Error(c, httpErr.Code, msg); writeErr != nil {
			m.logger.Error("Failed to write error response", slog.Any("error", writeErr))
		}

		return
	}

	m.logger.Error("Unhandled error",
		slog.String("error", err.Error()),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	if writeErr := response.Error(c, http.StatusInternalServerError, domainerrors.ErrInternalError.Message()); writeErr != nil {
		m.logger.Error("Failed to write error response", slog.Any("error", writeErr))
	}
}
