// Package response defines the wire shapes shared by all handlers.
package response

import (
	"github.com/labstack/echo/v4"
)

// ErrorResponse is the single error body shape the API emits.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse carries a human-readable confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}

// Error writes the contractual error body. The message is exactly what the
// client matches on; callers must pass taxonomy messages, never internal
// error text.
func Error(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, ErrorResponse{Error: message})
}

// Message writes a confirmation body with the given status.
func Message(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, MessageResponse{Message: message})
}
