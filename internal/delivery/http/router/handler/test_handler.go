package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthCheck confirms the API is up.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"message": "Backend is working!"})
}
