package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"quickbite/internal/delivery/http/response"
)

// HealthCheck reports liveness.
func HealthCheck(c echo.Context) error {
	return response.JSON(c, http.StatusOK, map[string]string{"status": "ok"})
}
