package handler

import (
	"net/http"

	"atlas/internal/api"
	"atlas/internal/database"

	"github.com/labstack/echo/v4"
)

// HealthHandler is a readiness check backed by a database ping
// @Summary     Health check
// @Description Readiness check. Returns ok when the database answers a ping and 500 when it does not
// @Tags        health
// @Produce     json
// @Success     200 {object} api.HealthResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /health [get]
func HealthHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := db.Ping(c.Request().Context()); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Detail: "database unhealthy"})
		}
		return c.JSON(http.StatusOK, api.HealthResponse{Status: "ok"})
	}
}
