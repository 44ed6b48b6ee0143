package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"ideas-listing/internal/models"
)

type HealthHandler struct {
	now func() time.Time
}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{now: time.Now}
}

// Health godoc
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} models.HealthStatus
// @Router /api/health [get]
func (h *HealthHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, models.HealthStatus{
		Status:    "OK",
		Timestamp: h.now().UTC(),
	})
}
