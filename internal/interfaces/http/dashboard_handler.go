package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/Trunks-api/internal/application/analytics"
)

// DashboardHandler maneja el endpoint del Dashboard.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetStats devuelve la utilización de canales por código de área y los totales de inventario.
// GET /api/dashboard
//
// @Summary      Estadísticas de utilización
// @Tags         dashboard
// @Produce      json
// @Security     Bearer
// @Success      200  {object}  dto.DashboardStatsDTO
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.uc.GetStats(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(stats)
}
