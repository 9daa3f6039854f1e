package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/crm-pro/internal/application/analytics"
	"github.com/tu-usuario/crm-pro/pkg/validate"
)

// DashboardHandler expone las estadísticas agregadas del usuario.
type DashboardHandler struct {
	uc  *analytics.DashboardUseCase
	val *validate.Validator
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase, val *validate.Validator) *DashboardHandler {
	return &DashboardHandler{uc: uc, val: val}
}

// GetStats godoc
// @Summary      Estadísticas del dashboard del usuario
// @Description  Totales, leads por estado, valor por estado y top customers.
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.DashboardStatsDTO
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/dashboard/stats [get]
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.uc.GetStats(c.Context(), GetUserID(c))
	if err != nil {
		return internalError(c, err, "dashboard.getStats")
	}
	return c.JSON(stats)
}
