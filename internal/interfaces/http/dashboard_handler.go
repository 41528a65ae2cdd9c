package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/serviceflow/serviceflow-api/internal/application/analytics"
)

// DashboardHandler maneja los resúmenes para los dashboards (protegido).
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// AdminSummary godoc
// @Summary      Resumen del punto de venta (solo admin)
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.AdminDashboardDTO
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) AdminSummary(c *fiber.Ctx) error {
	out, err := h.uc.AdminSummary(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// RepairsSummary godoc
// @Summary      Resumen del taller de reparaciones
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.RepairsDashboardDTO
// @Router       /api/repairs/dashboard/summary [get]
func (h *DashboardHandler) RepairsSummary(c *fiber.Ctx) error {
	out, err := h.uc.RepairsSummary(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
