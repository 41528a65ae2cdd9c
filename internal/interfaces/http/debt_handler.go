package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/serviceflow/serviceflow-api/internal/application/debts"
)

// DebtHandler maneja el reporte de morosos y las estadísticas de pago (protegido).
type DebtHandler struct {
	uc *debts.DebtUseCase
}

// NewDebtHandler construye el handler.
func NewDebtHandler(uc *debts.DebtUseCase) *DebtHandler {
	return &DebtHandler{uc: uc}
}

// Delinquents godoc
// @Summary      Clientes con deudas pendientes
// @Description  Agrega órdenes entregadas sin pagar y ventas no pagadas, agrupadas por cliente.
// @Tags         debts
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.DelinquentCustomerDTO
// @Router       /api/clients/delinquents [get]
func (h *DebtHandler) Delinquents(c *fiber.Ctx) error {
	out, err := h.uc.ListDelinquents()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// PaymentStatistics godoc
// @Summary      Estadísticas de pago de la cartera de reparaciones
// @Tags         debts
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.PaymentStatisticsDTO
// @Router       /api/payments/statistics [get]
func (h *DebtHandler) PaymentStatistics(c *fiber.Ctx) error {
	out, err := h.uc.PaymentStatistics()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
