package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/serviceflow/serviceflow-api/internal/application/dto"
	"github.com/serviceflow/serviceflow-api/internal/application/repairs"
)

// WorkOrderHandler maneja las peticiones HTTP del taller (protegido).
type WorkOrderHandler struct {
	uc *repairs.WorkOrderUseCase
}

// NewWorkOrderHandler construye el handler.
func NewWorkOrderHandler(uc *repairs.WorkOrderUseCase) *WorkOrderHandler {
	return &WorkOrderHandler{uc: uc}
}

// Create godoc
// @Summary      Crear orden de reparación
// @Tags         work-orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateWorkOrderRequest  true  "Datos de la orden"
// @Success      201   {object}  dto.WorkOrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/work-orders [post]
func (h *WorkOrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateWorkOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar órdenes de reparación
// @Tags         work-orders
// @Security     Bearer
// @Produce      json
// @Param        q  query  string  false  "Filtro por cliente o equipo"
// @Success      200  {array}  dto.WorkOrderResponse
// @Router       /api/work-orders [get]
func (h *WorkOrderHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Query("q"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener orden por ID
// @Tags         work-orders
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la orden"
// @Success      200  {object}  dto.WorkOrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/work-orders/{id} [get]
func (h *WorkOrderHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar orden (parcial)
// @Description  El paso a Reparado o Entregado notifica al cliente si tiene teléfono.
// @Tags         work-orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                      true  "ID de la orden"
// @Param        body  body  dto.UpdateWorkOrderRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.WorkOrderResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/work-orders/{id} [put]
func (h *WorkOrderHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateWorkOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar orden
// @Tags         work-orders
// @Security     Bearer
// @Param        id  path  string  true  "ID de la orden"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/work-orders/{id} [delete]
func (h *WorkOrderHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
