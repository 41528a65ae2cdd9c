package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/serviceflow/serviceflow-api/internal/application/dto"
	"github.com/serviceflow/serviceflow-api/internal/application/sales"
)

// TicketHandler maneja las peticiones HTTP del motor de ventas (protegido).
type TicketHandler struct {
	uc        *sales.TicketUseCase
	receiptUC *sales.ReceiptUseCase
}

// NewTicketHandler construye el handler.
func NewTicketHandler(uc *sales.TicketUseCase, receiptUC *sales.ReceiptUseCase) *TicketHandler {
	return &TicketHandler{uc: uc, receiptUC: receiptUC}
}

// Create godoc
// @Summary      Registrar una venta
// @Description  Descuenta stock de forma atómica; stock insuficiente revierte la venta completa.
// @Tags         tickets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTicketRequest  true  "Datos de la venta"
// @Success      201   {object}  dto.TicketResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/tickets [post]
func (h *TicketHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTicketRequest
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
// @Summary      Listar ventas
// @Tags         tickets
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.TicketResponse
// @Router       /api/tickets [get]
func (h *TicketHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListPending godoc
// @Summary      Listar ventas con pago pendiente
// @Tags         tickets
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.TicketResponse
// @Router       /api/tickets/delinquents [get]
func (h *TicketHandler) ListPending(c *fiber.Ctx) error {
	out, err := h.uc.ListPending()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener venta por ID (con líneas)
// @Tags         tickets
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del ticket"
// @Success      200  {object}  dto.TicketResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tickets/{id} [get]
func (h *TicketHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Pay godoc
// @Summary      Marcar venta como pagada
// @Description  Idempotente sobre tickets ya pagados.
// @Tags         tickets
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del ticket"
// @Success      200  {object}  dto.TicketResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tickets/{id}/pay [put]
func (h *TicketHandler) Pay(c *fiber.Ctx) error {
	out, err := h.uc.MarkPaid(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Receipt godoc
// @Summary      Descargar comprobante de venta en PDF
// @Tags         tickets
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID del ticket"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tickets/{id}/receipt [get]
func (h *TicketHandler) Receipt(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.receiptUC.DownloadReceipt(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
