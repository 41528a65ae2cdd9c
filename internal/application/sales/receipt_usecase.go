package sales

import (
	"context"
	"fmt"

	"github.com/serviceflow/serviceflow-api/internal/domain"
	"github.com/serviceflow/serviceflow-api/internal/domain/entity"
	"github.com/serviceflow/serviceflow-api/internal/domain/repository"
)

// ReceiptItem línea de ticket enriquecida con el nombre del producto para el PDF.
type ReceiptItem struct {
	entity.TicketItem
	ProductName string
}

// ReceiptPDFGenerator genera la representación gráfica (PDF) de un ticket de venta.
type ReceiptPDFGenerator interface {
	GenerateReceiptPDF(ctx context.Context, ticket *entity.Ticket, items []ReceiptItem) ([]byte, error)
}

// ReceiptUseCase genera el comprobante PDF de una venta.
type ReceiptUseCase struct {
	ticketRepo  repository.TicketRepository
	productRepo repository.ProductRepository
	generator   ReceiptPDFGenerator
}

// NewReceiptUseCase construye el caso de uso del comprobante.
func NewReceiptUseCase(
	ticketRepo repository.TicketRepository,
	productRepo repository.ProductRepository,
	generator ReceiptPDFGenerator,
) *ReceiptUseCase {
	return &ReceiptUseCase{ticketRepo: ticketRepo, productRepo: productRepo, generator: generator}
}

// DownloadReceipt recupera el ticket con sus líneas, las enriquece con el nombre
// del producto y genera el PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil) si todo sale bien.
//   - domain.ErrNotFound        si el ticket no existe.
func (uc *ReceiptUseCase) DownloadReceipt(ctx context.Context, ticketID string) (pdfBytes []byte, filename string, err error) {
	ticket, err := uc.ticketRepo.GetByID(ticketID)
	if err != nil {
		return nil, "", fmt.Errorf("receipt: obtener ticket: %w", err)
	}
	if ticket == nil {
		return nil, "", domain.ErrNotFound
	}

	rawItems, err := uc.ticketRepo.GetItemsByTicketID(ticketID)
	if err != nil {
		return nil, "", fmt.Errorf("receipt: obtener líneas: %w", err)
	}

	enriched := make([]ReceiptItem, 0, len(rawItems))
	for _, it := range rawItems {
		name := "Producto " + it.ProductID // fallback
		if product, pErr := uc.productRepo.GetByID(it.ProductID); pErr == nil && product != nil {
			name = product.Name
		}
		enriched = append(enriched, ReceiptItem{TicketItem: *it, ProductName: name})
	}

	pdfBytes, err = uc.generator.GenerateReceiptPDF(ctx, ticket, enriched)
	if err != nil {
		return nil, "", fmt.Errorf("receipt: generación fallida: %w", err)
	}

	filename = fmt.Sprintf("ticket_%s.pdf", shortID(ticket.ID))
	return pdfBytes, filename, nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
