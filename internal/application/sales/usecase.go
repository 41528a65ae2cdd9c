package sales

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/serviceflow/serviceflow-api/internal/application/dto"
	"github.com/serviceflow/serviceflow-api/internal/domain"
	"github.com/serviceflow/serviceflow-api/internal/domain/entity"
	"github.com/serviceflow/serviceflow-api/internal/domain/repository"
	"github.com/serviceflow/serviceflow-api/pkg/logger"
	"github.com/shopspring/decimal"
)

// TicketUseCase motor de ventas: registra tickets descontando stock de forma atómica.
type TicketUseCase struct {
	ticketRepo repository.TicketRepository
	txRunner   TxRunner
	log        *logger.Logger
}

// NewTicketUseCase construye el motor de ventas.
func NewTicketUseCase(ticketRepo repository.TicketRepository, txRunner TxRunner, log *logger.Logger) *TicketUseCase {
	return &TicketUseCase{ticketRepo: ticketRepo, txRunner: txRunner, log: log}
}

// Create registra una venta. Todo ocurre en una sola transacción: por cada línea
// se bloquea el producto, se verifica stock y se descuenta; el precio se congela
// al valor vigente del producto. Cualquier fallo (producto inexistente, stock
// insuficiente) revierte la venta completa y ningún stock queda descontado.
func (uc *TicketUseCase) Create(ctx context.Context, in dto.CreateTicketRequest) (*dto.TicketResponse, error) {
	if strings.TrimSpace(in.CustomerName) == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	// Una venta en mostrador se cobra al momento; sin estado declarado queda Paid.
	status := in.PaymentStatus
	if status == "" {
		status = entity.TicketPaymentPaid
	}
	if !entity.ValidTicketPaymentStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	for _, it := range in.Items {
		if it.ProductID == "" || it.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
	}
	if in.AmountUSD.IsNegative() || in.AmountVES.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if in.ExchangeRate != nil && in.ExchangeRate.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	ticket := &entity.Ticket{
		ID:            uuid.New().String(),
		Date:          time.Now(),
		CustomerName:  in.CustomerName,
		PaymentMethod: in.PaymentMethod,
		PaymentStatus: status,
		Tax:           decimal.Zero,
		ExchangeRate:  in.ExchangeRate,
		AmountUSD:     in.AmountUSD,
		AmountVES:     in.AmountVES,
	}

	err := uc.txRunner.RunSale(ctx, func(productRepo repository.ProductRepository, ticketRepo repository.TicketRepository) error {
		subtotal := decimal.Zero
		items := make([]*entity.TicketItem, 0, len(in.Items))
		for _, it := range in.Items {
			product, err := productRepo.GetByIDForUpdate(it.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrNotFound
			}
			if product.Stock < it.Quantity {
				return domain.ErrInsufficientStock
			}
			if err := productRepo.UpdateStock(product.ID, product.Stock-it.Quantity); err != nil {
				return err
			}
			items = append(items, &entity.TicketItem{
				ID:        uuid.New().String(),
				TicketID:  ticket.ID,
				ProductID: product.ID,
				Quantity:  it.Quantity,
				Price:     product.Price,
			})
			subtotal = subtotal.Add(product.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
		}
		// Los precios ya incluyen impuestos: total == subtotal, tax == 0.
		ticket.Subtotal = subtotal
		ticket.Total = subtotal
		ticket.Items = items
		if err := ticketRepo.Create(ticket); err != nil {
			return err
		}
		for _, item := range items {
			if err := ticketRepo.CreateItem(item); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("ticket_id", ticket.ID).
		Str("cliente", ticket.CustomerName).
		Str("total", ticket.Total.String()).
		Int("lineas", len(ticket.Items)).
		Msg("Venta registrada")
	return toTicketResponse(ticket), nil
}

// Get obtiene un ticket con sus líneas.
func (uc *TicketUseCase) Get(id string) (*dto.TicketResponse, error) {
	ticket, err := uc.ticketRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.ticketRepo.GetItemsByTicketID(id)
	if err != nil {
		return nil, err
	}
	ticket.Items = items
	return toTicketResponse(ticket), nil
}

// List lista todos los tickets en orden cronológico inverso.
func (uc *TicketUseCase) List() ([]dto.TicketResponse, error) {
	tickets, err := uc.ticketRepo.List()
	if err != nil {
		return nil, err
	}
	return toTicketResponses(tickets), nil
}

// ListPending lista los tickets con pago Pending.
func (uc *TicketUseCase) ListPending() ([]dto.TicketResponse, error) {
	tickets, err := uc.ticketRepo.ListByPaymentStatus(entity.TicketPaymentPending)
	if err != nil {
		return nil, err
	}
	return toTicketResponses(tickets), nil
}

// MarkPaid marca un ticket como pagado. Sobre un ticket ya pagado es idempotente.
func (uc *TicketUseCase) MarkPaid(id string) (*dto.TicketResponse, error) {
	ticket, err := uc.ticketRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, domain.ErrNotFound
	}
	if ticket.PaymentStatus != entity.TicketPaymentPaid {
		if err := uc.ticketRepo.UpdatePaymentStatus(id, entity.TicketPaymentPaid); err != nil {
			return nil, err
		}
		ticket.PaymentStatus = entity.TicketPaymentPaid
	}
	return toTicketResponse(ticket), nil
}

func toTicketResponse(t *entity.Ticket) *dto.TicketResponse {
	resp := &dto.TicketResponse{
		ID:            t.ID,
		Date:          t.Date,
		CustomerName:  t.CustomerName,
		PaymentMethod: t.PaymentMethod,
		PaymentStatus: t.PaymentStatus,
		Subtotal:      t.Subtotal,
		Tax:           t.Tax,
		Total:         t.Total,
		ExchangeRate:  t.ExchangeRate,
		AmountUSD:     t.AmountUSD,
		AmountVES:     t.AmountVES,
		Items:         make([]dto.TicketItemResponse, 0, len(t.Items)),
	}
	for _, it := range t.Items {
		resp.Items = append(resp.Items, dto.TicketItemResponse{
			ID:        it.ID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     it.Price,
		})
	}
	return resp
}

func toTicketResponses(tickets []*entity.Ticket) []dto.TicketResponse {
	out := make([]dto.TicketResponse, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, *toTicketResponse(t))
	}
	return out
}
