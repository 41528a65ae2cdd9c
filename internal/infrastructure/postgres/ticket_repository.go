package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/serviceflow/serviceflow-api/internal/domain/entity"
	"github.com/serviceflow/serviceflow-api/internal/domain/repository"
)

var _ repository.TicketRepository = (*TicketRepo)(nil)

// listTicketColumns incluye el conteo de líneas para listados sin cargar los items.
const listTicketColumns = `
	t.id, t.date, t.customer_name, COALESCE(t.payment_method, ''), t.payment_status,
	t.subtotal, t.tax, t.total, t.exchange_rate, t.amount_usd, t.amount_ves,
	(SELECT COUNT(*) FROM ticket_items i WHERE i.ticket_id = t.id) AS items_count`

// TicketRepo implementación del puerto TicketRepository sobre PostgreSQL (usable con pool o tx).
type TicketRepo struct {
	q Querier
}

// NewTicketRepository construye el adaptador de persistencia para tickets. Pasar pool o tx (Querier).
func NewTicketRepository(q Querier) *TicketRepo {
	return &TicketRepo{q: q}
}

// Create persiste la cabecera del ticket. Las líneas se insertan con CreateItem.
func (r *TicketRepo) Create(ticket *entity.Ticket) error {
	query := `
		INSERT INTO tickets (id, date, customer_name, payment_method, payment_status, subtotal, tax, total, exchange_rate, amount_usd, amount_ves)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		ticket.ID, ticket.Date, ticket.CustomerName, nullIfEmpty(ticket.PaymentMethod),
		ticket.PaymentStatus, ticket.Subtotal, ticket.Tax, ticket.Total,
		ticket.ExchangeRate, ticket.AmountUSD, ticket.AmountVES,
	)
	if err != nil {
		return fmt.Errorf("insert ticket: %w", err)
	}
	return nil
}

// CreateItem persiste una línea de venta.
func (r *TicketRepo) CreateItem(item *entity.TicketItem) error {
	query := `
		INSERT INTO ticket_items (id, ticket_id, product_id, quantity, price)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.TicketID, item.ProductID, item.Quantity, item.Price,
	)
	if err != nil {
		return fmt.Errorf("insert ticket item: %w", err)
	}
	return nil
}

// GetByID obtiene un ticket por ID (sin líneas).
func (r *TicketRepo) GetByID(id string) (*entity.Ticket, error) {
	query := `SELECT ` + listTicketColumns + ` FROM tickets t WHERE t.id = $1`
	var t entity.Ticket
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.Date, &t.CustomerName, &t.PaymentMethod, &t.PaymentStatus,
		&t.Subtotal, &t.Tax, &t.Total, &t.ExchangeRate, &t.AmountUSD, &t.AmountVES,
		&t.ItemsCount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ticket: %w", err)
	}
	return &t, nil
}

// GetItemsByTicketID obtiene las líneas de un ticket.
func (r *TicketRepo) GetItemsByTicketID(ticketID string) ([]*entity.TicketItem, error) {
	query := `SELECT id, ticket_id, product_id, quantity, price FROM ticket_items WHERE ticket_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, ticketID)
	if err != nil {
		return nil, fmt.Errorf("list ticket items: %w", err)
	}
	defer rows.Close()
	var list []*entity.TicketItem
	for rows.Next() {
		var it entity.TicketItem
		if err := rows.Scan(&it.ID, &it.TicketID, &it.ProductID, &it.Quantity, &it.Price); err != nil {
			return nil, fmt.Errorf("scan ticket item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// List devuelve todos los tickets en orden cronológico inverso con ItemsCount poblado.
func (r *TicketRepo) List() ([]*entity.Ticket, error) {
	query := `SELECT ` + listTicketColumns + ` FROM tickets t ORDER BY t.date DESC`
	return r.list(query)
}

// ListByPaymentStatus filtra por estado de pago, orden cronológico inverso.
func (r *TicketRepo) ListByPaymentStatus(status string) ([]*entity.Ticket, error) {
	query := `SELECT ` + listTicketColumns + ` FROM tickets t WHERE t.payment_status = $1 ORDER BY t.date DESC`
	return r.list(query, status)
}

// ListUnpaid devuelve los tickets con pago Pending, Partial u Overdue.
func (r *TicketRepo) ListUnpaid() ([]*entity.Ticket, error) {
	query := `SELECT ` + listTicketColumns + ` FROM tickets t
		WHERE t.payment_status IN ($1, $2, $3) ORDER BY t.date DESC`
	return r.list(query,
		entity.TicketPaymentPending, entity.TicketPaymentPartial, entity.TicketPaymentOverdue)
}

// UpdatePaymentStatus cambia el estado de pago del ticket.
func (r *TicketRepo) UpdatePaymentStatus(id, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE tickets SET payment_status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update ticket payment status: %w", err)
	}
	return nil
}

func (r *TicketRepo) list(query string, args ...any) ([]*entity.Ticket, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	defer rows.Close()
	var list []*entity.Ticket
	for rows.Next() {
		var t entity.Ticket
		if err := rows.Scan(&t.ID, &t.Date, &t.CustomerName, &t.PaymentMethod, &t.PaymentStatus,
			&t.Subtotal, &t.Tax, &t.Total, &t.ExchangeRate, &t.AmountUSD, &t.AmountVES,
			&t.ItemsCount); err != nil {
			return nil, fmt.Errorf("scan ticket: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}
