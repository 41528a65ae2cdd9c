package repository

import "github.com/serviceflow/serviceflow-api/internal/domain/entity"

// TicketRepository define el puerto de persistencia para Ticket y sus líneas.
type TicketRepository interface {
	Create(ticket *entity.Ticket) error
	CreateItem(item *entity.TicketItem) error
	GetByID(id string) (*entity.Ticket, error)
	GetItemsByTicketID(ticketID string) ([]*entity.TicketItem, error)
	// List devuelve todos los tickets en orden cronológico inverso, con ItemsCount poblado.
	List() ([]*entity.Ticket, error)
	// ListByPaymentStatus filtra por estado de pago, orden cronológico inverso.
	ListByPaymentStatus(status string) ([]*entity.Ticket, error)
	// ListUnpaid devuelve los tickets con pago Pending, Partial u Overdue,
	// con ItemsCount poblado (para el reporte de morosos).
	ListUnpaid() ([]*entity.Ticket, error)
	UpdatePaymentStatus(id, status string) error
}
