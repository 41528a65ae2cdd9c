package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de pago de un Ticket. Se persisten como strings en inglés por
// compatibilidad con el cliente existente.
const (
	TicketPaymentPaid    = "Paid"
	TicketPaymentPending = "Pending"
	TicketPaymentPartial = "Partial"
	TicketPaymentOverdue = "Overdue"
)

// ValidTicketPaymentStatus indica si s es uno de los estados de pago conocidos.
func ValidTicketPaymentStatus(s string) bool {
	switch s {
	case TicketPaymentPaid, TicketPaymentPending, TicketPaymentPartial, TicketPaymentOverdue:
		return true
	}
	return false
}

// Ticket representa una venta completada con una o más líneas.
// El cliente se identifica solo por nombre (texto libre, sin entidad Customer).
type Ticket struct {
	ID            string
	Date          time.Time
	CustomerName  string
	PaymentMethod string
	PaymentStatus string
	Subtotal      decimal.Decimal
	Tax           decimal.Decimal // siempre cero: los precios ya incluyen impuestos
	Total         decimal.Decimal

	// Pago multi-moneda (VES/USD). ExchangeRate nil = sin tasa registrada.
	ExchangeRate *decimal.Decimal
	AmountUSD    decimal.Decimal
	AmountVES    decimal.Decimal

	Items []*TicketItem

	// ItemsCount es de solo lectura; lo pueblan los listados que agregan COUNT
	// sin cargar las líneas completas.
	ItemsCount int
}

// TicketItem es una línea de venta. Price es una copia congelada del precio del
// producto al momento de la venta, inmune a cambios posteriores.
type TicketItem struct {
	ID        string
	TicketID  string
	ProductID string
	Quantity  int
	Price     decimal.Decimal
}

// PaidAmount devuelve el monto pagado del ticket:
// amount_usd * tasa (1 si no hay tasa registrada) + amount_ves.
func (t *Ticket) PaidAmount() decimal.Decimal {
	rate := decimal.NewFromInt(1)
	if t.ExchangeRate != nil && !t.ExchangeRate.IsZero() {
		rate = *t.ExchangeRate
	}
	return t.AmountUSD.Mul(rate).Add(t.AmountVES)
}
