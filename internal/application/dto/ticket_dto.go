package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// TicketItemRequest línea de venta solicitada. El precio NO lo aporta el caller:
// se toma del producto al momento de la venta.
type TicketItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// CreateTicketRequest datos para registrar una venta.
type CreateTicketRequest struct {
	CustomerName  string              `json:"customer_name"`
	PaymentMethod string              `json:"payment_method"`
	PaymentStatus string              `json:"payment_status"`
	Items         []TicketItemRequest `json:"items"`
	ExchangeRate  *decimal.Decimal    `json:"exchange_rate"`
	AmountUSD     decimal.Decimal     `json:"amount_usd"`
	AmountVES     decimal.Decimal     `json:"amount_ves"`
}

// TicketItemResponse línea de venta persistida, con el precio congelado.
type TicketItemResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// TicketResponse representación de una venta.
type TicketResponse struct {
	ID            string               `json:"id"`
	Date          time.Time            `json:"date"`
	CustomerName  string               `json:"customer_name"`
	PaymentMethod string               `json:"payment_method"`
	PaymentStatus string               `json:"payment_status"`
	Subtotal      decimal.Decimal      `json:"subtotal"`
	Tax           decimal.Decimal      `json:"tax"`
	Total         decimal.Decimal      `json:"total"`
	ExchangeRate  *decimal.Decimal     `json:"exchange_rate,omitempty"`
	AmountUSD     decimal.Decimal      `json:"amount_usd"`
	AmountVES     decimal.Decimal      `json:"amount_ves"`
	Items         []TicketItemResponse `json:"items"`
}
