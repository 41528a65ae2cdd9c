package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de origen de una deuda en el reporte de morosos.
const (
	DebtSourceRepair = "repair"
	DebtSourceSale   = "sale"
)

// DelinquentOrderDTO una deuda individual (orden de reparación o venta) de un cliente.
type DelinquentOrderDTO struct {
	Type          string          `json:"type"` // "repair" | "sale"
	Code          string          `json:"code"`
	Device        string          `json:"device"`
	Debt          decimal.Decimal `json:"debt"`
	PaymentStatus string          `json:"payment_status"`
	Date          time.Time       `json:"date"`
}

// DelinquentCustomerDTO agregado de deudas de un cliente, agrupado por nombre exacto.
type DelinquentCustomerDTO struct {
	CustomerName  string               `json:"customer_name"`
	CustomerPhone string               `json:"customer_phone,omitempty"`
	CustomerID    string               `json:"customer_id,omitempty"`
	TotalDebt     decimal.Decimal      `json:"total_debt"`
	OrdersCount   int                  `json:"orders_count"`
	Orders        []DelinquentOrderDTO `json:"orders"`
}

// PaymentStatisticsDTO estadísticas de pago de la cartera de reparaciones.
// Solo considera órdenes de trabajo; los tickets de venta quedan fuera a propósito.
type PaymentStatisticsDTO struct {
	TotalPaid         decimal.Decimal `json:"total_paid"`
	TotalPartial      decimal.Decimal `json:"total_partial"`
	TotalPending      decimal.Decimal `json:"total_pending"`
	OverdueAmount     decimal.Decimal `json:"overdue_amount"`
	OverdueCount      int             `json:"overdue_count"`
	CustomersWithDebt int             `json:"customers_with_debt"`
}
