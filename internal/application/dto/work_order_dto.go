package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateWorkOrderRequest alta de orden de reparación.
type CreateWorkOrderRequest struct {
	CustomerName            string           `json:"customer_name"`
	CustomerPhone           string           `json:"customer_phone"`
	CustomerID              string           `json:"customer_id"`
	Device                  string           `json:"device"`
	Issue                   string           `json:"issue"`
	Status                  string           `json:"status"`
	EstimatedCompletionDate *time.Time       `json:"estimated_completion_date"`
	RepairCost              *decimal.Decimal `json:"repair_cost"`
	AmountPaid              *decimal.Decimal `json:"amount_paid"`
	PaymentStatus           string           `json:"payment_status"`
	PaymentNotes            string           `json:"payment_notes"`
}

// UpdateWorkOrderRequest actualización parcial: solo se aplican los campos presentes.
type UpdateWorkOrderRequest struct {
	CustomerName            *string          `json:"customer_name"`
	CustomerPhone           *string          `json:"customer_phone"`
	CustomerID              *string          `json:"customer_id"`
	Device                  *string          `json:"device"`
	Issue                   *string          `json:"issue"`
	Status                  *string          `json:"status"`
	EstimatedCompletionDate *time.Time       `json:"estimated_completion_date"`
	RepairCost              *decimal.Decimal `json:"repair_cost"`
	AmountPaid              *decimal.Decimal `json:"amount_paid"`
	PaymentStatus           *string          `json:"payment_status"`
	PaymentDate             *time.Time       `json:"payment_date"`
	PaymentNotes            *string          `json:"payment_notes"`
}

// WorkOrderResponse representación de una orden de reparación.
// BalanceDue es derivado (repair_cost - amount_paid), nunca se persiste.
type WorkOrderResponse struct {
	ID                      string          `json:"id"`
	Code                    string          `json:"code"`
	CustomerName            string          `json:"customer_name"`
	CustomerPhone           string          `json:"customer_phone,omitempty"`
	CustomerID              string          `json:"customer_id,omitempty"`
	Device                  string          `json:"device"`
	Issue                   string          `json:"issue"`
	Status                  string          `json:"status"`
	ReceivedDate            time.Time       `json:"received_date"`
	EstimatedCompletionDate *time.Time      `json:"estimated_completion_date,omitempty"`
	RepairCost              decimal.Decimal `json:"repair_cost"`
	AmountPaid              decimal.Decimal `json:"amount_paid"`
	BalanceDue              decimal.Decimal `json:"balance_due"`
	PaymentStatus           string          `json:"payment_status"`
	PaymentDate             *time.Time      `json:"payment_date,omitempty"`
	PaymentNotes            string          `json:"payment_notes,omitempty"`
}
