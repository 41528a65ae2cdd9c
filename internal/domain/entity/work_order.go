package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de reparación. El ciclo de vida ordenado es
// Recibido → En Diagnóstico → Esperando Parte → En Reparación → Reparado → Entregado,
// pero las transiciones no se restringen: una actualización puede fijar cualquier estado.
// Los strings con acentos se persisten tal cual por compatibilidad con el cliente.
const (
	RepairStatusRecibido       = "Recibido"
	RepairStatusEnDiagnostico  = "En Diagnóstico"
	RepairStatusEsperandoParte = "Esperando Parte"
	RepairStatusEnReparacion   = "En Reparación"
	RepairStatusReparado       = "Reparado"
	RepairStatusEntregado      = "Entregado"
)

// ValidRepairStatus indica si s es un estado de reparación conocido.
func ValidRepairStatus(s string) bool {
	switch s {
	case RepairStatusRecibido, RepairStatusEnDiagnostico, RepairStatusEsperandoParte,
		RepairStatusEnReparacion, RepairStatusReparado, RepairStatusEntregado:
		return true
	}
	return false
}

// Estados de pago de una orden de trabajo, independientes del estado de reparación.
const (
	WorkOrderPaymentPendiente = "Pendiente"
	WorkOrderPaymentPagado    = "Pagado"
	WorkOrderPaymentParcial   = "Pago Parcial"
	WorkOrderPaymentVencido   = "Vencido"
)

// ValidWorkOrderPaymentStatus indica si s es un estado de pago conocido.
func ValidWorkOrderPaymentStatus(s string) bool {
	switch s {
	case WorkOrderPaymentPendiente, WorkOrderPaymentPagado,
		WorkOrderPaymentParcial, WorkOrderPaymentVencido:
		return true
	}
	return false
}

// WorkOrder representa una orden de reparación de un equipo.
// Además del ID opaco lleva un código corto legible (6 caracteres A-Z0-9, único)
// que se usa de cara al cliente.
type WorkOrder struct {
	ID                      string
	Code                    string
	CustomerName            string
	CustomerPhone           string // opcional; sin teléfono no hay notificaciones
	CustomerID              string // identificador externo del cliente, opcional
	Device                  string
	Issue                   string
	Status                  string
	ReceivedDate            time.Time
	EstimatedCompletionDate *time.Time

	// Sub-registro de pago.
	RepairCost    decimal.Decimal
	AmountPaid    decimal.Decimal
	PaymentStatus string
	PaymentDate   *time.Time
	PaymentNotes  string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// BalanceDue devuelve el saldo pendiente: costo de reparación menos monto pagado.
// No se recorta a cero: un pago en exceso produce saldo negativo.
func (w *WorkOrder) BalanceDue() decimal.Decimal {
	return w.RepairCost.Sub(w.AmountPaid)
}
