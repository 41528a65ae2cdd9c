package debts

import (
	"fmt"
	"sort"

	"github.com/serviceflow/serviceflow-api/internal/application/dto"
	"github.com/serviceflow/serviceflow-api/internal/domain/entity"
	"github.com/serviceflow/serviceflow-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// DebtUseCase agrega deudas de órdenes de reparación y ventas por cliente.
type DebtUseCase struct {
	orderRepo  repository.WorkOrderRepository
	ticketRepo repository.TicketRepository
}

// NewDebtUseCase construye el caso de uso de morosidad.
func NewDebtUseCase(orderRepo repository.WorkOrderRepository, ticketRepo repository.TicketRepository) *DebtUseCase {
	return &DebtUseCase{orderRepo: orderRepo, ticketRepo: ticketRepo}
}

// ListDelinquents construye el reporte de clientes morosos.
//
// Entran las órdenes Entregado con pago pendiente y los tickets no pagados.
// Se agrupa por nombre exacto de cliente; el teléfono y el identificador se
// toman de la primera orden de reparación que los aporte (las ventas no los
// tienen). La deuda de una orden es costo menos pagado, sin recortar; la de un
// ticket es total menos pagado, recortada a cero. El resultado va ordenado por
// deuda total descendente.
func (uc *DebtUseCase) ListDelinquents() ([]dto.DelinquentCustomerDTO, error) {
	orders, err := uc.orderRepo.ListUnpaidDelivered()
	if err != nil {
		return nil, err
	}
	tickets, err := uc.ticketRepo.ListUnpaid()
	if err != nil {
		return nil, err
	}

	byName := make(map[string]*dto.DelinquentCustomerDTO)
	var names []string // preserva orden de primera aparición

	customer := func(name string) *dto.DelinquentCustomerDTO {
		if c, ok := byName[name]; ok {
			return c
		}
		c := &dto.DelinquentCustomerDTO{
			CustomerName: name,
			TotalDebt:    decimal.Zero,
		}
		byName[name] = c
		names = append(names, name)
		return c
	}

	// Primero las órdenes de reparación: aportan teléfono e identificador.
	for _, o := range orders {
		c := customer(o.CustomerName)
		if c.CustomerPhone == "" && o.CustomerPhone != "" {
			c.CustomerPhone = o.CustomerPhone
		}
		if c.CustomerID == "" && o.CustomerID != "" {
			c.CustomerID = o.CustomerID
		}
		debt := o.BalanceDue()
		c.TotalDebt = c.TotalDebt.Add(debt)
		c.OrdersCount++
		c.Orders = append(c.Orders, dto.DelinquentOrderDTO{
			Type:          dto.DebtSourceRepair,
			Code:          o.Code,
			Device:        o.Device,
			Debt:          debt,
			PaymentStatus: o.PaymentStatus,
			Date:          o.ReceivedDate,
		})
	}

	// Después las ventas pendientes de pago.
	for _, t := range tickets {
		c := customer(t.CustomerName)
		debt := t.Total.Sub(t.PaidAmount())
		if debt.IsNegative() {
			debt = decimal.Zero
		}
		c.TotalDebt = c.TotalDebt.Add(debt)
		c.OrdersCount++
		c.Orders = append(c.Orders, dto.DelinquentOrderDTO{
			Type:          dto.DebtSourceSale,
			Code:          "T-" + shortID(t.ID),
			Device:        fmt.Sprintf("Venta POS (%d artículos)", t.ItemsCount),
			Debt:          debt,
			PaymentStatus: t.PaymentStatus,
			Date:          t.Date,
		})
	}

	out := make([]dto.DelinquentCustomerDTO, 0, len(names))
	for _, name := range names {
		out = append(out, *byName[name])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TotalDebt.GreaterThan(out[j].TotalDebt)
	})
	return out, nil
}

// PaymentStatistics calcula las estadísticas de pago de la cartera.
// Considera únicamente órdenes de reparación; las ventas quedan fuera.
// Todos los montos se redondean a dos decimales.
func (uc *DebtUseCase) PaymentStatistics() (*dto.PaymentStatisticsDTO, error) {
	orders, err := uc.orderRepo.ListAll()
	if err != nil {
		return nil, err
	}

	stats := &dto.PaymentStatisticsDTO{
		TotalPaid:     decimal.Zero,
		TotalPartial:  decimal.Zero,
		TotalPending:  decimal.Zero,
		OverdueAmount: decimal.Zero,
	}
	debtors := make(map[string]struct{})

	for _, o := range orders {
		switch o.PaymentStatus {
		case entity.WorkOrderPaymentPagado:
			stats.TotalPaid = stats.TotalPaid.Add(o.RepairCost)
		case entity.WorkOrderPaymentParcial:
			stats.TotalPaid = stats.TotalPaid.Add(o.AmountPaid)
			stats.TotalPartial = stats.TotalPartial.Add(o.BalanceDue())
			debtors[o.CustomerName] = struct{}{}
		case entity.WorkOrderPaymentPendiente:
			stats.TotalPending = stats.TotalPending.Add(o.BalanceDue())
			debtors[o.CustomerName] = struct{}{}
		case entity.WorkOrderPaymentVencido:
			stats.OverdueAmount = stats.OverdueAmount.Add(o.BalanceDue())
			stats.OverdueCount++
			debtors[o.CustomerName] = struct{}{}
		}
	}

	stats.TotalPaid = stats.TotalPaid.Round(2)
	stats.TotalPartial = stats.TotalPartial.Round(2)
	stats.TotalPending = stats.TotalPending.Round(2)
	stats.OverdueAmount = stats.OverdueAmount.Round(2)
	stats.CustomersWithDebt = len(debtors)
	return stats, nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
