// Package analytics contiene los casos de uso de los dashboards del negocio:
// el resumen administrativo del punto de venta y el resumen del taller.
package analytics

import (
	"context"
	"fmt"

	"github.com/serviceflow/serviceflow-api/internal/application/dto"
	"github.com/serviceflow/serviceflow-api/internal/domain/entity"
	"github.com/serviceflow/serviceflow-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// DashboardUseCase genera los resúmenes agregados para los dashboards.
//
// Fuente de datos: AnalyticsRepository (consultas read-only).
// No accede directamente a las tablas; delega todo en el repositorio.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo}
}

// AdminSummary construye el resumen del punto de venta.
//
// Cuatro consultas en paralelo:
//  1. TotalPaidSales          → totalSales (solo tickets Paid)
//  2. TotalProductStock       → totalProducts (unidades, no referencias)
//  3. CountTickets            → totalTickets
//  4. CountLowStockProducts   → lowStockProducts (stock < min_stock)
func (uc *DashboardUseCase) AdminSummary(ctx context.Context) (*dto.AdminDashboardDTO, error) {
	type moneyResult struct {
		value decimal.Decimal
		err   error
	}
	type countResult struct {
		value int64
		err   error
	}

	salesCh := make(chan moneyResult, 1)
	stockCh := make(chan countResult, 1)
	ticketsCh := make(chan countResult, 1)
	lowStockCh := make(chan countResult, 1)

	go func() {
		v, err := uc.analyticsRepo.TotalPaidSales(ctx)
		salesCh <- moneyResult{v, err}
	}()
	go func() {
		v, err := uc.analyticsRepo.TotalProductStock(ctx)
		stockCh <- countResult{v, err}
	}()
	go func() {
		v, err := uc.analyticsRepo.CountTickets(ctx)
		ticketsCh <- countResult{v, err}
	}()
	go func() {
		v, err := uc.analyticsRepo.CountLowStockProducts(ctx)
		lowStockCh <- countResult{v, err}
	}()

	sales := <-salesCh
	stock := <-stockCh
	tickets := <-ticketsCh
	lowStock := <-lowStockCh

	if sales.err != nil {
		return nil, fmt.Errorf("dashboard: total de ventas: %w", sales.err)
	}
	if stock.err != nil {
		return nil, fmt.Errorf("dashboard: stock de productos: %w", stock.err)
	}
	if tickets.err != nil {
		return nil, fmt.Errorf("dashboard: conteo de tickets: %w", tickets.err)
	}
	if lowStock.err != nil {
		return nil, fmt.Errorf("dashboard: productos con stock bajo: %w", lowStock.err)
	}

	return &dto.AdminDashboardDTO{
		TotalSales:       sales.value.Round(2),
		TotalProducts:    stock.value,
		TotalTickets:     tickets.value,
		LowStockProducts: lowStock.value,
	}, nil
}

// RepairsSummary construye el resumen del taller.
//
// Cinco consultas en paralelo: conteos de órdenes por grupo de estado más los
// repuestos con stock bajo.
func (uc *DashboardUseCase) RepairsSummary(ctx context.Context) (*dto.RepairsDashboardDTO, error) {
	type countResult struct {
		value int64
		err   error
	}

	pendingCh := make(chan countResult, 1)
	inProgressCh := make(chan countResult, 1)
	completedCh := make(chan countResult, 1)
	deliveredCh := make(chan countResult, 1)
	lowStockCh := make(chan countResult, 1)

	go func() {
		v, err := uc.analyticsRepo.CountWorkOrdersByStatus(ctx, entity.RepairStatusRecibido)
		pendingCh <- countResult{v, err}
	}()
	go func() {
		v, err := uc.analyticsRepo.CountWorkOrdersByStatus(ctx,
			entity.RepairStatusEnDiagnostico, entity.RepairStatusEsperandoParte, entity.RepairStatusEnReparacion)
		inProgressCh <- countResult{v, err}
	}()
	go func() {
		v, err := uc.analyticsRepo.CountWorkOrdersByStatus(ctx, entity.RepairStatusReparado)
		completedCh <- countResult{v, err}
	}()
	go func() {
		v, err := uc.analyticsRepo.CountWorkOrdersByStatus(ctx, entity.RepairStatusEntregado)
		deliveredCh <- countResult{v, err}
	}()
	go func() {
		v, err := uc.analyticsRepo.CountLowStockParts(ctx)
		lowStockCh <- countResult{v, err}
	}()

	pending := <-pendingCh
	inProgress := <-inProgressCh
	completed := <-completedCh
	delivered := <-deliveredCh
	lowStock := <-lowStockCh

	if pending.err != nil {
		return nil, fmt.Errorf("dashboard: órdenes recibidas: %w", pending.err)
	}
	if inProgress.err != nil {
		return nil, fmt.Errorf("dashboard: órdenes en proceso: %w", inProgress.err)
	}
	if completed.err != nil {
		return nil, fmt.Errorf("dashboard: órdenes reparadas: %w", completed.err)
	}
	if delivered.err != nil {
		return nil, fmt.Errorf("dashboard: órdenes entregadas: %w", delivered.err)
	}
	if lowStock.err != nil {
		return nil, fmt.Errorf("dashboard: repuestos con stock bajo: %w", lowStock.err)
	}

	return &dto.RepairsDashboardDTO{
		PendingRepairs:    pending.value,
		InProgressRepairs: inProgress.value,
		CompletedRepairs:  completed.value,
		DeliveredRepairs:  delivered.value,
		LowStockParts:     lowStock.value,
	}, nil
}
