package analytics_test

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serviceflow/serviceflow-api/internal/application/analytics"
	"github.com/serviceflow/serviceflow-api/internal/domain/entity"
)

// fakeAnalyticsRepo devuelve valores fijos y registra con qué estados se
// consultan los conteos de órdenes.
type fakeAnalyticsRepo struct {
	paidSales      decimal.Decimal
	productStock   int64
	ticketCount    int64
	lowStockProds  int64
	lowStockParts  int64
	ordersByStatus map[string]int64

	salesErr error
}

func (r *fakeAnalyticsRepo) TotalPaidSales(context.Context) (decimal.Decimal, error) {
	return r.paidSales, r.salesErr
}
func (r *fakeAnalyticsRepo) TotalProductStock(context.Context) (int64, error) {
	return r.productStock, nil
}
func (r *fakeAnalyticsRepo) CountTickets(context.Context) (int64, error) {
	return r.ticketCount, nil
}
func (r *fakeAnalyticsRepo) CountLowStockProducts(context.Context) (int64, error) {
	return r.lowStockProds, nil
}
func (r *fakeAnalyticsRepo) CountLowStockParts(context.Context) (int64, error) {
	return r.lowStockParts, nil
}
func (r *fakeAnalyticsRepo) CountWorkOrdersByStatus(_ context.Context, statuses ...string) (int64, error) {
	sorted := append([]string(nil), statuses...)
	sort.Strings(sorted)
	return r.ordersByStatus[strings.Join(sorted, "|")], nil
}

func statusKey(statuses ...string) string {
	sort.Strings(statuses)
	return strings.Join(statuses, "|")
}

func TestAdminSummary(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		paidSales:     decimal.RequireFromString("1234.567"),
		productStock:  85,
		ticketCount:   12,
		lowStockProds: 3,
	}
	uc := analytics.NewDashboardUseCase(repo)

	out, err := uc.AdminSummary(context.Background())
	require.NoError(t, err)

	assert.True(t, decimal.RequireFromString("1234.57").Equal(out.TotalSales),
		"las ventas se redondean a dos decimales, got %s", out.TotalSales)
	assert.Equal(t, int64(85), out.TotalProducts)
	assert.Equal(t, int64(12), out.TotalTickets)
	assert.Equal(t, int64(3), out.LowStockProducts)
}

func TestAdminSummary_PropagaErrorDeConsulta(t *testing.T) {
	repo := &fakeAnalyticsRepo{salesErr: errors.New("conexión perdida")}
	uc := analytics.NewDashboardUseCase(repo)

	_, err := uc.AdminSummary(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "total de ventas")
}

func TestRepairsSummary_AgrupaEstadosEnProceso(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		lowStockParts: 2,
		ordersByStatus: map[string]int64{
			statusKey(entity.RepairStatusRecibido): 4,
			statusKey(entity.RepairStatusEnDiagnostico, entity.RepairStatusEsperandoParte, entity.RepairStatusEnReparacion): 7,
			statusKey(entity.RepairStatusReparado):  1,
			statusKey(entity.RepairStatusEntregado): 9,
		},
	}
	uc := analytics.NewDashboardUseCase(repo)

	out, err := uc.RepairsSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(4), out.PendingRepairs)
	assert.Equal(t, int64(7), out.InProgressRepairs, "diagnóstico, esperando parte y en reparación cuentan como en proceso")
	assert.Equal(t, int64(1), out.CompletedRepairs)
	assert.Equal(t, int64(9), out.DeliveredRepairs)
	assert.Equal(t, int64(2), out.LowStockParts)
}
