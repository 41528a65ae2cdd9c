package postgres

import (
	"context"
	"fmt"

	"github.com/serviceflow/serviceflow-api/internal/domain/entity"
	"github.com/serviceflow/serviceflow-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas agregadas read-only para los dashboards.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// TotalPaidSales suma el total de los tickets con pago Paid.
func (r *AnalyticsRepo) TotalPaidSales(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(ctx,
		`SELECT COALESCE(SUM(total), 0) FROM tickets WHERE payment_status = $1`,
		entity.TicketPaymentPaid).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("total paid sales: %w", err)
	}
	return total, nil
}

// TotalProductStock suma las unidades en stock de todos los productos.
func (r *AnalyticsRepo) TotalProductStock(ctx context.Context) (int64, error) {
	var total int64
	err := r.q.QueryRow(ctx, `SELECT COALESCE(SUM(stock), 0) FROM products`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("total product stock: %w", err)
	}
	return total, nil
}

// CountTickets cuenta todos los tickets.
func (r *AnalyticsRepo) CountTickets(ctx context.Context) (int64, error) {
	var n int64
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM tickets`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count tickets: %w", err)
	}
	return n, nil
}

// CountLowStockProducts cuenta productos con stock por debajo de su umbral.
func (r *AnalyticsRepo) CountLowStockProducts(ctx context.Context) (int64, error) {
	var n int64
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM products WHERE stock < min_stock`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count low stock products: %w", err)
	}
	return n, nil
}

// CountWorkOrdersByStatus cuenta órdenes cuyo estado está en statuses.
func (r *AnalyticsRepo) CountWorkOrdersByStatus(ctx context.Context, statuses ...string) (int64, error) {
	var n int64
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM work_orders WHERE status = ANY($1)`, statuses).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count work orders by status: %w", err)
	}
	return n, nil
}

// CountLowStockParts cuenta repuestos con stock por debajo de su umbral.
func (r *AnalyticsRepo) CountLowStockParts(ctx context.Context) (int64, error) {
	var n int64
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM parts WHERE stock < min_stock`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count low stock parts: %w", err)
	}
	return n, nil
}
