package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// AnalyticsRepository define consultas agregadas read-only para los dashboards.
type AnalyticsRepository interface {
	// TotalPaidSales suma el total de los tickets con pago Paid.
	TotalPaidSales(ctx context.Context) (decimal.Decimal, error)
	// TotalProductStock suma el stock de todos los productos.
	TotalProductStock(ctx context.Context) (int64, error)
	CountTickets(ctx context.Context) (int64, error)
	// CountLowStockProducts cuenta productos con stock < min_stock.
	CountLowStockProducts(ctx context.Context) (int64, error)
	// CountWorkOrdersByStatus cuenta órdenes cuyo estado está en statuses.
	CountWorkOrdersByStatus(ctx context.Context, statuses ...string) (int64, error)
	CountLowStockParts(ctx context.Context) (int64, error)
}
