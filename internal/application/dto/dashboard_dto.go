package dto

import "github.com/shopspring/decimal"

// AdminDashboardDTO resumen para usuarios admin.
// Las claves camelCase se mantienen por compatibilidad con el cliente existente.
type AdminDashboardDTO struct {
	TotalSales       decimal.Decimal `json:"totalSales"`
	TotalProducts    int64           `json:"totalProducts"`
	TotalTickets     int64           `json:"totalTickets"`
	LowStockProducts int64           `json:"lowStockProducts"`
}

// RepairsDashboardDTO resumen para técnicos (módulo de reparaciones).
type RepairsDashboardDTO struct {
	PendingRepairs    int64 `json:"pendingRepairs"`
	InProgressRepairs int64 `json:"inProgressRepairs"`
	CompletedRepairs  int64 `json:"completedRepairs"`
	DeliveredRepairs  int64 `json:"deliveredRepairs"`
	LowStockParts     int64 `json:"lowStockParts"`
}
