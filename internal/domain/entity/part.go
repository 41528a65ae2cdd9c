package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Part representa un repuesto del taller de reparaciones.
// El SKU es único en todo el inventario; el stock es independiente del flujo de ventas.
type Part struct {
	ID               string
	Name             string
	SKU              string
	Stock            int
	Price            decimal.Decimal
	CompatibleModels []string // modelos de equipo compatibles, persistido como jsonb
	MinStock         int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
