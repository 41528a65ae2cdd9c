package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto a la venta en el punto de venta.
// Stock se descuenta únicamente desde el motor de ventas (dentro de una transacción);
// la edición directa de stock es una operación administrativa.
type Product struct {
	ID        string
	Name      string
	Brand     string
	Stock     int             // nunca negativo; una venta que lo dejaría en negativo se rechaza completa
	Price     decimal.Decimal // precio de venta, IVA incluido
	ImageURL  string
	MinStock  int // umbral de alerta de stock bajo
	CreatedAt time.Time
	UpdatedAt time.Time
}
