package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePartRequest alta de repuesto.
type CreatePartRequest struct {
	Name             string          `json:"name"`
	SKU              string          `json:"sku"`
	Stock            int             `json:"stock"`
	Price            decimal.Decimal `json:"price"`
	CompatibleModels []string        `json:"compatible_models"`
	MinStock         int             `json:"min_stock"`
}

// UpdatePartRequest actualización parcial de repuesto.
type UpdatePartRequest struct {
	Name             *string          `json:"name"`
	SKU              *string          `json:"sku"`
	Stock            *int             `json:"stock"`
	Price            *decimal.Decimal `json:"price"`
	CompatibleModels *[]string        `json:"compatible_models"`
	MinStock         *int             `json:"min_stock"`
}

// PartResponse representación de un repuesto.
type PartResponse struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	SKU              string          `json:"sku"`
	Stock            int             `json:"stock"`
	Price            decimal.Decimal `json:"price"`
	CompatibleModels []string        `json:"compatible_models"`
	MinStock         int             `json:"min_stock"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}
