package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest alta de producto.
type CreateProductRequest struct {
	Name     string          `json:"name"`
	Brand    string          `json:"brand"`
	Stock    int             `json:"stock"`
	Price    decimal.Decimal `json:"price"`
	ImageURL string          `json:"image_url"`
	MinStock int             `json:"min_stock"`
}

// UpdateProductRequest actualización parcial de producto.
type UpdateProductRequest struct {
	Name     *string          `json:"name"`
	Brand    *string          `json:"brand"`
	Stock    *int             `json:"stock"`
	Price    *decimal.Decimal `json:"price"`
	ImageURL *string          `json:"image_url"`
	MinStock *int             `json:"min_stock"`
}

// ProductResponse representación de un producto.
type ProductResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Brand     string          `json:"brand"`
	Stock     int             `json:"stock"`
	Price     decimal.Decimal `json:"price"`
	ImageURL  string          `json:"image_url"`
	MinStock  int             `json:"min_stock"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
