package repository

import "github.com/serviceflow/serviceflow-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetByIDForUpdate obtiene el producto bloqueando la fila (SELECT FOR UPDATE).
	// Solo tiene sentido dentro de una transacción.
	GetByIDForUpdate(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	// UpdateStock fija el stock absoluto del producto (usado por el motor de ventas
	// dentro de la transacción que ya bloqueó la fila).
	UpdateStock(id string, stock int) error
	// List devuelve los productos; search filtra por nombre o marca (substring,
	// sin distinción de mayúsculas). search vacío lista todo.
	List(search string) ([]*entity.Product, error)
	Delete(id string) error
}
