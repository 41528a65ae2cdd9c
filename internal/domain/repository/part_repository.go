package repository

import "github.com/serviceflow/serviceflow-api/internal/domain/entity"

// PartRepository define el puerto de persistencia para Part.
type PartRepository interface {
	Create(part *entity.Part) error
	GetByID(id string) (*entity.Part, error)
	GetBySKU(sku string) (*entity.Part, error)
	Update(part *entity.Part) error
	// List devuelve los repuestos; search filtra por nombre o SKU.
	List(search string) ([]*entity.Part, error)
	Delete(id string) error
}
