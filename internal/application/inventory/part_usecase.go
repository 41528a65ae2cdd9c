package inventory

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/serviceflow/serviceflow-api/internal/application/dto"
	"github.com/serviceflow/serviceflow-api/internal/domain"
	"github.com/serviceflow/serviceflow-api/internal/domain/entity"
	"github.com/serviceflow/serviceflow-api/internal/domain/repository"
)

// PartUseCase casos de uso CRUD de repuestos del taller.
type PartUseCase struct {
	partRepo repository.PartRepository
}

// NewPartUseCase construye el caso de uso de repuestos.
func NewPartUseCase(partRepo repository.PartRepository) *PartUseCase {
	return &PartUseCase{partRepo: partRepo}
}

// Create da de alta un repuesto. SKU duplicado -> ErrDuplicate.
func (uc *PartUseCase) Create(in dto.CreatePartRequest) (*dto.PartResponse, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.SKU) == "" {
		return nil, domain.ErrInvalidInput
	}
	// El precio debe ser estrictamente positivo; cero no es un precio de venta.
	if in.Stock < 0 || in.MinStock < 0 || !in.Price.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.partRepo.GetBySKU(in.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	part := &entity.Part{
		ID:               uuid.New().String(),
		Name:             in.Name,
		SKU:              in.SKU,
		Stock:            in.Stock,
		Price:            in.Price,
		CompatibleModels: in.CompatibleModels,
		MinStock:         in.MinStock,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.partRepo.Create(part); err != nil {
		return nil, err
	}
	return toPartResponse(part), nil
}

// Get obtiene un repuesto por ID.
func (uc *PartUseCase) Get(id string) (*dto.PartResponse, error) {
	part, err := uc.partRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if part == nil {
		return nil, domain.ErrNotFound
	}
	return toPartResponse(part), nil
}

// List lista repuestos; search filtra por nombre o SKU.
func (uc *PartUseCase) List(search string) ([]dto.PartResponse, error) {
	parts, err := uc.partRepo.List(search)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PartResponse, 0, len(parts))
	for _, p := range parts {
		out = append(out, *toPartResponse(p))
	}
	return out, nil
}

// Update aplica una actualización parcial. Cambiar el SKU a uno ya tomado -> ErrDuplicate.
func (uc *PartUseCase) Update(id string, in dto.UpdatePartRequest) (*dto.PartResponse, error) {
	part, err := uc.partRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if part == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, domain.ErrInvalidInput
		}
		part.Name = *in.Name
	}
	if in.SKU != nil && *in.SKU != part.SKU {
		if strings.TrimSpace(*in.SKU) == "" {
			return nil, domain.ErrInvalidInput
		}
		existing, err := uc.partRepo.GetBySKU(*in.SKU)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, domain.ErrDuplicate
		}
		part.SKU = *in.SKU
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			return nil, domain.ErrInvalidInput
		}
		part.Stock = *in.Stock
	}
	if in.Price != nil {
		if !in.Price.IsPositive() {
			return nil, domain.ErrInvalidInput
		}
		part.Price = *in.Price
	}
	if in.CompatibleModels != nil {
		part.CompatibleModels = *in.CompatibleModels
	}
	if in.MinStock != nil {
		if *in.MinStock < 0 {
			return nil, domain.ErrInvalidInput
		}
		part.MinStock = *in.MinStock
	}
	part.UpdatedAt = time.Now()
	if err := uc.partRepo.Update(part); err != nil {
		return nil, err
	}
	return toPartResponse(part), nil
}

// Delete elimina un repuesto. NotFound si no existe.
func (uc *PartUseCase) Delete(id string) error {
	part, err := uc.partRepo.GetByID(id)
	if err != nil {
		return err
	}
	if part == nil {
		return domain.ErrNotFound
	}
	return uc.partRepo.Delete(id)
}

func toPartResponse(p *entity.Part) *dto.PartResponse {
	models := p.CompatibleModels
	if models == nil {
		models = []string{}
	}
	return &dto.PartResponse{
		ID:               p.ID,
		Name:             p.Name,
		SKU:              p.SKU,
		Stock:            p.Stock,
		Price:            p.Price,
		CompatibleModels: models,
		MinStock:         p.MinStock,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}
