package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/serviceflow/serviceflow-api/internal/domain"
	"github.com/serviceflow/serviceflow-api/internal/domain/entity"
	"github.com/serviceflow/serviceflow-api/internal/domain/repository"
)

var _ repository.PartRepository = (*PartRepo)(nil)

const partColumns = `id, name, sku, stock, price, compatible_models, min_stock, created_at, updated_at`

// PartRepo implementación del puerto PartRepository sobre PostgreSQL.
// compatible_models se persiste como jsonb.
type PartRepo struct {
	q Querier
}

// NewPartRepository construye el adaptador de persistencia para repuestos.
func NewPartRepository(q Querier) *PartRepo {
	return &PartRepo{q: q}
}

// Create persiste un nuevo repuesto. SKU duplicado -> ErrDuplicate.
func (r *PartRepo) Create(part *entity.Part) error {
	query := `
		INSERT INTO parts (id, name, sku, stock, price, compatible_models, min_stock, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		part.ID, part.Name, part.SKU, part.Stock, part.Price,
		part.CompatibleModels, part.MinStock, part.CreatedAt, part.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert part: %w", err)
	}
	return nil
}

// GetByID obtiene un repuesto por ID.
func (r *PartRepo) GetByID(id string) (*entity.Part, error) {
	query := `SELECT ` + partColumns + ` FROM parts WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetBySKU obtiene un repuesto por SKU.
func (r *PartRepo) GetBySKU(sku string) (*entity.Part, error) {
	query := `SELECT ` + partColumns + ` FROM parts WHERE sku = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, sku))
}

// Update actualiza un repuesto existente. SKU duplicado -> ErrDuplicate.
func (r *PartRepo) Update(part *entity.Part) error {
	query := `
		UPDATE parts SET name = $2, sku = $3, stock = $4, price = $5, compatible_models = $6, min_stock = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		part.ID, part.Name, part.SKU, part.Stock, part.Price,
		part.CompatibleModels, part.MinStock, part.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update part: %w", err)
	}
	return nil
}

// List lista repuestos; search filtra por nombre o SKU (ILIKE).
func (r *PartRepo) List(search string) ([]*entity.Part, error) {
	query := `SELECT ` + partColumns + ` FROM parts`
	args := []any{}
	if search != "" {
		query += ` WHERE name ILIKE $1 OR sku ILIKE $1`
		args = append(args, "%"+search+"%")
	}
	query += ` ORDER BY name ASC`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list parts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Part
	for rows.Next() {
		var p entity.Part
		if err := rows.Scan(&p.ID, &p.Name, &p.SKU, &p.Stock, &p.Price,
			&p.CompatibleModels, &p.MinStock, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan part: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete elimina un repuesto por ID.
func (r *PartRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM parts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete part: %w", err)
	}
	return nil
}

func (r *PartRepo) scanOne(row pgx.Row) (*entity.Part, error) {
	var p entity.Part
	err := row.Scan(&p.ID, &p.Name, &p.SKU, &p.Stock, &p.Price,
		&p.CompatibleModels, &p.MinStock, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get part: %w", err)
	}
	return &p, nil
}
