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

var _ repository.WorkOrderRepository = (*WorkOrderRepo)(nil)

const workOrderColumns = `
	id, code, customer_name, COALESCE(customer_phone, ''), COALESCE(customer_id_number, ''),
	device, COALESCE(issue, ''), status, received_date, estimated_completion_date,
	repair_cost, amount_paid, payment_status, payment_date, COALESCE(payment_notes, ''),
	created_at, updated_at`

// WorkOrderRepo implementación del puerto WorkOrderRepository sobre PostgreSQL.
type WorkOrderRepo struct {
	q Querier
}

// NewWorkOrderRepository construye el adaptador de persistencia para órdenes de reparación.
func NewWorkOrderRepository(q Querier) *WorkOrderRepo {
	return &WorkOrderRepo{q: q}
}

// Create persiste una nueva orden. Código duplicado -> ErrDuplicate.
func (r *WorkOrderRepo) Create(order *entity.WorkOrder) error {
	query := `
		INSERT INTO work_orders (id, code, customer_name, customer_phone, customer_id_number,
			device, issue, status, received_date, estimated_completion_date,
			repair_cost, amount_paid, payment_status, payment_date, payment_notes,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.Code, order.CustomerName, nullIfEmpty(order.CustomerPhone),
		nullIfEmpty(order.CustomerID), order.Device, nullIfEmpty(order.Issue),
		order.Status, order.ReceivedDate, order.EstimatedCompletionDate,
		order.RepairCost, order.AmountPaid, order.PaymentStatus, order.PaymentDate,
		nullIfEmpty(order.PaymentNotes), order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert work order: %w", err)
	}
	return nil
}

// GetByID obtiene una orden por ID.
func (r *WorkOrderRepo) GetByID(id string) (*entity.WorkOrder, error) {
	query := `SELECT ` + workOrderColumns + ` FROM work_orders WHERE id = $1`
	var o entity.WorkOrder
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.Code, &o.CustomerName, &o.CustomerPhone, &o.CustomerID,
		&o.Device, &o.Issue, &o.Status, &o.ReceivedDate, &o.EstimatedCompletionDate,
		&o.RepairCost, &o.AmountPaid, &o.PaymentStatus, &o.PaymentDate, &o.PaymentNotes,
		&o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get work order: %w", err)
	}
	return &o, nil
}

// Update actualiza una orden existente.
func (r *WorkOrderRepo) Update(order *entity.WorkOrder) error {
	query := `
		UPDATE work_orders SET customer_name = $2, customer_phone = $3, customer_id_number = $4,
			device = $5, issue = $6, status = $7, estimated_completion_date = $8,
			repair_cost = $9, amount_paid = $10, payment_status = $11, payment_date = $12,
			payment_notes = $13, updated_at = $14
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.CustomerName, nullIfEmpty(order.CustomerPhone),
		nullIfEmpty(order.CustomerID), order.Device, nullIfEmpty(order.Issue),
		order.Status, order.EstimatedCompletionDate,
		order.RepairCost, order.AmountPaid, order.PaymentStatus, order.PaymentDate,
		nullIfEmpty(order.PaymentNotes), order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update work order: %w", err)
	}
	return nil
}

// Delete elimina una orden por ID.
func (r *WorkOrderRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM work_orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete work order: %w", err)
	}
	return nil
}

// List lista órdenes; search filtra por nombre de cliente o equipo (ILIKE).
func (r *WorkOrderRepo) List(search string) ([]*entity.WorkOrder, error) {
	query := `SELECT ` + workOrderColumns + ` FROM work_orders`
	args := []any{}
	if search != "" {
		query += ` WHERE customer_name ILIKE $1 OR device ILIKE $1`
		args = append(args, "%"+search+"%")
	}
	query += ` ORDER BY received_date DESC`
	return r.list(query, args...)
}

// ListAll devuelve todas las órdenes (estadísticas de pago).
func (r *WorkOrderRepo) ListAll() ([]*entity.WorkOrder, error) {
	query := `SELECT ` + workOrderColumns + ` FROM work_orders ORDER BY received_date DESC`
	return r.list(query)
}

// ListUnpaidDelivered devuelve las órdenes entregadas con pago pendiente
// (reporte de morosos).
func (r *WorkOrderRepo) ListUnpaidDelivered() ([]*entity.WorkOrder, error) {
	query := `SELECT ` + workOrderColumns + ` FROM work_orders
		WHERE status = $1 AND payment_status IN ($2, $3, $4)
		ORDER BY received_date DESC`
	return r.list(query, entity.RepairStatusEntregado,
		entity.WorkOrderPaymentPendiente, entity.WorkOrderPaymentParcial, entity.WorkOrderPaymentVencido)
}

// CodeExists indica si ya hay una orden con ese código corto.
func (r *WorkOrderRepo) CodeExists(code string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS(SELECT 1 FROM work_orders WHERE code = $1)`, code).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check work order code: %w", err)
	}
	return exists, nil
}

func (r *WorkOrderRepo) list(query string, args ...any) ([]*entity.WorkOrder, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list work orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.WorkOrder
	for rows.Next() {
		var o entity.WorkOrder
		if err := rows.Scan(&o.ID, &o.Code, &o.CustomerName, &o.CustomerPhone, &o.CustomerID,
			&o.Device, &o.Issue, &o.Status, &o.ReceivedDate, &o.EstimatedCompletionDate,
			&o.RepairCost, &o.AmountPaid, &o.PaymentStatus, &o.PaymentDate, &o.PaymentNotes,
			&o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan work order: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}
