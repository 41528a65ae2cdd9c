package repository

import "github.com/serviceflow/serviceflow-api/internal/domain/entity"

// WorkOrderRepository define el puerto de persistencia para WorkOrder.
type WorkOrderRepository interface {
	Create(order *entity.WorkOrder) error
	GetByID(id string) (*entity.WorkOrder, error)
	Update(order *entity.WorkOrder) error
	Delete(id string) error
	// List devuelve las órdenes; search filtra por nombre de cliente o equipo
	// (substring, sin distinción de mayúsculas), orden por fecha de recepción descendente.
	List(search string) ([]*entity.WorkOrder, error)
	// ListAll devuelve todas las órdenes (para estadísticas de pago).
	ListAll() ([]*entity.WorkOrder, error)
	// ListUnpaidDelivered devuelve las órdenes Entregado con pago Pendiente,
	// Pago Parcial o Vencido (para el reporte de morosos).
	ListUnpaidDelivered() ([]*entity.WorkOrder, error)
	// CodeExists indica si ya hay una orden con ese código corto.
	CodeExists(code string) (bool, error)
}
