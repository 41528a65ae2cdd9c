package repairs

import (
	"context"

	"github.com/serviceflow/serviceflow-api/internal/domain/entity"
)

// Notifier envía avisos al cliente sobre el estado de su reparación.
// Las implementaciones deciden el canal (WhatsApp, SMS, simulación en log).
type Notifier interface {
	// RepairReady avisa que el equipo está reparado y listo para retirar.
	RepairReady(ctx context.Context, order *entity.WorkOrder) error
	// RepairDelivered confirma la entrega e informa el período de garantía.
	RepairDelivered(ctx context.Context, order *entity.WorkOrder) error
}
