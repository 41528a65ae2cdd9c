package repairs

import (
	"context"
	"crypto/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/serviceflow/serviceflow-api/internal/application/dto"
	"github.com/serviceflow/serviceflow-api/internal/domain"
	"github.com/serviceflow/serviceflow-api/internal/domain/entity"
	"github.com/serviceflow/serviceflow-api/internal/domain/repository"
	"github.com/serviceflow/serviceflow-api/pkg/logger"
	"github.com/shopspring/decimal"
)

// Alfabeto del código corto de orden. Sin minúsculas ni símbolos para que sea
// fácil de dictar por teléfono.
const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

const codeLength = 6

// maxCodeAttempts acota los reintentos ante colisiones de código.
const maxCodeAttempts = 30

// WorkOrderUseCase gestiona el ciclo de vida de las órdenes de reparación.
type WorkOrderUseCase struct {
	orderRepo repository.WorkOrderRepository
	notifier  Notifier
	log       *logger.Logger
}

// NewWorkOrderUseCase construye el caso de uso de órdenes de reparación.
func NewWorkOrderUseCase(orderRepo repository.WorkOrderRepository, notifier Notifier, log *logger.Logger) *WorkOrderUseCase {
	return &WorkOrderUseCase{orderRepo: orderRepo, notifier: notifier, log: log}
}

// Create da de alta una orden con código corto único generado.
// Defaults: estado Recibido, pago Pendiente, costo y pagado en cero.
func (uc *WorkOrderUseCase) Create(ctx context.Context, in dto.CreateWorkOrderRequest) (*dto.WorkOrderResponse, error) {
	if strings.TrimSpace(in.CustomerName) == "" || strings.TrimSpace(in.Device) == "" ||
		strings.TrimSpace(in.Issue) == "" {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.RepairStatusRecibido
	}
	if !entity.ValidRepairStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	payStatus := in.PaymentStatus
	if payStatus == "" {
		payStatus = entity.WorkOrderPaymentPendiente
	}
	if !entity.ValidWorkOrderPaymentStatus(payStatus) {
		return nil, domain.ErrInvalidInput
	}

	code, err := uc.generateCode()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	order := &entity.WorkOrder{
		ID:                      uuid.New().String(),
		Code:                    code,
		CustomerName:            in.CustomerName,
		CustomerPhone:           in.CustomerPhone,
		CustomerID:              in.CustomerID,
		Device:                  in.Device,
		Issue:                   in.Issue,
		Status:                  status,
		ReceivedDate:            now,
		EstimatedCompletionDate: in.EstimatedCompletionDate,
		RepairCost:              decimal.Zero,
		AmountPaid:              decimal.Zero,
		PaymentStatus:           payStatus,
		PaymentNotes:            in.PaymentNotes,
		CreatedAt:               now,
		UpdatedAt:               now,
	}
	if in.RepairCost != nil {
		if in.RepairCost.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		order.RepairCost = *in.RepairCost
	}
	if in.AmountPaid != nil {
		if in.AmountPaid.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		order.AmountPaid = *in.AmountPaid
	}

	if err := uc.orderRepo.Create(order); err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("order_id", order.ID).
		Str("code", order.Code).
		Str("cliente", order.CustomerName).
		Msg("Orden de reparación creada")
	return toWorkOrderResponse(order), nil
}

// Get obtiene una orden por ID.
func (uc *WorkOrderUseCase) Get(id string) (*dto.WorkOrderResponse, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	return toWorkOrderResponse(order), nil
}

// List lista órdenes; search filtra por nombre de cliente o equipo.
func (uc *WorkOrderUseCase) List(search string) ([]dto.WorkOrderResponse, error) {
	orders, err := uc.orderRepo.List(search)
	if err != nil {
		return nil, err
	}
	out := make([]dto.WorkOrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, *toWorkOrderResponse(o))
	}
	return out, nil
}

// Update aplica una actualización parcial. Si el estado cambia a Reparado o a
// Entregado y el cliente tiene teléfono, se dispara la notificación tras
// persistir; el envío corre en segundo plano y sus fallos no afectan la
// respuesta.
func (uc *WorkOrderUseCase) Update(ctx context.Context, id string, in dto.UpdateWorkOrderRequest) (*dto.WorkOrderResponse, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}

	prevStatus := order.Status

	if in.CustomerName != nil {
		if strings.TrimSpace(*in.CustomerName) == "" {
			return nil, domain.ErrInvalidInput
		}
		order.CustomerName = *in.CustomerName
	}
	if in.CustomerPhone != nil {
		order.CustomerPhone = *in.CustomerPhone
	}
	if in.CustomerID != nil {
		order.CustomerID = *in.CustomerID
	}
	if in.Device != nil {
		if strings.TrimSpace(*in.Device) == "" {
			return nil, domain.ErrInvalidInput
		}
		order.Device = *in.Device
	}
	if in.Issue != nil {
		order.Issue = *in.Issue
	}
	if in.Status != nil {
		if !entity.ValidRepairStatus(*in.Status) {
			return nil, domain.ErrInvalidInput
		}
		order.Status = *in.Status
	}
	if in.EstimatedCompletionDate != nil {
		order.EstimatedCompletionDate = in.EstimatedCompletionDate
	}
	if in.RepairCost != nil {
		if in.RepairCost.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		order.RepairCost = *in.RepairCost
	}
	if in.AmountPaid != nil {
		if in.AmountPaid.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		order.AmountPaid = *in.AmountPaid
	}
	if in.PaymentStatus != nil {
		if !entity.ValidWorkOrderPaymentStatus(*in.PaymentStatus) {
			return nil, domain.ErrInvalidInput
		}
		order.PaymentStatus = *in.PaymentStatus
	}
	if in.PaymentDate != nil {
		order.PaymentDate = in.PaymentDate
	}
	if in.PaymentNotes != nil {
		order.PaymentNotes = *in.PaymentNotes
	}
	order.UpdatedAt = time.Now()

	if err := uc.orderRepo.Update(order); err != nil {
		return nil, err
	}

	uc.maybeNotify(prevStatus, order)

	return toWorkOrderResponse(order), nil
}

// Delete elimina una orden. NotFound si no existe.
func (uc *WorkOrderUseCase) Delete(id string) error {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrNotFound
	}
	return uc.orderRepo.Delete(id)
}

// maybeNotify dispara la notificación correspondiente a la transición de estado.
// Corre tras el commit; los fallos de envío solo se loguean.
func (uc *WorkOrderUseCase) maybeNotify(prevStatus string, order *entity.WorkOrder) {
	if uc.notifier == nil || order.Status == prevStatus {
		return
	}
	var notify func(context.Context, *entity.WorkOrder) error
	switch order.Status {
	case entity.RepairStatusReparado:
		notify = uc.notifier.RepairReady
	case entity.RepairStatusEntregado:
		notify = uc.notifier.RepairDelivered
	default:
		return
	}
	if order.CustomerPhone == "" {
		uc.log.Warn().
			Str("order_id", order.ID).
			Str("code", order.Code).
			Str("estado", order.Status).
			Msg("Orden sin teléfono de cliente, notificación omitida")
		return
	}

	snapshot := *order
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := notify(ctx, &snapshot); err != nil {
			uc.log.Error().Err(err).
				Str("order_id", snapshot.ID).
				Str("code", snapshot.Code).
				Str("estado", snapshot.Status).
				Msg("Fallo al enviar notificación al cliente")
		}
	}()
}

// generateCode produce un código corto único de 6 caracteres A-Z0-9.
// Reintenta ante colisiones; agotados los intentos devuelve ErrConflict.
func (uc *WorkOrderUseCase) generateCode() (string, error) {
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code, err := randomCode()
		if err != nil {
			return "", err
		}
		exists, err := uc.orderRepo.CodeExists(code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
	return "", domain.ErrConflict
}

func randomCode() (string, error) {
	buf := make([]byte, codeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i, b := range buf {
		buf[i] = codeAlphabet[int(b)%len(codeAlphabet)]
	}
	return string(buf), nil
}

func toWorkOrderResponse(o *entity.WorkOrder) *dto.WorkOrderResponse {
	return &dto.WorkOrderResponse{
		ID:                      o.ID,
		Code:                    o.Code,
		CustomerName:            o.CustomerName,
		CustomerPhone:           o.CustomerPhone,
		CustomerID:              o.CustomerID,
		Device:                  o.Device,
		Issue:                   o.Issue,
		Status:                  o.Status,
		ReceivedDate:            o.ReceivedDate,
		EstimatedCompletionDate: o.EstimatedCompletionDate,
		RepairCost:              o.RepairCost,
		AmountPaid:              o.AmountPaid,
		BalanceDue:              o.BalanceDue(),
		PaymentStatus:           o.PaymentStatus,
		PaymentDate:             o.PaymentDate,
		PaymentNotes:            o.PaymentNotes,
	}
}
