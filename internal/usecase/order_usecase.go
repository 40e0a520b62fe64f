package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gwansang/internal/domain/entities"
	"gwansang/internal/usecase/interfaces"

	"github.com/oklog/ulid/v2"
	log "github.com/sirupsen/logrus"
)

var (
	ErrOrderNotFound            = errors.New("order not found")
	ErrOrderAlreadyExists       = errors.New("order already exists")
	ErrOrderAlreadyRefunded     = errors.New("order already refunded")
	ErrInvalidOrderID           = errors.New("invalid order id")
	ErrInvalidOrderInput        = errors.New("invalid order input")
	ErrInvalidServiceTransition = errors.New("invalid service status transition")
	ErrPaymentCancelFailed      = errors.New("payment cancel failed")
	// ErrRefundViaStatusUpdate rejects creates and status patches that would skip ProcessRefund.
	ErrRefundViaStatusUpdate = errors.New("refunds must go through process refund")
)

// IOrderUseCase drives an order through payment, delivery and refund.
//
// Refunds are two-phase: RequestRefund only marks the order, ProcessRefund
// cancels the payment at the gateway and flips paymentStatus to refunded.
type IOrderUseCase interface {
	CreateOrder(ctx context.Context, in entities.NewOrder) (entities.Order, error)
	GetOrder(ctx context.Context, orderID string) (entities.Order, error)
	ListOrders(ctx context.Context) ([]entities.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID string, upd entities.OrderUpdate) (entities.Order, error)
	AddErrorLog(ctx context.Context, orderID string, message string) (entities.Order, error)
	RequestRefund(ctx context.Context, orderID string, reason string) (entities.Order, error)
	ProcessRefund(ctx context.Context, orderID string) (entities.Order, error)
	GetOrderStats(ctx context.Context) (entities.OrderStats, error)
	IsServiceSuccessful(ctx context.Context, orderID string) (bool, error)
}

type OrderUseCase struct {
	repo      interfaces.IOrderRepository
	gateway   interfaces.IPaymentGateway
	metrics   IMetricsUseCase
	publisher interfaces.IEventPublisher
	clock     interfaces.IClock
	loc       *time.Location
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

// NewOrderUseCase wires the order service. gateway and publisher may be nil.
func NewOrderUseCase(
	repo interfaces.IOrderRepository,
	gateway interfaces.IPaymentGateway,
	metrics IMetricsUseCase,
	publisher interfaces.IEventPublisher,
	clock interfaces.IClock,
	loc *time.Location,
) *OrderUseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &OrderUseCase{
		repo:      repo,
		gateway:   gateway,
		metrics:   metrics,
		publisher: publisher,
		clock:     clock,
		loc:       loc,
	}
}

func (u *OrderUseCase) CreateOrder(ctx context.Context, in entities.NewOrder) (entities.Order, error) {
	orderID := strings.TrimSpace(in.OrderID)
	if orderID == "" {
		orderID = "ORD-" + ulid.Make().String()
	}
	if !in.ServiceType.Valid() || in.Amount < 0 {
		return entities.Order{}, ErrInvalidOrderInput
	}
	if in.PaymentStatus == "" {
		in.PaymentStatus = entities.PaymentStatusPending
	}
	if in.ServiceStatus == "" {
		in.ServiceStatus = entities.ServiceStatusPending
	}
	if !in.PaymentStatus.Valid() {
		return entities.Order{}, entities.ErrInvalidPaymentStatus
	}
	if !in.ServiceStatus.Valid() {
		return entities.Order{}, entities.ErrInvalidServiceStatus
	}
	if in.PaymentStatus == entities.PaymentStatusRefunded {
		return entities.Order{}, ErrRefundViaStatusUpdate
	}

	now := u.clock.Now()
	o := entities.Order{
		OrderID:       orderID,
		UserEmail:     strings.TrimSpace(in.UserEmail),
		ServiceType:   in.ServiceType,
		Amount:        in.Amount,
		PaymentStatus: in.PaymentStatus,
		ServiceStatus: in.ServiceStatus,
		PaymentID:     strings.TrimSpace(in.PaymentID),
		CreatedAt:     now,
		UpdatedAt:     now,
		ErrorLogs:     []string{},
	}
	if o.ServiceStatus == entities.ServiceStatusCompleted {
		o.CompletedAt = &now
	}
	created, err := u.repo.Create(ctx, o)
	if errors.Is(err, interfaces.ErrAlreadyExists) {
		return entities.Order{}, ErrOrderAlreadyExists
	}
	if err != nil {
		return entities.Order{}, err
	}

	log.WithFields(log.Fields{
		"order_id":     created.OrderID,
		"service_type": created.ServiceType,
		"amount":       created.Amount,
	}).Info("[order][usecase] order created")

	if created.PaymentStatus == entities.PaymentStatusCompleted {
		u.trackPayment(ctx, created)
	}
	u.publish(ctx, entities.EventOrderCreated, created)
	return created, nil
}

func (u *OrderUseCase) GetOrder(ctx context.Context, orderID string) (entities.Order, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	o, err := u.repo.GetByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if o.OrderID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *OrderUseCase) ListOrders(ctx context.Context) ([]entities.Order, error) {
	return u.repo.List(ctx)
}

func (u *OrderUseCase) UpdateOrderStatus(ctx context.Context, orderID string, upd entities.OrderUpdate) (entities.Order, error) {
	if upd.PaymentStatus != nil && !upd.PaymentStatus.Valid() {
		return entities.Order{}, entities.ErrInvalidPaymentStatus
	}
	if upd.ServiceStatus != nil && !upd.ServiceStatus.Valid() {
		return entities.Order{}, entities.ErrInvalidServiceStatus
	}

	var previous entities.PaymentStatus
	updated, err := u.mutate(ctx, orderID, func(o *entities.Order, now time.Time) error {
		previous = o.PaymentStatus
		if upd.PaymentStatus != nil && *upd.PaymentStatus != o.PaymentStatus {
			if o.PaymentStatus == entities.PaymentStatusRefunded {
				return ErrOrderAlreadyRefunded
			}
			if *upd.PaymentStatus == entities.PaymentStatusRefunded {
				return ErrRefundViaStatusUpdate
			}
			o.PaymentStatus = *upd.PaymentStatus
		}
		if upd.ServiceStatus != nil {
			if !o.ServiceStatus.CanTransitionTo(*upd.ServiceStatus) {
				return ErrInvalidServiceTransition
			}
			o.ServiceStatus = *upd.ServiceStatus
		}
		if upd.CompletedAt != nil {
			t := *upd.CompletedAt
			o.CompletedAt = &t
		} else if o.ServiceStatus == entities.ServiceStatusCompleted && o.CompletedAt == nil {
			o.CompletedAt = &now
		}
		if upd.PaymentID != nil {
			o.PaymentID = strings.TrimSpace(*upd.PaymentID)
		}
		if upd.UserEmail != nil {
			o.UserEmail = strings.TrimSpace(*upd.UserEmail)
		}
		return nil
	})
	if err != nil {
		return entities.Order{}, err
	}

	if previous != updated.PaymentStatus {
		switch updated.PaymentStatus {
		case entities.PaymentStatusCompleted:
			u.trackPayment(ctx, updated)
			u.publish(ctx, entities.EventOrderPaymentCompleted, updated)
		case entities.PaymentStatusFailed:
			if u.metrics != nil {
				if err := u.metrics.TrackPaymentFailure(ctx, updated.ServiceType, "order status update"); err != nil {
					log.WithError(err).WithField("order_id", updated.OrderID).Warn("[order][usecase] track payment failure")
				}
			}
		}
	}
	return updated, nil
}

func (u *OrderUseCase) AddErrorLog(ctx context.Context, orderID string, message string) (entities.Order, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return entities.Order{}, ErrInvalidOrderInput
	}
	return u.mutate(ctx, orderID, func(o *entities.Order, _ time.Time) error {
		o.ErrorLogs = append(o.ErrorLogs, message)
		return nil
	})
}

func (u *OrderUseCase) RequestRefund(ctx context.Context, orderID string, reason string) (entities.Order, error) {
	reason = strings.TrimSpace(reason)
	return u.mutate(ctx, orderID, func(o *entities.Order, now time.Time) error {
		if o.PaymentStatus == entities.PaymentStatusRefunded {
			return ErrOrderAlreadyRefunded
		}
		o.RefundReason = reason
		o.RefundRequested = true
		o.RefundRequestedAt = &now
		return nil
	})
}

func (u *OrderUseCase) ProcessRefund(ctx context.Context, orderID string) (entities.Order, error) {
	current, err := u.GetOrder(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if current.PaymentStatus == entities.PaymentStatusRefunded {
		return entities.Order{}, ErrOrderAlreadyRefunded
	}

	if current.PaymentID != "" && u.gateway != nil {
		reason := current.RefundReason
		if reason == "" {
			reason = "service refund"
		}
		res, err := u.gateway.CancelPayment(ctx, current.PaymentID, reason)
		if err != nil {
			log.WithError(err).WithField("order_id", current.OrderID).Error("[order][usecase] gateway cancel error")
			return entities.Order{}, fmt.Errorf("%w: %v", ErrPaymentCancelFailed, err)
		}
		switch {
		case res.Succeeded():
		case res.Reversed():
			// An earlier attempt reversed the payment but failed to record it.
			log.WithFields(log.Fields{
				"order_id":        current.OrderID,
				"provider_status": res.ProviderStatus,
			}).Warn("[order][usecase] payment already reversed at gateway, recording refund")
		default:
			log.WithFields(log.Fields{
				"order_id":    current.OrderID,
				"result_code": res.ResultCode,
				"result_msg":  res.ResultMessage,
			}).Warn("[order][usecase] gateway cancel rejected")
			return entities.Order{}, fmt.Errorf("%w: %s %s", ErrPaymentCancelFailed, res.ResultCode, res.ResultMessage)
		}
	}

	refunded, err := u.mutate(ctx, orderID, func(o *entities.Order, now time.Time) error {
		if o.PaymentStatus == entities.PaymentStatusRefunded {
			return ErrOrderAlreadyRefunded
		}
		o.PaymentStatus = entities.PaymentStatusRefunded
		o.RefundRequested = false
		o.RefundedAt = &now
		return nil
	})
	if err != nil {
		return entities.Order{}, err
	}

	log.WithFields(log.Fields{
		"order_id": refunded.OrderID,
		"amount":   refunded.Amount,
	}).Info("[order][usecase] order refunded")

	if u.metrics != nil {
		if err := u.metrics.TrackRefundComplete(ctx, refunded.ServiceType, refunded.Amount); err != nil {
			log.WithError(err).WithField("order_id", refunded.OrderID).Warn("[order][usecase] track refund")
		}
	}
	u.publish(ctx, entities.EventOrderRefunded, refunded)
	return refunded, nil
}

func (u *OrderUseCase) GetOrderStats(ctx context.Context) (entities.OrderStats, error) {
	orders, err := u.repo.List(ctx)
	if err != nil {
		return entities.OrderStats{}, err
	}

	today := u.clock.Now().In(u.loc).Format(dayLayout)
	stats := entities.OrderStats{
		Total:         len(orders),
		ByServiceType: map[entities.ServiceType]int{},
	}
	for _, o := range orders {
		switch o.ServiceStatus {
		case entities.ServiceStatusCompleted:
			stats.Completed++
		case entities.ServiceStatusFailed:
			stats.Failed++
		case entities.ServiceStatusInProgress:
			stats.InProgress++
		}
		if o.CreatedAt.In(u.loc).Format(dayLayout) == today {
			stats.TodayOrders++
		}
		if o.RefundRequested && o.PaymentStatus != entities.PaymentStatusRefunded {
			stats.PendingRefunds++
		}
		switch o.PaymentStatus {
		case entities.PaymentStatusRefunded:
			stats.Refunded++
		case entities.PaymentStatusCompleted:
			stats.TotalRevenue += o.Amount
		}
		stats.ByServiceType[o.ServiceType]++
	}
	if stats.Total > 0 {
		stats.SuccessRate = float64(stats.Completed) / float64(stats.Total)
	}
	return stats, nil
}

// IsServiceSuccessful reports false, not ErrOrderNotFound, for unknown ids.
func (u *OrderUseCase) IsServiceSuccessful(ctx context.Context, orderID string) (bool, error) {
	o, err := u.GetOrder(ctx, orderID)
	if errors.Is(err, ErrOrderNotFound) || errors.Is(err, ErrInvalidOrderID) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return o.ServiceStatus == entities.ServiceStatusCompleted && len(o.ErrorLogs) == 0, nil
}

func (u *OrderUseCase) mutate(ctx context.Context, orderID string, apply func(o *entities.Order, now time.Time) error) (entities.Order, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	return retryOnConflict(func() (entities.Order, error) {
		o, err := u.repo.GetByID(ctx, orderID)
		if err != nil {
			return entities.Order{}, err
		}
		if o.OrderID == "" {
			return entities.Order{}, ErrOrderNotFound
		}

		now := u.clock.Now()
		if err := apply(&o, now); err != nil {
			return entities.Order{}, err
		}
		o.UpdatedAt = now

		updated, err := u.repo.Update(ctx, o)
		if err != nil {
			return entities.Order{}, err
		}
		if updated.OrderID == "" {
			return entities.Order{}, ErrOrderNotFound
		}
		return updated, nil
	})
}

func (u *OrderUseCase) trackPayment(ctx context.Context, o entities.Order) {
	if u.metrics == nil {
		return
	}
	if err := u.metrics.TrackPayment(ctx, o.ServiceType, o.Amount); err != nil {
		log.WithError(err).WithField("order_id", o.OrderID).Warn("[order][usecase] track payment")
	}
}

func (u *OrderUseCase) publish(ctx context.Context, eventType string, o entities.Order) {
	if u.publisher == nil {
		return
	}
	ev := entities.Event{
		Type:       eventType,
		Key:        o.OrderID,
		OccurredAt: u.clock.Now().Format(time.RFC3339),
		Payload:    o,
	}
	if err := u.publisher.Publish(ctx, ev); err != nil {
		log.WithError(err).WithFields(log.Fields{
			"order_id": o.OrderID,
			"event":    eventType,
		}).Warn("[order][usecase] publish event")
	}
}
