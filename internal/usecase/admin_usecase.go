package usecase

import (
	"context"
	"errors"
	"strings"

	"gwansang/internal/domain/entities"
	"gwansang/internal/usecase/interfaces"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

var ErrInvalidServiceError = errors.New("invalid service error")

const defaultServiceErrorLimit = 100

// IAdminUseCase backs the operator console.
//
// HandleServiceFailure is the single place where a failed paid analysis is
// fanned out: order error log, admin error log, metrics and, when money was
// taken, a refundable error awaiting review.
type IAdminUseCase interface {
	LogServiceError(ctx context.Context, entry entities.ServiceErrorLog) (entities.ServiceErrorLog, error)
	ListServiceErrors(ctx context.Context, limit int) ([]entities.ServiceErrorLog, error)
	HandleServiceFailure(ctx context.Context, f entities.ServiceFailure) (entities.FailureReport, error)
	Dashboard(ctx context.Context) (entities.Dashboard, error)
}

type AdminUseCase struct {
	logs     interfaces.IServiceErrorLogRepository
	orders   IOrderUseCase
	sessions IAnonymousUserUseCase
	refunds  IRefundTrackingUseCase
	metrics  IMetricsUseCase
	clock    interfaces.IClock
}

var _ IAdminUseCase = (*AdminUseCase)(nil)

func NewAdminUseCase(
	logs interfaces.IServiceErrorLogRepository,
	orders IOrderUseCase,
	sessions IAnonymousUserUseCase,
	refunds IRefundTrackingUseCase,
	metrics IMetricsUseCase,
	clock interfaces.IClock,
) *AdminUseCase {
	return &AdminUseCase{
		logs:     logs,
		orders:   orders,
		sessions: sessions,
		refunds:  refunds,
		metrics:  metrics,
		clock:    clock,
	}
}

func (u *AdminUseCase) LogServiceError(ctx context.Context, entry entities.ServiceErrorLog) (entities.ServiceErrorLog, error) {
	if !entry.Kind.Valid() {
		return entities.ServiceErrorLog{}, entities.ErrUnknownErrorKind
	}
	entry.Message = strings.TrimSpace(entry.Message)
	if entry.Message == "" {
		return entities.ServiceErrorLog{}, ErrInvalidServiceError
	}
	if entry.ServiceType != "" && !entry.ServiceType.Valid() {
		return entities.ServiceErrorLog{}, ErrInvalidServiceError
	}
	entry.ID = uuid.NewString()
	if entry.OccurredAt.IsZero() {
		entry.OccurredAt = u.clock.Now()
	}

	created, err := u.logs.Create(ctx, entry)
	if err != nil {
		return entities.ServiceErrorLog{}, err
	}
	log.WithFields(log.Fields{
		"error_log_id": created.ID,
		"kind":         created.Kind,
		"order_id":     created.OrderID,
		"session_id":   created.SessionID,
	}).Warn("[admin][usecase] service error logged")
	return created, nil
}

// ListServiceErrors returns at most limit entries, newest first.
func (u *AdminUseCase) ListServiceErrors(ctx context.Context, limit int) ([]entities.ServiceErrorLog, error) {
	if limit <= 0 {
		limit = defaultServiceErrorLimit
	}
	all, err := u.logs.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (u *AdminUseCase) HandleServiceFailure(ctx context.Context, f entities.ServiceFailure) (entities.FailureReport, error) {
	if !f.Kind.Valid() {
		return entities.FailureReport{}, entities.ErrUnknownErrorKind
	}
	f.Message = strings.TrimSpace(f.Message)
	f.OrderID = strings.TrimSpace(f.OrderID)
	f.SessionID = strings.TrimSpace(f.SessionID)
	if f.Message == "" || (f.ServiceType != "" && !f.ServiceType.Valid()) {
		return entities.FailureReport{}, ErrInvalidServiceError
	}

	report := entities.FailureReport{CustomerStatus: f.Kind.HTTPStatus()}

	if f.OrderID != "" {
		order, err := u.failOrder(ctx, f)
		if err != nil {
			return entities.FailureReport{}, err
		}
		report.Order = &order
		if f.ServiceType == "" {
			f.ServiceType = order.ServiceType
		}
	}

	analysisTracked := false
	if f.SessionID != "" {
		analysisTracked = u.failSession(ctx, f)
	}
	if !analysisTracked && f.ServiceType.Valid() {
		if err := u.metrics.TrackAnalysis(ctx, f.ServiceType, false); err != nil {
			log.WithError(err).Warn("[admin][usecase] track analysis failure")
		}
	}

	entry, err := u.LogServiceError(ctx, entities.ServiceErrorLog{
		Kind:        f.Kind,
		ServiceType: f.ServiceType,
		OrderID:     f.OrderID,
		SessionID:   f.SessionID,
		Message:     f.Message,
		Details:     failureDetails(f),
	})
	if err != nil {
		return entities.FailureReport{}, err
	}
	report.ErrorLog = entry

	if report.Order != nil && report.Order.PaymentStatus == entities.PaymentStatusCompleted {
		o := report.Order
		re, err := u.refunds.TrackRefundableError(ctx, entities.RefundableErrorDetails{
			SessionID:    f.SessionID,
			ServiceType:  f.ServiceType,
			ErrorType:    f.Kind,
			ErrorMessage: f.Message,
			PaymentInfo: &entities.RefundPaymentInfo{
				OrderID:       o.OrderID,
				PaymentID:     o.PaymentID,
				Amount:        o.Amount,
				PaymentStatus: o.PaymentStatus,
				PaymentMethod: "card",
			},
			UserInfo: f.UserInfo,
		})
		if err != nil {
			return entities.FailureReport{}, err
		}
		report.RefundableError = &re
		return report, nil
	}

	// TrackRefundableError already counts the error when it runs.
	if err := u.metrics.TrackError(ctx, f.SessionID, string(f.Kind), false); err != nil {
		log.WithError(err).Warn("[admin][usecase] track error")
	}
	return report, nil
}

func (u *AdminUseCase) Dashboard(ctx context.Context) (entities.Dashboard, error) {
	orders, err := u.orders.GetOrderStats(ctx)
	if err != nil {
		return entities.Dashboard{}, err
	}
	snapshot, err := u.metrics.GetStats(ctx)
	if err != nil {
		return entities.Dashboard{}, err
	}
	services, err := u.metrics.GetServiceBreakdown(ctx)
	if err != nil {
		return entities.Dashboard{}, err
	}
	refunds, err := u.refunds.GetRefundStatistics(ctx)
	if err != nil {
		return entities.Dashboard{}, err
	}
	sessions, err := u.sessions.GetSessionStats(ctx)
	if err != nil {
		return entities.Dashboard{}, err
	}
	return entities.Dashboard{
		Orders:   orders,
		Metrics:  snapshot,
		Services: services,
		Refunds:  refunds,
		Sessions: sessions,
	}, nil
}

func (u *AdminUseCase) failOrder(ctx context.Context, f entities.ServiceFailure) (entities.Order, error) {
	order, err := u.orders.AddErrorLog(ctx, f.OrderID, string(f.Kind)+": "+f.Message)
	if err != nil {
		return entities.Order{}, err
	}
	if order.ServiceStatus.Terminal() {
		return order, nil
	}
	failed := entities.ServiceStatusFailed
	return u.orders.UpdateOrderStatus(ctx, f.OrderID, entities.OrderUpdate{ServiceStatus: &failed})
}

// failSession reports whether the analysis failure metric was recorded.
func (u *AdminUseCase) failSession(ctx context.Context, f entities.ServiceFailure) bool {
	fields := log.Fields{"session_id": f.SessionID, "service_id": f.ServiceID}
	if f.ServiceID != "" {
		_, err := u.sessions.CompleteService(ctx, f.SessionID, f.ServiceID, entities.ServiceResult{
			Success: false,
			Error:   f.Message,
			Kind:    f.Kind,
		})
		if err == nil {
			return true
		}
		log.WithError(err).WithFields(fields).Warn("[admin][usecase] complete failed service")
	}
	if _, err := u.sessions.RecordSessionError(ctx, f.SessionID, "", f.Kind, f.Message); err != nil {
		log.WithError(err).WithFields(fields).Warn("[admin][usecase] record session error")
	}
	return false
}

func failureDetails(f entities.ServiceFailure) map[string]string {
	d := map[string]string{}
	if f.ServiceID != "" {
		d["serviceId"] = f.ServiceID
	}
	if f.UserInfo.IP != "" {
		d["ip"] = f.UserInfo.IP
	}
	if f.UserInfo.UserAgent != "" {
		d["userAgent"] = f.UserInfo.UserAgent
	}
	return d
}
