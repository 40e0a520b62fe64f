package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"gwansang/internal/domain/entities"
	"gwansang/internal/usecase/interfaces"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

var (
	ErrRefundableErrorNotFound = errors.New("refundable error not found")
	ErrInvalidRefundableError  = errors.New("invalid refundable error")
	ErrRefundAlreadyProcessed  = errors.New("refund already processed")
)

// IRefundTrackingUseCase records failures that happened after a payment and
// lets an operator walk them through pending -> approved/rejected -> processed.
// Nothing here issues money back on its own.
type IRefundTrackingUseCase interface {
	TrackRefundableError(ctx context.Context, d entities.RefundableErrorDetails) (entities.RefundableError, error)
	GetRefundableErrors(ctx context.Context, status entities.RefundStatus) ([]entities.RefundableError, error)
	GetRefundableError(ctx context.Context, id string) (entities.RefundableError, error)
	ApproveManualRefund(ctx context.Context, id string, notes string) (entities.RefundableError, error)
	UpdateRefundStatus(ctx context.Context, id string, status entities.RefundStatus, notes string) (entities.RefundableError, error)
	GetRefundStatistics(ctx context.Context) (entities.RefundStatistics, error)
}

type RefundTrackingUseCase struct {
	repo      interfaces.IRefundableErrorRepository
	metrics   IMetricsUseCase
	notifier  interfaces.IAdminNotifier
	publisher interfaces.IEventPublisher
	clock     interfaces.IClock
}

var _ IRefundTrackingUseCase = (*RefundTrackingUseCase)(nil)

func NewRefundTrackingUseCase(
	repo interfaces.IRefundableErrorRepository,
	metrics IMetricsUseCase,
	notifier interfaces.IAdminNotifier,
	publisher interfaces.IEventPublisher,
	clock interfaces.IClock,
) *RefundTrackingUseCase {
	return &RefundTrackingUseCase{
		repo:      repo,
		metrics:   metrics,
		notifier:  notifier,
		publisher: publisher,
		clock:     clock,
	}
}

func (u *RefundTrackingUseCase) TrackRefundableError(ctx context.Context, d entities.RefundableErrorDetails) (entities.RefundableError, error) {
	if !d.ErrorType.Valid() {
		return entities.RefundableError{}, entities.ErrUnknownErrorKind
	}
	if d.ServiceType != "" && !d.ServiceType.Valid() {
		return entities.RefundableError{}, ErrInvalidRefundableError
	}
	if d.PaymentInfo != nil {
		if d.PaymentInfo.Amount < 0 || !d.PaymentInfo.PaymentStatus.Valid() {
			return entities.RefundableError{}, ErrInvalidRefundableError
		}
	}

	now := u.clock.Now()
	e := entities.RefundableError{
		ID:           uuid.NewString(),
		SessionID:    strings.TrimSpace(d.SessionID),
		ServiceType:  d.ServiceType,
		ErrorType:    d.ErrorType,
		ErrorMessage: strings.TrimSpace(d.ErrorMessage),
		UserInfo:     d.UserInfo,
		RefundStatus: entities.RefundState{
			Status:     entities.RefundStatusPending,
			IsEligible: entities.RefundEligible(d.ErrorType, d.PaymentInfo),
			UpdatedAt:  now,
		},
		OccurredAt: now,
	}
	if d.PaymentInfo != nil {
		p := *d.PaymentInfo
		e.PaymentInfo = &p
	}

	created, err := u.repo.Create(ctx, e)
	if err != nil {
		return entities.RefundableError{}, err
	}

	log.WithFields(log.Fields{
		"refund_error_id": created.ID,
		"session_id":      created.SessionID,
		"error_type":      created.ErrorType,
		"eligible":        created.RefundStatus.IsEligible,
	}).Info("[refund][usecase] refundable error tracked")

	if u.metrics != nil {
		if err := u.metrics.TrackError(ctx, created.SessionID, string(created.ErrorType), created.RefundStatus.IsEligible); err != nil {
			log.WithError(err).Warn("[refund][usecase] track error metric")
		}
	}
	if created.RefundStatus.IsEligible {
		if u.notifier != nil {
			if err := u.notifier.NotifyRefundableError(ctx, created); err != nil {
				log.WithError(err).WithField("refund_error_id", created.ID).Warn("[refund][usecase] admin notify")
			}
		}
		if u.publisher != nil {
			ev := entities.Event{
				Type:       entities.EventRefundErrorTracked,
				Key:        created.ID,
				OccurredAt: now.Format(time.RFC3339),
				Payload:    created,
			}
			if err := u.publisher.Publish(ctx, ev); err != nil {
				log.WithError(err).WithField("refund_error_id", created.ID).Warn("[refund][usecase] publish event")
			}
		}
	}
	return created, nil
}

// GetRefundableErrors lists newest first. An empty status lists everything.
func (u *RefundTrackingUseCase) GetRefundableErrors(ctx context.Context, status entities.RefundStatus) ([]entities.RefundableError, error) {
	if status != "" && !status.Valid() {
		return nil, entities.ErrInvalidRefundStatus
	}

	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if status == "" {
		return all, nil
	}
	out := make([]entities.RefundableError, 0, len(all))
	for _, e := range all {
		if e.RefundStatus.Status == status {
			out = append(out, e)
		}
	}
	return out, nil
}

func (u *RefundTrackingUseCase) GetRefundableError(ctx context.Context, id string) (entities.RefundableError, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.RefundableError{}, ErrRefundableErrorNotFound
	}

	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.RefundableError{}, err
	}
	if e.ID == "" {
		return entities.RefundableError{}, ErrRefundableErrorNotFound
	}
	return e, nil
}

// ApproveManualRefund does not require eligibility; an operator may approve
// a refund the heuristic rejected.
func (u *RefundTrackingUseCase) ApproveManualRefund(ctx context.Context, id string, notes string) (entities.RefundableError, error) {
	updated, err := u.mutate(ctx, id, func(e *entities.RefundableError, _ time.Time) error {
		if e.RefundStatus.Status == entities.RefundStatusProcessed {
			return ErrRefundAlreadyProcessed
		}
		e.RefundStatus.Status = entities.RefundStatusApproved
		if notes = strings.TrimSpace(notes); notes != "" {
			e.RefundStatus.Notes = notes
		}
		return nil
	})
	if err != nil {
		return entities.RefundableError{}, err
	}
	log.WithField("refund_error_id", updated.ID).Info("[refund][usecase] manual refund approved")
	return updated, nil
}

func (u *RefundTrackingUseCase) UpdateRefundStatus(ctx context.Context, id string, status entities.RefundStatus, notes string) (entities.RefundableError, error) {
	if !status.Valid() {
		return entities.RefundableError{}, entities.ErrInvalidRefundStatus
	}

	var newlyProcessed bool
	updated, err := u.mutate(ctx, id, func(e *entities.RefundableError, now time.Time) error {
		newlyProcessed = status == entities.RefundStatusProcessed && e.RefundStatus.Status != entities.RefundStatusProcessed
		e.RefundStatus.Status = status
		if newlyProcessed {
			e.RefundStatus.ProcessedAt = &now
		}
		if notes = strings.TrimSpace(notes); notes != "" {
			e.RefundStatus.Notes = notes
		}
		return nil
	})
	if err != nil {
		return entities.RefundableError{}, err
	}

	log.WithFields(log.Fields{
		"refund_error_id": updated.ID,
		"status":          updated.RefundStatus.Status,
	}).Info("[refund][usecase] refund status updated")

	if newlyProcessed && u.metrics != nil && updated.ServiceType.Valid() {
		if err := u.metrics.TrackRefundComplete(ctx, updated.ServiceType, updated.Amount()); err != nil {
			log.WithError(err).WithField("refund_error_id", updated.ID).Warn("[refund][usecase] track refund")
		}
	}
	return updated, nil
}

func (u *RefundTrackingUseCase) GetRefundStatistics(ctx context.Context) (entities.RefundStatistics, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return entities.RefundStatistics{}, err
	}

	stats := entities.RefundStatistics{
		TotalErrors: len(all),
		ByErrorType: map[entities.ErrorKind]int{},
	}
	for _, e := range all {
		stats.ByErrorType[e.ErrorType]++
		eligible := e.RefundStatus.IsEligible
		if eligible {
			stats.EligibleForRefund++
		}
		switch e.RefundStatus.Status {
		case entities.RefundStatusPending:
			if eligible {
				stats.PendingRefunds++
			}
		case entities.RefundStatusApproved:
			stats.ApprovedRefunds++
		case entities.RefundStatusRejected:
			stats.RejectedRefunds++
		case entities.RefundStatusProcessed:
			stats.CompletedRefunds++
		}
		if eligible && e.RefundStatus.Status != entities.RefundStatusRejected {
			stats.TotalRefundAmount += e.Amount()
		}
	}
	return stats, nil
}

func (u *RefundTrackingUseCase) mutate(ctx context.Context, id string, apply func(e *entities.RefundableError, now time.Time) error) (entities.RefundableError, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.RefundableError{}, ErrRefundableErrorNotFound
	}

	return retryOnConflict(func() (entities.RefundableError, error) {
		e, err := u.repo.GetByID(ctx, id)
		if err != nil {
			return entities.RefundableError{}, err
		}
		if e.ID == "" {
			return entities.RefundableError{}, ErrRefundableErrorNotFound
		}

		now := u.clock.Now()
		if err := apply(&e, now); err != nil {
			return entities.RefundableError{}, err
		}
		e.RefundStatus.UpdatedAt = now

		updated, err := u.repo.Update(ctx, e)
		if err != nil {
			return entities.RefundableError{}, err
		}
		if updated.ID == "" {
			return entities.RefundableError{}, ErrRefundableErrorNotFound
		}
		return updated, nil
	})
}
