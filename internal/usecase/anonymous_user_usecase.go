package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"gwansang/internal/domain/entities"
	"gwansang/internal/usecase/interfaces"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

var (
	ErrSessionNotFound       = errors.New("session not found")
	ErrInvalidSessionID      = errors.New("invalid session id")
	ErrServiceUsageNotFound  = errors.New("service usage not found")
	ErrServiceUsageFinished  = errors.New("service usage already finished")
	ErrPaymentAlreadyLinked  = errors.New("payment already linked")
	ErrPaymentTrackerMissing = errors.New("payment tracker not found")
	ErrPaymentTrackerFinal   = errors.New("payment tracker in final state")
	ErrInvalidSessionInput   = errors.New("invalid session input")
)

// IAnonymousUserUseCase tracks visitors who never logged in, so support can
// later find the session behind a payment from whatever the customer remembers.
type IAnonymousUserUseCase interface {
	CreateAnonymousSession(ctx context.Context, device entities.DeviceInfo) (entities.AnonymousSession, error)
	GetSession(ctx context.Context, sessionID string) (entities.AnonymousSession, error)
	StartServiceUsage(ctx context.Context, sessionID string, serviceType entities.ServiceType, contact *entities.ContactInfo) (entities.ServiceUsage, error)
	LinkPayment(ctx context.Context, sessionID, serviceID string, link entities.PaymentLink) (entities.PaymentTracker, error)
	CompletePayment(ctx context.Context, paymentID string) (entities.PaymentTracker, error)
	CompleteService(ctx context.Context, sessionID, serviceID string, result entities.ServiceResult) (entities.ServiceUsage, error)
	RecordSessionError(ctx context.Context, sessionID, serviceID string, kind entities.ErrorKind, message string) (entities.SessionError, error)
	FindUsersByMultipleConditions(ctx context.Context, cond entities.MatchConditions) ([]entities.UserMatch, error)
	ResolveSupportCase(ctx context.Context, cond entities.MatchConditions) (entities.SupportResolution, error)
	PurgeExpiredSessions(ctx context.Context) (int, error)
	GetSessionStats(ctx context.Context) (entities.SessionStats, error)
}

type AnonymousUserUseCase struct {
	repo    interfaces.ISessionRepository
	policy  interfaces.IMatchPolicyProvider
	metrics IMetricsUseCase
	clock   interfaces.IClock
	ttl     time.Duration
}

var _ IAnonymousUserUseCase = (*AnonymousUserUseCase)(nil)

// NewAnonymousUserUseCase builds the correlator. A ttl of zero keeps sessions
// forever; otherwise expiry slides with every write to the session.
func NewAnonymousUserUseCase(
	repo interfaces.ISessionRepository,
	policy interfaces.IMatchPolicyProvider,
	metrics IMetricsUseCase,
	clock interfaces.IClock,
	ttl time.Duration,
) *AnonymousUserUseCase {
	return &AnonymousUserUseCase{
		repo:    repo,
		policy:  policy,
		metrics: metrics,
		clock:   clock,
		ttl:     ttl,
	}
}

func (u *AnonymousUserUseCase) CreateAnonymousSession(ctx context.Context, device entities.DeviceInfo) (entities.AnonymousSession, error) {
	now := u.clock.Now()
	s := entities.AnonymousSession{
		SessionID:    uuid.NewString(),
		UserID:       uuid.NewString(),
		CreatedAt:    now,
		LastActivity: now,
		DeviceInfo:   device,
		Services:     []entities.ServiceUsage{},
		Errors:       []entities.SessionError{},
	}
	u.touch(&s, now)

	created, err := u.repo.Create(ctx, s)
	if err != nil {
		return entities.AnonymousSession{}, err
	}
	log.WithFields(log.Fields{
		"session_id": created.SessionID,
		"platform":   device.Platform,
	}).Info("[session][usecase] anonymous session created")
	return created, nil
}

// GetSession treats an expired session as missing.
func (u *AnonymousUserUseCase) GetSession(ctx context.Context, sessionID string) (entities.AnonymousSession, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return entities.AnonymousSession{}, ErrInvalidSessionID
	}

	s, err := u.repo.GetByID(ctx, sessionID)
	if err != nil {
		return entities.AnonymousSession{}, err
	}
	if s.SessionID == "" || s.Expired(u.clock.Now()) {
		return entities.AnonymousSession{}, ErrSessionNotFound
	}
	return s, nil
}

func (u *AnonymousUserUseCase) StartServiceUsage(ctx context.Context, sessionID string, serviceType entities.ServiceType, contact *entities.ContactInfo) (entities.ServiceUsage, error) {
	if !serviceType.Valid() {
		return entities.ServiceUsage{}, ErrInvalidSessionInput
	}

	var usage entities.ServiceUsage
	_, err := u.mutate(ctx, sessionID, func(s *entities.AnonymousSession, now time.Time) error {
		usage = entities.ServiceUsage{
			ServiceID:   uuid.NewString(),
			ServiceType: serviceType,
			Status:      entities.ServiceUsageStarted,
			StartedAt:   now,
		}
		if contact != nil && !contact.IsZero() {
			c := normalizeContact(*contact)
			usage.ContactInfo = &c
		}
		s.Services = append(s.Services, usage)
		return nil
	})
	if err != nil {
		return entities.ServiceUsage{}, err
	}
	return usage, nil
}

func (u *AnonymousUserUseCase) LinkPayment(ctx context.Context, sessionID, serviceID string, link entities.PaymentLink) (entities.PaymentTracker, error) {
	link.PaymentID = strings.TrimSpace(link.PaymentID)
	if link.PaymentID == "" || link.Amount < 0 {
		return entities.PaymentTracker{}, ErrInvalidSessionInput
	}
	if link.PaymentStatus == "" {
		link.PaymentStatus = entities.PaymentStatusPending
	}
	if !link.PaymentStatus.Valid() {
		return entities.PaymentTracker{}, entities.ErrInvalidPaymentStatus
	}

	// A payment id belongs to exactly one usage across all sessions. This
	// lookup answers early; the store enforces it on concurrent links.
	if owner, err := u.repo.FindByPaymentID(ctx, link.PaymentID); err != nil {
		return entities.PaymentTracker{}, err
	} else if owner.SessionID != "" {
		return entities.PaymentTracker{}, ErrPaymentAlreadyLinked
	}

	var tracker entities.PaymentTracker
	_, err := u.mutate(ctx, sessionID, func(s *entities.AnonymousSession, now time.Time) error {
		idx := s.FindService(strings.TrimSpace(serviceID))
		if idx < 0 {
			return ErrServiceUsageNotFound
		}
		usage := &s.Services[idx]
		if usage.Payment != nil {
			return ErrPaymentAlreadyLinked
		}

		contact := entities.ContactInfo{}
		switch {
		case link.ContactInfo != nil && !link.ContactInfo.IsZero():
			contact = normalizeContact(*link.ContactInfo)
		case usage.ContactInfo != nil:
			contact = *usage.ContactInfo
		}

		tracker = entities.PaymentTracker{
			OrderID:       strings.TrimSpace(link.OrderID),
			PaymentID:     link.PaymentID,
			ServiceType:   usage.ServiceType,
			Amount:        link.Amount,
			PaymentStatus: link.PaymentStatus,
			ContactInfo:   contact,
			CardLastFour:  lastFour(link.CardLastFour),
			CreatedAt:     now,
		}
		if tracker.PaymentStatus == entities.PaymentStatusCompleted {
			tracker.CompletedAt = &now
		}
		t := tracker
		usage.Payment = &t
		return nil
	})
	if errors.Is(err, interfaces.ErrPaymentIDTaken) {
		return entities.PaymentTracker{}, ErrPaymentAlreadyLinked
	}
	if err != nil {
		return entities.PaymentTracker{}, err
	}

	log.WithFields(log.Fields{
		"session_id": sessionID,
		"service_id": serviceID,
		"payment_id": tracker.PaymentID,
	}).Info("[session][usecase] payment linked")
	return tracker, nil
}

// CompletePayment is idempotent on an already completed tracker.
func (u *AnonymousUserUseCase) CompletePayment(ctx context.Context, paymentID string) (entities.PaymentTracker, error) {
	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return entities.PaymentTracker{}, ErrInvalidSessionInput
	}

	owner, err := u.repo.FindByPaymentID(ctx, paymentID)
	if err != nil {
		return entities.PaymentTracker{}, err
	}
	if owner.SessionID == "" || owner.Expired(u.clock.Now()) {
		return entities.PaymentTracker{}, ErrPaymentTrackerMissing
	}

	var tracker entities.PaymentTracker
	_, err = u.mutate(ctx, owner.SessionID, func(s *entities.AnonymousSession, now time.Time) error {
		for i := range s.Services {
			p := s.Services[i].Payment
			if p == nil || p.PaymentID != paymentID {
				continue
			}
			switch p.PaymentStatus {
			case entities.PaymentStatusPending:
				p.PaymentStatus = entities.PaymentStatusCompleted
				p.CompletedAt = &now
			case entities.PaymentStatusCompleted:
			default:
				return ErrPaymentTrackerFinal
			}
			tracker = *p
			return nil
		}
		return ErrPaymentTrackerMissing
	})
	if errors.Is(err, ErrSessionNotFound) {
		return entities.PaymentTracker{}, ErrPaymentTrackerMissing
	}
	if err != nil {
		return entities.PaymentTracker{}, err
	}
	return tracker, nil
}

func (u *AnonymousUserUseCase) CompleteService(ctx context.Context, sessionID, serviceID string, result entities.ServiceResult) (entities.ServiceUsage, error) {
	if !result.Success && result.Kind != "" && !result.Kind.Valid() {
		return entities.ServiceUsage{}, entities.ErrUnknownErrorKind
	}

	var usage entities.ServiceUsage
	_, err := u.mutate(ctx, sessionID, func(s *entities.AnonymousSession, now time.Time) error {
		idx := s.FindService(strings.TrimSpace(serviceID))
		if idx < 0 {
			return ErrServiceUsageNotFound
		}
		svc := &s.Services[idx]
		if svc.Status != entities.ServiceUsageStarted {
			return ErrServiceUsageFinished
		}

		svc.CompletedAt = &now
		if result.Success {
			svc.Status = entities.ServiceUsageCompleted
			svc.ResultSummary = strings.TrimSpace(result.Summary)
		} else {
			svc.Status = entities.ServiceUsageFailed
			kind := result.Kind
			if kind == "" {
				kind = entities.ErrorKindAnalysis
			}
			msg := strings.TrimSpace(result.Error)
			if msg == "" {
				msg = "service failed"
			}
			s.Errors = append(s.Errors, entities.SessionError{
				ErrorID:    uuid.NewString(),
				ServiceID:  svc.ServiceID,
				Kind:       kind,
				Message:    msg,
				OccurredAt: now,
			})
		}
		usage = *svc
		return nil
	})
	if err != nil {
		return entities.ServiceUsage{}, err
	}

	if u.metrics != nil {
		if err := u.metrics.TrackAnalysis(ctx, usage.ServiceType, result.Success); err != nil {
			log.WithError(err).WithField("session_id", sessionID).Warn("[session][usecase] track analysis")
		}
	}
	return usage, nil
}

func (u *AnonymousUserUseCase) RecordSessionError(ctx context.Context, sessionID, serviceID string, kind entities.ErrorKind, message string) (entities.SessionError, error) {
	if !kind.Valid() {
		return entities.SessionError{}, entities.ErrUnknownErrorKind
	}
	message = strings.TrimSpace(message)
	if message == "" {
		return entities.SessionError{}, ErrInvalidSessionInput
	}
	serviceID = strings.TrimSpace(serviceID)

	var recorded entities.SessionError
	_, err := u.mutate(ctx, sessionID, func(s *entities.AnonymousSession, now time.Time) error {
		if serviceID != "" && s.FindService(serviceID) < 0 {
			return ErrServiceUsageNotFound
		}
		recorded = entities.SessionError{
			ErrorID:    uuid.NewString(),
			ServiceID:  serviceID,
			Kind:       kind,
			Message:    message,
			OccurredAt: now,
		}
		s.Errors = append(s.Errors, recorded)
		return nil
	})
	if err != nil {
		return entities.SessionError{}, err
	}
	return recorded, nil
}

// FindUsersByMultipleConditions scores every live payment tracker against the
// supplied conditions. No conditions means no matches.
func (u *AnonymousUserUseCase) FindUsersByMultipleConditions(ctx context.Context, cond entities.MatchConditions) ([]entities.UserMatch, error) {
	matches := []entities.UserMatch{}
	cond = entities.MatchConditions{
		TimeRange:    cond.TimeRange,
		Amount:       cond.Amount,
		Phone:        digitsOnly(cond.Phone),
		Email:        normalizeEmail(cond.Email),
		CardLastFour: lastFour(cond.CardLastFour),
	}
	if cond.Empty() {
		return matches, nil
	}
	phone, email, card := cond.Phone, cond.Email, cond.CardLastFour

	sessions, err := u.repo.ListActive(ctx, u.clock.Now())
	if err != nil {
		return nil, err
	}
	policy := u.currentPolicy()

	for _, s := range sessions {
		for _, svc := range s.Services {
			p := svc.Payment
			if p == nil {
				continue
			}
			score := 0
			matched := []string{}
			if cond.TimeRange != nil && cond.TimeRange.Contains(p.CreatedAt) {
				score += policy.TimeWindowWeight
				matched = append(matched, entities.MatchedTimeRange)
			}
			if cond.Amount != nil && *cond.Amount == p.Amount {
				score += policy.AmountWeight
				matched = append(matched, entities.MatchedAmount)
			}
			if phone != "" && digitsOnly(p.ContactInfo.Phone) == phone {
				score += policy.PhoneWeight
				matched = append(matched, entities.MatchedPhone)
			}
			if email != "" && normalizeEmail(p.ContactInfo.Email) == email {
				score += policy.EmailWeight
				matched = append(matched, entities.MatchedEmail)
			}
			if card != "" && p.CardLastFour == card {
				score += policy.CardLastFourWeight
				matched = append(matched, entities.MatchedCardLastFour)
			}
			if score <= 0 {
				continue
			}
			matches = append(matches, entities.UserMatch{
				SessionID:         s.SessionID,
				UserID:            s.UserID,
				ServiceID:         svc.ServiceID,
				Payment:           *p,
				MatchScore:        score,
				Confidence:        policy.Confidence(score),
				MatchedConditions: matched,
			})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].MatchScore != matches[j].MatchScore {
			return matches[i].MatchScore > matches[j].MatchScore
		}
		return matches[i].Payment.CreatedAt.After(matches[j].Payment.CreatedAt)
	})
	return matches, nil
}

func (u *AnonymousUserUseCase) ResolveSupportCase(ctx context.Context, cond entities.MatchConditions) (entities.SupportResolution, error) {
	matches, err := u.FindUsersByMultipleConditions(ctx, cond)
	if err != nil {
		return entities.SupportResolution{}, err
	}

	res := entities.SupportResolution{Matches: matches}
	switch {
	case len(matches) == 0:
		res.Workflow = entities.WorkflowRequestAdditionalInfo
	case len(matches) > 1:
		res.Workflow = entities.WorkflowManualReviewSelect
	case matches[0].Confidence == entities.MatchConfidenceHigh:
		res.Workflow = entities.WorkflowAutoMatched
	default:
		res.Workflow = entities.WorkflowCustomerServiceContact
	}
	return res, nil
}

func (u *AnonymousUserUseCase) PurgeExpiredSessions(ctx context.Context) (int, error) {
	removed, err := u.repo.DeleteExpired(ctx, u.clock.Now())
	if err != nil {
		return 0, err
	}
	if removed > 0 {
		log.WithField("removed", removed).Info("[session][usecase] expired sessions purged")
	}
	return removed, nil
}

func (u *AnonymousUserUseCase) GetSessionStats(ctx context.Context) (entities.SessionStats, error) {
	sessions, err := u.repo.ListActive(ctx, u.clock.Now())
	if err != nil {
		return entities.SessionStats{}, err
	}

	stats := entities.SessionStats{ActiveSessions: len(sessions)}
	for _, s := range sessions {
		stats.ServiceUsages += len(s.Services)
		stats.Errors += len(s.Errors)
		for _, svc := range s.Services {
			if svc.Payment == nil {
				continue
			}
			stats.LinkedPayments++
			if svc.Payment.PaymentStatus == entities.PaymentStatusCompleted {
				stats.CompletedPayments++
			}
		}
	}
	return stats, nil
}

func (u *AnonymousUserUseCase) mutate(ctx context.Context, sessionID string, apply func(s *entities.AnonymousSession, now time.Time) error) (entities.AnonymousSession, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return entities.AnonymousSession{}, ErrInvalidSessionID
	}

	return retryOnConflict(func() (entities.AnonymousSession, error) {
		now := u.clock.Now()
		s, err := u.repo.GetByID(ctx, sessionID)
		if err != nil {
			return entities.AnonymousSession{}, err
		}
		if s.SessionID == "" || s.Expired(now) {
			return entities.AnonymousSession{}, ErrSessionNotFound
		}

		if err := apply(&s, now); err != nil {
			return entities.AnonymousSession{}, err
		}
		u.touch(&s, now)

		updated, err := u.repo.Update(ctx, s)
		if err != nil {
			return entities.AnonymousSession{}, err
		}
		if updated.SessionID == "" {
			return entities.AnonymousSession{}, ErrSessionNotFound
		}
		return updated, nil
	})
}

func (u *AnonymousUserUseCase) touch(s *entities.AnonymousSession, now time.Time) {
	s.LastActivity = now
	if u.ttl > 0 {
		s.ExpiresAt = now.Add(u.ttl)
	}
}

func (u *AnonymousUserUseCase) currentPolicy() entities.MatchPolicy {
	if u.policy == nil {
		return entities.DefaultMatchPolicy()
	}
	return u.policy.Get()
}

func normalizeContact(c entities.ContactInfo) entities.ContactInfo {
	c.Email = strings.TrimSpace(c.Email)
	c.Phone = strings.TrimSpace(c.Phone)
	c.Name = strings.TrimSpace(c.Name)
	return c
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// lastFour keeps the trailing four digits of whatever card fragment was given.
func lastFour(s string) string {
	d := digitsOnly(s)
	if len(d) > 4 {
		return d[len(d)-4:]
	}
	return d
}
