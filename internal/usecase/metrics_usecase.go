package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"gwansang/internal/domain/entities"
	"gwansang/internal/usecase/interfaces"

	log "github.com/sirupsen/logrus"
)

var ErrInvalidMetricInput = errors.New("invalid metric input")

const (
	bucketTotal     = "total"
	bucketDayPrefix = "day:"
	dayLayout       = "2006-01-02"

	counterPageViews        = "page_views"
	counterAnalyses         = "analyses"
	counterAnalysesOK       = "analyses_ok"
	counterAnalysesFailed   = "analyses_failed"
	counterPayments         = "payments"
	counterPaymentsFailed   = "payments_failed"
	counterRevenue          = "revenue"
	counterRefunds          = "refunds"
	counterRefundedAmount   = "refunded_amount"
	counterErrors           = "errors"
	counterErrorsRefundable = "errors_refundable"
	errorTypePrefix         = "error_type:"
	pagePrefix              = "page:"
	servicePrefix           = "svc:"
)

// IMetricsUseCase is the process-wide counter store.
//
// Counters are increment-only and bucketed by calendar day in the configured
// time zone (not a rolling 24h window) plus an all-time bucket.
type IMetricsUseCase interface {
	TrackPageView(ctx context.Context, page string, sessionID string) error
	TrackAnalysis(ctx context.Context, serviceType entities.ServiceType, success bool) error
	TrackPayment(ctx context.Context, serviceType entities.ServiceType, amount int64) error
	TrackPaymentFailure(ctx context.Context, serviceType entities.ServiceType, reason string) error
	TrackError(ctx context.Context, sessionID string, errorType string, refundable bool) error
	TrackRefundComplete(ctx context.Context, serviceType entities.ServiceType, amount int64) error
	GetStats(ctx context.Context) (entities.MetricsSnapshot, error)
	GetServiceBreakdown(ctx context.Context) (map[entities.ServiceType]entities.ServiceMetrics, error)
	GetDailyStats(ctx context.Context, date string) (entities.DailyMetrics, error)
}

type MetricsUseCase struct {
	repo  interfaces.IMetricsRepository
	clock interfaces.IClock
	loc   *time.Location
}

var _ IMetricsUseCase = (*MetricsUseCase)(nil)

func NewMetricsUseCase(repo interfaces.IMetricsRepository, clock interfaces.IClock, loc *time.Location) *MetricsUseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &MetricsUseCase{repo: repo, clock: clock, loc: loc}
}

func (u *MetricsUseCase) TrackPageView(ctx context.Context, page string, sessionID string) error {
	page = strings.TrimSpace(page)
	if page == "" {
		page = "/"
	}
	log.WithFields(log.Fields{
		"page":       page,
		"session_id": sessionID,
	}).Debug("[metrics][usecase] page view")
	return u.increment(ctx, map[string]int64{
		counterPageViews:  1,
		pagePrefix + page: 1,
	})
}

func (u *MetricsUseCase) TrackAnalysis(ctx context.Context, serviceType entities.ServiceType, success bool) error {
	if !serviceType.Valid() {
		return ErrInvalidMetricInput
	}
	outcome, svcOutcome := counterAnalysesFailed, serviceCounter(serviceType, counterAnalysesFailed)
	if success {
		outcome, svcOutcome = counterAnalysesOK, serviceCounter(serviceType, counterAnalysesOK)
	}
	deltas := map[string]int64{counterAnalyses: 1, outcome: 1, svcOutcome: 1}
	deltas[serviceCounter(serviceType, counterAnalyses)] = 1
	return u.increment(ctx, deltas)
}

func (u *MetricsUseCase) TrackPayment(ctx context.Context, serviceType entities.ServiceType, amount int64) error {
	if !serviceType.Valid() || amount < 0 {
		return ErrInvalidMetricInput
	}
	deltas := map[string]int64{counterPayments: 1, counterRevenue: amount}
	deltas[serviceCounter(serviceType, counterPayments)] = 1
	deltas[serviceCounter(serviceType, counterRevenue)] = amount
	return u.increment(ctx, deltas)
}

func (u *MetricsUseCase) TrackPaymentFailure(ctx context.Context, serviceType entities.ServiceType, reason string) error {
	if !serviceType.Valid() {
		return ErrInvalidMetricInput
	}
	log.WithFields(log.Fields{
		"service_type": serviceType,
		"reason":       reason,
	}).Info("[metrics][usecase] payment failure tracked")
	deltas := map[string]int64{counterPaymentsFailed: 1}
	deltas[serviceCounter(serviceType, counterPaymentsFailed)] = 1
	return u.increment(ctx, deltas)
}

func (u *MetricsUseCase) TrackError(ctx context.Context, sessionID string, errorType string, refundable bool) error {
	label := strings.TrimSpace(errorType)
	if label == "" {
		label = "unknown"
	}
	deltas := map[string]int64{
		counterErrors:           1,
		errorTypePrefix + label: 1,
	}
	if refundable {
		deltas[counterErrorsRefundable] = 1
	}
	log.WithFields(log.Fields{
		"session_id": sessionID,
		"error_type": label,
		"refundable": refundable,
	}).Debug("[metrics][usecase] error tracked")
	return u.increment(ctx, deltas)
}

func (u *MetricsUseCase) TrackRefundComplete(ctx context.Context, serviceType entities.ServiceType, amount int64) error {
	if !serviceType.Valid() || amount < 0 {
		return ErrInvalidMetricInput
	}
	deltas := map[string]int64{counterRefunds: 1, counterRefundedAmount: amount}
	deltas[serviceCounter(serviceType, counterRefunds)] = 1
	deltas[serviceCounter(serviceType, counterRefundedAmount)] = amount
	return u.increment(ctx, deltas)
}

func (u *MetricsUseCase) GetStats(ctx context.Context) (entities.MetricsSnapshot, error) {
	day := u.today()
	todayCounters, err := u.repo.Snapshot(ctx, bucketDayPrefix+day)
	if err != nil {
		return entities.MetricsSnapshot{}, err
	}
	totalCounters, err := u.repo.Snapshot(ctx, bucketTotal)
	if err != nil {
		return entities.MetricsSnapshot{}, err
	}
	return entities.MetricsSnapshot{
		Date:   day,
		Today:  periodFromCounters(todayCounters),
		Total:  periodFromCounters(totalCounters),
		Errors: errorsFromCounters(totalCounters),
	}, nil
}

func (u *MetricsUseCase) GetServiceBreakdown(ctx context.Context) (map[entities.ServiceType]entities.ServiceMetrics, error) {
	counters, err := u.repo.Snapshot(ctx, bucketTotal)
	if err != nil {
		return nil, err
	}
	out := make(map[entities.ServiceType]entities.ServiceMetrics, len(entities.AllServiceTypes))
	for _, st := range entities.AllServiceTypes {
		get := func(name string) int64 { return nonNegative(counters[serviceCounter(st, name)]) }
		m := entities.ServiceMetrics{
			Analyses:           get(counterAnalyses),
			SuccessfulAnalyses: get(counterAnalysesOK),
			FailedAnalyses:     get(counterAnalysesFailed),
			Payments:           get(counterPayments),
			FailedPayments:     get(counterPaymentsFailed),
			Revenue:            get(counterRevenue),
			Refunds:            get(counterRefunds),
			RefundedAmount:     get(counterRefundedAmount),
		}
		m.NetRevenue = nonNegative(m.Revenue - m.RefundedAmount)
		out[st] = m
	}
	return out, nil
}

func (u *MetricsUseCase) GetDailyStats(ctx context.Context, date string) (entities.DailyMetrics, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		date = u.today()
	}
	if _, err := time.ParseInLocation(dayLayout, date, u.loc); err != nil {
		return entities.DailyMetrics{}, ErrInvalidMetricInput
	}
	counters, err := u.repo.Snapshot(ctx, bucketDayPrefix+date)
	if err != nil {
		return entities.DailyMetrics{}, err
	}
	return entities.DailyMetrics{
		Date:   date,
		Period: periodFromCounters(counters),
		Errors: errorsFromCounters(counters),
	}, nil
}

func (u *MetricsUseCase) increment(ctx context.Context, deltas map[string]int64) error {
	buckets := []string{bucketTotal, bucketDayPrefix + u.today()}
	if err := u.repo.Increment(ctx, buckets, deltas); err != nil {
		log.WithError(err).Error("[metrics][usecase] increment failed")
		return err
	}
	return nil
}

func (u *MetricsUseCase) today() string {
	return u.clock.Now().In(u.loc).Format(dayLayout)
}

func serviceCounter(st entities.ServiceType, name string) string {
	return servicePrefix + string(st) + ":" + name
}

func periodFromCounters(c map[string]int64) entities.MetricsPeriod {
	p := entities.MetricsPeriod{
		PageViews:          nonNegative(c[counterPageViews]),
		Analyses:           nonNegative(c[counterAnalyses]),
		SuccessfulAnalyses: nonNegative(c[counterAnalysesOK]),
		FailedAnalyses:     nonNegative(c[counterAnalysesFailed]),
		Payments:           nonNegative(c[counterPayments]),
		FailedPayments:     nonNegative(c[counterPaymentsFailed]),
		Revenue:            nonNegative(c[counterRevenue]),
		Refunds:            nonNegative(c[counterRefunds]),
		RefundedAmount:     nonNegative(c[counterRefundedAmount]),
		Errors:             nonNegative(c[counterErrors]),
	}
	p.AnalysisSuccess = ratio(p.SuccessfulAnalyses, p.Analyses)
	p.PaymentSuccess = ratio(p.Payments, p.Payments+p.FailedPayments)
	return p
}

func errorsFromCounters(c map[string]int64) entities.ErrorMetrics {
	m := entities.ErrorMetrics{
		Total:      nonNegative(c[counterErrors]),
		Refundable: nonNegative(c[counterErrorsRefundable]),
		ByType:     map[string]int64{},
	}
	for k, v := range c {
		if label, ok := strings.CutPrefix(k, errorTypePrefix); ok {
			m.ByType[label] = nonNegative(v)
		}
	}
	return m
}

func ratio(part, whole int64) float64 {
	if whole <= 0 {
		return 0
	}
	return float64(part) / float64(whole)
}

func nonNegative(v int64) int64 {
	if v < 0 {
		return 0
	}
	return v
}
