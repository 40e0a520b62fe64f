package usecase

import (
	"testing"
	"time"

	"gwansang/internal/adapter/persistence/memory"
	"gwansang/internal/domain/entities"
	"gwansang/internal/infrastructure/clock"
)

// 12:00 KST.
var testNow = time.Date(2026, 3, 14, 3, 0, 0, 0, time.UTC)

var kst = time.FixedZone("KST", 9*60*60)

type staticPolicy struct{ p entities.MatchPolicy }

func (s staticPolicy) Get() entities.MatchPolicy { return s.p }

type fixture struct {
	clock    *clock.FakeClock
	orders   *memory.OrderMemoryRepository
	sessions *memory.SessionMemoryRepository
	refunds  *memory.RefundableErrorMemoryRepository
	logs     *memory.ServiceErrorLogMemoryRepository

	metricsUC *MetricsUseCase
	orderUC   *OrderUseCase
	sessionUC *AnonymousUserUseCase
	refundUC  *RefundTrackingUseCase
	adminUC   *AdminUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		clock:    clock.NewFakeClock(testNow),
		orders:   memory.NewOrderMemoryRepository(),
		sessions: memory.NewSessionMemoryRepository(),
		refunds:  memory.NewRefundableErrorMemoryRepository(),
		logs:     memory.NewServiceErrorLogMemoryRepository(),
	}
	f.metricsUC = NewMetricsUseCase(memory.NewMetricsMemoryRepository(), f.clock, kst)
	f.orderUC = NewOrderUseCase(f.orders, nil, f.metricsUC, nil, f.clock, kst)
	f.sessionUC = NewAnonymousUserUseCase(f.sessions, staticPolicy{entities.DefaultMatchPolicy()}, f.metricsUC, f.clock, 24*time.Hour)
	f.refundUC = NewRefundTrackingUseCase(f.refunds, f.metricsUC, nil, nil, f.clock)
	f.adminUC = NewAdminUseCase(f.logs, f.orderUC, f.sessionUC, f.refundUC, f.metricsUC, f.clock)
	return f
}

func ptr[T any](v T) *T { return &v }
