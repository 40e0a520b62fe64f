package usecase

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"gwansang/internal/domain/entities"
	mock_interfaces "gwansang/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAdminUseCase_LogServiceError(t *testing.T) {
	ctx := context.Background()

	t.Run("validates kind and message", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.adminUC.LogServiceError(ctx, entities.ServiceErrorLog{Kind: "weird", Message: "x"})
		assert.ErrorIs(t, err, entities.ErrUnknownErrorKind)
		_, err = f.adminUC.LogServiceError(ctx, entities.ServiceErrorLog{Kind: entities.ErrorKindSystem, Message: " "})
		assert.ErrorIs(t, err, ErrInvalidServiceError)
	})

	t.Run("lists newest first with a limit", func(t *testing.T) {
		f := newFixture(t)
		for i := 0; i < 3; i++ {
			_, err := f.adminUC.LogServiceError(ctx, entities.ServiceErrorLog{Kind: entities.ErrorKindSystem, Message: "boom"})
			require.NoError(t, err)
			f.clock.Advance(time.Second)
		}

		logs, err := f.adminUC.ListServiceErrors(ctx, 2)
		require.NoError(t, err)
		require.Len(t, logs, 2)
		assert.Equal(t, testNow.Add(2*time.Second), logs[0].OccurredAt)
		assert.Equal(t, testNow.Add(time.Second), logs[1].OccurredAt)

		logs, err = f.adminUC.ListServiceErrors(ctx, 0)
		require.NoError(t, err)
		assert.Len(t, logs, 3)
	})

	t.Run("repository error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newFixture(t)
		repo := mock_interfaces.NewMockIServiceErrorLogRepository(ctrl)
		uc := NewAdminUseCase(repo, f.orderUC, f.sessionUC, f.refundUC, f.metricsUC, f.clock)

		repo.EXPECT().List(gomock.Any()).Return(nil, errors.New("dynamo"))
		_, err := uc.ListServiceErrors(ctx, 10)
		assert.EqualError(t, err, "dynamo")
	})
}

func TestAdminUseCase_HandleServiceFailure(t *testing.T) {
	ctx := context.Background()

	t.Run("paid order produces a refundable error", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.orderUC.CreateOrder(ctx, entities.NewOrder{
			OrderID:       "A",
			ServiceType:   entities.ServiceTypeProfessionalPhysiognomy,
			Amount:        19900,
			PaymentStatus: entities.PaymentStatusCompleted,
			ServiceStatus: entities.ServiceStatusInProgress,
			PaymentID:     "pay-a",
		})
		require.NoError(t, err)

		report, err := f.adminUC.HandleServiceFailure(ctx, entities.ServiceFailure{
			OrderID:  "A",
			Kind:     entities.ErrorKindAnalysis,
			Message:  "model returned nothing",
			UserInfo: entities.RefundUserInfo{IP: "10.1.1.1"},
		})
		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, report.CustomerStatus)

		require.NotNil(t, report.Order)
		assert.Equal(t, entities.ServiceStatusFailed, report.Order.ServiceStatus)
		assert.Equal(t, []string{"analysis_error: model returned nothing"}, report.Order.ErrorLogs)

		assert.NotEmpty(t, report.ErrorLog.ID)
		assert.Equal(t, "A", report.ErrorLog.OrderID)
		assert.Equal(t, entities.ServiceTypeProfessionalPhysiognomy, report.ErrorLog.ServiceType)
		assert.Equal(t, "10.1.1.1", report.ErrorLog.Details["ip"])

		require.NotNil(t, report.RefundableError)
		assert.True(t, report.RefundableError.RefundStatus.IsEligible)
		require.NotNil(t, report.RefundableError.PaymentInfo)
		assert.Equal(t, int64(19900), report.RefundableError.PaymentInfo.Amount)
		assert.Equal(t, "pay-a", report.RefundableError.PaymentInfo.PaymentID)

		stats, err := f.metricsUC.GetStats(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), stats.Errors.Total)
		assert.Equal(t, int64(1), stats.Errors.Refundable)
		assert.Equal(t, int64(1), stats.Total.FailedAnalyses)

		ok, err := f.orderUC.IsServiceSuccessful(ctx, "A")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("unpaid order is logged without a refund record", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.orderUC.CreateOrder(ctx, entities.NewOrder{OrderID: "B", ServiceType: entities.ServiceTypeSaju, Amount: 9900})
		require.NoError(t, err)

		report, err := f.adminUC.HandleServiceFailure(ctx, entities.ServiceFailure{OrderID: "B", Kind: entities.ErrorKindNetwork, Message: "upstream reset"})
		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, report.CustomerStatus)
		assert.Nil(t, report.RefundableError)

		refunds, err := f.refundUC.GetRefundableErrors(ctx, "")
		require.NoError(t, err)
		assert.Empty(t, refunds)

		stats, err := f.metricsUC.GetStats(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), stats.Errors.ByType["network_error"])
		assert.Equal(t, int64(0), stats.Errors.Refundable)
	})

	t.Run("finished order keeps its service status", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.orderUC.CreateOrder(ctx, entities.NewOrder{OrderID: "C", ServiceType: entities.ServiceTypeSaju, ServiceStatus: entities.ServiceStatusCompleted})
		require.NoError(t, err)

		report, err := f.adminUC.HandleServiceFailure(ctx, entities.ServiceFailure{OrderID: "C", Kind: entities.ErrorKindSystem, Message: "pdf render failed"})
		require.NoError(t, err)
		assert.Equal(t, entities.ServiceStatusCompleted, report.Order.ServiceStatus)
		assert.Len(t, report.Order.ErrorLogs, 1)
	})

	t.Run("session usage is failed", func(t *testing.T) {
		f := newFixture(t)
		s, usage := seedPayment(t, f, "pay-s", 9900, entities.ContactInfo{}, "")

		_, err := f.adminUC.HandleServiceFailure(ctx, entities.ServiceFailure{
			SessionID:   s.SessionID,
			ServiceID:   usage.ServiceID,
			ServiceType: entities.ServiceTypeFaceSaju,
			Kind:        entities.ErrorKindAPI,
			Message:     "quota exceeded",
		})
		require.NoError(t, err)

		got, err := f.sessionUC.GetSession(ctx, s.SessionID)
		require.NoError(t, err)
		assert.Equal(t, entities.ServiceUsageFailed, got.Services[0].Status)
		require.Len(t, got.Errors, 1)

		stats, err := f.metricsUC.GetStats(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), stats.Total.FailedAnalyses)
	})

	t.Run("validation failure answers the customer with 400", func(t *testing.T) {
		f := newFixture(t)
		report, err := f.adminUC.HandleServiceFailure(ctx, entities.ServiceFailure{Kind: entities.ErrorKindValidation, Message: "photo has no face"})
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, report.CustomerStatus)
		assert.Nil(t, report.RefundableError)
	})

	t.Run("unknown order", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.adminUC.HandleServiceFailure(ctx, entities.ServiceFailure{OrderID: "missing", Kind: entities.ErrorKindSystem, Message: "x"})
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})

	t.Run("invalid input", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.adminUC.HandleServiceFailure(ctx, entities.ServiceFailure{Kind: "bad", Message: "x"})
		assert.ErrorIs(t, err, entities.ErrUnknownErrorKind)
		_, err = f.adminUC.HandleServiceFailure(ctx, entities.ServiceFailure{Kind: entities.ErrorKindSystem})
		assert.ErrorIs(t, err, ErrInvalidServiceError)
	})
}

func TestAdminUseCase_Dashboard(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.orderUC.CreateOrder(ctx, entities.NewOrder{OrderID: "A", ServiceType: entities.ServiceTypeSaju, Amount: 9900, PaymentStatus: entities.PaymentStatusCompleted})
	require.NoError(t, err)
	seedPayment(t, f, "pay-1", 9900, entities.ContactInfo{}, "")
	_, err = f.refundUC.TrackRefundableError(ctx, paidDetails(entities.ErrorKindAnalysis, entities.PaymentStatusCompleted, 9900))
	require.NoError(t, err)

	d, err := f.adminUC.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, d.Orders.Total)
	assert.Equal(t, int64(9900), d.Metrics.Today.Revenue)
	assert.Equal(t, int64(9900), d.Services[entities.ServiceTypeSaju].NetRevenue)
	assert.Equal(t, 1, d.Refunds.PendingRefunds)
	assert.Equal(t, 1, d.Sessions.ActiveSessions)
}
