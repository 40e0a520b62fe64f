package usecase

import (
	"context"
	"testing"
	"time"

	"gwansang/internal/adapter/persistence/memory"
	"gwansang/internal/domain/entities"
	"gwansang/internal/usecase/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedPayment creates a session with one usage and a linked payment.
func seedPayment(t *testing.T, f *fixture, paymentID string, amount int64, contact entities.ContactInfo, card string) (entities.AnonymousSession, entities.ServiceUsage) {
	t.Helper()
	ctx := context.Background()

	s, err := f.sessionUC.CreateAnonymousSession(ctx, entities.DeviceInfo{Platform: "ios"})
	require.NoError(t, err)
	usage, err := f.sessionUC.StartServiceUsage(ctx, s.SessionID, entities.ServiceTypeFaceSaju, &contact)
	require.NoError(t, err)
	_, err = f.sessionUC.LinkPayment(ctx, s.SessionID, usage.ServiceID, entities.PaymentLink{
		OrderID:      "ORD-" + paymentID,
		PaymentID:    paymentID,
		Amount:       amount,
		CardLastFour: card,
	})
	require.NoError(t, err)
	return s, usage
}

func TestAnonymousUserUseCase_Sessions(t *testing.T) {
	ctx := context.Background()

	t.Run("create and get", func(t *testing.T) {
		f := newFixture(t)
		s, err := f.sessionUC.CreateAnonymousSession(ctx, entities.DeviceInfo{UserAgent: "Mozilla", IP: "1.2.3.4"})
		require.NoError(t, err)
		assert.NotEmpty(t, s.SessionID)
		assert.NotEmpty(t, s.UserID)
		assert.NotEqual(t, s.SessionID, s.UserID)
		assert.Equal(t, testNow.Add(24*time.Hour), s.ExpiresAt)

		got, err := f.sessionUC.GetSession(ctx, s.SessionID)
		require.NoError(t, err)
		assert.Equal(t, s, got)

		_, err = f.sessionUC.GetSession(ctx, "missing")
		assert.ErrorIs(t, err, ErrSessionNotFound)
		_, err = f.sessionUC.GetSession(ctx, " ")
		assert.ErrorIs(t, err, ErrInvalidSessionID)
	})

	t.Run("activity slides the expiry", func(t *testing.T) {
		f := newFixture(t)
		s, err := f.sessionUC.CreateAnonymousSession(ctx, entities.DeviceInfo{})
		require.NoError(t, err)

		f.clock.Advance(20 * time.Hour)
		_, err = f.sessionUC.StartServiceUsage(ctx, s.SessionID, entities.ServiceTypeSaju, nil)
		require.NoError(t, err)

		f.clock.Advance(20 * time.Hour)
		got, err := f.sessionUC.GetSession(ctx, s.SessionID)
		require.NoError(t, err)
		assert.Equal(t, testNow.Add(44*time.Hour), got.ExpiresAt)
	})

	t.Run("expired sessions are invisible and purged", func(t *testing.T) {
		f := newFixture(t)
		old, err := f.sessionUC.CreateAnonymousSession(ctx, entities.DeviceInfo{})
		require.NoError(t, err)
		f.clock.Advance(23 * time.Hour)
		live, err := f.sessionUC.CreateAnonymousSession(ctx, entities.DeviceInfo{})
		require.NoError(t, err)
		f.clock.Advance(2 * time.Hour)

		_, err = f.sessionUC.GetSession(ctx, old.SessionID)
		assert.ErrorIs(t, err, ErrSessionNotFound)
		_, err = f.sessionUC.StartServiceUsage(ctx, old.SessionID, entities.ServiceTypeSaju, nil)
		assert.ErrorIs(t, err, ErrSessionNotFound)

		removed, err := f.sessionUC.PurgeExpiredSessions(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, removed)

		_, err = f.sessionUC.GetSession(ctx, live.SessionID)
		require.NoError(t, err)
	})
}

func TestAnonymousUserUseCase_ServiceUsage(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown service type", func(t *testing.T) {
		f := newFixture(t)
		s, err := f.sessionUC.CreateAnonymousSession(ctx, entities.DeviceInfo{})
		require.NoError(t, err)
		_, err = f.sessionUC.StartServiceUsage(ctx, s.SessionID, "tarot", nil)
		assert.ErrorIs(t, err, ErrInvalidSessionInput)
	})

	t.Run("complete is terminal", func(t *testing.T) {
		f := newFixture(t)
		s, err := f.sessionUC.CreateAnonymousSession(ctx, entities.DeviceInfo{})
		require.NoError(t, err)
		usage, err := f.sessionUC.StartServiceUsage(ctx, s.SessionID, entities.ServiceTypeSaju, nil)
		require.NoError(t, err)
		assert.Equal(t, entities.ServiceUsageStarted, usage.Status)

		done, err := f.sessionUC.CompleteService(ctx, s.SessionID, usage.ServiceID, entities.ServiceResult{Success: true, Summary: "great fortune"})
		require.NoError(t, err)
		assert.Equal(t, entities.ServiceUsageCompleted, done.Status)
		assert.Equal(t, "great fortune", done.ResultSummary)
		require.NotNil(t, done.CompletedAt)

		_, err = f.sessionUC.CompleteService(ctx, s.SessionID, usage.ServiceID, entities.ServiceResult{Success: false})
		assert.ErrorIs(t, err, ErrServiceUsageFinished)

		_, err = f.sessionUC.CompleteService(ctx, s.SessionID, "other", entities.ServiceResult{Success: true})
		assert.ErrorIs(t, err, ErrServiceUsageNotFound)

		stats, err := f.metricsUC.GetStats(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), stats.Total.SuccessfulAnalyses)
	})

	t.Run("failure records a session error", func(t *testing.T) {
		f := newFixture(t)
		s, err := f.sessionUC.CreateAnonymousSession(ctx, entities.DeviceInfo{})
		require.NoError(t, err)
		usage, err := f.sessionUC.StartServiceUsage(ctx, s.SessionID, entities.ServiceTypeSaju, nil)
		require.NoError(t, err)

		failed, err := f.sessionUC.CompleteService(ctx, s.SessionID, usage.ServiceID, entities.ServiceResult{Error: "model timeout", Kind: entities.ErrorKindAPI})
		require.NoError(t, err)
		assert.Equal(t, entities.ServiceUsageFailed, failed.Status)

		got, err := f.sessionUC.GetSession(ctx, s.SessionID)
		require.NoError(t, err)
		require.Len(t, got.Errors, 1)
		assert.Equal(t, entities.ErrorKindAPI, got.Errors[0].Kind)
		assert.Equal(t, usage.ServiceID, got.Errors[0].ServiceID)
		assert.Equal(t, "model timeout", got.Errors[0].Message)
	})

	t.Run("record session error", func(t *testing.T) {
		f := newFixture(t)
		s, err := f.sessionUC.CreateAnonymousSession(ctx, entities.DeviceInfo{})
		require.NoError(t, err)

		_, err = f.sessionUC.RecordSessionError(ctx, s.SessionID, "", "bad-kind", "x")
		assert.ErrorIs(t, err, entities.ErrUnknownErrorKind)
		_, err = f.sessionUC.RecordSessionError(ctx, s.SessionID, "svc-missing", entities.ErrorKindNetwork, "x")
		assert.ErrorIs(t, err, ErrServiceUsageNotFound)

		e, err := f.sessionUC.RecordSessionError(ctx, s.SessionID, "", entities.ErrorKindNetwork, "upload failed")
		require.NoError(t, err)
		assert.NotEmpty(t, e.ErrorID)
	})
}

func TestAnonymousUserUseCase_Payments(t *testing.T) {
	ctx := context.Background()

	t.Run("link defaults contact from the usage", func(t *testing.T) {
		f := newFixture(t)
		s, usage := seedPayment(t, f, "pay-1", 9900, entities.ContactInfo{Email: " kim@example.com ", Phone: "010-1234-5678"}, "1234-5678-9012-3456")

		got, err := f.sessionUC.GetSession(ctx, s.SessionID)
		require.NoError(t, err)
		idx := got.FindService(usage.ServiceID)
		require.GreaterOrEqual(t, idx, 0)
		p := got.Services[idx].Payment
		require.NotNil(t, p)
		assert.Equal(t, "kim@example.com", p.ContactInfo.Email)
		assert.Equal(t, "010-1234-5678", p.ContactInfo.Phone)
		assert.Equal(t, "3456", p.CardLastFour)
		assert.Equal(t, entities.PaymentStatusPending, p.PaymentStatus)
		assert.Equal(t, entities.ServiceTypeFaceSaju, p.ServiceType)
	})

	t.Run("a payment links once", func(t *testing.T) {
		f := newFixture(t)
		s, usage := seedPayment(t, f, "pay-1", 9900, entities.ContactInfo{}, "")

		_, err := f.sessionUC.LinkPayment(ctx, s.SessionID, usage.ServiceID, entities.PaymentLink{PaymentID: "pay-2", Amount: 1})
		assert.ErrorIs(t, err, ErrPaymentAlreadyLinked)

		other, err := f.sessionUC.StartServiceUsage(ctx, s.SessionID, entities.ServiceTypeSaju, nil)
		require.NoError(t, err)
		_, err = f.sessionUC.LinkPayment(ctx, s.SessionID, other.ServiceID, entities.PaymentLink{PaymentID: "pay-1", Amount: 1})
		assert.ErrorIs(t, err, ErrPaymentAlreadyLinked)

		_, err = f.sessionUC.LinkPayment(ctx, s.SessionID, "nope", entities.PaymentLink{PaymentID: "pay-3", Amount: 1})
		assert.ErrorIs(t, err, ErrServiceUsageNotFound)
	})

	t.Run("store rejects a payment linked concurrently in another session", func(t *testing.T) {
		f := newFixture(t)
		seedPayment(t, f, "pay-1", 9900, entities.ContactInfo{}, "")

		// The lookup misses the link, as it would while the first write is in flight.
		uc := NewAnonymousUserUseCase(missedLookupSessions{f.sessions}, staticPolicy{entities.DefaultMatchPolicy()}, f.metricsUC, f.clock, 24*time.Hour)
		s, err := uc.CreateAnonymousSession(ctx, entities.DeviceInfo{})
		require.NoError(t, err)
		usage, err := uc.StartServiceUsage(ctx, s.SessionID, entities.ServiceTypeSaju, nil)
		require.NoError(t, err)

		_, err = uc.LinkPayment(ctx, s.SessionID, usage.ServiceID, entities.PaymentLink{PaymentID: "pay-1", Amount: 9900})
		assert.ErrorIs(t, err, ErrPaymentAlreadyLinked)

		got, err := uc.GetSession(ctx, s.SessionID)
		require.NoError(t, err)
		assert.Nil(t, got.Services[0].Payment)
	})

	t.Run("memory store keeps payment ids unique across sessions", func(t *testing.T) {
		f := newFixture(t)
		seedPayment(t, f, "pay-1", 9900, entities.ContactInfo{}, "")
		other, err := f.sessionUC.CreateAnonymousSession(ctx, entities.DeviceInfo{})
		require.NoError(t, err)

		other.Services = []entities.ServiceUsage{{ServiceID: "svc", Payment: &entities.PaymentTracker{PaymentID: "pay-1"}}}
		_, err = f.sessions.Update(ctx, other)
		assert.ErrorIs(t, err, interfaces.ErrPaymentIDTaken)

		other.Services[0].Payment.PaymentID = "pay-2"
		_, err = f.sessions.Update(ctx, other)
		require.NoError(t, err)
	})

	t.Run("complete payment is idempotent", func(t *testing.T) {
		f := newFixture(t)
		seedPayment(t, f, "pay-1", 9900, entities.ContactInfo{}, "")

		p, err := f.sessionUC.CompletePayment(ctx, "pay-1")
		require.NoError(t, err)
		assert.Equal(t, entities.PaymentStatusCompleted, p.PaymentStatus)
		require.NotNil(t, p.CompletedAt)
		first := *p.CompletedAt

		f.clock.Advance(time.Minute)
		p, err = f.sessionUC.CompletePayment(ctx, "pay-1")
		require.NoError(t, err)
		assert.Equal(t, first, *p.CompletedAt)

		_, err = f.sessionUC.CompletePayment(ctx, "pay-unknown")
		assert.ErrorIs(t, err, ErrPaymentTrackerMissing)
	})

	t.Run("final trackers reject completion", func(t *testing.T) {
		f := newFixture(t)
		s, err := f.sessionUC.CreateAnonymousSession(ctx, entities.DeviceInfo{})
		require.NoError(t, err)
		usage, err := f.sessionUC.StartServiceUsage(ctx, s.SessionID, entities.ServiceTypeSaju, nil)
		require.NoError(t, err)
		_, err = f.sessionUC.LinkPayment(ctx, s.SessionID, usage.ServiceID, entities.PaymentLink{PaymentID: "pay-f", PaymentStatus: entities.PaymentStatusFailed})
		require.NoError(t, err)

		_, err = f.sessionUC.CompletePayment(ctx, "pay-f")
		assert.ErrorIs(t, err, ErrPaymentTrackerFinal)
	})
}

func TestAnonymousUserUseCase_FindUsersByMultipleConditions(t *testing.T) {
	ctx := context.Background()

	t.Run("no conditions yields no matches", func(t *testing.T) {
		f := newFixture(t)
		seedPayment(t, f, "pay-1", 9900, entities.ContactInfo{Email: "a@example.com"}, "1111")

		matches, err := f.sessionUC.FindUsersByMultipleConditions(ctx, entities.MatchConditions{})
		require.NoError(t, err)
		assert.NotNil(t, matches)
		assert.Empty(t, matches)

		matches, err = f.sessionUC.FindUsersByMultipleConditions(ctx, entities.MatchConditions{Phone: "---", Email: "  "})
		require.NoError(t, err)
		assert.Empty(t, matches)
	})

	t.Run("scores and orders candidates", func(t *testing.T) {
		f := newFixture(t)
		kimSession, _ := seedPayment(t, f, "pay-kim", 9900, entities.ContactInfo{Phone: "010-1234-5678", Email: "Kim@Example.com"}, "4321")
		f.clock.Advance(time.Minute)
		leeSession, _ := seedPayment(t, f, "pay-lee", 9900, entities.ContactInfo{Phone: "010-9999-0000"}, "")
		f.clock.Advance(3 * time.Hour)
		seedPayment(t, f, "pay-park", 4900, entities.ContactInfo{}, "")

		window := &entities.TimeRange{Start: testNow.Add(-time.Hour), End: testNow.Add(time.Hour)}
		matches, err := f.sessionUC.FindUsersByMultipleConditions(ctx, entities.MatchConditions{
			TimeRange: window,
			Amount:    ptr(int64(9900)),
			Phone:     "01012345678",
		})
		require.NoError(t, err)
		require.Len(t, matches, 2)

		assert.Equal(t, kimSession.SessionID, matches[0].SessionID)
		assert.Equal(t, 90, matches[0].MatchScore)
		assert.Equal(t, entities.MatchConfidenceHigh, matches[0].Confidence)
		assert.Equal(t, []string{entities.MatchedTimeRange, entities.MatchedAmount, entities.MatchedPhone}, matches[0].MatchedConditions)

		assert.Equal(t, leeSession.SessionID, matches[1].SessionID)
		assert.Equal(t, 50, matches[1].MatchScore)
		assert.Equal(t, entities.MatchConfidenceHigh, matches[1].Confidence)
	})

	t.Run("email and card matching", func(t *testing.T) {
		f := newFixture(t)
		seedPayment(t, f, "pay-kim", 9900, entities.ContactInfo{Email: "Kim@Example.com"}, "4321")

		matches, err := f.sessionUC.FindUsersByMultipleConditions(ctx, entities.MatchConditions{Email: " kim@example.COM "})
		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.Equal(t, 40, matches[0].MatchScore)
		assert.Equal(t, entities.MatchConfidenceMedium, matches[0].Confidence)

		matches, err = f.sessionUC.FindUsersByMultipleConditions(ctx, entities.MatchConditions{CardLastFour: "4321"})
		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.Equal(t, entities.MatchConfidenceLow, matches[0].Confidence)
	})

	t.Run("expired sessions are not matched", func(t *testing.T) {
		f := newFixture(t)
		seedPayment(t, f, "pay-kim", 9900, entities.ContactInfo{}, "")
		f.clock.Advance(25 * time.Hour)

		matches, err := f.sessionUC.FindUsersByMultipleConditions(ctx, entities.MatchConditions{Amount: ptr(int64(9900))})
		require.NoError(t, err)
		assert.Empty(t, matches)
	})

	t.Run("weights come from the policy", func(t *testing.T) {
		f := newFixture(t)
		policy := entities.DefaultMatchPolicy()
		policy.AmountWeight = 60
		f.sessionUC = NewAnonymousUserUseCase(f.sessions, staticPolicy{policy}, nil, f.clock, 24*time.Hour)
		seedPayment(t, f, "pay-kim", 9900, entities.ContactInfo{}, "")

		matches, err := f.sessionUC.FindUsersByMultipleConditions(ctx, entities.MatchConditions{Amount: ptr(int64(9900))})
		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.Equal(t, 60, matches[0].MatchScore)
		assert.Equal(t, entities.MatchConfidenceHigh, matches[0].Confidence)
	})
}

func TestAnonymousUserUseCase_ResolveSupportCase(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	seedPayment(t, f, "pay-kim", 9900, entities.ContactInfo{Phone: "010-1234-5678", Email: "kim@example.com"}, "")
	seedPayment(t, f, "pay-lee", 4900, entities.ContactInfo{Email: "lee@example.com"}, "")
	seedPayment(t, f, "pay-choi", 4900, entities.ContactInfo{}, "7777")

	cases := []struct {
		name     string
		cond     entities.MatchConditions
		workflow entities.SupportWorkflow
	}{
		{"nothing matches", entities.MatchConditions{Email: "nobody@example.com"}, entities.WorkflowRequestAdditionalInfo},
		{"single strong match", entities.MatchConditions{Phone: "01012345678", Amount: ptr(int64(9900))}, entities.WorkflowAutoMatched},
		{"single weak match", entities.MatchConditions{Email: "lee@example.com"}, entities.WorkflowCustomerServiceContact},
		{"several candidates", entities.MatchConditions{Amount: ptr(int64(4900))}, entities.WorkflowManualReviewSelect},
		{"no conditions", entities.MatchConditions{}, entities.WorkflowRequestAdditionalInfo},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := f.sessionUC.ResolveSupportCase(ctx, tc.cond)
			require.NoError(t, err)
			assert.Equal(t, tc.workflow, res.Workflow)
		})
	}
}

func TestAnonymousUserUseCase_GetSessionStats(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	s, _ := seedPayment(t, f, "pay-1", 9900, entities.ContactInfo{}, "")
	seedPayment(t, f, "pay-2", 9900, entities.ContactInfo{}, "")
	_, err := f.sessionUC.CompletePayment(ctx, "pay-2")
	require.NoError(t, err)
	_, err = f.sessionUC.StartServiceUsage(ctx, s.SessionID, entities.ServiceTypeSaju, nil)
	require.NoError(t, err)
	_, err = f.sessionUC.RecordSessionError(ctx, s.SessionID, "", entities.ErrorKindSystem, "x")
	require.NoError(t, err)
	_, err = f.sessionUC.CreateAnonymousSession(ctx, entities.DeviceInfo{})
	require.NoError(t, err)

	stats, err := f.sessionUC.GetSessionStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, entities.SessionStats{
		ActiveSessions:    3,
		ServiceUsages:     3,
		LinkedPayments:    2,
		CompletedPayments: 1,
		Errors:            1,
	}, stats)
}

// missedLookupSessions never finds a payment owner.
type missedLookupSessions struct {
	*memory.SessionMemoryRepository
}

func (missedLookupSessions) FindByPaymentID(context.Context, string) (entities.AnonymousSession, error) {
	return entities.AnonymousSession{}, nil
}
