package entities

import (
	"net/http"
	"testing"
	"time"
)

func TestServiceStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from, to ServiceStatus
		want     bool
	}{
		{ServiceStatusPending, ServiceStatusInProgress, true},
		{ServiceStatusPending, ServiceStatusCompleted, true},
		{ServiceStatusInProgress, ServiceStatusFailed, true},
		{ServiceStatusInProgress, ServiceStatusInProgress, true},
		{ServiceStatusInProgress, ServiceStatusPending, false},
		{ServiceStatusCompleted, ServiceStatusFailed, false},
		{ServiceStatusFailed, ServiceStatusCompleted, false},
		{ServiceStatusCompleted, ServiceStatusInProgress, false},
		{ServiceStatusPending, ServiceStatus("done"), false},
	}
	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.want {
			t.Fatalf("%s -> %s: expected %v got %v", tc.from, tc.to, tc.want, got)
		}
	}
}

func TestParseErrorKind(t *testing.T) {
	for _, raw := range []string{"network-error", "NETWORK_ERROR", " network_error "} {
		k, err := ParseErrorKind(raw)
		if err != nil || k != ErrorKindNetwork {
			t.Fatalf("parse %q: got %q err=%v", raw, k, err)
		}
	}
	if _, err := ParseErrorKind("timeout"); err != ErrUnknownErrorKind {
		t.Fatalf("expected ErrUnknownErrorKind, got %v", err)
	}
}

func TestErrorKind_RefundableAndStatus(t *testing.T) {
	for _, k := range AllErrorKinds {
		if k == ErrorKindValidation {
			if k.Refundable() || k.HTTPStatus() != http.StatusBadRequest {
				t.Fatalf("validation errors are not refundable and map to 400")
			}
			continue
		}
		if !k.Refundable() {
			t.Fatalf("%s should be refundable", k)
		}
		if k.HTTPStatus() != http.StatusInternalServerError {
			t.Fatalf("%s should map to 500, got %d", k, k.HTTPStatus())
		}
	}
}

func TestRefundEligible(t *testing.T) {
	completed := &RefundPaymentInfo{Amount: 9900, PaymentStatus: PaymentStatusCompleted}
	pending := &RefundPaymentInfo{Amount: 9900, PaymentStatus: PaymentStatusPending}

	if !RefundEligible(ErrorKindAnalysis, completed) {
		t.Fatalf("completed payment + analysis error should be eligible")
	}
	if RefundEligible(ErrorKindAnalysis, pending) {
		t.Fatalf("pending payment must not be eligible")
	}
	if RefundEligible(ErrorKindValidation, completed) {
		t.Fatalf("validation error must not be eligible")
	}
	if RefundEligible(ErrorKindSystem, nil) {
		t.Fatalf("missing payment info must not be eligible")
	}
}

func TestParseServiceType(t *testing.T) {
	st, err := ParseServiceType("MBTI_FACE")
	if err != nil || st != ServiceTypeMBTIFace {
		t.Fatalf("expected mbti-face, got %q err=%v", st, err)
	}
	if _, err := ParseServiceType("tarot"); err != ErrUnknownServiceType {
		t.Fatalf("expected ErrUnknownServiceType, got %v", err)
	}
	if ServiceType("MBTI_FACE").Valid() {
		t.Fatalf("Valid must only accept canonical values")
	}
}

func TestMatchPolicy_Confidence(t *testing.T) {
	p := DefaultMatchPolicy()
	if p.Confidence(p.TimeWindowWeight+p.AmountWeight) != MatchConfidenceHigh {
		t.Fatalf("time+amount should be high confidence")
	}
	if p.Confidence(p.PhoneWeight) != MatchConfidenceMedium {
		t.Fatalf("single phone match should be medium confidence")
	}
	if p.Confidence(p.CardLastFourWeight) != MatchConfidenceLow {
		t.Fatalf("card last four alone should be low confidence")
	}
}

func TestAnonymousSession_Expired(t *testing.T) {
	now := time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)
	s := AnonymousSession{ExpiresAt: now.Add(time.Minute)}
	if s.Expired(now) {
		t.Fatalf("session should still be live")
	}
	if !s.Expired(now.Add(time.Minute)) {
		t.Fatalf("session should expire at ExpiresAt")
	}
	if (&AnonymousSession{}).Expired(now) {
		t.Fatalf("zero ExpiresAt means no expiry")
	}
}
