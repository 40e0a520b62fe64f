package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"gwansang/internal/adapter/http/handlers/mocks"
	"gwansang/internal/domain/entities"
	"gwansang/internal/usecase"
	mock_interfaces "gwansang/internal/usecase/interfaces/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newSessionRouter(t *testing.T) (*gin.Engine, *mocks.MockIAnonymousUserUseCase, *mock_interfaces.MockIPaymentGateway) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIAnonymousUserUseCase(ctrl)
	gw := mock_interfaces.NewMockIPaymentGateway(ctrl)

	sessions := NewSessionHandler(uc)
	payments := NewPaymentHandler(uc, gw)
	support := NewSupportHandler(uc)

	r := gin.New()
	r.POST("/v1/sessions", sessions.CreateSession)
	r.GET("/v1/sessions/:session_id", sessions.GetSession)
	r.POST("/v1/sessions/:session_id/services", sessions.StartService)
	r.POST("/v1/sessions/:session_id/services/:service_id/payment", sessions.LinkPayment)
	r.POST("/v1/sessions/:session_id/services/:service_id/complete", sessions.CompleteService)
	r.POST("/v1/sessions/:session_id/errors", sessions.RecordError)
	r.GET("/v1/admin/sessions/stats", sessions.GetSessionStats)
	r.POST("/v1/admin/sessions/purge", sessions.PurgeExpired)
	r.POST("/v1/payments/:payment_id/complete", payments.CompletePayment)
	r.GET("/v1/payments/:payment_id", payments.GetPayment)
	r.POST("/v1/support/find-user", support.FindUser)
	r.POST("/v1/support/matches", support.SearchMatches)
	return r, uc, gw
}

func TestSessionHandler_CreateSession(t *testing.T) {
	t.Run("empty body uses transport info", func(t *testing.T) {
		r, uc, _ := newSessionRouter(t)
		uc.EXPECT().CreateAnonymousSession(gomock.Any(), entities.DeviceInfo{IP: "192.0.2.1"}).
			Return(entities.AnonymousSession{SessionID: "s-1", UserID: "u-1", DeviceInfo: entities.DeviceInfo{IP: "192.0.2.1"}}, nil)

		w := perform(r, http.MethodPost, "/v1/sessions", "")
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		if err := json.Unmarshal(decode(t, w).Data, &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if body["sessionId"] != "s-1" {
			t.Fatalf("unexpected body: %v", body)
		}
		if _, ok := body["deviceInfo"]; ok {
			t.Fatalf("device info must not be returned: %v", body)
		}
	})

	t.Run("device hints from body", func(t *testing.T) {
		r, uc, _ := newSessionRouter(t)
		uc.EXPECT().CreateAnonymousSession(gomock.Any(), entities.DeviceInfo{UserAgent: "ios-app", IP: "192.0.2.1", Platform: "iOS", Language: "ko-KR"}).
			Return(entities.AnonymousSession{SessionID: "s-2"}, nil)
		w := perform(r, http.MethodPost, "/v1/sessions", `{"userAgent":"ios-app","platform":"iOS","language":"ko-KR"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestSessionHandler_Services(t *testing.T) {
	t.Run("session not found", func(t *testing.T) {
		r, uc, _ := newSessionRouter(t)
		uc.EXPECT().GetSession(gomock.Any(), "nope").Return(entities.AnonymousSession{}, usecase.ErrSessionNotFound)
		w := perform(r, http.MethodGet, "/v1/sessions/nope", "")
		expectError(t, w, http.StatusNotFound, "SESSION_NOT_FOUND")
	})

	t.Run("start service rejects unknown type", func(t *testing.T) {
		r, _, _ := newSessionRouter(t)
		w := perform(r, http.MethodPost, "/v1/sessions/s-1/services", `{"serviceType":"astrology"}`)
		expectError(t, w, http.StatusBadRequest, "INVALID_SERVICE_TYPE")
	})

	t.Run("start service", func(t *testing.T) {
		r, uc, _ := newSessionRouter(t)
		uc.EXPECT().StartServiceUsage(gomock.Any(), "s-1", entities.ServiceTypeMBTIFace, &entities.ContactInfo{Phone: "010-1234-5678"}).
			Return(entities.ServiceUsage{ServiceID: "svc-1", ServiceType: entities.ServiceTypeMBTIFace, Status: entities.ServiceUsageStarted}, nil)
		w := perform(r, http.MethodPost, "/v1/sessions/s-1/services", `{"serviceType":"mbti-face","contactInfo":{"phone":"010-1234-5678"}}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("link payment twice", func(t *testing.T) {
		r, uc, _ := newSessionRouter(t)
		uc.EXPECT().LinkPayment(gomock.Any(), "s-1", "svc-1", gomock.Any()).Return(entities.PaymentTracker{}, usecase.ErrPaymentAlreadyLinked)
		w := perform(r, http.MethodPost, "/v1/sessions/s-1/services/svc-1/payment", `{"paymentId":"pay-1","amount":9900}`)
		expectError(t, w, http.StatusConflict, "PAYMENT_ALREADY_LINKED")
	})

	t.Run("link payment requires id", func(t *testing.T) {
		r, _, _ := newSessionRouter(t)
		w := perform(r, http.MethodPost, "/v1/sessions/s-1/services/svc-1/payment", `{"amount":9900}`)
		expectError(t, w, http.StatusBadRequest, "INVALID_REQUEST")
	})

	t.Run("complete finished service", func(t *testing.T) {
		r, uc, _ := newSessionRouter(t)
		uc.EXPECT().CompleteService(gomock.Any(), "s-1", "svc-1", entities.ServiceResult{Success: true, Summary: "ok"}).
			Return(entities.ServiceUsage{}, usecase.ErrServiceUsageFinished)
		w := perform(r, http.MethodPost, "/v1/sessions/s-1/services/svc-1/complete", `{"success":true,"summary":"ok"}`)
		expectError(t, w, http.StatusConflict, "SERVICE_ALREADY_FINISHED")
	})

	t.Run("record error", func(t *testing.T) {
		r, uc, _ := newSessionRouter(t)
		uc.EXPECT().RecordSessionError(gomock.Any(), "s-1", "svc-1", entities.ErrorKindAnalysis, "no face").
			Return(entities.SessionError{ErrorID: "e-1", Kind: entities.ErrorKindAnalysis}, nil)
		w := perform(r, http.MethodPost, "/v1/sessions/s-1/errors", `{"serviceId":"svc-1","kind":"analysis_error","message":"no face"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("purge", func(t *testing.T) {
		r, uc, _ := newSessionRouter(t)
		uc.EXPECT().PurgeExpiredSessions(gomock.Any()).Return(4, nil)
		w := perform(r, http.MethodPost, "/v1/admin/sessions/purge", "")
		if string(decode(t, w).Data) != `{"removed":4}` {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("stats", func(t *testing.T) {
		r, uc, _ := newSessionRouter(t)
		uc.EXPECT().GetSessionStats(gomock.Any()).Return(entities.SessionStats{}, errors.New("scan failed"))
		w := perform(r, http.MethodGet, "/v1/admin/sessions/stats", "")
		expectError(t, w, http.StatusInternalServerError, "INTERNAL_ERROR")
	})
}

func TestPaymentHandler(t *testing.T) {
	t.Run("complete unknown payment", func(t *testing.T) {
		r, uc, _ := newSessionRouter(t)
		uc.EXPECT().CompletePayment(gomock.Any(), "pay-x").Return(entities.PaymentTracker{}, usecase.ErrPaymentTrackerMissing)
		w := perform(r, http.MethodPost, "/v1/payments/pay-x/complete", "")
		expectError(t, w, http.StatusNotFound, "PAYMENT_NOT_FOUND")
	})

	t.Run("complete final payment", func(t *testing.T) {
		r, uc, _ := newSessionRouter(t)
		uc.EXPECT().CompletePayment(gomock.Any(), "pay-1").Return(entities.PaymentTracker{}, usecase.ErrPaymentTrackerFinal)
		w := perform(r, http.MethodPost, "/v1/payments/pay-1/complete", "")
		expectError(t, w, http.StatusConflict, "PAYMENT_ALREADY_FINAL")
	})

	t.Run("gateway lookup", func(t *testing.T) {
		r, _, gw := newSessionRouter(t)
		gw.EXPECT().GetPaymentInfo(gomock.Any(), "123").Return(entities.GatewayResult{ResultCode: "0000", PaymentID: "123", Amount: 9900}, nil)
		w := perform(r, http.MethodGet, "/v1/payments/123", "")
		var res entities.GatewayResult
		if err := json.Unmarshal(decode(t, w).Data, &res); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !res.Succeeded() || res.Amount != 9900 {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("gateway unreachable", func(t *testing.T) {
		r, _, gw := newSessionRouter(t)
		gw.EXPECT().GetPaymentInfo(gomock.Any(), "123").Return(entities.GatewayResult{}, errors.New("dial tcp: timeout"))
		w := perform(r, http.MethodGet, "/v1/payments/123", "")
		expectError(t, w, http.StatusBadGateway, "PAYMENT_GATEWAY_ERROR")
	})

	t.Run("gateway not configured", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		h := NewPaymentHandler(nil, nil)
		r := gin.New()
		r.GET("/v1/payments/:payment_id", h.GetPayment)
		w := perform(r, http.MethodGet, "/v1/payments/123", "")
		expectError(t, w, http.StatusServiceUnavailable, "PAYMENT_GATEWAY_DISABLED")
	})
}

func TestSupportHandler(t *testing.T) {
	t.Run("resolve", func(t *testing.T) {
		r, uc, _ := newSessionRouter(t)
		amount := int64(9900)
		uc.EXPECT().ResolveSupportCase(gomock.Any(), entities.MatchConditions{Amount: &amount, Phone: "010-1234-5678"}).
			Return(entities.SupportResolution{Workflow: entities.WorkflowAutoMatched, Matches: []entities.UserMatch{{SessionID: "s-1", MatchScore: 90}}}, nil)

		w := perform(r, http.MethodPost, "/v1/support/find-user", `{"amount":9900,"phone":" 010-1234-5678 "}`)
		var res entities.SupportResolution
		if err := json.Unmarshal(decode(t, w).Data, &res); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if res.Workflow != entities.WorkflowAutoMatched || len(res.Matches) != 1 {
			t.Fatalf("unexpected resolution: %+v", res)
		}
	})

	t.Run("matches", func(t *testing.T) {
		r, uc, _ := newSessionRouter(t)
		uc.EXPECT().FindUsersByMultipleConditions(gomock.Any(), entities.MatchConditions{Email: "a@b.kr"}).Return([]entities.UserMatch{}, nil)
		w := perform(r, http.MethodPost, "/v1/support/matches", `{"email":"a@b.kr"}`)
		if string(decode(t, w).Data) != `[]` {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		r, _, _ := newSessionRouter(t)
		w := perform(r, http.MethodPost, "/v1/support/find-user", `{"amount":"lots"}`)
		expectError(t, w, http.StatusBadRequest, "INVALID_REQUEST")
	})
}
