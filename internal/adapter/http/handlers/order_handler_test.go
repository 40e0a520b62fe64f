package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"gwansang/internal/adapter/http/handlers/mocks"
	"gwansang/internal/domain/entities"
	"gwansang/internal/usecase"
	"gwansang/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newOrderRouter(t *testing.T) (*gin.Engine, *mocks.MockIOrderUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIOrderUseCase(ctrl)
	h := NewOrderHandler(uc)

	r := gin.New()
	r.POST("/v1/orders", h.CreateOrder)
	r.GET("/v1/orders", h.ListOrders)
	r.GET("/v1/orders/stats", h.GetOrderStats)
	r.GET("/v1/orders/:order_id", h.GetOrder)
	r.PATCH("/v1/orders/:order_id/status", h.UpdateOrderStatus)
	r.POST("/v1/orders/:order_id/error-logs", h.AddErrorLog)
	r.POST("/v1/orders/:order_id/refund-request", h.RequestRefund)
	r.POST("/v1/orders/:order_id/refund", h.ProcessRefund)
	r.GET("/v1/orders/:order_id/success", h.CheckServiceSuccess)
	return r, uc
}

func TestOrderHandler_CreateOrder(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		r, _ := newOrderRouter(t)
		w := perform(r, http.MethodPost, "/v1/orders", "{")
		expectError(t, w, http.StatusBadRequest, "INVALID_REQUEST")
	})

	t.Run("unknown service type", func(t *testing.T) {
		r, _ := newOrderRouter(t)
		w := perform(r, http.MethodPost, "/v1/orders", `{"serviceType":"tarot","amount":1000}`)
		expectError(t, w, http.StatusBadRequest, "INVALID_SERVICE_TYPE")
	})

	t.Run("negative amount", func(t *testing.T) {
		r, _ := newOrderRouter(t)
		w := perform(r, http.MethodPost, "/v1/orders", `{"serviceType":"saju","amount":-1}`)
		expectError(t, w, http.StatusBadRequest, "INVALID_AMOUNT")
	})

	t.Run("duplicate id", func(t *testing.T) {
		r, uc := newOrderRouter(t)
		uc.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(entities.Order{}, usecase.ErrOrderAlreadyExists)
		w := perform(r, http.MethodPost, "/v1/orders", `{"orderId":"A","serviceType":"saju","amount":9900}`)
		expectError(t, w, http.StatusConflict, "ORDER_ALREADY_EXISTS")
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newOrderRouter(t)
		now := time.Date(2026, 3, 14, 3, 0, 0, 0, time.UTC)
		uc.EXPECT().CreateOrder(gomock.Any(), entities.NewOrder{
			OrderID:     "A",
			ServiceType: entities.ServiceTypeFaceSaju,
			Amount:      9900,
		}).Return(entities.Order{
			OrderID:       "A",
			ServiceType:   entities.ServiceTypeFaceSaju,
			Amount:        9900,
			PaymentStatus: entities.PaymentStatusPending,
			ServiceStatus: entities.ServiceStatusPending,
			CreatedAt:     now,
			UpdatedAt:     now,
		}, nil)

		w := perform(r, http.MethodPost, "/v1/orders", `{"orderId":" A ","serviceType":"FACE_SAJU","amount":9900}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		env := decode(t, w)
		var body map[string]any
		if err := json.Unmarshal(env.Data, &body); err != nil {
			t.Fatalf("decode data: %v", err)
		}
		if body["orderId"] != "A" || body["serviceName"] != "관상 사주" || body["paymentStatus"] != "pending" {
			t.Fatalf("unexpected order body: %v", body)
		}
	})
}

func TestOrderHandler_GetOrder(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		r, uc := newOrderRouter(t)
		uc.EXPECT().GetOrder(gomock.Any(), "missing").Return(entities.Order{}, usecase.ErrOrderNotFound)
		w := perform(r, http.MethodGet, "/v1/orders/missing", "")
		expectError(t, w, http.StatusNotFound, "ORDER_NOT_FOUND")
	})

	t.Run("internal error hides cause", func(t *testing.T) {
		r, uc := newOrderRouter(t)
		uc.EXPECT().GetOrder(gomock.Any(), "A").Return(entities.Order{}, errors.New("dynamodb throttled"))
		w := perform(r, http.MethodGet, "/v1/orders/A", "")
		expectError(t, w, http.StatusInternalServerError, "INTERNAL_ERROR")
		if got := w.Body.String(); strings.Contains(got, "dynamodb") {
			t.Fatalf("cause leaked: %s", got)
		}
	})

	t.Run("stats route is not captured by the id route", func(t *testing.T) {
		r, uc := newOrderRouter(t)
		uc.EXPECT().GetOrderStats(gomock.Any()).Return(entities.OrderStats{Total: 3, TotalRevenue: 29700}, nil)
		w := perform(r, http.MethodGet, "/v1/orders/stats", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var stats entities.OrderStats
		if err := json.Unmarshal(decode(t, w).Data, &stats); err != nil {
			t.Fatalf("decode stats: %v", err)
		}
		if stats.Total != 3 || stats.TotalRevenue != 29700 {
			t.Fatalf("unexpected stats: %+v", stats)
		}
	})

	t.Run("list", func(t *testing.T) {
		r, uc := newOrderRouter(t)
		uc.EXPECT().ListOrders(gomock.Any()).Return([]entities.Order{{OrderID: "B"}, {OrderID: "A"}}, nil)
		w := perform(r, http.MethodGet, "/v1/orders", "")
		var orders []map[string]any
		if err := json.Unmarshal(decode(t, w).Data, &orders); err != nil {
			t.Fatalf("decode list: %v", err)
		}
		if len(orders) != 2 || orders[0]["orderId"] != "B" {
			t.Fatalf("unexpected list: %v", orders)
		}
	})
}

func TestOrderHandler_UpdateOrderStatus(t *testing.T) {
	t.Run("empty patch", func(t *testing.T) {
		r, _ := newOrderRouter(t)
		w := perform(r, http.MethodPatch, "/v1/orders/A/status", `{}`)
		expectError(t, w, http.StatusBadRequest, "EMPTY_UPDATE")
	})

	t.Run("invalid status", func(t *testing.T) {
		r, _ := newOrderRouter(t)
		w := perform(r, http.MethodPatch, "/v1/orders/A/status", `{"serviceStatus":"exploded"}`)
		expectError(t, w, http.StatusBadRequest, "INVALID_SERVICE_STATUS")
	})

	t.Run("transition refused", func(t *testing.T) {
		r, uc := newOrderRouter(t)
		uc.EXPECT().UpdateOrderStatus(gomock.Any(), "A", gomock.Any()).Return(entities.Order{}, usecase.ErrInvalidServiceTransition)
		w := perform(r, http.MethodPatch, "/v1/orders/A/status", `{"serviceStatus":"pending"}`)
		expectError(t, w, http.StatusConflict, "INVALID_STATUS_TRANSITION")
	})

	t.Run("version conflict", func(t *testing.T) {
		r, uc := newOrderRouter(t)
		uc.EXPECT().UpdateOrderStatus(gomock.Any(), "A", gomock.Any()).Return(entities.Order{}, interfaces.ErrVersionConflict)
		w := perform(r, http.MethodPatch, "/v1/orders/A/status", `{"paymentStatus":"completed"}`)
		expectError(t, w, http.StatusConflict, "CONCURRENT_UPDATE")
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newOrderRouter(t)
		uc.EXPECT().UpdateOrderStatus(gomock.Any(), "A", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, upd entities.OrderUpdate) (entities.Order, error) {
				if upd.PaymentStatus == nil || *upd.PaymentStatus != entities.PaymentStatusCompleted || upd.ServiceStatus != nil {
					t.Fatalf("unexpected update: %+v", upd)
				}
				return entities.Order{OrderID: "A", PaymentStatus: entities.PaymentStatusCompleted}, nil
			})
		w := perform(r, http.MethodPatch, "/v1/orders/A/status", `{"paymentStatus":"COMPLETED"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestOrderHandler_Refunds(t *testing.T) {
	t.Run("request without body", func(t *testing.T) {
		r, uc := newOrderRouter(t)
		uc.EXPECT().RequestRefund(gomock.Any(), "A", "").Return(entities.Order{OrderID: "A", RefundRequested: true}, nil)
		w := perform(r, http.MethodPost, "/v1/orders/A/refund-request", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("request with reason", func(t *testing.T) {
		r, uc := newOrderRouter(t)
		uc.EXPECT().RequestRefund(gomock.Any(), "A", "결과가 안 나왔어요").Return(entities.Order{OrderID: "A"}, nil)
		w := perform(r, http.MethodPost, "/v1/orders/A/refund-request", `{"reason":"결과가 안 나왔어요"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("already refunded", func(t *testing.T) {
		r, uc := newOrderRouter(t)
		uc.EXPECT().ProcessRefund(gomock.Any(), "A").Return(entities.Order{}, usecase.ErrOrderAlreadyRefunded)
		w := perform(r, http.MethodPost, "/v1/orders/A/refund", "")
		expectError(t, w, http.StatusConflict, "ORDER_ALREADY_REFUNDED")
	})

	t.Run("gateway refused", func(t *testing.T) {
		r, uc := newOrderRouter(t)
		uc.EXPECT().ProcessRefund(gomock.Any(), "A").Return(entities.Order{}, usecase.ErrPaymentCancelFailed)
		w := perform(r, http.MethodPost, "/v1/orders/A/refund", "")
		expectError(t, w, http.StatusBadGateway, "PAYMENT_CANCEL_FAILED")
	})
}

func TestOrderHandler_ErrorLogAndSuccess(t *testing.T) {
	t.Run("error log requires message", func(t *testing.T) {
		r, _ := newOrderRouter(t)
		w := perform(r, http.MethodPost, "/v1/orders/A/error-logs", `{}`)
		expectError(t, w, http.StatusBadRequest, "INVALID_REQUEST")
	})

	t.Run("error log appended", func(t *testing.T) {
		r, uc := newOrderRouter(t)
		uc.EXPECT().AddErrorLog(gomock.Any(), "A", "timeout").Return(entities.Order{OrderID: "A", ErrorLogs: []string{"timeout"}}, nil)
		w := perform(r, http.MethodPost, "/v1/orders/A/error-logs", `{"message":"timeout"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("success flag", func(t *testing.T) {
		r, uc := newOrderRouter(t)
		uc.EXPECT().IsServiceSuccessful(gomock.Any(), "A").Return(true, nil)
		w := perform(r, http.MethodGet, "/v1/orders/A/success", "")
		if string(decode(t, w).Data) != `{"orderId":"A","successful":true}` {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
