package handlers

import (
	"net/http"
	"strings"

	"gwansang/internal/usecase"
	"gwansang/internal/usecase/interfaces"
	"gwansang/pkg"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

var (
	errGatewayNotConfigured = pkg.NewDomainErrorSimple("PAYMENT_GATEWAY_DISABLED", "결제 조회 기능이 설정되지 않았습니다.", http.StatusServiceUnavailable)
	errInvalidPaymentID     = pkg.NewDomainErrorSimple("INVALID_PAYMENT_ID", "결제번호가 올바르지 않습니다.", http.StatusBadRequest)
)

// PaymentHandler completes tracked payments and proxies lookups to the gateway.
type PaymentHandler struct {
	sessions usecase.IAnonymousUserUseCase
	gateway  interfaces.IPaymentGateway
}

// NewPaymentHandler accepts a nil gateway; lookups then answer 503.
func NewPaymentHandler(sessions usecase.IAnonymousUserUseCase, gateway interfaces.IPaymentGateway) *PaymentHandler {
	return &PaymentHandler{sessions: sessions, gateway: gateway}
}

// CompletePayment godoc
// @Summary  Mark a tracked payment completed
// @Tags     payments
// @Produce  json
// @Param    payment_id  path      string  true  "payment id"
// @Success  200         {object}  pkg.Envelope
// @Failure  404         {object}  pkg.Envelope
// @Router   /payments/{payment_id}/complete [post]
func (h *PaymentHandler) CompletePayment(c *gin.Context) {
	paymentID := strings.TrimSpace(c.Param("payment_id"))
	if paymentID == "" {
		respondError(c, errInvalidPaymentID)
		return
	}

	tracker, err := h.sessions.CompletePayment(c.Request.Context(), paymentID)
	if err != nil {
		log.WithError(err).WithField("payment_id", paymentID).Warn("[payment][handler] complete failed")
		respondError(c, mapSessionError(err))
		return
	}
	c.JSON(http.StatusOK, pkg.OK(tracker))
}

// GetPayment godoc
// @Summary  Look a payment up at the gateway
// @Tags     payments
// @Produce  json
// @Param    payment_id  path      string  true  "payment id"
// @Success  200         {object}  pkg.Envelope
// @Failure  502         {object}  pkg.Envelope
// @Security Bearer
// @Router   /payments/{payment_id} [get]
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	if h.gateway == nil {
		respondError(c, errGatewayNotConfigured)
		return
	}
	paymentID := strings.TrimSpace(c.Param("payment_id"))
	if paymentID == "" {
		respondError(c, errInvalidPaymentID)
		return
	}

	result, err := h.gateway.GetPaymentInfo(c.Request.Context(), paymentID)
	if err != nil {
		log.WithError(err).WithField("payment_id", paymentID).Error("[payment][handler] gateway lookup failed")
		respondError(c, pkg.NewDomainError("PAYMENT_GATEWAY_ERROR", "결제사 조회에 실패했습니다.", err, http.StatusBadGateway))
		return
	}
	c.JSON(http.StatusOK, pkg.OK(result))
}
