package payments

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"

	"gwansang/internal/domain/entities"
	"gwansang/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/refund"
	log "github.com/sirupsen/logrus"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// Non-success result codes reported by the gateway.
const (
	ResultInvalidPaymentID = "4001"
	ResultNotCancelable    = "4090"
	ResultDeclined         = "5001"
)

// Provider payment states.
const (
	statusApproved   = "approved"
	statusAuthorized = "authorized"
	statusPending    = "pending"
	statusInProcess  = "in_process"
	statusCancelled  = entities.ProviderStatusCancelled
	statusRefunded   = entities.ProviderStatusRefunded
)

type paymentAPI interface {
	Get(ctx context.Context, id int) (*payment.Response, error)
	Cancel(ctx context.Context, id int) (*payment.Response, error)
}

type refundAPI interface {
	Create(ctx context.Context, paymentID int) (*refund.Response, error)
}

// MercadoPagoGateway looks up payments and reverses them: approved payments
// are refunded, pending ones are cancelled.
type MercadoPagoGateway struct {
	payments paymentAPI
	refunds  refundAPI
	mockMode bool
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string, mock bool) (*MercadoPagoGateway, error) {
	if mock {
		log.Info("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	if accessToken == "" {
		log.Warn("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.WithError(err).Error("[payment][gateway] failed creating sdk config")
		return nil, err
	}
	log.Info("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{
		payments: payment.NewClient(cfg),
		refunds:  refund.NewClient(cfg),
	}, nil
}

func (g *MercadoPagoGateway) GetPaymentInfo(ctx context.Context, paymentID string) (entities.GatewayResult, error) {
	if g != nil && g.mockMode {
		log.WithField("payment_id", paymentID).Debug("[payment][gateway] mock lookup")
		return entities.GatewayResult{
			ResultCode:     entities.GatewayResultSuccess,
			ResultMessage:  "mock payment approved",
			PaymentID:      paymentID,
			ProviderStatus: statusApproved,
		}, nil
	}
	if g == nil || g.payments == nil {
		return entities.GatewayResult{}, ErrMercadoPagoGatewayNotConfigured
	}

	id, ok := providerID(paymentID)
	if !ok {
		return invalidID(paymentID), nil
	}

	resp, err := g.payments.Get(ctx, id)
	if err != nil {
		log.WithError(err).WithField("payment_id", paymentID).Error("[payment][gateway] sdk get failed")
		return entities.GatewayResult{}, err
	}

	res := fromPayment(paymentID, resp)
	res.ResultCode = entities.GatewayResultSuccess
	res.ResultMessage = "payment found"
	return res, nil
}

func (g *MercadoPagoGateway) CancelPayment(ctx context.Context, paymentID string, reason string) (entities.GatewayResult, error) {
	logCtx := log.WithFields(log.Fields{"payment_id": paymentID, "reason": reason})

	if g != nil && g.mockMode {
		logCtx.Info("[payment][gateway] mock cancel success")
		return entities.GatewayResult{
			ResultCode:     entities.GatewayResultSuccess,
			ResultMessage:  "mock payment cancelled",
			PaymentID:      paymentID,
			ProviderStatus: statusRefunded,
		}, nil
	}
	if g == nil || g.payments == nil || g.refunds == nil {
		return entities.GatewayResult{}, ErrMercadoPagoGatewayNotConfigured
	}

	id, ok := providerID(paymentID)
	if !ok {
		return invalidID(paymentID), nil
	}

	current, err := g.payments.Get(ctx, id)
	if err != nil {
		logCtx.WithError(err).Error("[payment][gateway] sdk get failed")
		return entities.GatewayResult{}, err
	}

	switch current.Status {
	case statusApproved:
		r, err := g.refunds.Create(ctx, id)
		if err != nil {
			logCtx.WithError(err).Error("[payment][gateway] sdk refund failed")
			return entities.GatewayResult{}, err
		}
		res := fromPayment(paymentID, current)
		res.ProviderPayload, _ = json.Marshal(r)
		if r.Status != statusApproved {
			res.ResultCode = ResultDeclined
			res.ResultMessage = "refund " + r.Status
			logCtx.WithField("refund_status", r.Status).Warn("[payment][gateway] refund not approved")
			return res, nil
		}
		res.ProviderStatus = statusRefunded
		res.ResultCode = entities.GatewayResultSuccess
		res.ResultMessage = "payment refunded"
		logCtx.WithField("refund_id", r.ID).Info("[payment][gateway] refund success")
		return res, nil

	case statusPending, statusInProcess, statusAuthorized:
		resp, err := g.payments.Cancel(ctx, id)
		if err != nil {
			logCtx.WithError(err).Error("[payment][gateway] sdk cancel failed")
			return entities.GatewayResult{}, err
		}
		res := fromPayment(paymentID, resp)
		if resp.Status != statusCancelled {
			res.ResultCode = ResultDeclined
			res.ResultMessage = "cancel " + resp.Status
			return res, nil
		}
		res.ResultCode = entities.GatewayResultSuccess
		res.ResultMessage = "payment cancelled"
		logCtx.Info("[payment][gateway] cancel success")
		return res, nil

	default:
		res := fromPayment(paymentID, current)
		res.ResultCode = ResultNotCancelable
		res.ResultMessage = "payment is " + current.Status
		logCtx.WithField("provider_status", current.Status).Warn("[payment][gateway] payment not cancelable")
		return res, nil
	}
}

func providerID(paymentID string) (int, bool) {
	id, err := strconv.Atoi(strings.TrimSpace(paymentID))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func invalidID(paymentID string) entities.GatewayResult {
	return entities.GatewayResult{
		ResultCode:    ResultInvalidPaymentID,
		ResultMessage: "payment id is not a provider id",
		PaymentID:     paymentID,
	}
}

func fromPayment(paymentID string, p *payment.Response) entities.GatewayResult {
	res := entities.GatewayResult{PaymentID: paymentID}
	if p == nil {
		return res
	}
	res.ProviderStatus = p.Status
	res.Amount = int64(math.Round(p.TransactionAmount))
	res.ProviderPayload, _ = json.Marshal(p)
	return res
}
