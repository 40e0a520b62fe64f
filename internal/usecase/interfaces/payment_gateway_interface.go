package interfaces

import (
	"context"
	"gwansang/internal/domain/entities"
)

// IPaymentGateway abstracts the card payment provider.
//
// Both calls answer with a normalized result code; entities.GatewayResultSuccess
// ("0000") means the provider accepted the request. A non-nil error means the
// provider could not be reached or answered with something unparseable.
type IPaymentGateway interface {
	GetPaymentInfo(ctx context.Context, paymentID string) (entities.GatewayResult, error)
	CancelPayment(ctx context.Context, paymentID string, reason string) (entities.GatewayResult, error)
}
