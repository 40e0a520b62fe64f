package entities

// GatewayResultSuccess is the gateway result code for a successful call.
const GatewayResultSuccess = "0000"

// GatewayResult is the normalized answer of the payment gateway.
type GatewayResult struct {
	ResultCode      string `json:"resultCode"`
	ResultMessage   string `json:"resultMessage"`
	PaymentID       string `json:"paymentId"`
	ProviderStatus  string `json:"providerStatus,omitempty"`
	Amount          int64  `json:"amount"`
	ProviderPayload []byte `json:"-"`
}

// Provider states in which the money has already gone back to the customer.
const (
	ProviderStatusRefunded  = "refunded"
	ProviderStatusCancelled = "cancelled"
)

func (r GatewayResult) Succeeded() bool {
	return r.ResultCode == GatewayResultSuccess
}

// Reversed reports whether the provider already holds the payment as
// refunded or cancelled, whatever the result code of this call.
func (r GatewayResult) Reversed() bool {
	switch r.ProviderStatus {
	case ProviderStatusRefunded, ProviderStatusCancelled:
		return true
	default:
		return false
	}
}

// Event is published to the order events topic.
type Event struct {
	Type       string `json:"type"`
	Key        string `json:"key"`
	OccurredAt string `json:"occurredAt"`
	Payload    any    `json:"payload"`
}

const (
	EventOrderCreated          = "order.created"
	EventOrderPaymentCompleted = "order.payment_completed"
	EventOrderRefunded         = "order.refunded"
	EventRefundErrorTracked    = "refund.error_tracked"
)
