package response

import (
	"time"

	"gwansang/internal/domain/entities"
)

type OrderResponse struct {
	OrderID           string     `json:"orderId"`
	UserEmail         string     `json:"userEmail,omitempty"`
	ServiceType       string     `json:"serviceType"`
	ServiceName       string     `json:"serviceName"`
	Amount            int64      `json:"amount"`
	PaymentStatus     string     `json:"paymentStatus"`
	ServiceStatus     string     `json:"serviceStatus"`
	PaymentID         string     `json:"paymentId,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
	CompletedAt       *time.Time `json:"completedAt,omitempty"`
	RefundRequested   bool       `json:"refundRequested"`
	RefundReason      string     `json:"refundReason,omitempty"`
	RefundRequestedAt *time.Time `json:"refundRequestedAt,omitempty"`
	RefundedAt        *time.Time `json:"refundedAt,omitempty"`
	ErrorLogs         []string   `json:"errorLogs"`
}

func FromOrder(o entities.Order) OrderResponse {
	logs := o.ErrorLogs
	if logs == nil {
		logs = []string{}
	}
	return OrderResponse{
		OrderID:           o.OrderID,
		UserEmail:         o.UserEmail,
		ServiceType:       string(o.ServiceType),
		ServiceName:       o.ServiceType.DisplayName(),
		Amount:            o.Amount,
		PaymentStatus:     string(o.PaymentStatus),
		ServiceStatus:     string(o.ServiceStatus),
		PaymentID:         o.PaymentID,
		CreatedAt:         o.CreatedAt,
		UpdatedAt:         o.UpdatedAt,
		CompletedAt:       o.CompletedAt,
		RefundRequested:   o.RefundRequested,
		RefundReason:      o.RefundReason,
		RefundRequestedAt: o.RefundRequestedAt,
		RefundedAt:        o.RefundedAt,
		ErrorLogs:         logs,
	}
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}

type ServiceSuccessResponse struct {
	OrderID    string `json:"orderId"`
	Successful bool   `json:"successful"`
}
