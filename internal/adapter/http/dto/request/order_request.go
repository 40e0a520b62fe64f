package request

import (
	"errors"
	"strings"

	"gwansang/internal/domain/entities"
)

var (
	ErrMissingServiceType = errors.New("serviceType is required")
	ErrNegativeAmount     = errors.New("amount must not be negative")
	ErrEmptyUpdate        = errors.New("no field to update")
)

type CreateOrderRequest struct {
	OrderID       string `json:"orderId"`
	UserEmail     string `json:"userEmail"`
	ServiceType   string `json:"serviceType" binding:"required"`
	Amount        int64  `json:"amount"`
	PaymentStatus string `json:"paymentStatus"`
	ServiceStatus string `json:"serviceStatus"`
	PaymentID     string `json:"paymentId"`
}

func (r CreateOrderRequest) ToNewOrder() (entities.NewOrder, error) {
	st, err := entities.ParseServiceType(r.ServiceType)
	if err != nil {
		return entities.NewOrder{}, err
	}
	if r.Amount < 0 {
		return entities.NewOrder{}, ErrNegativeAmount
	}
	ps, err := parsePaymentStatus(r.PaymentStatus)
	if err != nil {
		return entities.NewOrder{}, err
	}
	ss, err := parseServiceStatus(r.ServiceStatus)
	if err != nil {
		return entities.NewOrder{}, err
	}
	return entities.NewOrder{
		OrderID:       strings.TrimSpace(r.OrderID),
		UserEmail:     strings.TrimSpace(r.UserEmail),
		ServiceType:   st,
		Amount:        r.Amount,
		PaymentStatus: ps,
		ServiceStatus: ss,
		PaymentID:     strings.TrimSpace(r.PaymentID),
	}, nil
}

// UpdateOrderStatusRequest is a partial update; omitted fields stay as stored.
type UpdateOrderStatusRequest struct {
	PaymentStatus *string `json:"paymentStatus"`
	ServiceStatus *string `json:"serviceStatus"`
	PaymentID     *string `json:"paymentId"`
	UserEmail     *string `json:"userEmail"`
}

func (r UpdateOrderStatusRequest) ToOrderUpdate() (entities.OrderUpdate, error) {
	var upd entities.OrderUpdate
	if r.PaymentStatus == nil && r.ServiceStatus == nil && r.PaymentID == nil && r.UserEmail == nil {
		return upd, ErrEmptyUpdate
	}
	if r.PaymentStatus != nil {
		ps := entities.PaymentStatus(strings.ToLower(strings.TrimSpace(*r.PaymentStatus)))
		if !ps.Valid() {
			return upd, entities.ErrInvalidPaymentStatus
		}
		upd.PaymentStatus = &ps
	}
	if r.ServiceStatus != nil {
		ss := entities.ServiceStatus(strings.ToLower(strings.TrimSpace(*r.ServiceStatus)))
		if !ss.Valid() {
			return upd, entities.ErrInvalidServiceStatus
		}
		upd.ServiceStatus = &ss
	}
	upd.PaymentID = r.PaymentID
	upd.UserEmail = r.UserEmail
	return upd, nil
}

type ErrorLogRequest struct {
	Message string `json:"message" binding:"required"`
}

type RefundRequest struct {
	Reason string `json:"reason"`
}

func parsePaymentStatus(s string) (entities.PaymentStatus, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return "", nil
	}
	ps := entities.PaymentStatus(s)
	if !ps.Valid() {
		return "", entities.ErrInvalidPaymentStatus
	}
	return ps, nil
}

func parseServiceStatus(s string) (entities.ServiceStatus, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return "", nil
	}
	ss := entities.ServiceStatus(s)
	if !ss.Valid() {
		return "", entities.ErrInvalidServiceStatus
	}
	return ss, nil
}
