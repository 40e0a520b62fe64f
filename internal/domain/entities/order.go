package entities

import (
	"errors"
	"time"
)

var (
	ErrInvalidPaymentStatus = errors.New("invalid payment status")
	ErrInvalidServiceStatus = errors.New("invalid service status")
)

// PaymentStatus of an order. Refunded is terminal.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusCompleted, PaymentStatusFailed, PaymentStatusRefunded:
		return true
	}
	return false
}

// ServiceStatus tracks delivery of the purchased analysis.
//
// Transitions only move forward:
//
//	pending -> in_progress -> completed | failed
type ServiceStatus string

const (
	ServiceStatusPending    ServiceStatus = "pending"
	ServiceStatusInProgress ServiceStatus = "in_progress"
	ServiceStatusCompleted  ServiceStatus = "completed"
	ServiceStatusFailed     ServiceStatus = "failed"
)

func (s ServiceStatus) Valid() bool {
	return s.rank() >= 0
}

func (s ServiceStatus) rank() int {
	switch s {
	case ServiceStatusPending:
		return 0
	case ServiceStatusInProgress:
		return 1
	case ServiceStatusCompleted, ServiceStatusFailed:
		return 2
	}
	return -1
}

// Terminal reports whether no further service transition is possible.
func (s ServiceStatus) Terminal() bool {
	return s == ServiceStatusCompleted || s == ServiceStatusFailed
}

// CanTransitionTo reports whether moving from s to next respects forward-only
// ordering. Re-asserting the current status is allowed and is a no-op.
func (s ServiceStatus) CanTransitionTo(next ServiceStatus) bool {
	if !next.Valid() {
		return false
	}
	if s == next {
		return true
	}
	if s.Terminal() {
		return false
	}
	return next.rank() > s.rank()
}

// Order is a single purchase/analysis request.
//
// Storage model (DynamoDB):
//   - PK: order_id
//   - Version guards read-modify-write updates.
type Order struct {
	OrderID       string        `json:"orderId"`
	UserEmail     string        `json:"userEmail"`
	ServiceType   ServiceType   `json:"serviceType"`
	Amount        int64         `json:"amount"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
	ServiceStatus ServiceStatus `json:"serviceStatus"`
	PaymentID     string        `json:"paymentId,omitempty"`

	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`

	RefundReason      string     `json:"refundReason,omitempty"`
	RefundRequested   bool       `json:"refundRequested"`
	RefundRequestedAt *time.Time `json:"refundRequestedAt,omitempty"`
	RefundedAt        *time.Time `json:"refundedAt,omitempty"`

	ErrorLogs []string `json:"errorLogs"`
	Version   int64    `json:"version"`
}

// NewOrder carries the caller-supplied fields of CreateOrder.
// Empty statuses default to pending.
type NewOrder struct {
	OrderID       string
	UserEmail     string
	ServiceType   ServiceType
	Amount        int64
	PaymentStatus PaymentStatus
	ServiceStatus ServiceStatus
	PaymentID     string
}

// OrderUpdate is a partial update; nil fields are left untouched.
type OrderUpdate struct {
	PaymentStatus *PaymentStatus
	ServiceStatus *ServiceStatus
	PaymentID     *string
	UserEmail     *string
	CompletedAt   *time.Time
}

// OrderStats is the aggregate view over every stored order.
type OrderStats struct {
	Total          int                 `json:"total"`
	Completed      int                 `json:"completed"`
	Failed         int                 `json:"failed"`
	InProgress     int                 `json:"inProgress"`
	SuccessRate    float64             `json:"successRate"`
	TodayOrders    int                 `json:"todayOrders"`
	PendingRefunds int                 `json:"pendingRefunds"`
	Refunded       int                 `json:"refunded"`
	TotalRevenue   int64               `json:"totalRevenue"`
	ByServiceType  map[ServiceType]int `json:"byServiceType"`
}
