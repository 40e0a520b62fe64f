package entities

import (
	"errors"
	"time"
)

var ErrInvalidRefundStatus = errors.New("invalid refund status")

type RefundStatus string

const (
	RefundStatusPending   RefundStatus = "pending"
	RefundStatusApproved  RefundStatus = "approved"
	RefundStatusRejected  RefundStatus = "rejected"
	RefundStatusProcessed RefundStatus = "processed"
)

func (s RefundStatus) Valid() bool {
	switch s {
	case RefundStatusPending, RefundStatusApproved, RefundStatusRejected, RefundStatusProcessed:
		return true
	}
	return false
}

type RefundPaymentInfo struct {
	OrderID       string        `json:"orderId,omitempty"`
	PaymentID     string        `json:"paymentId,omitempty"`
	Amount        int64         `json:"amount"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
	PaymentMethod string        `json:"paymentMethod,omitempty"`
}

type RefundUserInfo struct {
	IP        string `json:"ip"`
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty"`
	UserAgent string `json:"userAgent,omitempty"`
}

type RefundState struct {
	Status      RefundStatus `json:"status"`
	IsEligible  bool         `json:"isEligible"`
	Notes       string       `json:"notes,omitempty"`
	UpdatedAt   time.Time    `json:"updatedAt"`
	ProcessedAt *time.Time   `json:"processedAt,omitempty"`
}

// RefundableError is a failure logged against a (possibly) paid service that
// an admin may later compensate.
//
// Storage model (DynamoDB):
//   - PK: id
type RefundableError struct {
	ID           string             `json:"id"`
	SessionID    string             `json:"sessionId"`
	ServiceType  ServiceType        `json:"serviceType"`
	ErrorType    ErrorKind          `json:"errorType"`
	ErrorMessage string             `json:"errorMessage"`
	PaymentInfo  *RefundPaymentInfo `json:"paymentInfo,omitempty"`
	UserInfo     RefundUserInfo     `json:"userInfo"`
	RefundStatus RefundState        `json:"refundStatus"`
	OccurredAt   time.Time          `json:"occurredAt"`
	Version      int64              `json:"version"`
}

// RefundEligible is the only way IsEligible gets its value: the payment must
// be completed and the failure must be of a refundable kind.
func RefundEligible(kind ErrorKind, payment *RefundPaymentInfo) bool {
	if payment == nil || payment.PaymentStatus != PaymentStatusCompleted {
		return false
	}
	return kind.Refundable()
}

// Amount is the refundable amount, zero when no payment is attached.
func (e RefundableError) Amount() int64 {
	if e.PaymentInfo == nil {
		return 0
	}
	return e.PaymentInfo.Amount
}

// RefundableErrorDetails is the input of TrackRefundableError.
type RefundableErrorDetails struct {
	SessionID    string
	ServiceType  ServiceType
	ErrorType    ErrorKind
	ErrorMessage string
	PaymentInfo  *RefundPaymentInfo
	UserInfo     RefundUserInfo
}

type RefundStatistics struct {
	TotalErrors       int               `json:"totalErrors"`
	EligibleForRefund int               `json:"eligibleForRefund"`
	PendingRefunds    int               `json:"pendingRefunds"`
	ApprovedRefunds   int               `json:"approvedRefunds"`
	RejectedRefunds   int               `json:"rejectedRefunds"`
	CompletedRefunds  int               `json:"completedRefunds"`
	TotalRefundAmount int64             `json:"totalRefundAmount"`
	ByErrorType       map[ErrorKind]int `json:"byErrorType"`
}
