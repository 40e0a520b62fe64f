package entities

import "time"

// ServiceErrorLog is an entry of the admin error log.
type ServiceErrorLog struct {
	ID          string            `json:"id"`
	Kind        ErrorKind         `json:"kind"`
	ServiceType ServiceType       `json:"serviceType,omitempty"`
	OrderID     string            `json:"orderId,omitempty"`
	SessionID   string            `json:"sessionId,omitempty"`
	Message     string            `json:"message"`
	Details     map[string]string `json:"details,omitempty"`
	OccurredAt  time.Time         `json:"occurredAt"`
}

// ServiceFailure describes a failed paid or free analysis as reported by a route.
type ServiceFailure struct {
	OrderID     string
	SessionID   string
	ServiceID   string
	ServiceType ServiceType
	Kind        ErrorKind
	Message     string
	UserInfo    RefundUserInfo
}

// FailureReport is what HandleServiceFailure recorded.
// FailureReport lists what HandleServiceFailure recorded. CustomerStatus is
// the HTTP status the reporting route should answer its own caller with.
type FailureReport struct {
	CustomerStatus  int              `json:"customerStatus"`
	ErrorLog        ServiceErrorLog  `json:"errorLog"`
	Order           *Order           `json:"order,omitempty"`
	RefundableError *RefundableError `json:"refundableError,omitempty"`
}

type Dashboard struct {
	Orders   OrderStats                     `json:"orders"`
	Metrics  MetricsSnapshot                `json:"metrics"`
	Services map[ServiceType]ServiceMetrics `json:"services"`
	Refunds  RefundStatistics               `json:"refunds"`
	Sessions SessionStats                   `json:"sessions"`
}
