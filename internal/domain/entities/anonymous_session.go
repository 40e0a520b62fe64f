package entities

import "time"

// ContactChannel is how a customer prefers to be reached by support.
type ContactChannel string

const (
	ContactChannelEmail ContactChannel = "email"
	ContactChannelPhone ContactChannel = "phone"
	ContactChannelSMS   ContactChannel = "sms"
)

type ContactInfo struct {
	Email            string         `json:"email,omitempty" dynamodbav:"email,omitempty"`
	Phone            string         `json:"phone,omitempty" dynamodbav:"phone,omitempty"`
	Name             string         `json:"name,omitempty" dynamodbav:"name,omitempty"`
	PreferredContact ContactChannel `json:"preferredContact,omitempty" dynamodbav:"preferred_contact,omitempty"`
}

func (c ContactInfo) IsZero() bool {
	return c.Email == "" && c.Phone == "" && c.Name == ""
}

type DeviceInfo struct {
	UserAgent  string `json:"userAgent,omitempty" dynamodbav:"user_agent,omitempty"`
	IP         string `json:"ip,omitempty" dynamodbav:"ip,omitempty"`
	Platform   string `json:"platform,omitempty" dynamodbav:"platform,omitempty"`
	Language   string `json:"language,omitempty" dynamodbav:"language,omitempty"`
	ScreenSize string `json:"screenSize,omitempty" dynamodbav:"screen_size,omitempty"`
}

// PaymentTracker links a payment to the anonymous service usage that produced it.
// OrderID is a loose reference to Order; it is not enforced.
type PaymentTracker struct {
	OrderID       string        `json:"orderId" dynamodbav:"order_id"`
	PaymentID     string        `json:"paymentId" dynamodbav:"payment_id"`
	ServiceType   ServiceType   `json:"serviceType" dynamodbav:"service_type"`
	Amount        int64         `json:"amount" dynamodbav:"amount"`
	PaymentStatus PaymentStatus `json:"paymentStatus" dynamodbav:"payment_status"`
	ContactInfo   ContactInfo   `json:"contactInfo" dynamodbav:"contact_info"`
	CardLastFour  string        `json:"cardLastFour,omitempty" dynamodbav:"card_last_four,omitempty"`
	CreatedAt     time.Time     `json:"createdAt" dynamodbav:"created_at"`
	CompletedAt   *time.Time    `json:"completedAt,omitempty" dynamodbav:"completed_at,omitempty"`
}

type ServiceUsageStatus string

const (
	ServiceUsageStarted   ServiceUsageStatus = "started"
	ServiceUsageCompleted ServiceUsageStatus = "completed"
	ServiceUsageFailed    ServiceUsageStatus = "failed"
)

type ServiceUsage struct {
	ServiceID     string             `json:"serviceId" dynamodbav:"service_id"`
	ServiceType   ServiceType        `json:"serviceType" dynamodbav:"service_type"`
	Status        ServiceUsageStatus `json:"status" dynamodbav:"status"`
	StartedAt     time.Time          `json:"startedAt" dynamodbav:"started_at"`
	CompletedAt   *time.Time         `json:"completedAt,omitempty" dynamodbav:"completed_at,omitempty"`
	ContactInfo   *ContactInfo       `json:"contactInfo,omitempty" dynamodbav:"contact_info,omitempty"`
	Payment       *PaymentTracker    `json:"payment,omitempty" dynamodbav:"payment,omitempty"`
	ResultSummary string             `json:"resultSummary,omitempty" dynamodbav:"result_summary,omitempty"`
}

type SessionError struct {
	ErrorID    string    `json:"errorId" dynamodbav:"error_id"`
	ServiceID  string    `json:"serviceId,omitempty" dynamodbav:"service_id,omitempty"`
	Kind       ErrorKind `json:"kind" dynamodbav:"kind"`
	Message    string    `json:"message" dynamodbav:"message"`
	OccurredAt time.Time `json:"occurredAt" dynamodbav:"occurred_at"`
}

// AnonymousSession tracks a visitor that never authenticated, so that a
// payment can later be correlated to a support request.
//
// Storage model (DynamoDB):
//   - PK: session_id
//   - payment_ids (string set) indexes the embedded trackers
//   - expires_at (epoch seconds) is the table TTL attribute
type AnonymousSession struct {
	SessionID    string         `json:"sessionId"`
	UserID       string         `json:"userId"`
	CreatedAt    time.Time      `json:"createdAt"`
	LastActivity time.Time      `json:"lastActivity"`
	ExpiresAt    time.Time      `json:"expiresAt"`
	DeviceInfo   DeviceInfo     `json:"deviceInfo"`
	Services     []ServiceUsage `json:"services"`
	Errors       []SessionError `json:"errors"`
	Version      int64          `json:"version"`
}

// FindService returns the index of the usage with the given id, or -1.
func (s *AnonymousSession) FindService(serviceID string) int {
	for i := range s.Services {
		if s.Services[i].ServiceID == serviceID {
			return i
		}
	}
	return -1
}

// PaymentIDs lists the ids of every linked tracker.
func (s *AnonymousSession) PaymentIDs() []string {
	var ids []string
	for _, svc := range s.Services {
		if svc.Payment != nil && svc.Payment.PaymentID != "" {
			ids = append(ids, svc.Payment.PaymentID)
		}
	}
	return ids
}

// Expired reports whether the session has outlived its TTL at now.
func (s *AnonymousSession) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

type ServiceResult struct {
	Success bool
	Summary string
	Error   string
	Kind    ErrorKind
}

// PaymentLink is the input of LinkPayment.
type PaymentLink struct {
	OrderID       string
	PaymentID     string
	Amount        int64
	PaymentStatus PaymentStatus
	ContactInfo   *ContactInfo
	CardLastFour  string
}

type SessionStats struct {
	ActiveSessions    int `json:"activeSessions"`
	ServiceUsages     int `json:"serviceUsages"`
	LinkedPayments    int `json:"linkedPayments"`
	CompletedPayments int `json:"completedPayments"`
	Errors            int `json:"errors"`
}
