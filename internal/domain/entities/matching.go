package entities

import "time"

// MatchPolicy holds the scoring weights and confidence thresholds used to
// correlate a support request with anonymous payment trackers.
type MatchPolicy struct {
	TimeWindowWeight   int `json:"timeWindowWeight"`
	AmountWeight       int `json:"amountWeight"`
	PhoneWeight        int `json:"phoneWeight"`
	EmailWeight        int `json:"emailWeight"`
	CardLastFourWeight int `json:"cardLastFourWeight"`
	HighThreshold      int `json:"highThreshold"`
	MediumThreshold    int `json:"mediumThreshold"`
}

// DefaultMatchPolicy makes time+amount together outrank any single contact field.
func DefaultMatchPolicy() MatchPolicy {
	return MatchPolicy{
		TimeWindowWeight:   20,
		AmountWeight:       30,
		PhoneWeight:        40,
		EmailWeight:        40,
		CardLastFourWeight: 25,
		HighThreshold:      50,
		MediumThreshold:    30,
	}
}

type MatchConfidence string

const (
	MatchConfidenceHigh   MatchConfidence = "high"
	MatchConfidenceMedium MatchConfidence = "medium"
	MatchConfidenceLow    MatchConfidence = "low"
)

func (p MatchPolicy) Confidence(score int) MatchConfidence {
	switch {
	case score >= p.HighThreshold:
		return MatchConfidenceHigh
	case score >= p.MediumThreshold:
		return MatchConfidenceMedium
	default:
		return MatchConfidenceLow
	}
}

type TimeRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains is inclusive on both ends.
func (r TimeRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// MatchConditions are the facts a support agent collected from the customer.
// Zero values mean "not supplied".
type MatchConditions struct {
	TimeRange    *TimeRange `json:"timeRange,omitempty"`
	Amount       *int64     `json:"amount,omitempty"`
	Phone        string     `json:"phone,omitempty"`
	Email        string     `json:"email,omitempty"`
	CardLastFour string     `json:"cardLastFour,omitempty"`
}

func (c MatchConditions) Empty() bool {
	return c.TimeRange == nil && c.Amount == nil && c.Phone == "" && c.Email == "" && c.CardLastFour == ""
}

const (
	MatchedTimeRange    = "timeRange"
	MatchedAmount       = "amount"
	MatchedPhone        = "phone"
	MatchedEmail        = "email"
	MatchedCardLastFour = "cardLastFour"
)

type UserMatch struct {
	SessionID         string          `json:"sessionId"`
	UserID            string          `json:"userId"`
	ServiceID         string          `json:"serviceId"`
	Payment           PaymentTracker  `json:"payment"`
	MatchScore        int             `json:"matchScore"`
	Confidence        MatchConfidence `json:"confidence"`
	MatchedConditions []string        `json:"matchedConditions"`
}

// SupportWorkflow is the next step recommended to the support agent.
type SupportWorkflow string

const (
	WorkflowAutoMatched            SupportWorkflow = "auto_matched"
	WorkflowManualReviewSelect     SupportWorkflow = "manual_review_select"
	WorkflowCustomerServiceContact SupportWorkflow = "customer_service_contact"
	WorkflowRequestAdditionalInfo  SupportWorkflow = "request_additional_info"
)

type SupportResolution struct {
	Workflow SupportWorkflow `json:"workflow"`
	Matches  []UserMatch     `json:"matches"`
}
