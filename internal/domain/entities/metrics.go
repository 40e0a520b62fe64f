package entities

// MetricsPeriod is one aggregation bucket (a calendar day or all time).
type MetricsPeriod struct {
	PageViews          int64   `json:"pageViews"`
	Analyses           int64   `json:"analyses"`
	SuccessfulAnalyses int64   `json:"successfulAnalyses"`
	FailedAnalyses     int64   `json:"failedAnalyses"`
	Payments           int64   `json:"payments"`
	FailedPayments     int64   `json:"failedPayments"`
	Revenue            int64   `json:"revenue"`
	Refunds            int64   `json:"refunds"`
	RefundedAmount     int64   `json:"refundedAmount"`
	Errors             int64   `json:"errors"`
	AnalysisSuccess    float64 `json:"analysisSuccessRate"`
	PaymentSuccess     float64 `json:"paymentSuccessRate"`
}

type ErrorMetrics struct {
	Total      int64            `json:"total"`
	Refundable int64            `json:"refundable"`
	ByType     map[string]int64 `json:"byType"`
}

type MetricsSnapshot struct {
	Date   string        `json:"date"`
	Today  MetricsPeriod `json:"today"`
	Total  MetricsPeriod `json:"total"`
	Errors ErrorMetrics  `json:"errors"`
}

type ServiceMetrics struct {
	Analyses           int64 `json:"analyses"`
	SuccessfulAnalyses int64 `json:"successfulAnalyses"`
	FailedAnalyses     int64 `json:"failedAnalyses"`
	Payments           int64 `json:"payments"`
	FailedPayments     int64 `json:"failedPayments"`
	Revenue            int64 `json:"revenue"`
	Refunds            int64 `json:"refunds"`
	RefundedAmount     int64 `json:"refundedAmount"`
	NetRevenue         int64 `json:"netRevenue"`
}

type DailyMetrics struct {
	Date   string        `json:"date"`
	Period MetricsPeriod `json:"period"`
	Errors ErrorMetrics  `json:"errors"`
}
