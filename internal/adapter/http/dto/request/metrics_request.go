package request

type PageViewRequest struct {
	Page      string `json:"page" binding:"required"`
	SessionID string `json:"sessionId"`
}

type AnalysisRequest struct {
	ServiceType string `json:"serviceType" binding:"required"`
	Success     bool   `json:"success"`
}

type PaymentFailureRequest struct {
	ServiceType string `json:"serviceType" binding:"required"`
	Reason      string `json:"reason"`
}

type ErrorMetricRequest struct {
	SessionID  string `json:"sessionId"`
	ErrorType  string `json:"errorType"`
	Refundable bool   `json:"refundable"`
}
