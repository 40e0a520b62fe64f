package request

import (
	"strings"

	"gwansang/internal/domain/entities"
)

type ServiceErrorRequest struct {
	Kind        string            `json:"kind" binding:"required"`
	Message     string            `json:"message" binding:"required"`
	ServiceType string            `json:"serviceType"`
	OrderID     string            `json:"orderId"`
	SessionID   string            `json:"sessionId"`
	Details     map[string]string `json:"details"`
}

func (r ServiceErrorRequest) ToServiceErrorLog() (entities.ServiceErrorLog, error) {
	kind, err := entities.ParseErrorKind(r.Kind)
	if err != nil {
		return entities.ServiceErrorLog{}, err
	}
	st, err := optionalServiceType(r.ServiceType)
	if err != nil {
		return entities.ServiceErrorLog{}, err
	}
	return entities.ServiceErrorLog{
		Kind:        kind,
		ServiceType: st,
		OrderID:     strings.TrimSpace(r.OrderID),
		SessionID:   strings.TrimSpace(r.SessionID),
		Message:     r.Message,
		Details:     r.Details,
	}, nil
}

// ServiceFailureRequest reports a failed paid service run.
type ServiceFailureRequest struct {
	OrderID     string `json:"orderId"`
	SessionID   string `json:"sessionId"`
	ServiceID   string `json:"serviceId"`
	ServiceType string `json:"serviceType"`
	Kind        string `json:"kind" binding:"required"`
	Message     string `json:"message" binding:"required"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
}

func (r ServiceFailureRequest) ToServiceFailure(clientIP, headerUA string) (entities.ServiceFailure, error) {
	kind, err := entities.ParseErrorKind(r.Kind)
	if err != nil {
		return entities.ServiceFailure{}, err
	}
	st, err := optionalServiceType(r.ServiceType)
	if err != nil {
		return entities.ServiceFailure{}, err
	}
	return entities.ServiceFailure{
		OrderID:     strings.TrimSpace(r.OrderID),
		SessionID:   strings.TrimSpace(r.SessionID),
		ServiceID:   strings.TrimSpace(r.ServiceID),
		ServiceType: st,
		Kind:        kind,
		Message:     r.Message,
		UserInfo: entities.RefundUserInfo{
			IP:        clientIP,
			Phone:     r.Phone,
			Email:     r.Email,
			UserAgent: headerUA,
		},
	}, nil
}

func optionalServiceType(s string) (entities.ServiceType, error) {
	if strings.TrimSpace(s) == "" {
		return "", nil
	}
	return entities.ParseServiceType(s)
}
