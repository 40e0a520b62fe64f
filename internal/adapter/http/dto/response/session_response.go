package response

import (
	"time"

	"gwansang/internal/domain/entities"
)

// SessionResponse hides the device fingerprint from the client.
type SessionResponse struct {
	SessionID    string                  `json:"sessionId"`
	UserID       string                  `json:"userId"`
	CreatedAt    time.Time               `json:"createdAt"`
	LastActivity time.Time               `json:"lastActivity"`
	ExpiresAt    *time.Time              `json:"expiresAt,omitempty"`
	Services     []entities.ServiceUsage `json:"services"`
	Errors       []entities.SessionError `json:"errors"`
}

func FromSession(s entities.AnonymousSession) SessionResponse {
	resp := SessionResponse{
		SessionID:    s.SessionID,
		UserID:       s.UserID,
		CreatedAt:    s.CreatedAt,
		LastActivity: s.LastActivity,
		Services:     s.Services,
		Errors:       s.Errors,
	}
	if !s.ExpiresAt.IsZero() {
		exp := s.ExpiresAt
		resp.ExpiresAt = &exp
	}
	if resp.Services == nil {
		resp.Services = []entities.ServiceUsage{}
	}
	if resp.Errors == nil {
		resp.Errors = []entities.SessionError{}
	}
	return resp
}

type PurgeResponse struct {
	Removed int `json:"removed"`
}
