package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"gwansang/internal/domain/entities"
	"gwansang/internal/usecase/interfaces"
)

type SessionMemoryRepository struct {
	mu       sync.RWMutex
	sessions map[string]entities.AnonymousSession
}

var _ interfaces.ISessionRepository = (*SessionMemoryRepository)(nil)

func NewSessionMemoryRepository() *SessionMemoryRepository {
	return &SessionMemoryRepository{sessions: make(map[string]entities.AnonymousSession)}
}

func (r *SessionMemoryRepository) Create(_ context.Context, s entities.AnonymousSession) (entities.AnonymousSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[s.SessionID]; ok {
		return entities.AnonymousSession{}, interfaces.ErrAlreadyExists
	}
	r.sessions[s.SessionID] = cloneSession(s)
	return cloneSession(s), nil
}

func (r *SessionMemoryRepository) GetByID(_ context.Context, sessionID string) (entities.AnonymousSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[sessionID]
	if !ok {
		return entities.AnonymousSession{}, nil
	}
	return cloneSession(s), nil
}

func (r *SessionMemoryRepository) Update(_ context.Context, s entities.AnonymousSession) (entities.AnonymousSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.sessions[s.SessionID]
	if !ok {
		return entities.AnonymousSession{}, nil
	}
	if current.Version != s.Version {
		return entities.AnonymousSession{}, interfaces.ErrVersionConflict
	}
	for _, pid := range s.PaymentIDs() {
		if r.paymentOwnerLocked(pid, s.SessionID) {
			return entities.AnonymousSession{}, interfaces.ErrPaymentIDTaken
		}
	}
	s.Version++
	r.sessions[s.SessionID] = cloneSession(s)
	return cloneSession(s), nil
}

func (r *SessionMemoryRepository) FindByPaymentID(_ context.Context, paymentID string) (entities.AnonymousSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.sessions {
		for _, svc := range s.Services {
			if svc.Payment != nil && svc.Payment.PaymentID == paymentID {
				return cloneSession(s), nil
			}
		}
	}
	return entities.AnonymousSession{}, nil
}

// paymentOwnerLocked reports whether a session other than exceptID links paymentID.
func (r *SessionMemoryRepository) paymentOwnerLocked(paymentID, exceptID string) bool {
	for id, s := range r.sessions {
		if id == exceptID {
			continue
		}
		for _, svc := range s.Services {
			if svc.Payment != nil && svc.Payment.PaymentID == paymentID {
				return true
			}
		}
	}
	return false
}

func (r *SessionMemoryRepository) ListActive(_ context.Context, now time.Time) ([]entities.AnonymousSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.AnonymousSession, 0, len(r.sessions))
	for _, s := range r.sessions {
		if s.Expired(now) {
			continue
		}
		out = append(out, cloneSession(s))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *SessionMemoryRepository) DeleteExpired(_ context.Context, now time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, s := range r.sessions {
		if s.Expired(now) {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed, nil
}

func cloneSession(s entities.AnonymousSession) entities.AnonymousSession {
	services := make([]entities.ServiceUsage, len(s.Services))
	for i, svc := range s.Services {
		svc.CompletedAt = cloneTime(svc.CompletedAt)
		if svc.ContactInfo != nil {
			ci := *svc.ContactInfo
			svc.ContactInfo = &ci
		}
		if svc.Payment != nil {
			p := *svc.Payment
			p.CompletedAt = cloneTime(p.CompletedAt)
			svc.Payment = &p
		}
		services[i] = svc
	}
	s.Services = services
	s.Errors = append([]entities.SessionError{}, s.Errors...)
	return s
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
