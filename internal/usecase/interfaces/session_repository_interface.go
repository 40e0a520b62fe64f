package interfaces

import (
	"context"
	"gwansang/internal/domain/entities"
	"time"
)

// ISessionRepository abstracts persistence for AnonymousSession and the
// payment trackers embedded in it.
//
// Reads do not filter expired sessions; the use case decides visibility.
// Update enforces that a payment id is linked in at most one session.

type ISessionRepository interface {
	Create(ctx context.Context, s entities.AnonymousSession) (entities.AnonymousSession, error)
	GetByID(ctx context.Context, sessionID string) (entities.AnonymousSession, error)
	Update(ctx context.Context, s entities.AnonymousSession) (entities.AnonymousSession, error)
	FindByPaymentID(ctx context.Context, paymentID string) (entities.AnonymousSession, error)
	ListActive(ctx context.Context, now time.Time) ([]entities.AnonymousSession, error)
	DeleteExpired(ctx context.Context, now time.Time) (int, error)
}
