package interfaces

import (
	"context"
	"gwansang/internal/domain/entities"
)

// IEventPublisher ships domain events to downstream consumers
// (notification service listens on the order events topic).
type IEventPublisher interface {
	Publish(ctx context.Context, event entities.Event) error
}
