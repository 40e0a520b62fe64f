package interfaces

import (
	"context"
	"gwansang/internal/domain/entities"
)

// IOrderRepository abstracts persistence for Order.
//
// GetByID returns a zero Order (empty OrderID) when nothing is stored.
// Update writes only when the stored version equals o.Version and returns the
// record with the version bumped.

type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, orderID string) (entities.Order, error)
	Update(ctx context.Context, o entities.Order) (entities.Order, error)
	List(ctx context.Context) ([]entities.Order, error)
}
