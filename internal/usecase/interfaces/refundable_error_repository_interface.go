package interfaces

import (
	"context"
	"gwansang/internal/domain/entities"
)

// IRefundableErrorRepository abstracts persistence for RefundableError.

type IRefundableErrorRepository interface {
	Create(ctx context.Context, e entities.RefundableError) (entities.RefundableError, error)
	GetByID(ctx context.Context, id string) (entities.RefundableError, error)
	Update(ctx context.Context, e entities.RefundableError) (entities.RefundableError, error)
	List(ctx context.Context) ([]entities.RefundableError, error)
}
