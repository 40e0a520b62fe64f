package interfaces

import (
	"context"
	"gwansang/internal/domain/entities"
)

// IAdminNotifier alerts the operator mailbox about refund-eligible failures.
type IAdminNotifier interface {
	NotifyRefundableError(ctx context.Context, e entities.RefundableError) error
}
