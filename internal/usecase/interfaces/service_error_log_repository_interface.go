package interfaces

import (
	"context"
	"gwansang/internal/domain/entities"
)

type IServiceErrorLogRepository interface {
	Create(ctx context.Context, l entities.ServiceErrorLog) (entities.ServiceErrorLog, error)
	List(ctx context.Context) ([]entities.ServiceErrorLog, error)
}
