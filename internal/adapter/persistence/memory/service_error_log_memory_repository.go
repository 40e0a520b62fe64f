package memory

import (
	"context"
	"sort"
	"sync"

	"gwansang/internal/domain/entities"
	"gwansang/internal/usecase/interfaces"
)

type ServiceErrorLogMemoryRepository struct {
	mu   sync.RWMutex
	logs []entities.ServiceErrorLog
}

var _ interfaces.IServiceErrorLogRepository = (*ServiceErrorLogMemoryRepository)(nil)

func NewServiceErrorLogMemoryRepository() *ServiceErrorLogMemoryRepository {
	return &ServiceErrorLogMemoryRepository{}
}

func (r *ServiceErrorLogMemoryRepository) Create(_ context.Context, l entities.ServiceErrorLog) (entities.ServiceErrorLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.logs {
		if existing.ID == l.ID {
			return entities.ServiceErrorLog{}, interfaces.ErrAlreadyExists
		}
	}
	r.logs = append(r.logs, l)
	return l, nil
}

func (r *ServiceErrorLogMemoryRepository) List(_ context.Context) ([]entities.ServiceErrorLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := append([]entities.ServiceErrorLog{}, r.logs...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].OccurredAt.After(out[j].OccurredAt) })
	return out, nil
}
