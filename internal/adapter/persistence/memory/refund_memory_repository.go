package memory

import (
	"context"
	"sort"
	"sync"

	"gwansang/internal/domain/entities"
	"gwansang/internal/usecase/interfaces"
)

type RefundableErrorMemoryRepository struct {
	mu     sync.RWMutex
	errors map[string]entities.RefundableError
}

var _ interfaces.IRefundableErrorRepository = (*RefundableErrorMemoryRepository)(nil)

func NewRefundableErrorMemoryRepository() *RefundableErrorMemoryRepository {
	return &RefundableErrorMemoryRepository{errors: make(map[string]entities.RefundableError)}
}

func (r *RefundableErrorMemoryRepository) Create(_ context.Context, e entities.RefundableError) (entities.RefundableError, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.errors[e.ID]; ok {
		return entities.RefundableError{}, interfaces.ErrAlreadyExists
	}
	r.errors[e.ID] = cloneRefundableError(e)
	return cloneRefundableError(e), nil
}

func (r *RefundableErrorMemoryRepository) GetByID(_ context.Context, id string) (entities.RefundableError, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.errors[id]
	if !ok {
		return entities.RefundableError{}, nil
	}
	return cloneRefundableError(e), nil
}

func (r *RefundableErrorMemoryRepository) Update(_ context.Context, e entities.RefundableError) (entities.RefundableError, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.errors[e.ID]
	if !ok {
		return entities.RefundableError{}, nil
	}
	if current.Version != e.Version {
		return entities.RefundableError{}, interfaces.ErrVersionConflict
	}
	e.Version++
	r.errors[e.ID] = cloneRefundableError(e)
	return cloneRefundableError(e), nil
}

func (r *RefundableErrorMemoryRepository) List(_ context.Context) ([]entities.RefundableError, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.RefundableError, 0, len(r.errors))
	for _, e := range r.errors {
		out = append(out, cloneRefundableError(e))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OccurredAt.After(out[j].OccurredAt) })
	return out, nil
}

func cloneRefundableError(e entities.RefundableError) entities.RefundableError {
	if e.PaymentInfo != nil {
		p := *e.PaymentInfo
		e.PaymentInfo = &p
	}
	e.RefundStatus.ProcessedAt = cloneTime(e.RefundStatus.ProcessedAt)
	return e
}
