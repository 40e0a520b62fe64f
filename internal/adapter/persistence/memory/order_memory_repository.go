package memory

import (
	"context"
	"sort"
	"sync"

	"gwansang/internal/domain/entities"
	"gwansang/internal/usecase/interfaces"
)

// OrderMemoryRepository keeps orders in process memory.
// It enforces the same create-once and version rules as the DynamoDB store.
type OrderMemoryRepository struct {
	mu     sync.RWMutex
	orders map[string]entities.Order
}

var _ interfaces.IOrderRepository = (*OrderMemoryRepository)(nil)

func NewOrderMemoryRepository() *OrderMemoryRepository {
	return &OrderMemoryRepository{orders: make(map[string]entities.Order)}
}

func (r *OrderMemoryRepository) Create(_ context.Context, o entities.Order) (entities.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[o.OrderID]; ok {
		return entities.Order{}, interfaces.ErrAlreadyExists
	}
	r.orders[o.OrderID] = cloneOrder(o)
	return cloneOrder(o), nil
}

func (r *OrderMemoryRepository) GetByID(_ context.Context, orderID string) (entities.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.orders[orderID]
	if !ok {
		return entities.Order{}, nil
	}
	return cloneOrder(o), nil
}

func (r *OrderMemoryRepository) Update(_ context.Context, o entities.Order) (entities.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.orders[o.OrderID]
	if !ok {
		return entities.Order{}, nil
	}
	if current.Version != o.Version {
		return entities.Order{}, interfaces.ErrVersionConflict
	}
	o.Version++
	r.orders[o.OrderID] = cloneOrder(o)
	return cloneOrder(o), nil
}

func (r *OrderMemoryRepository) List(_ context.Context) ([]entities.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.Order, 0, len(r.orders))
	for _, o := range r.orders {
		out = append(out, cloneOrder(o))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func cloneOrder(o entities.Order) entities.Order {
	o.ErrorLogs = append([]string{}, o.ErrorLogs...)
	o.CompletedAt = cloneTime(o.CompletedAt)
	o.RefundRequestedAt = cloneTime(o.RefundRequestedAt)
	o.RefundedAt = cloneTime(o.RefundedAt)
	return o
}
