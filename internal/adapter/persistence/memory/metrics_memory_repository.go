package memory

import (
	"context"
	"sync"

	"gwansang/internal/usecase/interfaces"
)

type MetricsMemoryRepository struct {
	mu      sync.Mutex
	buckets map[string]map[string]int64
}

var _ interfaces.IMetricsRepository = (*MetricsMemoryRepository)(nil)

func NewMetricsMemoryRepository() *MetricsMemoryRepository {
	return &MetricsMemoryRepository{buckets: make(map[string]map[string]int64)}
}

func (r *MetricsMemoryRepository) Increment(_ context.Context, buckets []string, deltas map[string]int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, b := range buckets {
		counters, ok := r.buckets[b]
		if !ok {
			counters = make(map[string]int64)
			r.buckets[b] = counters
		}
		for field, delta := range deltas {
			counters[field] += delta
		}
	}
	return nil
}

func (r *MetricsMemoryRepository) Snapshot(_ context.Context, bucket string) (map[string]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make(map[string]int64, len(r.buckets[bucket]))
	for k, v := range r.buckets[bucket] {
		out[k] = v
	}
	return out, nil
}
