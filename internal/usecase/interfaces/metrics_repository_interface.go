package interfaces

import "context"

// IMetricsRepository is an increment-only counter store.
//
// A bucket is a named hash of counters ("total", "day:2026-10-15").
// Increment applies every delta to every bucket in one atomic step per store.

type IMetricsRepository interface {
	Increment(ctx context.Context, buckets []string, deltas map[string]int64) error
	Snapshot(ctx context.Context, bucket string) (map[string]int64, error)
}
