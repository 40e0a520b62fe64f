package repository

import (
	"context"
	"strconv"
	"strings"
	"time"

	"gwansang/internal/usecase/interfaces"

	"github.com/pkg/errors"
	redis "github.com/redis/go-redis/v9"
)

const (
	metricsKeyPrefix     = "gwansang:metrics:"
	dayBucketPrefix      = "day:"
	defaultRetentionDays = 90
)

// MetricsRedisRepository keeps each bucket as one Redis hash of counters.
// Day buckets expire after the retention window; "total" never expires.
type MetricsRedisRepository struct {
	rdb       redis.UniversalClient
	retention time.Duration
}

var _ interfaces.IMetricsRepository = (*MetricsRedisRepository)(nil)

func NewMetricsRedisRepository(rdb redis.UniversalClient, retentionDays int) *MetricsRedisRepository {
	if retentionDays <= 0 {
		retentionDays = defaultRetentionDays
	}
	return &MetricsRedisRepository{
		rdb:       rdb,
		retention: time.Duration(retentionDays) * 24 * time.Hour,
	}
}

func (r *MetricsRedisRepository) Increment(ctx context.Context, buckets []string, deltas map[string]int64) error {
	if len(buckets) == 0 || len(deltas) == 0 {
		return nil
	}
	_, err := r.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, b := range buckets {
			key := metricsKey(b)
			for field, delta := range deltas {
				pipe.HIncrBy(ctx, key, field, delta)
			}
			if strings.HasPrefix(b, dayBucketPrefix) {
				pipe.Expire(ctx, key, r.retention)
			}
		}
		return nil
	})
	return errors.Wrap(err, "increment metrics")
}

func (r *MetricsRedisRepository) Snapshot(ctx context.Context, bucket string) (map[string]int64, error) {
	raw, err := r.rdb.HGetAll(ctx, metricsKey(bucket)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "read metrics bucket %s", bucket)
	}
	return parseCounters(raw)
}

func metricsKey(bucket string) string {
	return metricsKeyPrefix + bucket
}

func parseCounters(raw map[string]string) (map[string]int64, error) {
	out := make(map[string]int64, len(raw))
	for field, v := range raw {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "counter %s", field)
		}
		out[field] = n
	}
	return out, nil
}
