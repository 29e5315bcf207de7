package cache

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"time"

	"printshop/internal/domain/entities"
	"printshop/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const (
	rateTableKey        = "printshop:rate_table:current"
	defaultRateCacheTTL = 5 * time.Minute
)

// redisKV is the subset of the go-redis client the cache needs.
type redisKV interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// RateTableRedisCache stores the current RateTable as JSON under a single key.
// Entries expire after RATE_CACHE_TTL (Go duration, default 5m) and are
// overwritten on every admin update.
type RateTableRedisCache struct {
	rdb redisKV
	ttl time.Duration
}

var _ interfaces.IRateTableCache = (*RateTableRedisCache)(nil)

func NewRateTableRedisCache(rdb redisKV) *RateTableRedisCache {
	return &RateTableRedisCache{rdb: rdb, ttl: rateCacheTTLFromEnv()}
}

func (c *RateTableRedisCache) Get(ctx context.Context) (entities.RateTable, bool, error) {
	raw, err := c.rdb.Get(ctx, rateTableKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return entities.RateTable{}, false, nil
	}
	if err != nil {
		return entities.RateTable{}, false, err
	}

	var rt entities.RateTable
	if err := json.Unmarshal(raw, &rt); err != nil {
		return entities.RateTable{}, false, err
	}
	if rt.Version == 0 {
		return entities.RateTable{}, false, nil
	}
	return rt, true, nil
}

func (c *RateTableRedisCache) Set(ctx context.Context, rt entities.RateTable) error {
	b, err := json.Marshal(rt)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, rateTableKey, b, c.ttl).Err()
}

func rateCacheTTLFromEnv() time.Duration {
	if d, err := time.ParseDuration(os.Getenv("RATE_CACHE_TTL")); err == nil && d > 0 {
		return d
	}
	return defaultRateCacheTTL
}
