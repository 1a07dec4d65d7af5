package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"setback-area-service/internal/domain"
	"setback-area-service/internal/platform/obs"
)

// RedisResultCache memoizes buildable-area results in Redis, keyed by the
// request input hash. Entries are TTL-bounded: results are immutable for a
// given key, the TTL only caps memory growth.
type RedisResultCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisResultCache(client *redis.Client, ttl time.Duration) *RedisResultCache {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &RedisResultCache{Client: client, TTL: ttl}
}

func cacheKeyName(key string) string { return "buildable:" + key }

// Get returns the cached result for a key, reporting whether it was found.
func (c *RedisResultCache) Get(ctx context.Context, key string) (_ *domain.BuildableAreaResult, _ bool, err error) {
	defer obs.Time(ctx, "result.cache.Get")(&err)

	if c.Client == nil {
		return nil, false, errors.New("result cache: client is nil")
	}
	if key == "" {
		return nil, false, errors.New("get result cache: key must not be empty")
	}

	raw, err := c.Client.Get(ctx, cacheKeyName(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get result cache: %w", err)
	}

	var res domain.BuildableAreaResult
	if err := json.Unmarshal(raw, &res); err != nil {
		// A corrupt entry behaves like a miss; the caller recomputes.
		return nil, false, nil
	}
	return &res, true, nil
}

// Put stores a result under a key.
func (c *RedisResultCache) Put(ctx context.Context, key string, result *domain.BuildableAreaResult) error {
	if c.Client == nil {
		return errors.New("result cache: client is nil")
	}
	if key == "" {
		return errors.New("put result cache: key must not be empty")
	}
	if result == nil {
		return errors.New("put result cache: result must be non-nil")
	}

	raw, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("put result cache: marshal: %w", err)
	}

	if err := c.Client.Set(ctx, cacheKeyName(key), raw, c.TTL).Err(); err != nil {
		return fmt.Errorf("put result cache: %w", err)
	}
	return nil
}
