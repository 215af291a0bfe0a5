package matchcache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/meetgrid/affinity/internal/db"
	"github.com/meetgrid/affinity/internal/domain/match"
)

// store is the consumer interface for the redis cache backend (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// RedisCache stores ranked pages in the shared key-value store with a
// TTL. Cache failures are reported as misses and logged; they never
// fail the request.
type RedisCache struct {
	store      store
	ttl        time.Duration
	cacheTotal *prometheus.CounterVec
	logger     *zap.Logger
}

// NewRedis creates a redis-backed page cache.
// cacheTotal is a counter vec with label "result" ("hit"/"miss"), passed explicitly.
func NewRedis(
	s store,
	ttl time.Duration,
	cacheTotal *prometheus.CounterVec,
	logger *zap.Logger,
) *RedisCache {
	return &RedisCache{store: s, ttl: ttl, cacheTotal: cacheTotal, logger: logger}
}

// Get returns the cached page for a request, if present and parseable.
func (c *RedisCache) Get(
	ctx context.Context, target string, req match.Request, cfg match.Config,
) (match.Page, bool) {
	key := Key(target, req, cfg)
	data, err := c.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, db.ErrKeyNotFound) {
			c.logger.Warn("Failed to get cached match page", zap.String("key", key), zap.Error(err))
		}
		c.incCache("miss")
		return match.Page{}, false
	}

	var page match.Page
	if err := json.Unmarshal(data, &page); err != nil {
		c.logger.Warn("Failed to parse cached match page", zap.String("key", key), zap.Error(err))
		c.incCache("miss")
		return match.Page{}, false
	}

	c.incCache("hit")
	return page, true
}

// Set stores a page for a request. Write failures are logged and dropped.
func (c *RedisCache) Set(
	ctx context.Context, target string, req match.Request, cfg match.Config, page match.Page,
) {
	key := Key(target, req, cfg)
	data, err := json.Marshal(page)
	if err != nil {
		c.logger.Warn("Failed to marshal match page for cache", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.store.SetWithTTL(ctx, key, data, c.ttl); err != nil {
		c.logger.Warn("Failed to cache match page", zap.String("key", key), zap.Error(err))
	}
}

func (c *RedisCache) incCache(result string) {
	if c.cacheTotal != nil {
		c.cacheTotal.WithLabelValues(result).Inc()
	}
}
