package matchcache

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/viccon/sturdyc"

	"github.com/meetgrid/affinity/internal/domain/match"
)

const (
	memoryShards             = 16
	memoryEvictionPercentage = 10
)

// MemoryCache is an in-process page cache for single-instance
// deployments where a round trip to the shared store is not worth it.
type MemoryCache struct {
	client     *sturdyc.Client[match.Page]
	cacheTotal *prometheus.CounterVec
}

// NewMemory creates an in-process page cache with the given capacity
// and TTL.
func NewMemory(capacity int, ttl time.Duration, cacheTotal *prometheus.CounterVec) *MemoryCache {
	return &MemoryCache{
		client:     sturdyc.New[match.Page](capacity, memoryShards, ttl, memoryEvictionPercentage),
		cacheTotal: cacheTotal,
	}
}

// Get returns the cached page for a request, if present.
func (c *MemoryCache) Get(
	_ context.Context, target string, req match.Request, cfg match.Config,
) (match.Page, bool) {
	page, ok := c.client.Get(Key(target, req, cfg))
	if ok {
		c.incCache("hit")
	} else {
		c.incCache("miss")
	}
	return page, ok
}

// Set stores a page for a request.
func (c *MemoryCache) Set(
	_ context.Context, target string, req match.Request, cfg match.Config, page match.Page,
) {
	c.client.Set(Key(target, req, cfg), page)
}

func (c *MemoryCache) incCache(result string) {
	if c.cacheTotal != nil {
		c.cacheTotal.WithLabelValues(result).Inc()
	}
}
