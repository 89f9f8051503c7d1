package cachemanager

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"bennypowers.dev/themify/internal/log"
)

const (
	// NoExpiration keeps items until they are deleted or the cache is flushed
	NoExpiration = gocache.NoExpiration
	// DefaultCleanupInterval is how often expired items are purged
	DefaultCleanupInterval = 30 * time.Minute
)

// NewInMemoryCacheManager creates a cache; useCase names it in log messages
func NewInMemoryCacheManager[K ~string, V any](useCase string, defaultExpiration, cleanupInterval time.Duration) *InMemoryCacheManager[K, V] {
	return &InMemoryCacheManager[K, V]{
		useCase: useCase,
		cache:   gocache.New(defaultExpiration, cleanupInterval),
	}
}

// InMemoryCacheManager implements CacheManager. It is safe for concurrent use.
type InMemoryCacheManager[K ~string, V any] struct {
	useCase string
	cache   *gocache.Cache
}

// Get retrieves an item from the cache by its key
func (c *InMemoryCacheManager[K, V]) Get(ctx context.Context, key K) (V, bool) {
	var zero V

	value, found := c.cache.Get(string(key))
	if !found {
		return zero, false
	}

	v, ok := value.(V)
	if !ok {
		log.Error("%s cache: wrong type for key %s", c.useCase, key)
		return zero, false
	}

	log.Debug("%s cache hit: %s", c.useCase, key)
	return v, true
}

// Set stores value under key for ttl
func (c *InMemoryCacheManager[K, V]) Set(ctx context.Context, key K, value V, ttl time.Duration) {
	c.cache.Set(string(key), value, ttl)
}

// Delete removes keys from the cache
func (c *InMemoryCacheManager[K, V]) Delete(ctx context.Context, keys ...K) {
	for _, key := range keys {
		c.cache.Delete(string(key))
	}
}

// Flush removes every item
func (c *InMemoryCacheManager[K, V]) Flush(ctx context.Context) {
	c.cache.Flush()
}
