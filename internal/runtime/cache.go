package runtime

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"

	"bennypowers.dev/themify/internal/cachemanager"
	"bennypowers.dev/themify/internal/log"
)

// Fallback is the decoded fallback JSON: variation → templated CSS
type Fallback map[string]string

type cacheKey string

// Cache fetches each fallback bundle once and shares it between applies.
// Entries are keyed by palette version and locator; SetVersion switches to
// a fresh key space and Invalidate drops everything.
type Cache struct {
	mu      sync.RWMutex
	version string
	store   *cachemanager.InMemoryCacheManager[cacheKey, Fallback]
	loader  *cachemanager.ReadThroughCache[cacheKey, Fallback, string]
	group   singleflight.Group
}

// NewCache creates a cache that loads bundles with fetcher
func NewCache(fetcher Fetcher) *Cache {
	store := cachemanager.NewInMemoryCacheManager[cacheKey, Fallback]("fallback", cachemanager.NoExpiration, cachemanager.DefaultCleanupInterval)
	load := func(ctx context.Context, locator string) (Fallback, error) {
		log.Debug("Fetching fallback bundle %s", locator)
		data, err := fetcher.Fetch(ctx, locator)
		if err != nil {
			return nil, err
		}
		var fb Fallback
		if err := json.Unmarshal(data, &fb); err != nil {
			return nil, fmt.Errorf("invalid fallback JSON at %s: %w", locator, err)
		}
		return fb, nil
	}
	return &Cache{
		store:  store,
		loader: cachemanager.NewReadThroughCache[cacheKey, Fallback, string](store, load),
	}
}

// Get returns the fallback bundle at locator, fetching it on first use.
// Concurrent misses for the same key share one fetch. The shared fetch
// ignores cancellation of the caller that started it; each caller stops
// waiting when its own ctx is done.
func (c *Cache) Get(ctx context.Context, locator string) (Fallback, error) {
	key := c.key(locator)
	shared := context.WithoutCancel(ctx)
	ch := c.group.DoChan(string(key), func() (any, error) {
		return c.loader.Get(shared, key, locator, cachemanager.NoExpiration)
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(Fallback), nil
	}
}

// SetVersion changes the palette version the cache is keyed by
func (c *Cache) SetVersion(version string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.version = version
}

// Invalidate drops every cached bundle
func (c *Cache) Invalidate() {
	c.store.Flush(context.Background())
}

func (c *Cache) key(locator string) cacheKey {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return cacheKey(c.version + "|" + locator)
}
