// Package cachemanager provides typed in-memory caches backed by go-cache.
package cachemanager

import (
	"context"
	"time"
)

// CacheManager is a typed key/value store with per-item expiry
type CacheManager[K ~string, V any] interface {
	Get(ctx context.Context, key K) (V, bool)
	Set(ctx context.Context, key K, value V, ttl time.Duration)
	Delete(ctx context.Context, keys ...K)
	Flush(ctx context.Context)
}
