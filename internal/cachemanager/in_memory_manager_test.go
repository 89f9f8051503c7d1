package cachemanager

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

type exampleStruct struct {
	ID   int
	Name string
}

func TestNewInMemoryCacheManager_GetExistingValue_StructType(t *testing.T) {
	cache := NewInMemoryCacheManager[string, exampleStruct]("test", NoExpiration, DefaultCleanupInterval)
	example := exampleStruct{Name: "light"}
	cache.Set(context.Background(), "ex:1", example, NoExpiration)

	got, ok := cache.Get(context.Background(), "ex:1")
	require.True(t, ok)
	require.Equal(t, example, got)
}

func TestNewInMemoryCacheManager_GetWithNoExistingValue(t *testing.T) {
	cache := NewInMemoryCacheManager[string, string]("test", NoExpiration, DefaultCleanupInterval)

	got, ok := cache.Get(context.Background(), "dark")
	require.False(t, ok)
	require.Empty(t, got)
}

func TestNewInMemoryCacheManager_GetWithExistingInvalidValueType(t *testing.T) {
	cache := NewInMemoryCacheManager[string, string]("test", NoExpiration, DefaultCleanupInterval)
	cache.cache.Set("dark", 123, NoExpiration)

	got, ok := cache.Get(context.Background(), "dark")
	require.False(t, ok)
	require.Empty(t, got)
}

func TestNewInMemoryCacheManager_DeleteAndFlush(t *testing.T) {
	ctx := context.Background()
	cache := NewInMemoryCacheManager[string, string]("test", NoExpiration, DefaultCleanupInterval)
	cache.Set(ctx, "light", "a", NoExpiration)
	cache.Set(ctx, "dark", "b", NoExpiration)

	cache.Delete(ctx, "light")
	_, ok := cache.Get(ctx, "light")
	require.False(t, ok)

	cache.Flush(ctx)
	_, ok = cache.Get(ctx, "dark")
	require.False(t, ok)
}
