package cachemanager

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type key string

func TestInMemoryCacheManager(t *testing.T) {
	ctx := context.Background()
	c := NewInMemoryCacheManager[key, *int]("test", time.Minute, time.Minute)

	_, found := c.Get(ctx, "missing")
	assert.False(t, found)

	v := 42
	c.Set(ctx, "a", &v, 0)
	got, found := c.Get(ctx, "a")
	assert.True(t, found)
	assert.Same(t, &v, got)
	assert.Equal(t, 1, c.Count())

	c.Delete(ctx, "a")
	_, found = c.Get(ctx, "a")
	assert.False(t, found)
}

func TestInMemoryCacheManager_Expiry(t *testing.T) {
	ctx := context.Background()
	c := NewInMemoryCacheManager[key, string]("test", time.Minute, time.Minute)

	c.Set(ctx, "short", "v", 20*time.Millisecond)
	assert.Eventually(t, func() bool {
		_, found := c.Get(ctx, "short")
		return !found
	}, time.Second, 10*time.Millisecond)
}

func TestInMemoryCacheManager_GetWithRefresh(t *testing.T) {
	ctx := context.Background()
	c := NewInMemoryCacheManager[key, string]("test", time.Minute, time.Minute)

	c.Set(ctx, "k", "v", 50*time.Millisecond)
	v, found := c.GetWithRefresh(ctx, "k", time.Hour)
	assert.True(t, found)
	assert.Equal(t, "v", v)

	time.Sleep(100 * time.Millisecond)
	_, found = c.Get(ctx, "k")
	assert.True(t, found)
}
