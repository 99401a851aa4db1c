package cache

import (
	"context"
	"testing"
	"time"

	"github.com/anmolenterprise/invoicer/internal/config"
	"github.com/stretchr/testify/assert"
)

func newCache(enabled bool) Cache {
	cfg := config.GetDefaultConfig()
	cfg.Cache.Enabled = enabled
	return NewInMemoryCache(cfg)
}

func TestInMemoryCache(t *testing.T) {
	ctx := context.Background()
	c := newCache(true)

	c.Set(ctx, "document:v1:a", []byte("a"), 0)
	c.Set(ctx, "document:v1:b", []byte("b"), time.Minute)
	c.Set(ctx, "other:c", []byte("c"), 0)

	got, ok := c.Get(ctx, "document:v1:a")
	assert.True(t, ok)
	assert.Equal(t, []byte("a"), got)

	c.DeleteByPrefix(ctx, PrefixDocument)
	_, ok = c.Get(ctx, "document:v1:b")
	assert.False(t, ok)
	_, ok = c.Get(ctx, "other:c")
	assert.True(t, ok)

	c.Delete(ctx, "other:c")
	_, ok = c.Get(ctx, "other:c")
	assert.False(t, ok)
}

func TestInMemoryCache_Disabled(t *testing.T) {
	ctx := context.Background()
	c := newCache(false)

	c.Set(ctx, "k", 1, 0)
	_, ok := c.Get(ctx, "k")
	assert.False(t, ok)
	assert.Zero(t, c.(*InMemoryCache).ItemCount())
}

func TestInMemoryCache_Expiry(t *testing.T) {
	ctx := context.Background()
	c := newCache(true)

	c.Set(ctx, "short", 1, time.Millisecond)
	time.Sleep(5 * time.Millisecond)
	_, ok := c.Get(ctx, "short")
	assert.False(t, ok)
}

func TestGenerateKey(t *testing.T) {
	assert.Equal(t, "document:v1:hsn:abc", GenerateKey(PrefixDocument, "hsn", "abc"))
}
