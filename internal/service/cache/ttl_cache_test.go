package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTTLCacheExpiry(t *testing.T) {
	ctx := context.Background()
	now := time.Unix(1_700_000_000, 0)
	c := NewTTLCache(10)
	c.now = func() time.Time { return now }

	require.NoError(t, c.SetBytes(ctx, "k", []byte("v"), time.Minute))
	require.NoError(t, c.SetBytes(ctx, "forever", []byte("x"), 0))

	b, ok, err := c.GetBytes(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("v"), b)

	now = now.Add(2 * time.Minute)
	_, ok, _ = c.GetBytes(ctx, "k")
	assert.False(t, ok)
	_, ok, _ = c.GetBytes(ctx, "forever")
	assert.True(t, ok)

	_, ok, _ = c.GetBytes(ctx, "missing")
	assert.False(t, ok)
}

func TestTTLCacheBounded(t *testing.T) {
	ctx := context.Background()
	now := time.Unix(1_700_000_000, 0)
	c := NewTTLCache(2)
	c.now = func() time.Time { return now }

	require.NoError(t, c.SetBytes(ctx, "soon", []byte("1"), time.Second))
	require.NoError(t, c.SetBytes(ctx, "later", []byte("2"), time.Hour))
	require.NoError(t, c.SetBytes(ctx, "new", []byte("3"), time.Hour))

	assert.Equal(t, 2, c.Len())
	_, ok, _ := c.GetBytes(ctx, "soon")
	assert.False(t, ok, "entry closest to expiry is evicted")
	_, ok, _ = c.GetBytes(ctx, "later")
	assert.True(t, ok)

	require.NoError(t, c.SetBytes(ctx, "later", []byte("4"), time.Hour))
	assert.Equal(t, 2, c.Len())
}

func TestTTLCacheExpiredReadKeepsConcurrentWrite(t *testing.T) {
	ctx := context.Background()
	now := time.Unix(1_700_000_000, 0)
	c := NewTTLCache(10)
	c.now = func() time.Time { return now }
	require.NoError(t, c.SetBytes(ctx, "k", []byte("stale"), time.Second))

	now = now.Add(2 * time.Second)
	// the clock is read between the read lock and the write lock; refresh the key there
	refreshed := false
	c.now = func() time.Time {
		if !refreshed {
			refreshed = true
			require.NoError(t, c.SetBytes(ctx, "k", []byte("fresh"), time.Hour))
		}
		return now
	}

	_, ok, err := c.GetBytes(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
	require.True(t, refreshed)

	b, ok, err := c.GetBytes(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("fresh"), b)
}
