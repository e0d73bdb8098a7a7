package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMiniRedisCache(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	c := NewRedisCache(RedisConfig{Addr: mr.Addr(), Prefix: "pairscope:"})
	t.Cleanup(func() { _ = c.Close() })
	return c, mr
}

func TestRedisCacheRoundTrip(t *testing.T) {
	c, mr := newMiniRedisCache(t)
	ctx := context.Background()

	require.NoError(t, c.Ping(ctx))

	_, ok, err := c.GetBytes(ctx, "analysis:abc")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.SetBytes(ctx, "analysis:abc", []byte(`{"a":1}`), time.Minute))
	assert.True(t, mr.Exists("pairscope:analysis:abc"))

	b, ok, err := c.GetBytes(ctx, "analysis:abc")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"a":1}`, string(b))
}

func TestRedisCacheExpires(t *testing.T) {
	c, mr := newMiniRedisCache(t)
	ctx := context.Background()

	require.NoError(t, c.SetBytes(ctx, "k", []byte("v"), time.Second))
	mr.FastForward(2 * time.Second)

	_, ok, err := c.GetBytes(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisCacheReportsUnavailableServer(t *testing.T) {
	c, mr := newMiniRedisCache(t)
	mr.Close()

	ctx := context.Background()
	assert.Error(t, c.Ping(ctx))
	_, _, err := c.GetBytes(ctx, "k")
	assert.Error(t, err)
}
