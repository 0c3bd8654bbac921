package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func redisCache(t *testing.T) *RedisCache {
	t.Helper()
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}

	rdb, err := Connect(context.Background(), addr)
	require.NoError(t, err)
	t.Cleanup(func() { rdb.Close() })

	c := NewRedisCache(rdb, time.Minute)
	t.Cleanup(func() { _ = c.Delete(context.Background(), AllKeys...) })
	return c
}

func TestRedisCache_SetGetDelete(t *testing.T) {
	c := redisCache(t)
	ctx := context.Background()

	_, ok, err := c.Get(ctx, KeyBakeries)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, KeyBakeries, []byte(`[{"id":1}]`)))

	val, ok, err := c.Get(ctx, KeyBakeries)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `[{"id":1}]`, string(val))

	require.NoError(t, c.Delete(ctx, AllKeys...))
	_, ok, err = c.Get(ctx, KeyBakeries)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNop(t *testing.T) {
	var c Cache = Nop{}
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, KeyBakeries, []byte("x")))
	_, ok, err := c.Get(ctx, KeyBakeries)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, c.Delete(ctx, AllKeys...))
}
