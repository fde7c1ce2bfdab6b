package cache_test

import (
	"context"
	"errors"
	"testing"
	"time"
	"todos/infras/otel/mocks"
	"todos/shared/cache"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unreachable points at a closed port so every command fails fast.
func unreachable(t *testing.T) cache.RedisCache {
	t.Helper()

	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })

	return cache.NewRedisCache(client, mocks.NewOtel())
}

func TestKey(t *testing.T) {
	assert.Equal(t, "revoked_token:abc", cache.Key("revoked_token", "abc"))
	assert.Equal(t, "single", cache.Key("single"))
	assert.Equal(t, "revoked_token:abc", cache.RevokedTokenKey("abc"))
}

func TestRedisCache_SaveRejectsUnmarshalableValue(t *testing.T) {
	err := unreachable(t).Save(context.Background(), "k", make(chan int), time.Minute)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to marshal cache value")
}

func TestRedisCache_ConnectionErrors(t *testing.T) {
	ctx := context.Background()
	c := unreachable(t)

	var value string

	err := c.Get(ctx, "k", &value)
	require.Error(t, err)
	assert.False(t, errors.Is(err, cache.Nil), "a transport error is not a miss")

	_, err = c.Exists(ctx, "k")
	require.Error(t, err)

	require.Error(t, c.Save(ctx, "k", "v", time.Minute))
	require.Error(t, c.Delete(ctx, "k"))
}
