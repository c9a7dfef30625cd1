package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*LikesCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewLikesCache(client), mr
}

func TestGetMissOnEmptyCache(t *testing.T) {
	c, _ := newTestCache(t)

	_, ok, err := c.Get(context.Background(), "alice")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSetThenGet(t *testing.T) {
	c, mr := newTestCache(t)

	require.NoError(t, c.Set(context.Background(), "alice", 5))

	count, ok, err := c.Get(context.Background(), "alice")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(5), count)

	// the entry carries a TTL so stale counters age out
	assert.Greater(t, mr.TTL("likes:count:alice"), time.Duration(0))
}

func TestGetExpiredEntryIsMiss(t *testing.T) {
	c, mr := newTestCache(t)

	require.NoError(t, c.Set(context.Background(), "alice", 5))
	mr.FastForward(likeCountTTL + 1)

	_, ok, err := c.Get(context.Background(), "alice")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIncrOnlyTouchesCachedCounters(t *testing.T) {
	c, _ := newTestCache(t)

	// uncached counter stays uncached so the next read hits the DB
	require.NoError(t, c.Incr(context.Background(), "alice"))
	_, ok, err := c.Get(context.Background(), "alice")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(context.Background(), "alice", 2))
	require.NoError(t, c.Incr(context.Background(), "alice"))

	count, ok, err := c.Get(context.Background(), "alice")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(3), count)
}

func TestDecr(t *testing.T) {
	c, _ := newTestCache(t)

	require.NoError(t, c.Set(context.Background(), "alice", 2))
	require.NoError(t, c.Decr(context.Background(), "alice"))

	count, ok, err := c.Get(context.Background(), "alice")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(1), count)
}
