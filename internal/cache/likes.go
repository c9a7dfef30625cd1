package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// likeCountTTL bounds staleness of the cached counter; the DB remains
// the source of truth on a miss.
const likeCountTTL = time.Hour

// LikesCache keeps a per-user "likes received" counter in Redis so the
// count shown in the client doesn't hit the swipes table on every poll.
type LikesCache struct {
	client *redis.Client
}

func NewLikesCache(client *redis.Client) *LikesCache {
	return &LikesCache{client: client}
}

func (c *LikesCache) key(userID string) string {
	return fmt.Sprintf("likes:count:%s", userID)
}

// Get returns the cached count. The second return value is false on a miss.
func (c *LikesCache) Get(ctx context.Context, userID string) (int64, bool, error) {
	val, err := c.client.Get(ctx, c.key(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false, nil
	}
	// refresh TTL on access
	_ = c.client.Expire(ctx, c.key(userID), likeCountTTL).Err()
	return n, true, nil
}

// Set stores the count with a fresh TTL.
func (c *LikesCache) Set(ctx context.Context, userID string, count int64) error {
	return c.client.Set(ctx, c.key(userID), count, likeCountTTL).Err()
}

// Incr bumps the counter if it is already cached. An uncached counter is
// left alone so the next read repopulates from the DB.
func (c *LikesCache) Incr(ctx context.Context, userID string) error {
	return c.adjust(ctx, userID, +1)
}

// Decr lowers the counter if it is already cached.
func (c *LikesCache) Decr(ctx context.Context, userID string) error {
	return c.adjust(ctx, userID, -1)
}

func (c *LikesCache) adjust(ctx context.Context, userID string, delta int64) error {
	key := c.key(userID)
	exists, err := c.client.Exists(ctx, key).Result()
	if err != nil || exists == 0 {
		return err
	}
	if err := c.client.IncrBy(ctx, key, delta).Err(); err != nil {
		return err
	}
	return c.client.Expire(ctx, key, likeCountTTL).Err()
}
