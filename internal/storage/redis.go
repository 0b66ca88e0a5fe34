package storage

import (
	"context"
	"fmt"
	"time"

	"campus-canteen/internal/service"

	"github.com/redis/go-redis/v9"
)

const (
	keyTokenSeq    = "token:seq:%s"
	keyOrderStatus = "order:status:%d"

	tokenSeqTTL = 48 * time.Hour
	statusTTL   = 30 * time.Minute
)

var _ service.OrderCache = (*RedisCache)(nil)

type RedisCache struct {
	Client *redis.Client
}

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{Client: client}
}

// NextTokenNumber draws from the shared per-day token sequence. Every order
// placed the same day gets the next number, whoever serves the request.
func (c *RedisCache) NextTokenNumber(ctx context.Context, day string) (int, error) {
	key := fmt.Sprintf(keyTokenSeq, day)
	n, err := c.Client.Incr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to advance token sequence: %w", err)
	}
	if n == 1 {
		c.Client.Expire(ctx, key, tokenSeqTTL)
	}
	return int(n), nil
}

func (c *RedisCache) CacheStatus(ctx context.Context, orderID int, status string) error {
	return c.Client.Set(ctx, fmt.Sprintf(keyOrderStatus, orderID), status, statusTTL).Err()
}

func (c *RedisCache) Status(ctx context.Context, orderID int) (string, error) {
	return c.Client.Get(ctx, fmt.Sprintf(keyOrderStatus, orderID)).Result()
}
