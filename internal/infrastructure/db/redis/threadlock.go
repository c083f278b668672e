package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const lockTTL = 10 * time.Second

// ThreadLocker serializes thread initiation using SETNX on the
// canonical pair key. Locks expire on their own so a crashed holder
// never wedges a pair. Key format: threadlock:<pair_key>
type ThreadLocker struct {
	client *redis.Client
}

// NewThreadLocker creates a ThreadLocker wrapping the given Redis client.
func NewThreadLocker(client *redis.Client) *ThreadLocker {
	return &ThreadLocker{client: client}
}

// Acquire attempts to take the lock. It reports false when another
// caller already holds it.
func (l *ThreadLocker) Acquire(ctx context.Context, key string) (bool, error) {
	ok, err := l.client.SetNX(ctx, l.key(key), "1", lockTTL).Result()
	if err != nil {
		return false, fmt.Errorf("thread lock acquire: %w", err)
	}
	return ok, nil
}

// Release frees the lock early instead of waiting for the TTL.
func (l *ThreadLocker) Release(ctx context.Context, key string) error {
	return l.client.Del(ctx, l.key(key)).Err()
}

func (l *ThreadLocker) key(pairKey string) string {
	return "threadlock:" + pairKey
}
