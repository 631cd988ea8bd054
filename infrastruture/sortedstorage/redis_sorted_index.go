package sortedstorage

import (
	"context"
	"fmt"
	"time"

	"github.com/beka-birhanu/vinom-carver/service/i"
	"github.com/redis/go-redis/v9"
)

// RedisSortedIndex keeps a bounded, expiring sorted set per key in Redis.
type RedisSortedIndex struct {
	client *redis.Client
	ttl    time.Duration
	limit  int64
}

var _ i.SortedIndex = &RedisSortedIndex{}

// NewRedisSortedIndex initializes a RedisSortedIndex. Each key keeps at most
// limit members (the highest scored) and expires ttlSeconds after its last Add.
// Non-positive values disable the bound or the expiry.
func NewRedisSortedIndex(client *redis.Client, ttlSeconds, limit int) *RedisSortedIndex {
	return &RedisSortedIndex{
		client: client,
		ttl:    time.Duration(ttlSeconds) * time.Second,
		limit:  int64(limit),
	}
}

// Add inserts member with score, drops the lowest scored members beyond the
// limit and refreshes the key's expiry, atomically.
func (rsi *RedisSortedIndex) Add(ctx context.Context, key string, score float64, member string) error {
	pipe := rsi.client.TxPipeline()
	pipe.ZAdd(ctx, key, redis.Z{Score: score, Member: member})
	if rsi.limit > 0 {
		pipe.ZRemRangeByRank(ctx, key, 0, -rsi.limit-1)
	}
	if rsi.ttl > 0 {
		pipe.Expire(ctx, key, rsi.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("add to %s: %w", key, err)
	}
	return nil
}

// Top returns up to limit members with the highest scores, highest first.
func (rsi *RedisSortedIndex) Top(ctx context.Context, key string, limit int64) ([]string, error) {
	if limit <= 0 {
		return nil, nil
	}
	members, err := rsi.client.ZRevRange(ctx, key, 0, limit-1).Result()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", key, err)
	}
	return members, nil
}

// Count returns the number of members in the sorted set.
func (rsi *RedisSortedIndex) Count(ctx context.Context, key string) int64 {
	return rsi.client.ZCard(ctx, key).Val()
}
