package sortedstorage

import (
	"context"
	"time"

	"github.com/amazeing-labs/amazeing-api/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

// RedisSortedQueue manages a sorted queue in Redis with TTL support.
type RedisSortedQueue struct {
	client *redis.Client
	locker *redsync.Redsync
	ttl    time.Duration
}

// NewRedisSortedQueue initializes a RedisSortedQueue with the provided Redis client and TTL.
func NewRedisSortedQueue(client *redis.Client, ttlSeconds int) (i.SortedQueue, error) {
	queue := &RedisSortedQueue{
		client: client,
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}
	pool := goredis.NewPool(client)
	queue.locker = redsync.New(pool)
	return queue, nil
}

// Enqueue adds a member to the sorted queue with a given score and sets expiration if necessary.
func (rsq *RedisSortedQueue) Enqueue(ctx context.Context, queueKey string, score float64, member string) error {
	_, err := rsq.client.ZAdd(ctx, queueKey, redis.Z{Score: score, Member: member}).Result()
	if err != nil {
		return err
	}

	// Set expiration only if it's not already set
	ttl, err := rsq.client.TTL(ctx, queueKey).Result()
	if err == nil && ttl == -1 {
		_ = rsq.client.Expire(ctx, queueKey, rsq.ttl).Err()
	}

	return nil
}

// Tops returns up to `amount` members with the highest scores without
// removing them.
func (rsq *RedisSortedQueue) Tops(ctx context.Context, queueKey string, amount int64) ([]string, error) {
	if amount <= 0 {
		return nil, nil
	}
	return rsq.client.ZRevRange(ctx, queueKey, 0, amount-1).Result()
}

// TrimBelowRank drops every member outside the top `amount` scores. The
// trim is serialized with a distributed lock so concurrent writers do not
// race each other.
func (rsq *RedisSortedQueue) TrimBelowRank(ctx context.Context, queueKey string, amount int64) error {
	mutex := rsq.locker.NewMutex(queueKey + ":trim_lock")
	if err := mutex.Lock(); err != nil {
		return err
	}
	defer func() {
		_, _ = mutex.Unlock()
	}()

	if rsq.client.ZCard(ctx, queueKey).Val() <= amount {
		return nil
	}
	return rsq.client.ZRemRangeByRank(ctx, queueKey, 0, -(amount + 1)).Err()
}

// Count returns the number of members in the sorted queue.
func (rsq *RedisSortedQueue) Count(ctx context.Context, queueKey string) int64 {
	return rsq.client.ZCard(ctx, queueKey).Val()
}
