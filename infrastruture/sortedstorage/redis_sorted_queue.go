package sortedstorage

import (
	"context"
	"time"

	"github.com/beka-birhanu/vinom-mazestats/service/i"
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

var _ i.SortedQueue = &RedisSortedQueue{}

// NewRedisSortedQueue initializes a RedisSortedQueue with the provided Redis client and TTL.
// A non-positive TTL leaves queue keys without expiration.
func NewRedisSortedQueue(client *redis.Client, ttlSeconds int) (*RedisSortedQueue, error) {
	queue := &RedisSortedQueue{
		client: client,
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}
	pool := goredis.NewPool(client)
	queue.locker = redsync.New(pool)
	return queue, nil
}

// Enqueue adds a member to the sorted queue with a given score and sets expiration if necessary.
func (rsq *RedisSortedQueue) Enqueue(ctx context.Context, queueKey string, score float64, member []byte) error {
	_, err := rsq.client.ZAdd(ctx, queueKey, redis.Z{Score: score, Member: member}).Result()
	if err != nil {
		return err
	}

	if rsq.ttl <= 0 {
		return nil
	}

	// Set expiration only if it's not already set
	ttl, err := rsq.client.TTL(ctx, queueKey).Result()
	if err == nil && ttl == -1 {
		_ = rsq.client.Expire(ctx, queueKey, rsq.ttl).Err()
	}

	return nil
}

// DequeTops removes and retrieves up to `amount` members with the lowest scores.
// The pop runs under a distributed lock so concurrent workers never share a job.
func (rsq *RedisSortedQueue) DequeTops(ctx context.Context, queueKey string, amount int64) ([][]byte, error) {
	mutex := rsq.locker.NewMutex(queueKey + ":dequeue_lock")
	if err := mutex.LockContext(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_, _ = mutex.Unlock()
	}()

	popped, err := rsq.client.ZPopMin(ctx, queueKey, amount).Result()
	if err != nil {
		return nil, err
	}

	members := make([][]byte, 0, len(popped))
	for _, p := range popped {
		if s, ok := p.Member.(string); ok {
			members = append(members, []byte(s))
		}
	}

	return members, nil
}

// Count returns the number of members in the sorted queue.
func (rsq *RedisSortedQueue) Count(ctx context.Context, queueKey string) int64 {
	return rsq.client.ZCard(ctx, queueKey).Val()
}
