package sortedstorage

import (
	"context"
	"time"

	"github.com/beka-birhanu/vinom-pathfinder/service/i"
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

// unlockTimeout bounds a release that outlives the caller's context.
const unlockTimeout = 2 * time.Second

func drainLockName(queueKey string) string {
	return queueKey + ":drain_lock"
}

// release unlocks mutex even when the request context that locked it is
// already canceled, so the next drain does not wait for lock expiry.
func release(mutex *redsync.Mutex) {
	ctx, cancel := context.WithTimeout(context.Background(), unlockTimeout)
	defer cancel()
	_, _ = mutex.UnlockContext(ctx)
}

// NewRedisSortedQueue initializes a RedisSortedQueue with the provided Redis client and TTL.
func NewRedisSortedQueue(client *redis.Client, ttl time.Duration) (*RedisSortedQueue, error) {
	queue := &RedisSortedQueue{
		client: client,
		ttl:    ttl,
	}
	pool := goredis.NewPool(client)
	queue.locker = redsync.New(pool)
	return queue, nil
}

// Enqueue adds members to the sorted queue and sets expiration if necessary.
func (rsq *RedisSortedQueue) Enqueue(ctx context.Context, queueKey string, members ...i.ScoredMember) error {
	if len(members) == 0 {
		return nil
	}

	zs := make([]redis.Z, 0, len(members))
	for _, m := range members {
		zs = append(zs, redis.Z{Score: m.Score, Member: m.Member})
	}

	if err := rsq.client.ZAdd(ctx, queueKey, zs...).Err(); err != nil {
		return err
	}

	// Set expiration only if it's not already set
	ttl, err := rsq.client.TTL(ctx, queueKey).Result()
	if err == nil && ttl == -1 {
		_ = rsq.client.Expire(ctx, queueKey, rsq.ttl).Err()
	}

	return nil
}

// DequeTops removes and retrieves up to `amount` members with the lowest scores.
func (rsq *RedisSortedQueue) DequeTops(ctx context.Context, queueKey string, amount int64) ([]string, error) {
	mutex := rsq.locker.NewMutex(drainLockName(queueKey))
	if err := mutex.LockContext(ctx); err != nil {
		return nil, err
	}
	defer release(mutex)

	popped, err := rsq.client.ZPopMin(ctx, queueKey, amount).Result()
	if err != nil {
		return nil, err
	}

	members := make([]string, 0, len(popped))
	for _, p := range popped {
		if member, ok := p.Member.(string); ok {
			members = append(members, member)
		}
	}

	return members, nil
}

// Count returns the number of members in the sorted queue.
func (rsq *RedisSortedQueue) Count(ctx context.Context, queueKey string) int64 {
	return rsq.client.ZCard(ctx, queueKey).Val()
}
