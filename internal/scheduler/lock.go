package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// SlotLocker grants a key to exactly one caller until the ttl elapses.
type SlotLocker interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)
}

func NewSlotLocker(client *redis.Client) SlotLocker {
	if client == nil {
		return NewMemoryLocker()
	}
	return NewRedisLocker(client)
}

type redisLocker struct {
	client *redis.Client
}

// NewRedisLocker coordinates slots across every process sharing the Redis
// instance.
func NewRedisLocker(client *redis.Client) SlotLocker {
	return &redisLocker{client: client}
}

func (l *redisLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	return l.client.SetNX(ctx, key, time.Now().UTC().Format(time.RFC3339), ttl).Result()
}

type memoryLocker struct {
	mu    sync.Mutex
	held  map[string]time.Time
	clock func() time.Time
}

// NewMemoryLocker only guarantees at-most-once within this process.
func NewMemoryLocker() SlotLocker {
	return &memoryLocker{held: make(map[string]time.Time), clock: time.Now}
}

func (l *memoryLocker) Acquire(_ context.Context, key string, ttl time.Duration) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := l.clock()
	for k, exp := range l.held {
		if !exp.After(now) {
			delete(l.held, k)
		}
	}
	if _, ok := l.held[key]; ok {
		return false, nil
	}
	l.held[key] = now.Add(ttl)
	return true, nil
}
