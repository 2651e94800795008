package lock

import (
	"context"
	"fmt"
	"time"

	"healthsched/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var ErrLockNotAcquired = errs.New("slot lock not acquired")

// SlotLocker serializes concurrent work on a single slot. The authoritative
// booking guard is the conditional UPDATE in the repository; the lock only
// keeps losers from hitting the database at all.
type SlotLocker interface {
	WithSlotLock(ctx context.Context, slotID uuid.UUID, fn func(ctx context.Context) error) error
}

type RedisSlotLocker struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSlotLocker(client *redis.Client, ttl time.Duration) *RedisSlotLocker {
	return &RedisSlotLocker{client: client, ttl: ttl}
}

func (l *RedisSlotLocker) WithSlotLock(ctx context.Context, slotID uuid.UUID, fn func(ctx context.Context) error) error {
	key := fmt.Sprintf("lock:slot:%s", slotID)
	token := uuid.NewString()

	ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
	if err != nil {
		return errs.Wrap(err, "failed to acquire slot lock")
	}
	if !ok {
		return ErrLockNotAcquired
	}
	defer func() {
		_ = l.release(ctx, key, token)
	}()

	lockCtx, cancel := context.WithTimeout(ctx, l.ttl)
	defer cancel()

	return fn(lockCtx)
}

// releaseScript deletes the key only while we still own it; an expired lock
// reacquired by someone else must not be removed from under them.
var releaseScript = redis.NewScript(`
local val = redis.call("GET", KEYS[1])
if val == ARGV[1] then
  return redis.call("DEL", KEYS[1])
else
  return 0
end
`)

func (l *RedisSlotLocker) release(ctx context.Context, key, token string) error {
	if _, err := releaseScript.Run(ctx, l.client, []string{key}, token).Result(); err != nil && err != redis.Nil {
		return errs.Wrap(err, "failed to release slot lock")
	}
	return nil
}
