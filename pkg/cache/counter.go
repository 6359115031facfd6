package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Counter is a shared fixed-window counter keyed by client identity.
// Rate limiting sits behind this interface so horizontally scaled
// instances share one window instead of fragmenting per-process state.
type Counter interface {
	// Incr increments the counter for key within the current window and
	// returns the new count plus the moment the window resets.
	Incr(ctx context.Context, key string, window time.Duration) (int64, time.Time, error)
}

// fixed-window increment: INCR sets the expiry only on first hit,
// so every hit in the window shares one reset time
var incrScript = redis.NewScript(`
local count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('PEXPIRE', KEYS[1], ARGV[1])
end
local ttl = redis.call('PTTL', KEYS[1])
return {count, ttl}
`)

type redisCounter struct {
	client *redis.Client
}

// NewRedisCounter creates a Redis-backed fixed-window counter
func NewRedisCounter(client *redis.Client) Counter {
	return &redisCounter{client: client}
}

func (c *redisCounter) Incr(ctx context.Context, key string, window time.Duration) (int64, time.Time, error) {
	result, err := incrScript.Run(ctx, c.client, []string{key}, window.Milliseconds()).Int64Slice()
	if err != nil {
		return 0, time.Time{}, err
	}
	count := result[0]
	resetAt := time.Now().Add(time.Duration(result[1]) * time.Millisecond)
	return count, resetAt, nil
}
