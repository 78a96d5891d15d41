// Package redis holds the Redis-backed coordination primitives.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// NewClient builds a go-redis client.
func NewClient(addr, password string, db int) *goredis.Client {
	return goredis.NewClient(&goredis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

// DailyLock hands out one claim per key and calendar day, so a scheduler that
// fires more than once a day runs the job once.
type DailyLock struct {
	client *goredis.Client
	prefix string
	ttl    time.Duration
}

// NewDailyLock returns a lock namespaced by prefix. Claims expire after ttl.
func NewDailyLock(client *goredis.Client, prefix string, ttl time.Duration) *DailyLock {
	if ttl <= 0 {
		ttl = 36 * time.Hour
	}
	return &DailyLock{client: client, prefix: prefix, ttl: ttl}
}

// Acquire claims day for owner. It reports false when the day is already claimed.
func (l *DailyLock) Acquire(ctx context.Context, day, owner string) (bool, error) {
	if l.client == nil {
		return false, errors.New("redis client is nil")
	}
	if day == "" {
		return false, errors.New("lock day is required")
	}
	ok, err := l.client.SetNX(ctx, l.key(day), owner, l.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("acquire daily lock: %w", err)
	}
	return ok, nil
}

// Release drops the claim so a failed run can be retried the same day.
func (l *DailyLock) Release(ctx context.Context, day string) error {
	if l.client == nil {
		return errors.New("redis client is nil")
	}
	if err := l.client.Del(ctx, l.key(day)).Err(); err != nil {
		return fmt.Errorf("release daily lock: %w", err)
	}
	return nil
}

func (l *DailyLock) key(day string) string { return l.prefix + ":" + day }
