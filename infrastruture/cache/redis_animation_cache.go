// Package cache keeps encoded animations in Redis.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	defaultPrefix = "vinom-solver"

	// animation key string format
	animationKeyFmt = "%s:animation:%s"
	fillLockKeyFmt  = "%s:animation:%s:fill_lock"

	fillLockExpiry = 10 * time.Second
	fillLockTries  = 32
	unlockTimeout  = time.Second
)

// RedisAnimationCache stores animations in Redis with TTL support.
type RedisAnimationCache struct {
	client *redis.Client
	locker *redsync.Redsync
	prefix string
	ttl    time.Duration
}

// NewRedisAnimationCache initializes a RedisAnimationCache with the provided Redis client and TTL.
func NewRedisAnimationCache(client *redis.Client, ttlSeconds int) (*RedisAnimationCache, error) {
	if client == nil {
		return nil, errors.New("redis client is required")
	}
	if ttlSeconds <= 0 {
		return nil, fmt.Errorf("ttl must be positive, got %d", ttlSeconds)
	}

	cache := &RedisAnimationCache{
		client: client,
		prefix: defaultPrefix,
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}
	pool := goredis.NewPool(client)
	cache.locker = redsync.New(pool)
	return cache, nil
}

// Get returns the cached animation, if present.
func (c *RedisAnimationCache) Get(ctx context.Context, id uuid.UUID) ([]byte, bool, error) {
	data, err := c.client.Get(ctx, c.animationKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// Set stores an animation and (re)starts its TTL.
func (c *RedisAnimationCache) Set(ctx context.Context, id uuid.UUID, animation []byte) error {
	return c.client.Set(ctx, c.animationKey(id), animation, c.ttl).Err()
}

// WithFillLock runs fill while holding a distributed lock scoped to id.
// The lock is released even if ctx expires while fill runs.
func (c *RedisAnimationCache) WithFillLock(ctx context.Context, id uuid.UUID, fill func() error) error {
	mutex := c.locker.NewMutex(
		c.fillLockKey(id),
		redsync.WithExpiry(fillLockExpiry),
		redsync.WithTries(fillLockTries),
	)
	if err := mutex.LockContext(ctx); err != nil {
		return err
	}
	defer func() {
		unlockCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), unlockTimeout)
		defer cancel()
		_, _ = mutex.UnlockContext(unlockCtx)
	}()

	return fill()
}

func (c *RedisAnimationCache) animationKey(id uuid.UUID) string {
	return fmt.Sprintf(animationKeyFmt, c.prefix, id)
}

func (c *RedisAnimationCache) fillLockKey(id uuid.UUID) string {
	return fmt.Sprintf(fillLockKeyFmt, c.prefix, id)
}
