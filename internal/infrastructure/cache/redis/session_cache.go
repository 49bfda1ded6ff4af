package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/redis/go-redis/v9"

	"dropops/internal/infrastructure/metrics"
)

const keyPrefix = "dropops:session:"

// SessionCache keeps validated session token hashes with their wallet.
type SessionCache struct {
	rdb *redis.Client
}

// NewSessionCache connects to url and retries the first ping a few times.
func NewSessionCache(ctx context.Context, url string) (*SessionCache, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	rdb := redis.NewClient(opts)

	err = retry.Do(func() error {
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		return rdb.Ping(pingCtx).Err()
	},
		retry.Attempts(3),
		retry.Delay(500*time.Millisecond),
		retry.LastErrorOnly(true),
		retry.Context(ctx),
	)
	if err != nil {
		rdb.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &SessionCache{rdb: rdb}, nil
}

// NewWithClient wraps an existing client.
func NewWithClient(rdb *redis.Client) *SessionCache {
	return &SessionCache{rdb: rdb}
}

func (c *SessionCache) Close() error {
	return c.rdb.Close()
}

func key(tokenHash string) string {
	return keyPrefix + tokenHash
}

func (c *SessionCache) Get(ctx context.Context, tokenHash string) (string, bool, error) {
	wallet, err := c.rdb.Get(ctx, key(tokenHash)).Result()
	if errors.Is(err, redis.Nil) {
		metrics.SessionCache.WithLabelValues("miss").Inc()
		return "", false, nil
	}
	if err != nil {
		metrics.SessionCache.WithLabelValues("error").Inc()
		return "", false, err
	}
	metrics.SessionCache.WithLabelValues("hit").Inc()
	return wallet, true, nil
}

func (c *SessionCache) Set(ctx context.Context, tokenHash, walletAddress string, ttl time.Duration) error {
	return c.rdb.Set(ctx, key(tokenHash), walletAddress, ttl).Err()
}

func (c *SessionCache) Delete(ctx context.Context, tokenHash string) error {
	return c.rdb.Del(ctx, key(tokenHash)).Err()
}
