package ratelimit

import (
	"context"
	"fmt"
	"time"

	redis "github.com/redis/go-redis/v9"
)

// Manager provides Redis-backed per-client rate limiting. Counters live
// in fixed one-minute windows so all instances behind a load balancer
// share the same budget.
type Manager struct {
	redis *redis.Client
}

// NewManager connects to Redis and verifies the connection
func NewManager(redisURL string) (*Manager, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return &Manager{redis: client}, nil
}

// NewManagerWithClient wraps an existing client; used by tests
func NewManagerWithClient(client *redis.Client) *Manager {
	return &Manager{redis: client}
}

func (m *Manager) Close() error { return m.redis.Close() }

// CheckRate counts a request against the client's current minute window.
// It returns allowed=false once the window exceeds rpm, along with the
// seconds until the window resets.
func (m *Manager) CheckRate(ctx context.Context, clientID string, rpm int) (allowed bool, resetSec int, err error) {
	now := time.Now().UTC()
	window := now.Unix() / 60
	key := fmt.Sprintf("rl:%s:%d", clientID, window)

	pipe := m.redis.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, time.Minute)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, 0, err
	}

	if int(incr.Val()) > rpm {
		secPassed := int(now.Unix() % 60)
		return false, 60 - secPassed, nil
	}
	return true, 0, nil
}

// Usage returns the number of requests the client has made in the
// current minute window
func (m *Manager) Usage(ctx context.Context, clientID string) (int, error) {
	window := time.Now().UTC().Unix() / 60
	key := fmt.Sprintf("rl:%s:%d", clientID, window)

	val, err := m.redis.Get(ctx, key).Int()
	if err == redis.Nil {
		return 0, nil
	}
	return val, err
}

// Health checks Redis connectivity
func (m *Manager) Health(ctx context.Context) error {
	return m.redis.Ping(ctx).Err()
}
