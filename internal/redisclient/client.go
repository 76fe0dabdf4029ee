package redisclient

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Client caches rendered report text keyed by report name
type Client struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewClient creates a new Redis-backed report cache
func NewClient(addr, password string, db int, ttl time.Duration) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &Client{rdb: rdb, ttl: ttl}, nil
}

// GetClient returns the underlying Redis client
func (c *Client) GetClient() *redis.Client {
	return c.rdb
}

// Close closes the Redis connection
func (c *Client) Close() error {
	return c.rdb.Close()
}

// GetReport fetches a cached rendering of a report.
// The second return is false when no fresh rendering exists.
func (c *Client) GetReport(ctx context.Context, name string) (string, bool, error) {
	body, err := c.rdb.Get(ctx, reportKey(name)).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read cached report %s: %w", name, err)
	}
	return body, true, nil
}

// SetReport stores a rendered report with the configured TTL
func (c *Client) SetReport(ctx context.Context, name, body string) error {
	if err := c.rdb.Set(ctx, reportKey(name), body, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache report %s: %w", name, err)
	}
	return nil
}

// InvalidateReport drops a cached rendering
func (c *Client) InvalidateReport(ctx context.Context, name string) error {
	return c.rdb.Del(ctx, reportKey(name)).Err()
}

func reportKey(name string) string {
	return fmt.Sprintf("report:%s", name)
}
