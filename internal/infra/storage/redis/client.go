// Package redis implements the listener's shared state on Redis.
package redis

import (
	"context"
	"time"

	redis "github.com/redis/go-redis/v9"
)

// config holds optional settings for the client.
type config struct {
	seenTTL time.Duration
}

// Option configures the client.
type Option func(*config)

// WithSeenTTL sets how long a notified transaction is remembered.
// Default: 10 minutes.
func WithSeenTTL(d time.Duration) Option {
	return func(c *config) {
		c.seenTTL = d
	}
}

type client struct {
	conn    *redis.Client
	seenTTL time.Duration
}

func (c *client) Close() error {
	return c.conn.Close()
}

// NewClient connects to Redis and checks the connection with a PING.
func NewClient(ctx context.Context, addr, username, password string, db int, opts ...Option) (*client, error) {
	cfg := config{
		seenTTL: 10 * time.Minute,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	conn := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
		DB:       db,
	})

	if err := conn.Ping(ctx).Err(); err != nil {
		conn.Close()
		return nil, err
	}

	return &client{
		conn:    conn,
		seenTTL: cfg.seenTTL,
	}, nil
}
