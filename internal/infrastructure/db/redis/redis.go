// Package redis wires the Redis instance backing contact-form deduplication.
// Redis is a soft dependency of the running service: dedup lookups that fail
// are treated as "not a duplicate" so submissions keep working through an
// outage. Startup still requires a reachable instance.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultAddr = "localhost:6379"
	pingTimeout = 5 * time.Second
)

// Config selects the Redis instance. An empty Addr falls back to the local
// default, matching the configuration layer's defaults.
type Config struct {
	Addr string
	DB   int
}

// Connect dials Redis and verifies the instance answers a ping before the
// client is handed out.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	addr := cfg.Addr
	if addr == "" {
		addr = defaultAddr
	}

	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis at %s: %w", addr, err)
	}

	return client, nil
}
