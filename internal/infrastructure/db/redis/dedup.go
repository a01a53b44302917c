package redis

import (
	"context"
	"crypto/sha256"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const dedupTTL = time.Hour

// ContactDeduper suppresses repeated contact form submissions backed by
// Redis. Key format: contact:<email>:<sha256(message)>
type ContactDeduper struct {
	client *redis.Client
}

// NewContactDeduper creates a ContactDeduper wrapping the given Redis client.
func NewContactDeduper(client *redis.Client) *ContactDeduper {
	return &ContactDeduper{client: client}
}

// IsDuplicate reports whether this exact submission was seen within the TTL.
func (d *ContactDeduper) IsDuplicate(ctx context.Context, email, message string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(email, message)).Result()
	if err != nil {
		return false, fmt.Errorf("dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records that this submission has been stored (expires after dedupTTL).
func (d *ContactDeduper) Mark(ctx context.Context, email, message string) error {
	return d.client.Set(ctx, d.key(email, message), "1", dedupTTL).Err()
}

func (d *ContactDeduper) key(email, message string) string {
	digest := sha256.Sum256([]byte(message))
	return fmt.Sprintf("contact:%s:%x", email, digest[:8])
}
