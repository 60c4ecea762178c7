package redis

import (
	"context"
	"crypto/sha256"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const dedupTTL = time.Hour

// SubmissionDeduper rejects repeated contact-form submissions backed by
// Redis. Key format: contact:dedup:<sha256(email|body)>
type SubmissionDeduper struct {
	client *redis.Client
}

// NewSubmissionDeduper creates a SubmissionDeduper wrapping the given Redis client.
func NewSubmissionDeduper(client *redis.Client) *SubmissionDeduper {
	return &SubmissionDeduper{client: client}
}

// IsDuplicate reports whether this exact submission was seen within the TTL.
func (d *SubmissionDeduper) IsDuplicate(ctx context.Context, email, body string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(email, body)).Result()
	if err != nil {
		return false, fmt.Errorf("dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records that this submission was accepted (expires after dedupTTL).
func (d *SubmissionDeduper) Mark(ctx context.Context, email, body string) error {
	return d.client.Set(ctx, d.key(email, body), "1", dedupTTL).Err()
}

func (d *SubmissionDeduper) key(email, body string) string {
	sum := sha256.Sum256([]byte(email + "|" + body))
	return fmt.Sprintf("contact:dedup:%x", sum)
}
