// Package cache stores rendered documents so that repeated requests for the
// same sheet skip rendering.
//
// Keys come from [Key], which hashes every input that affects the output.
// [FileCache] keeps entries on disk and survives restarts; [NullCache]
// disables caching.
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with per-entry expiry.
type Cache interface {
	// Get returns the entry for key. A miss is (nil, false, nil).
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}
