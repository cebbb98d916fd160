package cache

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned when a key is absent or expired.
var ErrCacheMiss = errors.New("cache miss")

// DefaultTTL applies to search and product-detail entries.
const DefaultTTL = 86400 * time.Second

// Cache is a string-keyed store with per-key expiry. Structured values are
// JSON-encoded on write; Get returns the stored text and callers decode it.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Exists(ctx context.Context, key string) (bool, error)
	Delete(ctx context.Context, key string) error
	Close() error
}
