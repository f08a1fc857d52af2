package dmgen

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache is the interface for caching read responses of the data modeling
// service. Implementations live in cache/memcache and cache/sqlcache; users
// may plug in their own (e.g., Redis, Memcached).
type Cache interface {
	// Get retrieves a value from the cache.
	// Returns nil, nil if the key doesn't exist.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value in the cache with an optional TTL.
	// If ttl is 0, the value should not expire.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value from the cache.
	Delete(ctx context.Context, key string) error

	// DeletePrefix removes all values with the given prefix.
	DeletePrefix(ctx context.Context, prefix string) error

	// Clear removes all values from the cache.
	Clear(ctx context.Context) error
}

// CacheKey generates a cache key for a read request.
type CacheKey struct {
	BaseURL   string
	Project   string
	Operation string // e.g., "list", "query", "byids"
	Body      []byte // Encoded request body
}

// Prefix returns the key prefix shared by all reads of a project on one
// platform. Writes invalidate the cache by deleting this prefix.
func (k CacheKey) Prefix() string {
	return "dms:" + k.BaseURL + "|" + k.Project + ":"
}

// String returns the string representation of the cache key.
func (k CacheKey) String() string {
	sum := sha256.Sum256(k.Body)
	return k.Prefix() + k.Operation + ":" + hex.EncodeToString(sum[:])
}
