package cache

import (
	"context"
	"time"
)

// Cache is the contract for the read-through cache layer used by
// repositories. Implementations must be safe for concurrent use.
type Cache interface {
	// Get reads a key and unmarshals it into dest.
	// found=false means cache miss; dest is left untouched.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores value under key with a TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes one or more keys.
	Delete(ctx context.Context, keys ...string) error

	// DeletePattern removes every key matching a glob pattern,
	// e.g. "projects:*" after a project mutation.
	DeletePattern(ctx context.Context, pattern string) error

	// Ping verifies the connection.
	Ping(ctx context.Context) error
}
