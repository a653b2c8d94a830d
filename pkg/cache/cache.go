// Package cache provides content-addressed caching of AR quiver build
// results.
//
// Building an AR quiver enumerates paths for every ordered vertex pair,
// which is exponential in the worst case, so the CLI caches serialized
// results keyed by a hash of the quiver definition and build options.
// Two backends are provided:
//   - FileCache: directory-based storage for CLI usage
//   - NullCache: no-op backend for --no-cache runs and tests
package cache

import (
	"context"
	"time"
)

// Cache is the interface for cache backends.
type Cache interface {
	// Get retrieves a value. The second return value reports whether the
	// key was present; a miss is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of zero means the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}
