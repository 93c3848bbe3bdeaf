// Package repository defines the interfaces for external storage collaborators.
package repository

import (
	"context"
	"time"

	"dispatch/internal/domain/entity"
	"dispatch/internal/errors"
)

// ErrCacheMiss is returned by Get when no live entry exists for the key.
var ErrCacheMiss = errors.New("optimize result not cached")

// ResultCache is the shared key-value store holding memoized optimization
// results. Keys are request fingerprints; values are full serialized
// responses with a bounded lifetime. Reads and writes are independent,
// idempotent operations; the cache is the engine's only I/O boundary.
type ResultCache interface {
	// Get returns the cached response for key, or ErrCacheMiss when the
	// entry is absent or expired. Any other error means the cache itself
	// failed.
	Get(ctx context.Context, key string) (*entity.OptimizeResponse, error)

	// Set stores the response under key for the given lifetime,
	// overwriting any previous entry.
	Set(ctx context.Context, key string, res *entity.OptimizeResponse, ttl time.Duration) error
}
