package cache

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"dispatch/internal/domain/entity"
	"dispatch/internal/domain/repository"
	"dispatch/internal/errors"
)

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// MemoryResultCache is a mutex-guarded TTL map used for local runs and
// tests. Expired entries are evicted lazily on read.
type MemoryResultCache struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemoryResultCache creates an empty in-memory ResultCache.
func NewMemoryResultCache() *MemoryResultCache {
	return &MemoryResultCache{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (c *MemoryResultCache) Get(_ context.Context, key string) (*entity.OptimizeResponse, error) {
	c.mu.Lock()
	entry, ok := c.entries[key]
	if ok && c.now().After(entry.expiresAt) {
		delete(c.entries, key)
		ok = false
	}
	c.mu.Unlock()

	if !ok {
		return nil, repository.ErrCacheMiss
	}

	var res entity.OptimizeResponse
	if err := json.Unmarshal(entry.data, &res); err != nil {
		return nil, errors.Wrapf(err, "decode cached result %q", key)
	}

	return &res, nil
}

func (c *MemoryResultCache) Set(_ context.Context, key string, res *entity.OptimizeResponse, ttl time.Duration) error {
	data, err := json.Marshal(res)
	if err != nil {
		return errors.Wrapf(err, "encode result %q", key)
	}

	c.mu.Lock()
	c.entries[key] = memoryEntry{
		data:      data,
		expiresAt: c.now().Add(ttl),
	}
	c.mu.Unlock()

	return nil
}
