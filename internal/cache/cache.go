package cache

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"surf-booking/internal/data/entity"
)

// FetchFunc loads fresh availability for one cache key.
type FetchFunc func(ctx context.Context) ([]entity.Slot, error)

type cacheEntry struct {
	slots     []entity.Slot
	expiresAt time.Time
}

// AvailabilityCache is a TTL cache of per-beach/per-date slot lists. Reads
// are lock-cheap; refreshes are single-flight per key so a burst of
// concurrent misses produces exactly one upstream fetch. Expired entries
// are treated as absent even before a sweep removes them.
type AvailabilityCache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
	group   singleflight.Group
	log     *zap.Logger

	now func() time.Time
}

func NewAvailabilityCache(log *zap.Logger) *AvailabilityCache {
	return &AvailabilityCache{
		entries: make(map[string]cacheEntry),
		log:     log.With(zap.String("component", "availability_cache")),
		now:     time.Now,
	}
}

// Key builds the cache key for a beach/date pair.
func Key(beach, date string) string {
	return beach + "|" + date
}

// Get returns the cached slots for key, or false when the entry is missing
// or past its expiration.
func (c *AvailabilityCache) Get(key string) ([]entity.Slot, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || !c.now().Before(entry.expiresAt) {
		return nil, false
	}
	return entry.slots, true
}

// Put stores slots under key with a fresh expiration.
func (c *AvailabilityCache) Put(key string, slots []entity.Slot, ttl time.Duration) {
	c.mu.Lock()
	c.entries[key] = cacheEntry{slots: slots, expiresAt: c.now().Add(ttl)}
	c.mu.Unlock()
}

// GetOrRefresh returns a valid cached entry, or fetches one. Concurrent
// callers for the same key share a single in-flight fetch. A failed fetch
// is never stored; the error reaches every waiter of that attempt and the
// next caller starts a fresh one.
func (c *AvailabilityCache) GetOrRefresh(ctx context.Context, key string, ttl time.Duration, fetch FetchFunc) ([]entity.Slot, error) {
	if slots, ok := c.Get(key); ok {
		return slots, nil
	}

	result, err, shared := c.group.Do(key, func() (any, error) {
		// A refresh may have landed while we queued for the flight.
		if slots, ok := c.Get(key); ok {
			return slots, nil
		}

		slots, err := fetch(ctx)
		if err != nil {
			return nil, err
		}

		c.Put(key, slots, ttl)
		return slots, nil
	})
	if err != nil {
		c.log.Warn("Availability refresh failed",
			zap.Error(err),
			zap.String("key", key),
			zap.Bool("shared", shared),
		)
		return nil, err
	}

	return result.([]entity.Slot), nil
}

// Invalidate removes an entry immediately.
func (c *AvailabilityCache) Invalidate(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

// Sweep removes expired entries and returns how many were dropped. Purely
// space reclamation; Get already ignores expired entries.
func (c *AvailabilityCache) Sweep() int {
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for key, entry := range c.entries {
		if !now.Before(entry.expiresAt) {
			delete(c.entries, key)
			removed++
		}
	}
	return removed
}

// Stats reports total and still-valid entry counts for diagnostics.
func (c *AvailabilityCache) Stats() (total, valid int) {
	now := c.now()

	c.mu.RLock()
	defer c.mu.RUnlock()

	total = len(c.entries)
	for _, entry := range c.entries {
		if now.Before(entry.expiresAt) {
			valid++
		}
	}
	return total, valid
}
