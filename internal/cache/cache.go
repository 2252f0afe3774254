// Package cache holds the per-engine voice lists with a fixed freshness
// window. It is the only mutable shared state in the service.
package cache

import (
	"sync"
	"time"

	"github.com/openvoicekit/voicecatalog/domain/entities"
)

// FreshnessWindow is how long a fetched voice list stays valid. Stale
// entries are treated as misses and superseded by the next Put; they are
// never deleted explicitly.
const FreshnessWindow = 24 * time.Hour

type entry struct {
	voices    []entities.Voice
	fetchedAt time.Time
}

// Cache is a time-windowed store of normalized voice lists, one entry per
// engine. Entries are replaced wholesale, so a concurrent Get observes
// either the old complete list or the new one, never a partial write.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]entry
	now     func() time.Time
}

// New creates an empty cache.
func New() *Cache {
	return NewWithClock(time.Now)
}

// NewWithClock creates a cache with an injectable clock for tests.
func NewWithClock(now func() time.Time) *Cache {
	return &Cache{
		entries: make(map[string]entry),
		now:     now,
	}
}

// Get returns the cached voices for an engine. The second return value is
// false when no entry exists or the entry has aged past the freshness
// window.
func (c *Cache) Get(engine string) ([]entities.Voice, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[engine]
	if !ok {
		return nil, false
	}
	if c.now().Sub(e.fetchedAt) >= FreshnessWindow {
		return nil, false
	}
	return e.voices, true
}

// Put stores the voices for an engine, replacing any prior entry.
func (c *Cache) Put(engine string, voices []entities.Voice) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[engine] = entry{
		voices:    voices,
		fetchedAt: c.now(),
	}
}
