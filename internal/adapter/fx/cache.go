package fx

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

type cacheEntry struct {
	rate     decimal.Decimal
	storedAt time.Time
}

// Cache is a process-wide last-writer-wins rate cache with a time-based
// validity window. Concurrent writers racing to repopulate the same key
// are harmless.
type Cache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]cacheEntry
	now     func() time.Time
}

func NewCache(ttl time.Duration) *Cache {
	return &Cache{
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
		now:     time.Now,
	}
}

func (c *Cache) Get(key string) (decimal.Decimal, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return decimal.Decimal{}, false
	}
	if c.now().Sub(entry.storedAt) >= c.ttl {
		return decimal.Decimal{}, false
	}
	return entry.rate, true
}

func (c *Cache) Set(key string, rate decimal.Decimal) {
	c.mu.Lock()
	c.entries[key] = cacheEntry{rate: rate, storedAt: c.now()}
	c.mu.Unlock()
}

func (c *Cache) Clear() {
	c.mu.Lock()
	c.entries = make(map[string]cacheEntry)
	c.mu.Unlock()
}
