// Package cache is the in-memory response cache for compiled grid answers.
// Results only change when the dataset is reloaded, so entries carry a long
// TTL and an ETag for conditional requests.
package cache

import (
	"crypto/md5"
	"fmt"
	"sync"
	"time"
)

// TTLGridResults is how long a compiled grid response stays valid.
const TTLGridResults = 1 * time.Hour

const evictInterval = 5 * time.Minute

type entry struct {
	body    []byte
	etag    string
	expires time.Time
}

// Stats is a point-in-time snapshot of cache occupancy.
type Stats struct {
	Enabled bool `json:"enabled"`
	Total   int  `json:"total_keys"`
	Active  int  `json:"active_keys"`
	Expired int  `json:"expired_keys"`
}

// Cache stores ETagged response bodies keyed by request parameters. A
// disabled cache never stores or returns entries but still computes ETags,
// so handlers answer conditional requests the same way either mode.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]entry
	enabled bool
}

// New builds a cache and, when enabled, starts its eviction loop.
func New(enabled bool) *Cache {
	c := &Cache{
		entries: make(map[string]entry),
		enabled: enabled,
	}
	if enabled {
		go c.evictLoop()
	}
	return c
}

// Get returns the stored body and ETag for key, if present and fresh.
func (c *Cache) Get(key string) (body []byte, etag string, ok bool) {
	if !c.enabled {
		return nil, "", false
	}
	c.mu.RLock()
	e, found := c.entries[key]
	c.mu.RUnlock()
	if !found || time.Now().After(e.expires) {
		return nil, "", false
	}
	return e.body, e.etag, true
}

// Set stores body under key for ttl and returns the body's ETag.
func (c *Cache) Set(key string, body []byte, ttl time.Duration) string {
	etag := ComputeETag(body)
	if !c.enabled {
		return etag
	}
	c.mu.Lock()
	c.entries[key] = entry{body: body, etag: etag, expires: time.Now().Add(ttl)}
	c.mu.Unlock()
	return etag
}

// Snapshot reports current occupancy for the health endpoint.
func (c *Cache) Snapshot() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	now := time.Now()
	s := Stats{Enabled: c.enabled, Total: len(c.entries)}
	for _, e := range c.entries {
		if now.Before(e.expires) {
			s.Active++
		}
	}
	s.Expired = s.Total - s.Active
	return s
}

func (c *Cache) evictLoop() {
	ticker := time.NewTicker(evictInterval)
	defer ticker.Stop()
	for range ticker.C {
		c.evict()
	}
}

func (c *Cache) evict() {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := time.Now()
	for key, e := range c.entries {
		if now.After(e.expires) {
			delete(c.entries, key)
		}
	}
}

// ComputeETag derives a weak ETag from a response body.
func ComputeETag(body []byte) string {
	sum := md5.Sum(body)
	return fmt.Sprintf(`W/"%x"`, sum[:8])
}

// CheckETagMatch reports whether an If-None-Match header matches etag.
func CheckETagMatch(ifNoneMatch, etag string) bool {
	if ifNoneMatch == "" {
		return false
	}
	return ifNoneMatch == "*" || ifNoneMatch == etag
}
