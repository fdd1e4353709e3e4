// Package cache keeps finished item classifications in memory so repeated
// overlay refreshes skip the decision chain.
package cache

import (
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/rethesda/soulsy/internal/domain"
)

// SchemaVersion is the current version of the cached entry layout.
// Increment this when domain.Classification changes to drop old entries.
const SchemaVersion = "1.0"

// Config holds cache sizing.
type Config struct {
	Size int
	TTL  time.Duration
}

// DefaultConfig returns the sizing used when nothing is configured.
func DefaultConfig() Config {
	return Config{Size: 1000, TTL: 5 * time.Minute}
}

// Stats reports cache effectiveness.
type Stats struct {
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
	Size   int   `json:"size"`
}

type cachedEntry struct {
	Version        string
	Classification domain.Classification
	CachedAt       time.Time
}

// EntryCache is an LRU of classifications keyed by form spec, with
// time-based expiry and version-based invalidation.
type EntryCache struct {
	lru    *expirable.LRU[string, *cachedEntry]
	hits   atomic.Int64
	misses atomic.Int64
}

// New creates a cache. Non-positive values fall back to DefaultConfig.
func New(cfg Config) *EntryCache {
	def := DefaultConfig()
	if cfg.Size <= 0 {
		cfg.Size = def.Size
	}
	if cfg.TTL <= 0 {
		cfg.TTL = def.TTL
	}
	return &EntryCache{
		lru: expirable.NewLRU[string, *cachedEntry](cfg.Size, nil, cfg.TTL),
	}
}

// Get returns the cached classification for spec. Entries written under an
// older schema version are removed and reported as misses.
func (c *EntryCache) Get(spec string) (domain.Classification, bool) {
	entry, found := c.lru.Get(spec)
	if !found {
		c.misses.Add(1)
		return domain.Classification{}, false
	}

	if entry.Version != SchemaVersion {
		c.lru.Remove(spec)
		c.misses.Add(1)
		return domain.Classification{}, false
	}

	c.hits.Add(1)
	return entry.Classification, true
}

// Set stores a classification under the current schema version.
func (c *EntryCache) Set(spec string, classification domain.Classification) {
	c.lru.Add(spec, &cachedEntry{
		Version:        SchemaVersion,
		Classification: classification,
		CachedAt:       time.Now(),
	})
}

// Invalidate removes one form. Used when a form's record is reloaded.
func (c *EntryCache) Invalidate(spec string) {
	c.lru.Remove(spec)
}

// Clear removes all entries.
func (c *EntryCache) Clear() {
	c.lru.Purge()
}

// GetStats returns hit and miss counts plus the current size.
func (c *EntryCache) GetStats() Stats {
	return Stats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
		Size:   c.lru.Len(),
	}
}
