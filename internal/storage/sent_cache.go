// Package storage persists the set of article URLs already delivered,
// so consecutive cycles inside the duplicate window don't repeat them.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"
)

// SentArticle is one delivered article on disk.
type SentArticle struct {
	URL    string    `json:"url"`
	Title  string    `json:"title"`
	Domain string    `json:"domain"`
	SentAt time.Time `json:"sent_at"`
}

// SentCache is a TTL-bounded JSON file cache keyed by article URL (the
// deduplication identity used everywhere else).
type SentCache struct {
	filePath string
	ttl      time.Duration

	mu    sync.RWMutex
	items map[string]SentArticle
}

func NewSentCache(filePath string, ttl time.Duration) *SentCache {
	return &SentCache{
		filePath: filePath,
		ttl:      ttl,
		items:    make(map[string]SentArticle),
	}
}

// Load reads the cache from disk, dropping entries older than the TTL.
// A missing file is not an error.
func (c *SentCache) Load() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, err := os.ReadFile(c.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read sent cache: %w", err)
	}
	if len(data) == 0 {
		return nil
	}

	var items []SentArticle
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("parse sent cache: %w", err)
	}

	cutoff := time.Now().Add(-c.ttl)
	for _, item := range items {
		if item.SentAt.After(cutoff) {
			c.items[item.URL] = item
		}
	}
	return nil
}

// Save writes the current cache state to disk.
func (c *SentCache) Save() error {
	c.mu.RLock()
	items := make([]SentArticle, 0, len(c.items))
	cutoff := time.Now().Add(-c.ttl)
	for _, item := range c.items {
		if item.SentAt.After(cutoff) {
			items = append(items, item)
		}
	}
	c.mu.RUnlock()

	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal sent cache: %w", err)
	}
	if err := os.WriteFile(c.filePath, data, 0644); err != nil {
		return fmt.Errorf("write sent cache: %w", err)
	}
	return nil
}

// Seen reports whether the URL was delivered inside the TTL window.
func (c *SentCache) Seen(url string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	item, exists := c.items[url]
	if !exists {
		return false
	}
	return item.SentAt.After(time.Now().Add(-c.ttl))
}

// Mark records delivered articles.
func (c *SentCache) Mark(domain string, articles []SentArticle) {
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()
	for _, a := range articles {
		if a.URL == "" {
			continue
		}
		a.Domain = domain
		a.SentAt = now
		c.items[a.URL] = a
	}
}
