package caching

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

const defaultMemoryEntries = 128

type memoryEntry struct {
	data     []byte
	storedAt time.Time
}

// Cache stores fetched page bodies keyed by URL. An in-memory LRU sits in
// front of the on-disk store; both honour the same TTL.
type Cache struct {
	path   string
	ttl    time.Duration
	memory *lru.Cache[string, memoryEntry]
}

// NewCache creates a new Cache instance.
// The cache path will be created if it doesn't exist. An empty path keeps the
// cache in memory only.
func NewCache(path string, ttl time.Duration) (*Cache, error) {
	if path != "" {
		if err := os.MkdirAll(path, 0755); err != nil {
			return nil, fmt.Errorf("failed to create cache directory: %w", err)
		}
	}
	memory, err := lru.New[string, memoryEntry](defaultMemoryEntries)
	if err != nil {
		return nil, fmt.Errorf("failed to create memory cache: %w", err)
	}
	return &Cache{
		path:   path,
		ttl:    ttl,
		memory: memory,
	}, nil
}

// key generates a SHA256 hash of the URL to use as a filename.
func (c *Cache) key(url string) string {
	hash := sha256.Sum256([]byte(url))
	return fmt.Sprintf("%x", hash)
}

func (c *Cache) expired(storedAt time.Time) bool {
	return c.ttl > 0 && time.Since(storedAt) > c.ttl
}

// Get retrieves an item from the cache.
// It returns the data and true if the item is found and not expired.
// Otherwise, it returns nil and false.
func (c *Cache) Get(url string) ([]byte, bool) {
	if entry, ok := c.memory.Get(url); ok {
		if !c.expired(entry.storedAt) {
			return entry.data, true
		}
		c.memory.Remove(url)
	}
	if c.path == "" {
		return nil, false
	}

	filePath := filepath.Join(c.path, c.key(url))

	info, err := os.Stat(filePath)
	if err != nil {
		return nil, false // Cache miss
	}

	if c.expired(info.ModTime()) {
		return nil, false // Cache miss (expired)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, false // Cache miss (read error)
	}

	c.memory.Add(url, memoryEntry{data: data, storedAt: info.ModTime()})
	return data, true // Cache hit
}

// Set adds an item to the cache.
func (c *Cache) Set(url string, data []byte) error {
	c.memory.Add(url, memoryEntry{data: data, storedAt: time.Now()})
	if c.path == "" {
		return nil
	}

	filePath := filepath.Join(c.path, c.key(url))
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write to cache: %w", err)
	}
	return nil
}
