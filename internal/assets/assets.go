// Package assets builds, encodes and loads the asset packs the simulation
// core consumes at global init.
package assets

import (
	"fmt"
	"os"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// Manager loads packs from blobs and files, keeping decoded packs so the
// same blob is only parsed once.
type Manager struct {
	cache *Cache
}

// NewManager creates a new pack manager.
func NewManager() *Manager {
	return &Manager{
		cache: NewCache(),
	}
}

// FromBlob decodes blob, or returns the pack decoded earlier from identical
// bytes. An empty blob selects the built-in pack.
func (m *Manager) FromBlob(blob []byte) (*Pack, error) {
	if len(blob) == 0 {
		return Default(), nil
	}

	key := xxhash.Sum64(blob)
	if p, ok := m.cache.Get(key); ok {
		return p, nil
	}

	p, err := Decode(blob)
	if err != nil {
		return nil, err
	}
	m.cache.Set(key, p)
	return p, nil
}

// Load reads and decodes the pack at path.
func (m *Manager) Load(path string) (*Pack, error) {
	blob, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading pack %s: %w", path, err)
	}
	p, err := m.FromBlob(blob)
	if err != nil {
		return nil, fmt.Errorf("loading pack %s: %w", path, err)
	}
	return p, nil
}

// Close drops every cached pack.
func (m *Manager) Close() {
	m.cache.Clear()
}

// Cache is a simple in-memory cache of decoded packs keyed by blob digest.
type Cache struct {
	data map[uint64]*Pack
	mu   sync.RWMutex

	// Stats
	hits   int
	misses int
}

// NewCache creates a new cache.
func NewCache() *Cache {
	return &Cache{
		data: make(map[uint64]*Pack),
	}
}

// Get retrieves a pack from cache.
func (c *Cache) Get(key uint64) (*Pack, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	p, ok := c.data[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return p, ok
}

// Set stores a pack in cache.
func (c *Cache) Set(key uint64, p *Pack) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = p
}

// Clear clears the cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = make(map[uint64]*Pack)
	c.hits = 0
	c.misses = 0
}

// Stats returns cache statistics.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}
