package calculation

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"

	json "github.com/goccy/go-json"
	"github.com/propgo/roadmap-engine/internal/domain"
)

// Fingerprint hashes the canonical JSON encoding of a request.
// Map keys are encoded in sorted order so equal requests hash equally.
func Fingerprint(req *domain.ProjectionRequest) (string, error) {
	data, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("fingerprint request: %w", err)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

// Cache keeps the last successful projection keyed by request fingerprint
type Cache struct {
	mu     sync.Mutex
	key    string
	result *domain.Projection
}

// NewCache creates an empty single-slot cache
func NewCache() *Cache {
	return &Cache{}
}

// Get returns the cached projection when key matches the last stored one
func (c *Cache) Get(key string) (*domain.Projection, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.result == nil || c.key != key {
		return nil, false
	}
	return c.result, true
}

// Put replaces the cached slot
func (c *Cache) Put(key string, result *domain.Projection) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.key = key
	c.result = result
}

// Reset empties the cache
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.key = ""
	c.result = nil
}
