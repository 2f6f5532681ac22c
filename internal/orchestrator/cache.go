package orchestrator

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sync"

	"golang.org/x/crypto/blake2b"

	"unify/internal/framework"
	"unify/pkg/platform/sentinel"
)

// Cache stores per-category generation results keyed by the category and the
// resolved selection fingerprint. Entries are immutable: the same key always
// maps to the same deterministic result, so invalidation is implicit - a
// different selection produces a different key.
type Cache interface {
	Get(ctx context.Context, key string) (*CategoryResult, error)
	Set(ctx context.Context, key string, result *CategoryResult) error
}

// CacheKey fingerprints one (category, active selection) pair. The canonical
// selection key feeds the hash, so logically equal selections share entries
// regardless of how the caller spelled them.
func CacheKey(categoryID string, active framework.ActiveSet) string {
	sum := blake2b.Sum256([]byte(categoryID + "\x00" + active.Key()))
	return hex.EncodeToString(sum[:])
}

// MemoryCache is a process-local Cache. Entries are stored as JSON so Get
// hands out copies, never shared pointers.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string][]byte)}
}

func (c *MemoryCache) Get(_ context.Context, key string) (*CategoryResult, error) {
	c.mu.RLock()
	raw, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return nil, sentinel.ErrNotFound
	}

	var result CategoryResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("decode cached result: %w", err)
	}
	return &result, nil
}

func (c *MemoryCache) Set(_ context.Context, key string, result *CategoryResult) error {
	raw, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}

	c.mu.Lock()
	c.entries[key] = raw
	c.mu.Unlock()
	return nil
}
