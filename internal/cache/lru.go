// Package cache provides caching utilities for query results.
package cache

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/usestring/boredq/pkg/client"
)

// ResultCache provides thread-safe LRU caching of successful key lookups.
// A cache created with maxItems <= 0 is disabled: Get always misses and Put
// is a no-op.
type ResultCache struct {
	cache *lru.Cache[string, *client.Result]
}

// NewResultCache creates a new LRU cache with the specified maximum number of items.
func NewResultCache(maxItems int) (*ResultCache, error) {
	if maxItems <= 0 {
		return &ResultCache{}, nil
	}
	c, err := lru.New[string, *client.Result](maxItems)
	if err != nil {
		return nil, err
	}
	return &ResultCache{cache: c}, nil
}

// Get retrieves the result cached for an activity key.
func (c *ResultCache) Get(key string) (*client.Result, bool) {
	if c == nil || c.cache == nil {
		return nil, false
	}
	return c.cache.Get(key)
}

// Put adds or updates the result for an activity key.
func (c *ResultCache) Put(key string, res *client.Result) {
	if c == nil || c.cache == nil {
		return
	}
	c.cache.Add(key, res)
}

// Purge drops every cached result.
func (c *ResultCache) Purge() {
	if c == nil || c.cache == nil {
		return
	}
	c.cache.Purge()
}

// Len returns the current number of items in the cache.
func (c *ResultCache) Len() int {
	if c == nil || c.cache == nil {
		return 0
	}
	return c.cache.Len()
}
