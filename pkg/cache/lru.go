package cache

import (
	"fmt"
	"sync"

	"github.com/hashicorp/golang-lru/v2/simplelru"
)

// LRU is a bounded Store that evicts the least recently used entry.
// Both Get and Put mark an entry as recently used.
//
// It wraps simplelru, which is not safe for concurrent use, behind a single mutex.
type LRU[K comparable, V any] struct {
	capacity int
	items    *simplelru.LRU[K, V]
	mu       sync.Mutex
	onEvict  func() // only used for metrics, eviction stays silent to callers
}

// NewLRU creates a bounded store with the specified capacity.
// The capacity must be positive, otherwise it panics.
func NewLRU[K comparable, V any](capacity int) *LRU[K, V] {
	if capacity <= 0 {
		panic("cache: LRU capacity must be positive")
	}
	// No eviction callback: simplelru also fires it on Remove and Purge.
	items, err := simplelru.NewLRU[K, V](capacity, nil)
	if err != nil {
		panic(fmt.Sprintf("cache: create LRU: %v", err))
	}
	return &LRU[K, V]{
		capacity: capacity,
		items:    items,
	}
}

// Capacity returns the maximum number of entries.
func (c *LRU[K, V]) Capacity() int {
	return c.capacity
}

// Get retrieves a value and marks it as recently used.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.items.Get(key)
}

// Put adds or updates a value and returns the previous one.
// Admitting a new key into a full store evicts exactly one entry first.
func (c *LRU[K, V]) Put(key K, value V) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	old, existed := c.items.Peek(key)
	if evicted := c.items.Add(key, value); evicted && c.onEvict != nil {
		c.onEvict()
	}
	return old, existed
}

// Remove deletes key and returns its value.
func (c *LRU[K, V]) Remove(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	v, ok := c.items.Peek(key)
	if ok {
		c.items.Remove(key)
	}
	return v, ok
}

// Keys returns a snapshot ordered from most to least recently used.
func (c *LRU[K, V]) Keys() []K {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := c.items.Keys() // oldest first
	for i, j := 0, len(keys)-1; i < j; i, j = i+1, j-1 {
		keys[i], keys[j] = keys[j], keys[i]
	}
	return keys
}

// Len returns the number of cached entries.
func (c *LRU[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.items.Len()
}

// Clear removes all items without counting them as evictions.
func (c *LRU[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items.Purge()
}

// Range walks entries from least to most recently used without touching recency.
// fn runs under the store lock and must not call back into the store.
func (c *LRU[K, V]) Range(fn func(key K, value V) bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, key := range c.items.Keys() {
		v, ok := c.items.Peek(key)
		if !ok {
			continue
		}
		if !fn(key, v) {
			return
		}
	}
}

var _ Store[string, any] = (*LRU[string, any])(nil)
