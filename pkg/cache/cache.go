package cache

import (
	"log/slog"
	"sync"

	"github.com/dmitrymomot/rescache/pkg/logger"
)

// DefaultCapacity is the capacity used when configuration does not provide one.
const DefaultCapacity = 89

// Option configures a ResourceCache.
type Option func(*options)

type options struct {
	metrics Metrics
}

// WithMetrics attaches a metrics observer. Nil values are ignored.
func WithMetrics(m Metrics) Option {
	return func(o *options) {
		if m != nil {
			o.metrics = m
		}
	}
}

// ResourceCache maps keys to cached artifacts under an unbounded or LRU policy.
//
// A new ResourceCache is unbounded. Call Initialize exactly once, before the
// cache is shared between goroutines, to select the final policy. After that
// Get, Put, Remove and Keys are safe for concurrent use without external locking.
type ResourceCache[K comparable, V any] struct {
	mu          sync.RWMutex // guards store replacement only
	store       Store[K, V]
	policy      Policy
	capacity    int
	initialized bool
	metrics     Metrics
}

// New creates an unbounded ResourceCache.
func New[K comparable, V any](opts ...Option) *ResourceCache[K, V] {
	o := options{metrics: NopMetrics()}
	for _, opt := range opts {
		opt(&o)
	}
	return &ResourceCache[K, V]{
		store:   NewUnbounded[K, V](),
		policy:  PolicyUnbounded,
		metrics: o.metrics,
	}
}

// Initialize selects the backing policy. A capacity <= 0 keeps the unbounded
// store. A positive capacity switches to an LRU store and migrates existing
// entries oldest write first, so on overflow the newest writes are kept.
//
// It logs one informational record to log (nil discards it) and returns
// ErrAlreadyInitialized on any call after the first.
func (c *ResourceCache[K, V]) Initialize(capacity int, log *slog.Logger) error {
	if log == nil {
		log = logger.Discard()
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return ErrAlreadyInitialized
	}
	c.initialized = true

	migrated := 0
	if capacity > 0 {
		lru := NewLRU[K, V](capacity)
		lru.onEvict = c.metrics.Evicted
		c.store.Range(func(key K, value V) bool {
			lru.Put(key, value)
			migrated++
			return true
		})
		c.store = lru
		c.policy = PolicyLRU
		c.capacity = capacity
	}
	c.metrics.Entries(c.store.Len())

	log.Info("resource cache initialized",
		logger.Component("resource_cache"),
		logger.Policy(c.policy.String()),
		logger.Capacity(c.capacity),
		slog.Int("migrated", migrated),
	)
	return nil
}

// Get returns the artifact stored under key.
func (c *ResourceCache[K, V]) Get(key K) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	v, ok := c.store.Get(key)
	if ok {
		c.metrics.Hit()
	} else {
		c.metrics.Miss()
	}
	return v, ok
}

// Put stores an artifact and returns the one it replaced, if any.
func (c *ResourceCache[K, V]) Put(key K, value V) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	old, ok := c.store.Put(key, value)
	c.metrics.Entries(c.store.Len())
	return old, ok
}

// Remove deletes key and returns the removed artifact, if any.
func (c *ResourceCache[K, V]) Remove(key K) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	v, ok := c.store.Remove(key)
	if ok {
		c.metrics.Entries(c.store.Len())
	}
	return v, ok
}

// Keys returns a stable snapshot of the cached keys. Later changes to the
// cache are not reflected in the returned slice.
func (c *ResourceCache[K, V]) Keys() []K {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.store.Keys()
}

// Len returns the number of cached entries.
func (c *ResourceCache[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.store.Len()
}

// Clear drops every entry. The policy is kept.
func (c *ResourceCache[K, V]) Clear() {
	c.mu.RLock()
	defer c.mu.RUnlock()

	c.store.Clear()
	c.metrics.Entries(0)
}

// Policy reports the active backing policy.
func (c *ResourceCache[K, V]) Policy() Policy {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.policy
}

// Capacity returns the LRU capacity, or 0 for an unbounded cache.
func (c *ResourceCache[K, V]) Capacity() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.capacity
}
