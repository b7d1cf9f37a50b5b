package cache

// Store is a backing policy for ResourceCache.
// Implementations must be safe for concurrent use.
type Store[K comparable, V any] interface {
	// Get returns the value for key. Only LRU stores update recency.
	Get(key K) (V, bool)
	// Put inserts or replaces a value and returns the previous one, if any.
	Put(key K, value V) (V, bool)
	// Remove deletes key and returns the removed value, if any.
	Remove(key K) (V, bool)
	// Keys returns a snapshot of the stored keys.
	Keys() []K
	// Len returns the number of stored entries.
	Len() int
	// Clear removes every entry.
	Clear()
	// Range calls fn for each entry from the oldest to the newest until fn returns false.
	Range(fn func(key K, value V) bool)
}

// Policy identifies the eviction behavior of a store.
type Policy string

const (
	// PolicyUnbounded never evicts.
	PolicyUnbounded Policy = "unbounded"
	// PolicyLRU evicts the least recently used entry once capacity is reached.
	PolicyLRU Policy = "lru"
)

func (p Policy) String() string { return string(p) }

// Metrics observes cache activity. All methods must be cheap and non-blocking.
type Metrics interface {
	Hit()
	Miss()
	Evicted()
	Entries(n int)
}

type nopMetrics struct{}

func (nopMetrics) Hit()        {}
func (nopMetrics) Miss()       {}
func (nopMetrics) Evicted()    {}
func (nopMetrics) Entries(int) {}

// NopMetrics returns a Metrics implementation that discards everything.
func NopMetrics() Metrics { return nopMetrics{} }
