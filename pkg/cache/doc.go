// Package cache provides a generic, thread-safe resource cache with a
// pluggable eviction policy selected once at initialization.
//
// Two stores back the cache:
//
//   - [Unbounded] never evicts and keeps entries in write order
//   - [LRU] holds at most a fixed number of entries and evicts the least
//     recently used one when a new key is admitted into a full store
//
// # Usage
//
// A [ResourceCache] starts unbounded. Initialize selects the final policy,
// usually from configuration:
//
//	c := cache.New[string, *Template]()
//	if err := c.Initialize(cfg.Cache.Size, log); err != nil {
//		// Initialize was already called
//	}
//
//	c.Put("layout.html", tpl)
//	if tpl, ok := c.Get("layout.html"); ok {
//		// Use tpl
//	}
//
// A capacity of zero or less keeps the unbounded store. A positive capacity
// moves every existing entry into a new LRU store, oldest write first, so
// when there are more entries than capacity the most recent writes survive.
// Initialize may only be called once; later calls return [ErrAlreadyInitialized].
//
// # Recency
//
// Under the LRU policy both Get and Put mark an entry as recently used.
// Eviction is silent: exactly one entry is dropped per new key admitted
// into a full store and callers are not notified. The unbounded store never
// reorders entries on Get.
//
// # Thread Safety
//
// Every store serializes access to its internal structures with a single
// lock. Keys returns a snapshot copied under that lock, so iterating it can
// never observe a torn read or race with writers.
//
// # Metrics
//
// Pass [WithMetrics] to observe hits, misses, evictions and entry counts.
// The pkg/metrics package provides a Prometheus implementation.
package cache
