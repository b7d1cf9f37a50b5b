package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrymomot/rescache/pkg/cache"
)

// CacheMetrics holds the Prometheus collectors shared by every resource
// cache registered on one registry. Each cache is told apart by the
// "cache" label.
type CacheMetrics struct {
	hits      *prometheus.CounterVec
	misses    *prometheus.CounterVec
	evictions *prometheus.CounterVec
	entries   *prometheus.GaugeVec
}

// NewCacheMetrics creates the cache collectors and registers them on reg.
// Collectors already registered on reg by an earlier call are reused.
func NewCacheMetrics(reg prometheus.Registerer) (*CacheMetrics, error) {
	m := &CacheMetrics{
		hits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "rescache_cache_hits_total",
			Help: "Total number of cache lookups that found an entry",
		}, []string{"cache"}),

		misses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "rescache_cache_misses_total",
			Help: "Total number of cache lookups that found nothing",
		}, []string{"cache"}),

		evictions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "rescache_cache_evictions_total",
			Help: "Total number of entries evicted by the LRU policy",
		}, []string{"cache"}),

		entries: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "rescache_cache_entries",
			Help: "Number of entries currently cached",
		}, []string{"cache"}),
	}

	var err error
	if m.hits, err = register(reg, m.hits); err != nil {
		return nil, err
	}
	if m.misses, err = register(reg, m.misses); err != nil {
		return nil, err
	}
	if m.evictions, err = register(reg, m.evictions); err != nil {
		return nil, err
	}
	if m.entries, err = register(reg, m.entries); err != nil {
		return nil, err
	}

	return m, nil
}

// For returns a cache.Metrics recording under the given cache name.
func (m *CacheMetrics) For(name string) cache.Metrics {
	return &cacheObserver{
		hits:      m.hits.WithLabelValues(name),
		misses:    m.misses.WithLabelValues(name),
		evictions: m.evictions.WithLabelValues(name),
		entries:   m.entries.WithLabelValues(name),
	}
}

// cacheObserver binds the label once so the hot path does no label lookups.
type cacheObserver struct {
	hits      prometheus.Counter
	misses    prometheus.Counter
	evictions prometheus.Counter
	entries   prometheus.Gauge
}

func (o *cacheObserver) Hit()          { o.hits.Inc() }
func (o *cacheObserver) Miss()         { o.misses.Inc() }
func (o *cacheObserver) Evicted()      { o.evictions.Inc() }
func (o *cacheObserver) Entries(n int) { o.entries.Set(float64(n)) }
