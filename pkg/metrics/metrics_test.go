package metrics_test

import (
	"reflect"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rescache/pkg/cache"
	"github.com/dmitrymomot/rescache/pkg/insertion"
	"github.com/dmitrymomot/rescache/pkg/metrics"
)

// sample returns the value of the named metric whose labels match exactly.
func sample(t *testing.T, reg *prometheus.Registry, name string, labels map[string]string) float64 {
	t.Helper()

	mfs, err := reg.Gather()
	require.NoError(t, err)

	for _, mf := range mfs {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			got := map[string]string{}
			for _, lp := range m.GetLabel() {
				got[lp.GetName()] = lp.GetValue()
			}
			if !reflect.DeepEqual(got, labels) {
				continue
			}
			if c := m.GetCounter(); c != nil {
				return c.GetValue()
			}
			return m.GetGauge().GetValue()
		}
	}
	t.Fatalf("metric %s%v not found", name, labels)
	return 0
}

type box struct{ v any }

func (b *box) Put(v any) { b.v = v }

func TestCacheMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := metrics.NewCacheMetrics(reg)
	require.NoError(t, err)

	c := cache.New[string, int](cache.WithMetrics(m.For("templates")))
	require.NoError(t, c.Initialize(2, nil))

	c.Put("a", 1)
	c.Put("b", 2)
	c.Get("a")
	c.Get("missing")
	c.Put("c", 3)

	other := cache.New[string, int](cache.WithMetrics(m.For("schemas")))
	other.Get("x")

	labels := map[string]string{"cache": "templates"}
	assert.Equal(t, 1.0, sample(t, reg, "rescache_cache_hits_total", labels))
	assert.Equal(t, 1.0, sample(t, reg, "rescache_cache_misses_total", labels))
	assert.Equal(t, 1.0, sample(t, reg, "rescache_cache_evictions_total", labels))
	assert.Equal(t, 2.0, sample(t, reg, "rescache_cache_entries", labels))

	assert.Equal(t, 1.0, sample(t, reg, "rescache_cache_misses_total", map[string]string{"cache": "schemas"}))
}

func TestCacheMetrics_SharedRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()

	first, err := metrics.NewCacheMetrics(reg)
	require.NoError(t, err)
	second, err := metrics.NewCacheMetrics(reg)
	require.NoError(t, err)

	first.For("templates").Hit()
	second.For("templates").Hit()
	second.For("schemas").Miss()

	assert.Equal(t, 2.0, sample(t, reg, "rescache_cache_hits_total", map[string]string{"cache": "templates"}))
	assert.Equal(t, 1.0, sample(t, reg, "rescache_cache_misses_total", map[string]string{"cache": "schemas"}))

	_, err = metrics.NewResolverMetrics(reg)
	require.NoError(t, err)
	_, err = metrics.NewResolverMetrics(reg)
	require.NoError(t, err)
}

func TestCacheMetrics_ConflictingCollector(t *testing.T) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rescache_cache_hits_total",
		Help: "something else",
	}))

	m, err := metrics.NewCacheMetrics(reg)
	assert.Error(t, err)
	assert.Nil(t, m)
}

func TestResolverMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	rm, err := metrics.NewResolverMetrics(reg)
	require.NoError(t, err)
	r := insertion.New(insertion.WithMetrics(rm))

	b := &box{}
	_, err = r.Add(b, 1)
	require.NoError(t, err)
	_, err = r.Add(b, 2)
	require.NoError(t, err)
	_, err = r.Put(b, "k", 3)
	require.NoError(t, err)
	_, err = r.Add((*box)(nil), 4)
	require.ErrorIs(t, err, insertion.ErrAccess)

	assert.Equal(t, 1.0, sample(t, reg, "rescache_resolutions_total", map[string]string{"kind": "unary"}))
	assert.Equal(t, 1.0, sample(t, reg, "rescache_resolutions_total", map[string]string{"kind": "unresolved"}))

	assert.Equal(t, 2.0, sample(t, reg, "rescache_invocations_total",
		map[string]string{"kind": "unary", "outcome": "ok"}))
	assert.Equal(t, 1.0, sample(t, reg, "rescache_invocations_total",
		map[string]string{"kind": "unary", "outcome": "access_error"}))
	assert.Equal(t, 1.0, sample(t, reg, "rescache_invocations_total",
		map[string]string{"kind": "unresolved", "outcome": "noop"}))
}
