// Package rescache wires a resource cache and an insertion resolver from
// configuration.
//
// The two components are independent. [cache.ResourceCache] stores artifacts
// under keys with an unbounded or LRU policy chosen once at startup.
// [insertion.Resolver] finds out at runtime whether an arbitrary value can
// take Put(value) or Put(field, value) and calls it.
//
// Basic Usage:
//
//	rt, err := rescache.Load[string, *Template]()
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	rt.Cache().Put("layout.html", tpl)
//
//	// registry has a Put(name string, v any) method
//	if _, err := rt.Resolver().Put(registry, "layout", tpl); err != nil {
//		if errors.Is(err, insertion.ErrAccess) {
//			// the binding could not be applied to registry
//		}
//	}
//
// Configuration is read by [config.Load] from the environment:
//
//	APP_ENV                 development | staging | production
//	SERVICE_NAME            service attribute on every log record
//	LOG_LEVEL, LOG_FORMAT   slog level and json | text
//	RESCACHE_CACHE_SIZE     LRU capacity, zero or less for unbounded (default 89)
//	RESCACHE_INSERT_METHOD  insertion method name (default Put)
//	RESCACHE_METRICS        register Prometheus collectors on the default registry
//
// Sub-packages:
//
//   - pkg/cache: resource cache and its stores
//   - pkg/insertion: insertion resolution and invocation
//   - pkg/introspect: structural method lookup
//   - pkg/config: environment and YAML configuration
//   - pkg/logger: slog factory and attribute helpers
//   - pkg/environment: deployment environment names
//   - pkg/metrics: Prometheus collectors
package rescache
