// Package metrics provides Prometheus implementations of the cache.Metrics
// and insertion.Metrics interfaces.
//
//	reg := prometheus.NewRegistry()
//	cm, err := metrics.NewCacheMetrics(reg)
//	if err != nil {
//		return err
//	}
//	c := cache.New[string, *Template](cache.WithMetrics(cm.For("templates")))
//
//	rm, err := metrics.NewResolverMetrics(reg)
//	if err != nil {
//		return err
//	}
//	r := insertion.New(insertion.WithMetrics(rm))
//
// Calling a constructor again on the same registry reuses the collectors it
// registered, so several caches can share one registry under different
// cache labels. A conflicting collector with the same name is an error.
package metrics
