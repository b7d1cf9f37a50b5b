package rescache

import (
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrymomot/rescache/pkg/cache"
	"github.com/dmitrymomot/rescache/pkg/config"
	"github.com/dmitrymomot/rescache/pkg/insertion"
	"github.com/dmitrymomot/rescache/pkg/logger"
	"github.com/dmitrymomot/rescache/pkg/metrics"
)

// DefaultCacheName labels the cache in logs and metrics unless WithCacheName is used.
const DefaultCacheName = "resources"

// Option configures a Runtime.
type Option func(*options)

type options struct {
	log       *slog.Logger
	reg       prometheus.Registerer
	cacheName string
}

// WithLogger uses l instead of building a logger from configuration.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithRegisterer enables Prometheus metrics on reg, regardless of the
// RESCACHE_METRICS setting.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(o *options) {
		if reg != nil {
			o.reg = reg
		}
	}
}

// WithCacheName sets the cache label used in logs and metrics.
// Empty names are ignored.
func WithCacheName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.cacheName = name
		}
	}
}

// Runtime wires a ResourceCache and an insertion Resolver from configuration.
type Runtime[K comparable, V any] struct {
	cache    *cache.ResourceCache[K, V]
	resolver *insertion.Resolver
	log      *slog.Logger
}

// New builds a Runtime from cfg. The cache is initialized with
// cfg.Cache.Size before New returns, so the Runtime is ready for concurrent use.
func New[K comparable, V any](cfg config.Config, opts ...Option) (*Runtime[K, V], error) {
	o := options{cacheName: DefaultCacheName}
	for _, opt := range opts {
		opt(&o)
	}

	if o.log == nil {
		log, err := newLogger(cfg)
		if err != nil {
			return nil, err
		}
		o.log = log
	}

	if o.reg == nil && cfg.Metrics {
		o.reg = prometheus.DefaultRegisterer
	}

	var (
		cacheOpts    []cache.Option
		resolverOpts = []insertion.Option{
			insertion.WithLogger(o.log),
			insertion.WithMethodName(cfg.Insert.Method),
		}
	)
	if o.reg != nil {
		cm, err := metrics.NewCacheMetrics(o.reg)
		if err != nil {
			return nil, fmt.Errorf("register cache metrics: %w", err)
		}
		rm, err := metrics.NewResolverMetrics(o.reg)
		if err != nil {
			return nil, fmt.Errorf("register resolver metrics: %w", err)
		}
		cacheOpts = append(cacheOpts, cache.WithMetrics(cm.For(o.cacheName)))
		resolverOpts = append(resolverOpts, insertion.WithMetrics(rm))
	}

	c := cache.New[K, V](cacheOpts...)
	if err := c.Initialize(cfg.Cache.Size, o.log.With(slog.String("cache", o.cacheName))); err != nil {
		return nil, err
	}

	return &Runtime[K, V]{
		cache:    c,
		resolver: insertion.New(resolverOpts...),
		log:      o.log,
	}, nil
}

// Load reads config.Config from the environment and calls New.
func Load[K comparable, V any](opts ...Option) (*Runtime[K, V], error) {
	var cfg config.Config
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}
	return New[K, V](cfg, opts...)
}

// Cache returns the initialized resource cache.
func (r *Runtime[K, V]) Cache() *cache.ResourceCache[K, V] { return r.cache }

// Resolver returns the insertion resolver.
func (r *Runtime[K, V]) Resolver() *insertion.Resolver { return r.resolver }

// Logger returns the logger passed with WithLogger or built from configuration.
func (r *Runtime[K, V]) Logger() *slog.Logger { return r.log }

func newLogger(cfg config.Config) (*slog.Logger, error) {
	level, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	format := logger.Format(cfg.Log.Format)
	if format != logger.FormatJSON && format != logger.FormatText {
		return nil, fmt.Errorf("%w: unknown log format %q", ErrInvalidConfig, cfg.Log.Format)
	}

	return logger.New(
		logger.WithEnvironment(cfg.Env, cfg.ServiceName),
		logger.WithLevel(level),
		logger.WithFormat(format),
	), nil
}
