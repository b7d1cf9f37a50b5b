package insertion

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/dmitrymomot/rescache/pkg/introspect"
	"github.com/dmitrymomot/rescache/pkg/logger"
)

// DefaultMethod is the method name searched for when none is configured.
const DefaultMethod = "Put"

// MethodFinder is the introspection facility used to search shapes.
// *introspect.Introspector implements it.
type MethodFinder interface {
	Method(shape reflect.Type, name string, args ...any) (introspect.Method, error)
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithFinder replaces the introspection facility. Nil values are ignored.
func WithFinder(f MethodFinder) Option {
	return func(r *Resolver) {
		if f != nil {
			r.finder = f
		}
	}
}

// WithLogger sets the diagnostic sink. Nil values are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(r *Resolver) {
		if l != nil {
			r.log = l
		}
	}
}

// WithMetrics attaches a metrics observer. Nil values are ignored.
func WithMetrics(m Metrics) Option {
	return func(r *Resolver) {
		if m != nil {
			r.metrics = m
		}
	}
}

// WithMethodName changes the insertion method name. Empty names are ignored.
func WithMethodName(name string) Option {
	return func(r *Resolver) {
		if name != "" {
			r.method = name
		}
	}
}

// Resolver resolves insertion operations per Target and memoizes the result.
// It is safe for concurrent use.
type Resolver struct {
	finder  MethodFinder
	method  string
	log     *slog.Logger
	metrics Metrics

	mu       sync.RWMutex
	resolved map[Target]*Insertion
	flight   singleflight.Group
}

// New creates a Resolver searching for DefaultMethod with a fresh Introspector.
func New(opts ...Option) *Resolver {
	r := &Resolver{
		finder:   introspect.New(),
		method:   DefaultMethod,
		log:      logger.Discard(),
		metrics:  NopMetrics(),
		resolved: make(map[Target]*Insertion),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// MethodName returns the insertion method name searched for.
func (r *Resolver) MethodName() string { return r.method }

// Resolve returns the insertion for t, searching the shape on first use.
// sample is a representative value used to match the value parameter.
//
// A shape without a matching operation yields an Unresolved insertion and a
// nil error; the failed search is logged once at error level. Malformed
// targets return the introspection error and are not memoized.
func (r *Resolver) Resolve(t Target, sample any) (*Insertion, error) {
	if t.Shape == nil {
		return nil, fmt.Errorf("%w: target %v has no shape", introspect.ErrInvalidShape, t)
	}

	if ins, ok := r.lookup(t); ok {
		return ins, nil
	}

	v, err, _ := r.flight.Do(t.flightKey(), func() (any, error) {
		if ins, ok := r.lookup(t); ok {
			return ins, nil
		}

		ins, err := r.discover(t, sample)
		if err != nil {
			return nil, err
		}

		r.mu.Lock()
		r.resolved[t] = ins
		r.mu.Unlock()

		r.metrics.Resolved(ins.kind)
		r.log.Debug("insertion resolved",
			logger.Component("insertion_resolver"),
			logger.Shape(t.Shape),
			logger.Field(t.Field),
			logger.Kind(ins.kind.String()),
		)
		return ins, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Insertion), nil
}

// Put resolves a keyed insertion on the dynamic type of instance and invokes it.
func (r *Resolver) Put(instance any, field string, value any) (any, error) {
	ins, err := r.Resolve(Keyed(reflect.TypeOf(instance), field), value)
	if err != nil {
		return nil, err
	}
	return ins.Invoke(instance, value)
}

// Add resolves an unkeyed insertion on the dynamic type of instance and invokes it.
func (r *Resolver) Add(instance, value any) (any, error) {
	ins, err := r.Resolve(Unkeyed(reflect.TypeOf(instance)), value)
	if err != nil {
		return nil, err
	}
	return ins.Invoke(instance, value)
}

// Len returns the number of memoized targets.
func (r *Resolver) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.resolved)
}

func (r *Resolver) lookup(t Target) (*Insertion, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ins, ok := r.resolved[t]
	return ins, ok
}

func (r *Resolver) discover(t Target, sample any) (*Insertion, error) {
	args := []any{sample}
	kind := Unary
	if t.Keyed {
		args = []any{t.Field, sample}
		kind = Binary
	}

	m, err := r.finder.Method(t.Shape, r.method, args...)
	if err == nil {
		return &Insertion{kind: kind, target: t, method: m, metrics: r.metrics}, nil
	}
	if !errors.Is(err, introspect.ErrMethodNotFound) {
		return nil, err
	}

	if ins, ok := r.discoverMap(t, sample); ok {
		return ins, nil
	}

	r.log.Error("insertion method not found",
		logger.Component("insertion_resolver"),
		logger.Shape(t.Shape),
		logger.Method(r.method),
		logger.Field(t.Field),
		logger.Error(err),
	)
	return unresolved(t, r.metrics), nil
}

// discoverMap binds a keyed insertion on a map with a string-kinded key.
func (r *Resolver) discoverMap(t Target, sample any) (*Insertion, bool) {
	shape := t.Shape
	if !t.Keyed || shape.Kind() != reflect.Map || shape.Key().Kind() != reflect.String {
		return nil, false
	}
	if !introspect.Assignable(shape.Elem(), sample) {
		return nil, false
	}

	return &Insertion{
		kind:    Binary,
		target:  t,
		mapKey:  reflect.ValueOf(t.Field).Convert(shape.Key()),
		metrics: r.metrics,
	}, true
}
