package introspect

import (
	"fmt"
	"reflect"
	"sync"
)

// maxTables bounds the number of cached method tables.
// The whole cache is dropped when it is reached.
const maxTables = 1024

type methodTable map[string]reflect.Method

// Introspector finds exported methods on arbitrary types by name and
// argument shape. Method tables are cached per type; safe for concurrent use.
type Introspector struct {
	mu     sync.RWMutex
	tables map[reflect.Type]methodTable
}

// New creates an Introspector with an empty method cache.
func New() *Introspector {
	return &Introspector{tables: make(map[reflect.Type]methodTable)}
}

// Method looks up the exported method name on shape whose parameters accept
// args, in order. Variadic methods never match.
//
// It returns ErrInvalidShape or ErrInvalidName for malformed input and
// ErrMethodNotFound, wrapped with details, when no method matches.
func (in *Introspector) Method(shape reflect.Type, name string, args ...any) (Method, error) {
	if shape == nil {
		return Method{}, ErrInvalidShape
	}
	if name == "" {
		return Method{}, fmt.Errorf("%w: empty name on %s", ErrInvalidName, shape)
	}

	rm, ok := in.table(shape)[name]
	if !ok {
		return Method{}, fmt.Errorf("%w: %s has no method %s", ErrMethodNotFound, shape, name)
	}

	m := newMethod(shape, rm)
	if rm.Type.IsVariadic() {
		return Method{}, fmt.Errorf("%w: %s.%s is variadic", ErrMethodNotFound, shape, name)
	}
	if m.NumIn() != len(args) {
		return Method{}, fmt.Errorf("%w: %s.%s takes %d arguments, not %d",
			ErrMethodNotFound, shape, name, m.NumIn(), len(args))
	}
	for i, arg := range args {
		if !Assignable(m.params[i], arg) {
			return Method{}, fmt.Errorf("%w: %s.%s argument %d is %s, cannot use %T",
				ErrMethodNotFound, shape, name, i, m.params[i], arg)
		}
	}

	return m, nil
}

func (in *Introspector) table(shape reflect.Type) methodTable {
	in.mu.RLock()
	t, ok := in.tables[shape]
	in.mu.RUnlock()
	if ok {
		return t
	}

	t = make(methodTable, shape.NumMethod())
	for i := range shape.NumMethod() {
		m := shape.Method(i)
		t[m.Name] = m
	}

	in.mu.Lock()
	defer in.mu.Unlock()
	if existing, ok := in.tables[shape]; ok {
		return existing
	}
	if len(in.tables) >= maxTables {
		in.tables = make(map[reflect.Type]methodTable)
	}
	in.tables[shape] = t
	return t
}
