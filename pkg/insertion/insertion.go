package insertion

import (
	"reflect"

	"github.com/dmitrymomot/rescache/pkg/introspect"
)

// Kind tags the outcome of a resolution.
type Kind uint8

const (
	// Unresolved means the shape has no matching insertion; invoking is a no-op.
	Unresolved Kind = iota
	// Unary binds Put(value).
	Unary
	// Binary binds Put(field, value), or a map index assignment.
	Binary
)

func (k Kind) String() string {
	switch k {
	case Unary:
		return "unary"
	case Binary:
		return "binary"
	default:
		return "unresolved"
	}
}

// Insertion is the immutable result of resolving a Target.
// It is shared by every instance of the target's shape.
type Insertion struct {
	kind    Kind
	target  Target
	method  introspect.Method
	mapKey  reflect.Value // set only when bound to map index assignment
	metrics Metrics
}

func unresolved(t Target, m Metrics) *Insertion {
	return &Insertion{kind: Unresolved, target: t, metrics: m}
}

// Kind reports how the insertion was bound.
func (i *Insertion) Kind() Kind { return i.kind }

// Alive reports whether an insertion operation is bound.
func (i *Insertion) Alive() bool { return i.kind != Unresolved }

// Target returns the target the insertion was resolved for.
func (i *Insertion) Target() Target { return i.target }

// Method returns the bound method. The zero Method is returned for
// unresolved and map insertions.
func (i *Insertion) Method() introspect.Method { return i.method }

// Invoke inserts value into instance using the bound operation.
//
// An unresolved insertion returns (nil, nil) without side effects. An error
// returned by the target method is passed through unchanged, and so is a
// panic raised by it. Failures to apply the binding are reported as
// *AccessError before the target is touched.
//
// Method results are returned as nil when there are none, the single value
// when there is one, and []any otherwise; a trailing error result is never
// part of the returned value. Map insertions return the replaced element or nil.
func (i *Insertion) Invoke(instance, value any) (result any, err error) {
	if i.kind == Unresolved {
		i.metrics.Invoked(i.kind, OutcomeNoop)
		return nil, nil
	}

	returned := false
	defer func() {
		if !returned {
			// the target panicked; the panic keeps unwinding
			i.metrics.Invoked(i.kind, OutcomePanic)
			return
		}
		i.metrics.Invoked(i.kind, outcomeOf(err))
	}()

	rv := reflect.ValueOf(instance)
	if err = i.checkInstance(rv); err == nil {
		if i.mapKey.IsValid() {
			result, err = i.invokeMap(rv, value)
		} else {
			result, err = i.invokeMethod(rv, value)
		}
	}
	returned = true
	return result, err
}

func (i *Insertion) checkInstance(rv reflect.Value) error {
	if !rv.IsValid() {
		return i.accessError("instance is nil")
	}
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		return i.accessError("instance is a nil " + rv.Type().String())
	}
	return nil
}

func (i *Insertion) invokeMap(rv reflect.Value, value any) (any, error) {
	if rv.Type() != i.target.Shape {
		return nil, i.accessError("instance is " + rv.Type().String())
	}
	if rv.IsNil() {
		return nil, i.accessError("map is nil")
	}

	elem := i.target.Shape.Elem()
	if !introspect.Assignable(elem, value) {
		return nil, i.valueError(elem, value)
	}

	var prev any
	if old := rv.MapIndex(i.mapKey); old.IsValid() {
		prev = old.Interface()
	}
	rv.SetMapIndex(i.mapKey, introspect.ValueFor(elem, value))
	return prev, nil
}

func (i *Insertion) invokeMethod(rv reflect.Value, value any) (any, error) {
	fn, ok := i.method.Bind(rv)
	if !ok {
		return nil, i.accessError("instance is " + rv.Type().String())
	}

	valueParam := i.method.Param(i.method.NumIn() - 1)
	if !introspect.Assignable(valueParam, value) {
		return nil, i.valueError(valueParam, value)
	}

	args := make([]reflect.Value, 0, 2)
	if i.kind == Binary {
		args = append(args, reflect.ValueOf(i.target.Field))
	}
	args = append(args, introspect.ValueFor(valueParam, value))

	return unpack(fn.Call(args), i.method.ReturnsError())
}

func unpack(out []reflect.Value, returnsError bool) (any, error) {
	if returnsError {
		last := out[len(out)-1]
		out = out[:len(out)-1]
		if !last.IsNil() {
			return nil, last.Interface().(error)
		}
	}

	switch len(out) {
	case 0:
		return nil, nil
	case 1:
		return out[0].Interface(), nil
	default:
		values := make([]any, len(out))
		for n, v := range out {
			values[n] = v.Interface()
		}
		return values, nil
	}
}

func (i *Insertion) accessError(reason string) error {
	return &AccessError{Shape: i.target.Shape, Method: i.name(), Reason: reason}
}

func (i *Insertion) valueError(param reflect.Type, value any) error {
	if value == nil {
		return i.accessError("nil value for parameter of type " + param.String())
	}
	return i.accessError(reflect.TypeOf(value).String() + " value for parameter of type " + param.String())
}

func (i *Insertion) name() string {
	if i.method.Name != "" {
		return i.method.Name
	}
	return "map assignment"
}
