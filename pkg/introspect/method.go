package introspect

import "reflect"

var errorType = reflect.TypeFor[error]()

// Method is a resolved, callable method of a shape.
type Method struct {
	Name  string
	Shape reflect.Type
	Index int

	params       []reflect.Type
	returnsError bool
}

// NumIn returns the number of parameters, not counting the receiver.
func (m Method) NumIn() int { return len(m.params) }

// Params returns a copy of the parameter types, not counting the receiver.
func (m Method) Params() []reflect.Type {
	out := make([]reflect.Type, len(m.params))
	copy(out, m.params)
	return out
}

// Param returns the i-th parameter type.
func (m Method) Param(i int) reflect.Type { return m.params[i] }

// ReturnsError reports whether the last result of the method is an error.
func (m Method) ReturnsError() bool { return m.returnsError }

// Bind returns the method value bound to receiver.
//
// For concrete shapes the receiver must have exactly the shape type. For
// interface shapes any receiver implementing the interface is accepted.
func (m Method) Bind(receiver reflect.Value) (reflect.Value, bool) {
	if !receiver.IsValid() || m.Shape == nil {
		return reflect.Value{}, false
	}

	rt := receiver.Type()
	switch {
	case rt == m.Shape && m.Shape.Kind() != reflect.Interface:
		return receiver.Method(m.Index), true
	case m.Shape.Kind() == reflect.Interface && rt.Implements(m.Shape):
		fn := receiver.MethodByName(m.Name)
		return fn, fn.IsValid()
	default:
		return reflect.Value{}, false
	}
}

func newMethod(shape reflect.Type, rm reflect.Method) Method {
	ft := rm.Type

	// Methods of concrete types carry the receiver as their first parameter.
	first := 1
	if shape.Kind() == reflect.Interface {
		first = 0
	}

	params := make([]reflect.Type, 0, ft.NumIn()-first)
	for i := first; i < ft.NumIn(); i++ {
		params = append(params, ft.In(i))
	}

	return Method{
		Name:         rm.Name,
		Shape:        shape,
		Index:        rm.Index,
		params:       params,
		returnsError: ft.NumOut() > 0 && ft.Out(ft.NumOut()-1) == errorType,
	}
}

// Assignable reports whether v can be passed as a parameter of type param.
// A nil v is assignable to any nillable type.
func Assignable(param reflect.Type, v any) bool {
	if param == nil {
		return false
	}
	if v == nil {
		return Nillable(param)
	}
	return reflect.TypeOf(v).AssignableTo(param)
}

// Nillable reports whether nil is a valid value of t.
func Nillable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return true
	default:
		return false
	}
}

// ValueFor returns v as a reflect.Value suitable for a parameter of type param.
// Callers must check Assignable first.
func ValueFor(param reflect.Type, v any) reflect.Value {
	if v == nil {
		return reflect.Zero(param)
	}
	return reflect.ValueOf(v)
}
