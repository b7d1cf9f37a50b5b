// Package introspect finds callable methods on arbitrary Go types at runtime.
//
// Lookups are structural: a method is matched by name, parameter count and
// the assignability of sample arguments, not by any declared interface.
// Method sets are computed once per reflect.Type and cached.
//
//	in := introspect.New()
//	m, err := in.Method(reflect.TypeOf(target), "Put", "key", value)
//	switch {
//	case errors.Is(err, introspect.ErrMethodNotFound):
//	    // the type cannot take this call
//	case err != nil:
//	    // malformed input
//	}
//	fn, _ := m.Bind(reflect.ValueOf(target))
//
// Only exported, non-variadic methods are visible. Methods with pointer
// receivers belong to the pointer type, as in the Go method set rules.
package introspect
