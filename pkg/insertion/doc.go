// Package insertion resolves "put a value into this object" operations on
// types the caller does not know statically.
//
// A [Resolver] searches a shape for an exported method named Put (or the name
// given with [WithMethodName]) taking either a single value or a field name
// and a value. Maps with string-kinded keys accept keyed insertions through
// index assignment when no such method exists. The result of a search is an
// [Insertion] tagged with a [Kind]:
//
//   - Unary calls Put(value)
//   - Binary calls Put(field, value) or assigns m[field] = value
//   - Unresolved does nothing when invoked
//
// Resolution happens once per [Target] and is shared by all callers. A failed
// search is logged at error level exactly once and memoized as Unresolved.
//
//	r := insertion.New(insertion.WithLogger(log))
//	if _, err := r.Put(registry, "layout", tpl); err != nil {
//		if errors.Is(err, insertion.ErrAccess) {
//			// the binding could not be applied
//		}
//		// otherwise the error came from registry.Put itself
//	}
//
// # Errors
//
// Errors returned by the target's method are passed through unchanged and a
// panic inside it is not recovered. Failures of the binding itself, such as a
// nil instance or a value of the wrong type, are reported as [*AccessError]
// which matches [ErrAccess]. A nil shape is a programming error: Resolve
// returns introspect.ErrInvalidShape and memoizes nothing.
package insertion
