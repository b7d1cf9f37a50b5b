package insertion

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrAccess marks failures of the binding itself, as opposed to errors
// returned by the target's own insertion method.
var ErrAccess = errors.New("insertion: access failure")

// AccessError reports that a resolved insertion could not be applied to an
// instance: the instance is nil or of another shape, the value does not fit
// the bound parameter, or a map target is nil. The target is never called.
type AccessError struct {
	Shape  reflect.Type
	Method string
	Reason string
}

func (e *AccessError) Error() string {
	return fmt.Sprintf("insertion: cannot invoke %s on %v: %s", e.Method, e.Shape, e.Reason)
}

// Unwrap makes errors.Is(err, ErrAccess) hold for every AccessError.
func (e *AccessError) Unwrap() error { return ErrAccess }
