package insertion

import (
	"fmt"
	"reflect"
)

// Target identifies what is resolved: a shape and, for keyed insertions,
// the field name passed as the first argument.
type Target struct {
	Shape reflect.Type
	Field string
	Keyed bool
}

// Keyed targets a two-argument insertion: Put(field, value).
func Keyed(shape reflect.Type, field string) Target {
	return Target{Shape: shape, Field: field, Keyed: true}
}

// Unkeyed targets a one-argument insertion: Put(value).
func Unkeyed(shape reflect.Type) Target {
	return Target{Shape: shape}
}

func (t Target) String() string {
	if t.Keyed {
		return fmt.Sprintf("%v[%q]", t.Shape, t.Field)
	}
	return fmt.Sprintf("%v", t.Shape)
}

// flightKey identifies the target for singleflight. The shape is keyed by
// its runtime type descriptor so distinct types with equal names never collide.
func (t Target) flightKey() string {
	return fmt.Sprintf("%p|%t|%s", t.Shape, t.Keyed, t.Field)
}
