package introspect

import "errors"

var (
	// ErrMethodNotFound is returned when a shape has no method with the
	// requested name, arity and argument types.
	ErrMethodNotFound = errors.New("introspect: method not found")

	// ErrInvalidShape is returned for a nil shape. It signals a programming error.
	ErrInvalidShape = errors.New("introspect: invalid shape")

	// ErrInvalidName is returned for an empty method name. It signals a programming error.
	ErrInvalidName = errors.New("introspect: invalid method name")
)
