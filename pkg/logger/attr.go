package logger

import (
	"log/slog"
	"reflect"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Policy records a cache policy name under the key "policy".
func Policy(name string) slog.Attr {
	return slog.String("policy", name)
}

// Capacity records a cache capacity under the key "capacity".
func Capacity(n int) slog.Attr {
	return slog.Int("capacity", n)
}

// Shape records a target type under the key "shape".
// A nil type is rendered as "<nil>".
func Shape(t reflect.Type) slog.Attr {
	if t == nil {
		return slog.String("shape", "<nil>")
	}
	return slog.String("shape", t.String())
}

// Method records a method name under the key "method".
func Method(name string) slog.Attr {
	return slog.String("method", name)
}

// Field records a field name under the key "field".
// An empty name returns an empty Attr.
func Field(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("field", name)
}

// Kind records a resolution kind under the key "kind".
func Kind(kind string) slog.Attr {
	return slog.String("kind", kind)
}
