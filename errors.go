package rescache

import "errors"

// ErrInvalidConfig is returned by New when the configuration cannot be applied.
var ErrInvalidConfig = errors.New("rescache: invalid configuration")
