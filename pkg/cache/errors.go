package cache

import "errors"

// ErrAlreadyInitialized is returned when Initialize is called a second time.
// Changing the policy of a live cache more than once is not supported.
var ErrAlreadyInitialized = errors.New("cache: already initialized")
