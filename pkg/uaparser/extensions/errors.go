package extensions

import "errors"

// ErrUnknownBundle is returned when a bundle name is not registered.
var ErrUnknownBundle = errors.New("unknown extension bundle")
