package uaparser

import "errors"

var (
	// ErrInvalidPattern is returned when a rule pattern does not compile.
	ErrInvalidPattern = errors.New("invalid rule pattern")
	// ErrUnsafePattern is returned by CheckPattern for patterns with nested
	// unbounded repetition or too many repetition operators.
	ErrUnsafePattern = errors.New("rule pattern is not linear-time safe")
)
