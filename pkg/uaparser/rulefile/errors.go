package rulefile

import "errors"

var (
	// ErrMalformedFile wraps YAML syntax and shape errors.
	ErrMalformedFile = errors.New("malformed rule file")
	// ErrUnknownField means a binding names a field its category does not have.
	ErrUnknownField = errors.New("unknown field")
	// ErrUnknownTransform means a transform is neither a known name nor an
	// alias or replace mapping.
	ErrUnknownTransform = errors.New("unknown transform")
	// ErrAmbiguousSource means a binding sets both group and value.
	ErrAmbiguousSource = errors.New("binding sets both group and value")
	// ErrInvalidGroup means a capture group index below 1.
	ErrInvalidGroup = errors.New("capture group must be positive")
	// ErrNoPatterns means a rule lists no patterns.
	ErrNoPatterns = errors.New("rule has no patterns")
)
