package useragent

import "errors"

var (
	// ErrEmptyUserAgent is returned by Parse for blank input.
	ErrEmptyUserAgent = errors.New("empty user agent string")
	// ErrInvalidRuleSets is returned by NewClassifier when a rule set fails
	// the pattern safety check.
	ErrInvalidRuleSets = errors.New("invalid rule sets")
)
