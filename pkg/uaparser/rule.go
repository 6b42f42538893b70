package uaparser

import "regexp"

type sourceKind uint8

const (
	sourceUndefined sourceKind = iota
	sourceGroup
	sourceLiteral
)

// Source tells a Binding where its value comes from: a capture group of the
// matched pattern, a fixed literal, or nothing at all.
type Source struct {
	kind    sourceKind
	group   int
	literal string
}

// Group binds a field to the n-th capture group (1-based).
func Group(n int) Source { return Source{kind: sourceGroup, group: n} }

// Literal binds a field to a fixed value.
func Literal(s string) Source { return Source{kind: sourceLiteral, literal: s} }

// Undefined binds a field to nothing. Useful to clear a value explicitly.
func Undefined() Source { return Source{} }

// resolve returns the raw value for this source. A group index outside the
// captured groups resolves to the empty (undefined) value.
func (s Source) resolve(groups []string) string {
	switch s.kind {
	case sourceGroup:
		if s.group <= 0 || s.group >= len(groups) {
			return ""
		}
		return groups[s.group]
	case sourceLiteral:
		return s.literal
	}
	return ""
}

// Binding assigns one field of the extraction result.
type Binding struct {
	Field      Field
	Source     Source
	Transforms []Transform
}

// Bind is a shorthand for building a Binding.
func Bind(field Field, src Source, transforms ...Transform) Binding {
	return Binding{Field: field, Source: src, Transforms: transforms}
}

// Template is the ordered list of bindings applied to a successful match.
type Template []Binding

// Rule pairs a pattern with the template that builds fields from its captures.
// Patterns are RE2 expressions, so matching is linear in the input length.
type Rule struct {
	Pattern  *regexp.Regexp
	Template Template
}

// NewRule compiles expr and returns a Rule. It panics if expr is invalid,
// which makes it suitable for package-level rule tables only.
func NewRule(expr string, tmpl Template) Rule {
	return Rule{Pattern: regexp.MustCompile(expr), Template: tmpl}
}

// Rules builds one rule per pattern, all sharing the same template.
func Rules(tmpl Template, exprs ...string) RuleTable {
	out := make(RuleTable, 0, len(exprs))
	for _, expr := range exprs {
		out = append(out, NewRule(expr, tmpl))
	}
	return out
}

// Match runs the rule pattern against ua. groups[0] holds the whole match and
// groups[n] the n-th capture; groups that did not participate are empty.
func (r Rule) Match(ua string) ([]string, bool) {
	if r.Pattern == nil {
		return nil, false
	}
	groups := r.Pattern.FindStringSubmatch(ua)
	if groups == nil {
		return nil, false
	}
	return groups, true
}
