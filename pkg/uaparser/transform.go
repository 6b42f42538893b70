package uaparser

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Transform rewrites a bound value. Transforms only run on defined values and
// returning "" makes the field undefined.
type Transform func(string) string

// Func adapts an arbitrary function to a Transform.
func Func(fn func(string) string) Transform { return Transform(fn) }

// Lower lower-cases the value.
func Lower(s string) string { return strings.ToLower(s) }

// Upper upper-cases the value.
func Upper(s string) string { return strings.ToUpper(s) }

// Title capitalises every word of the value.
// cases.Caser is stateful, so a fresh one is built per call.
func Title(s string) string {
	return cases.Title(language.English).String(strings.ToLower(s))
}

// Alias rewrites a value to its canonical spelling when it matches one of the
// keys of table case-insensitively. Unknown values pass through unchanged.
func Alias(table map[string]string) Transform {
	lowered := make(map[string]string, len(table))
	for k, v := range table {
		lowered[strings.ToLower(k)] = v
	}
	return func(s string) string {
		if v, ok := lowered[strings.ToLower(s)]; ok {
			return v
		}
		return s
	}
}

// LookupEntry maps any of Tokens to Value.
type LookupEntry struct {
	Value  string
	Tokens []string
}

// Lookup walks entries in order and returns the Value of the first entry
// having a token contained in the input (case-insensitive). Inputs matching
// nothing pass through unchanged.
func Lookup(entries ...LookupEntry) Transform {
	return func(s string) string {
		ls := strings.ToLower(s)
		for _, e := range entries {
			for _, tok := range e.Tokens {
				if strings.Contains(ls, strings.ToLower(tok)) {
					return e.Value
				}
			}
		}
		return s
	}
}

// Replace substitutes every match of expr with repl (regexp.ReplaceAllString
// semantics).
func Replace(expr, repl string) Transform {
	re := regexp.MustCompile(expr)
	return func(s string) string {
		return re.ReplaceAllString(s, repl)
	}
}

// Version normalises version separators to '.' and strips trailing
// separators, so "10_15_7" becomes "10.15.7" and "1.2." becomes "1.2".
func Version(s string) string {
	s = strings.Map(func(r rune) rune {
		if r == '_' || r == ',' {
			return '.'
		}
		return r
	}, s)
	return strings.TrimRight(s, ". -")
}

// major returns the longest leading run of ASCII digits in version.
func major(version string) string {
	i := 0
	for i < len(version) && version[i] >= '0' && version[i] <= '9' {
		i++
	}
	return version[:i]
}
