// Package uaparser classifies user-agent strings into browser, CPU, device,
// engine and operating-system facts using ordered tables of pattern rules.
//
// # Architecture
//
// A Rule pairs an RE2 pattern with a Template: an ordered list of bindings
// that assign a Field from a capture group or a literal, then run optional
// Transforms (Alias, Lookup, Replace, Version, …). A RuleTable is the ordered
// list of rules for one Category and the first matching rule wins, whatever
// its specificity. A RuleSet maps categories to tables.
//
//	UA string ──► RuleTable.Classify ──► Rule.Match ──► Extract ──► Fields ──► Browser/CPU/…
//
// Parser is the facade. It holds the current user agent and the effective
// tables (the built-in defaults, optionally overridden by extension bundles)
// and classifies on every accessor call. Nothing is cached between calls.
//
// # Extensions
//
// WithExtension replaces each category present in the bundle. WithExtensions
// first merges several bundles, appending rules category by category, and
// then replaces. Unknown categories are ignored. Ready-made bundles live in
// the extensions sub-package; YAML bundles can be loaded with rulefile.
//
// # Usage
//
//	p := uaparser.New(uaparser.WithUA(r.UserAgent()))
//	b := p.Browser() // {Name: "Chrome", Version: "91.0.4472.124", Major: "91"}
//
//	res := uaparser.Parse("Wget/1.21.1", extensions.CLIs)
//	res.Browser.Type // "cli"
//
// # Safety
//
// Patterns are RE2 and therefore match in linear time. CheckPattern and
// CheckRuleSet additionally reject nested unbounded repetition so rule sets
// stay safe if ported to a backtracking engine. They are run by the tests
// and by rulefile at load time, never while classifying.
//
// Undefined values are represented as empty strings.
package uaparser
