package extensions

import (
	"fmt"
	"slices"
	"strings"

	ua "github.com/dmitrymomot/uaparser/pkg/uaparser"
)

var registry = map[string]ua.RuleSet{
	"bots":      Bots,
	"clis":      CLIs,
	"crawlers":  Crawlers,
	"emails":    Emails,
	"fetchers":  Fetchers,
	"inapps":    InApps,
	"libraries": Libraries,
	"vehicles":  Vehicles,
}

// Lookup returns the bundle registered under name (case-insensitive).
func Lookup(name string) (ua.RuleSet, bool) {
	s, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	return s, ok
}

// Names returns the registered bundle names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// All returns every bundle keyed by name.
func All() map[string]ua.RuleSet {
	out := make(map[string]ua.RuleSet, len(registry))
	for name, s := range registry {
		out[name] = s
	}
	return out
}

// Resolve looks up every name in order. Empty names are skipped; an unknown
// name fails the whole call with ErrUnknownBundle.
func Resolve(names ...string) ([]ua.RuleSet, error) {
	out := make([]ua.RuleSet, 0, len(names))
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			continue
		}
		s, ok := Lookup(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownBundle, name)
		}
		out = append(out, s)
	}
	return out, nil
}
