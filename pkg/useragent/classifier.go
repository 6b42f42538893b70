package useragent

import (
	"errors"
	"strings"

	"github.com/dmitrymomot/uaparser/pkg/uaparser"
	"github.com/dmitrymomot/uaparser/pkg/uaparser/extensions"
)

// Classifier turns raw User-Agent strings into UserAgent values. Its rule
// tables are fixed at construction, so one Classifier can serve every request
// of a process concurrently.
type Classifier struct {
	parser *uaparser.Parser
	cache  *lruCache[string, uaparser.Result]
}

// Option configures a Classifier.
type Option func(*classifierOptions)

type classifierOptions struct {
	overrides []uaparser.RuleSet
	layered   []uaparser.RuleSet
	cacheSize int
}

// WithRuleSets overrides the default tables: every category present in the
// merged sets replaces the default table for that category.
func WithRuleSets(sets ...uaparser.RuleSet) Option {
	return func(o *classifierOptions) { o.overrides = append(o.overrides, sets...) }
}

// WithLayered tries the rules of sets before the default rules of the same
// category instead of replacing them.
func WithLayered(sets ...uaparser.RuleSet) Option {
	return func(o *classifierOptions) { o.layered = append(o.layered, sets...) }
}

// WithCacheSize sets how many classifications are remembered. Zero or a
// negative size disables the cache.
func WithCacheSize(n int) Option {
	return func(o *classifierOptions) { o.cacheSize = n }
}

// NewClassifier builds a Classifier. All rule sets are checked with
// uaparser.CheckRuleSet and rejected with ErrInvalidRuleSets when unsafe.
func NewClassifier(opts ...Option) (*Classifier, error) {
	o := classifierOptions{cacheSize: DefaultCacheSize}
	for _, opt := range opts {
		opt(&o)
	}

	effective := uaparser.Override(uaparser.Defaults(), uaparser.Merge(o.overrides...))
	if len(o.layered) > 0 {
		effective = uaparser.Merge(append(o.layered, effective)...)
	}
	if err := uaparser.CheckRuleSet(effective); err != nil {
		return nil, errors.Join(ErrInvalidRuleSets, err)
	}

	c := &Classifier{parser: uaparser.New(uaparser.WithExtension(effective))}
	if o.cacheSize > 0 {
		c.cache = newLRUCache[string, uaparser.Result](o.cacheSize)
	}
	return c, nil
}

// Parse classifies ua. Blank input returns an empty UserAgent together with
// ErrEmptyUserAgent.
func (c *Classifier) Parse(ua string) (UserAgent, error) {
	if strings.TrimSpace(ua) == "" {
		return UserAgent{}, ErrEmptyUserAgent
	}
	if c.cache != nil {
		if r, ok := c.cache.get(ua); ok {
			return UserAgent{result: r}, nil
		}
	}

	r := c.parser.Fork(ua).Result()
	if c.cache != nil {
		c.cache.put(ua, r)
	}
	return UserAgent{result: r}, nil
}

// Cached reports how many classifications are currently cached.
func (c *Classifier) Cached() int {
	if c.cache == nil {
		return 0
	}
	return c.cache.size()
}

// Rules returns a copy of the effective rule tables.
func (c *Classifier) Rules() uaparser.RuleSet { return c.parser.Rules() }

var defaultClassifier = mustClassifier(WithLayered(extensions.Bots))

func mustClassifier(opts ...Option) *Classifier {
	c, err := NewClassifier(opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Parse classifies ua with the default rules plus every automated-client
// bundle layered in front of them.
func Parse(ua string) (UserAgent, error) { return defaultClassifier.Parse(ua) }
