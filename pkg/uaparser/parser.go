package uaparser

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxUALength caps the number of bytes of a user agent that get classified.
const MaxUALength = 500

// Option configures a Parser.
type Option func(*options)

type options struct {
	ua         string
	uaSet      bool
	provider   func() string
	extensions []RuleSet
}

// WithUA sets the user agent to classify.
func WithUA(ua string) Option {
	return func(o *options) {
		o.ua = ua
		o.uaSet = true
	}
}

// WithUAProvider registers a fallback used once at construction when no
// user agent is given explicitly, e.g. reading a request header.
func WithUAProvider(fn func() string) Option {
	return func(o *options) { o.provider = fn }
}

// WithExtension overrides the default tables with ext. Categories present in
// ext replace the corresponding defaults entirely.
func WithExtension(ext RuleSet) Option {
	return func(o *options) {
		if ext != nil {
			o.extensions = append(o.extensions, ext)
		}
	}
}

// WithExtensions merges exts left to right, appending rules within a
// category, and overrides the defaults with the combined set.
func WithExtensions(exts ...RuleSet) Option {
	return func(o *options) {
		for _, ext := range exts {
			if ext != nil {
				o.extensions = append(o.extensions, ext)
			}
		}
	}
}

// Parser classifies one user agent at a time against its effective rule
// tables. Results are computed on every accessor call and never cached.
// A Parser is not safe for concurrent use; the rule tables it holds are
// read-only and may be shared freely between parsers.
type Parser struct {
	ua     string
	tables RuleSet
}

// New creates a Parser. Without WithUA it asks the provider registered with
// WithUAProvider for a user agent, falling back to the empty string.
func New(opts ...Option) *Parser {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	tables := defaultRules
	if len(o.extensions) > 0 {
		tables = Override(defaultRules, Merge(o.extensions...))
	}

	ua := o.ua
	if !o.uaSet && o.provider != nil {
		ua = o.provider()
	}

	p := &Parser{tables: tables}
	return p.SetUA(ua)
}

// Parse is a one-shot helper equal to New(WithUA(ua), WithExtensions(exts...)).Result().
func Parse(ua string, exts ...RuleSet) Result {
	return New(WithUA(ua), WithExtensions(exts...)).Result()
}

// SetUA replaces the user agent. Nothing is classified until an accessor is
// called.
func (p *Parser) SetUA(ua string) *Parser {
	p.ua = normalizeUA(ua)
	return p
}

// Fork returns a new Parser sharing p's rule tables and classifying ua.
// Forks of one Parser may be used from different goroutines.
func (p *Parser) Fork(ua string) *Parser {
	return (&Parser{tables: p.tables}).SetUA(ua)
}

// UA returns the current (normalised) user agent.
func (p *Parser) UA() string { return p.ua }

// Rules returns a copy of the effective rule tables.
func (p *Parser) Rules() RuleSet { return p.tables.Clone() }

func (p *Parser) classify(cat Category) Fields {
	f, _ := p.tables[cat].Classify(p.ua)
	return f
}

// Browser classifies the browser of the current user agent.
func (p *Parser) Browser() Browser { return newBrowser(p.classify(CategoryBrowser)) }

// CPU classifies the CPU architecture of the current user agent.
func (p *Parser) CPU() CPU { return newCPU(p.classify(CategoryCPU)) }

// Device classifies the device of the current user agent.
func (p *Parser) Device() Device { return newDevice(p.classify(CategoryDevice)) }

// Engine classifies the rendering engine of the current user agent.
func (p *Parser) Engine() Engine { return newEngine(p.classify(CategoryEngine)) }

// OS classifies the operating system of the current user agent.
func (p *Parser) OS() OS { return newOS(p.classify(CategoryOS)) }

// Result classifies every category.
func (p *Parser) Result() Result {
	return Result{
		UA:      p.ua,
		Browser: p.Browser(),
		CPU:     p.CPU(),
		Device:  p.Device(),
		Engine:  p.Engine(),
		OS:      p.OS(),
	}
}

// normalizeUA drops leading whitespace and caps the length at MaxUALength
// bytes without splitting a multi-byte rune.
func normalizeUA(ua string) string {
	ua = strings.TrimLeftFunc(ua, unicode.IsSpace)
	if len(ua) <= MaxUALength {
		return ua
	}
	cut := MaxUALength
	for cut > 0 && !utf8.RuneStart(ua[cut]) {
		cut--
	}
	return ua[:cut]
}
