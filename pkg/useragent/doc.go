// Package useragent classifies HTTP User-Agent strings for servers.
//
// It sits on top of the rule engine in pkg/uaparser and adds what a web
// application usually needs around it:
//   - Device class helpers: IsBot, IsMobile, IsTablet, IsTV, IsDesktop, …
//   - A derived DeviceType with desktop, bot and unknown fallbacks
//   - Short human-readable identifiers for logging and analytics
//   - An LRU cache of recent classifications
//   - HTTP middleware and a logger context extractor
//   - Swappable, which replaces the Classifier in service during a rule reload
//
// # Architecture
//
// A Classifier owns one uaparser.Parser built from the effective rule tables
// and forks it for every call. Rule bundles can either replace default
// categories (WithRuleSets) or be tried ahead of them (WithLayered). The
// package-level Parse uses the defaults with every automated-client bundle
// layered in front, so bots are recognised out of the box.
//
//	┌────────────┐  UA string ┌───────────────┐ miss ┌────────────────┐
//	│ Classifier │──────────▶│   LRU cache    │─────▶│ uaparser.Parser │
//	└────────────┘            └───────────────┘      └────────────────┘
//	                                 │ hit                  │
//	                                 └──────► UserAgent ◄───┘
//
// # Usage
//
// Import the package:
//
//	import "github.com/dmitrymomot/uaparser/pkg/useragent"
//
// Parse an incoming request’s UA and inspect the result:
//
//	ua, err := useragent.Parse(r.UserAgent())
//	if err != nil {
//	    // ErrEmptyUserAgent
//	}
//
//	log.Printf("client=%s", ua.GetShortIdentifier())
//
//	if ua.IsBot() {
//	    // throttle, skip heavy rendering, …
//	}
//
// Or let the middleware do it once per request:
//
//	c, err := useragent.NewClassifier(useragent.WithLayered(extensions.Bots))
//	r.Use(useragent.Middleware(c))
//	...
//	ua, _ := useragent.FromContext(req.Context())
//
// # Error Handling
//
// Parse returns ErrEmptyUserAgent for blank input. NewClassifier returns
// ErrInvalidRuleSets when a bundle fails the pattern safety check.
package useragent
