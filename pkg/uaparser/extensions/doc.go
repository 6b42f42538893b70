// Package extensions ships ready-made rule bundles for clients that the
// default tables leave alone: command-line tools, crawlers, mail clients,
// link-preview fetchers, in-app browsers, HTTP libraries and vehicles.
//
// Every bundle is a partial uaparser.RuleSet. Pass one bundle to replace the
// matching default categories, or several to have them appended in order:
//
//	p := uaparser.New(uaparser.WithExtensions(extensions.Crawlers, extensions.CLIs))
//	p.SetUA("Wget/1.21.1").Browser() // {Name: "Wget", Version: "1.21.1", Major: "1", Type: "cli"}
//
// Bots is the union of CLIs, Crawlers, Fetchers and Libraries. Bundles are
// shared values and must be treated as read-only.
package extensions
