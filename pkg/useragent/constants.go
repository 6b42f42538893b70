package useragent

import "github.com/dmitrymomot/uaparser/pkg/uaparser"

// Device types reported by UserAgent.DeviceType. Most come straight from the
// classifier; desktop, bot and unknown are derived fallbacks.
const (
	// DeviceTypeBot identifies crawlers, fetchers, CLIs and HTTP libraries
	DeviceTypeBot = "bot"

	// DeviceTypeDesktop identifies desktop computers and laptops
	DeviceTypeDesktop = "desktop"

	// DeviceTypeUnknown is used when the device type cannot be determined
	DeviceTypeUnknown = "unknown"

	DeviceTypeMobile   = uaparser.DeviceTypeMobile
	DeviceTypeTablet   = uaparser.DeviceTypeTablet
	DeviceTypeTV       = uaparser.DeviceTypeSmartTV
	DeviceTypeConsole  = uaparser.DeviceTypeConsole
	DeviceTypeWearable = uaparser.DeviceTypeWearable
	DeviceTypeEmbedded = uaparser.DeviceTypeEmbedded
	DeviceTypeXR       = uaparser.DeviceTypeXR
)

// DefaultCacheSize is the number of classified user agents a Classifier
// remembers unless WithCacheSize says otherwise.
const DefaultCacheSize = 1024

// botTypes are browser types assigned to automated clients.
var botTypes = map[string]bool{
	uaparser.BrowserTypeCrawler: true,
	uaparser.BrowserTypeFetcher: true,
	uaparser.BrowserTypeCLI:     true,
	uaparser.BrowserTypeLibrary: true,
}

// desktopOS lists lower-cased OS names that imply a desktop when the device
// carries no type of its own.
var desktopOS = map[string]bool{
	"windows":   true,
	"macos":     true,
	"chrome os": true,
	"linux":     true,
	"ubuntu":    true,
	"kubuntu":   true,
	"xubuntu":   true,
	"lubuntu":   true,
	"debian":    true,
	"fedora":    true,
	"mint":      true,
	"opensuse":  true,
	"suse":      true,
	"centos":    true,
	"arch":      true,
	"gentoo":    true,
	"manjaro":   true,
	"freebsd":   true,
	"openbsd":   true,
	"netbsd":    true,
	"solaris":   true,
	"haiku":     true,
}
