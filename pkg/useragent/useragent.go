package useragent

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/uaparser/pkg/uaparser"
)

// UserAgent is a classified User-Agent string.
type UserAgent struct {
	result uaparser.Result
}

// String returns the user agent as a string
func (ua UserAgent) String() string { return ua.result.UA }

// UserAgent returns the (normalised) user agent string
func (ua UserAgent) UserAgent() string { return ua.result.UA }

// Result returns the full classification.
func (ua UserAgent) Result() uaparser.Result { return ua.result }

func (ua UserAgent) Browser() uaparser.Browser { return ua.result.Browser }
func (ua UserAgent) CPU() uaparser.CPU         { return ua.result.CPU }
func (ua UserAgent) Device() uaparser.Device   { return ua.result.Device }
func (ua UserAgent) Engine() uaparser.Engine   { return ua.result.Engine }
func (ua UserAgent) OS() uaparser.OS           { return ua.result.OS }

// BrowserName returns the browser name
func (ua UserAgent) BrowserName() string { return ua.result.Browser.Name }

// BrowserVer returns the browser version
func (ua UserAgent) BrowserVer() string { return ua.result.Browser.Version }

// OSName returns the operating system name
func (ua UserAgent) OSName() string { return ua.result.OS.Name }

// DeviceModel returns the specific device model if available
func (ua UserAgent) DeviceModel() string { return ua.result.Device.Model }

// DeviceType returns the classified device type. Without one it falls back to
// bot for automated clients, desktop for desktop operating systems and
// unknown otherwise.
func (ua UserAgent) DeviceType() string {
	switch {
	case ua.result.Device.Type != "":
		return ua.result.Device.Type
	case ua.IsBot():
		return DeviceTypeBot
	case desktopOS[strings.ToLower(ua.result.OS.Name)]:
		return DeviceTypeDesktop
	}
	return DeviceTypeUnknown
}

// IsBot returns true for crawlers, fetchers, CLIs and HTTP libraries
func (ua UserAgent) IsBot() bool { return botTypes[ua.result.Browser.Type] }

// IsMobile returns true if the user agent is a mobile device
func (ua UserAgent) IsMobile() bool { return ua.result.Device.Type == DeviceTypeMobile }

// IsTablet returns true if the user agent is a tablet device
func (ua UserAgent) IsTablet() bool { return ua.result.Device.Type == DeviceTypeTablet }

// IsTV returns true if the user agent is a TV device
func (ua UserAgent) IsTV() bool { return ua.result.Device.Type == DeviceTypeTV }

// IsConsole returns true if the user agent is a gaming console
func (ua UserAgent) IsConsole() bool { return ua.result.Device.Type == DeviceTypeConsole }

func (ua UserAgent) IsWearable() bool { return ua.result.Device.Type == DeviceTypeWearable }

func (ua UserAgent) IsEmbedded() bool { return ua.result.Device.Type == DeviceTypeEmbedded }

// IsDesktop returns true when no device type was detected, the client is not
// a bot and the operating system is a desktop one.
func (ua UserAgent) IsDesktop() bool { return ua.DeviceType() == DeviceTypeDesktop }

// IsUnknown returns true if the device type cannot be determined
func (ua UserAgent) IsUnknown() bool { return ua.DeviceType() == DeviceTypeUnknown }

// GetShortIdentifier returns a short human-readable identifier for the session.
// Format: Browser/Version (OS, DeviceType), or Bot: Name for bots.
func (ua UserAgent) GetShortIdentifier() string {
	if ua.IsBot() {
		return "Bot: " + formatBotName(ua.BrowserName())
	}

	browser, osName, device := ua.BrowserName(), ua.OSName(), ua.DeviceType()
	switch {
	case browser == "" && osName == "" && device == DeviceTypeUnknown:
		return "Unknown device"
	case browser == "" && osName != "" && device != DeviceTypeUnknown:
		return fmt.Sprintf("%s %s", osName, device)
	case browser == "":
		browser = "Unknown"
	}

	if osName == "" {
		osName = "Unknown OS"
		if device == DeviceTypeUnknown {
			return fmt.Sprintf("%s/%s (%s)", browser, formatVersion(ua.BrowserVer()), osName)
		}
	}
	return fmt.Sprintf("%s/%s (%s, %s)", browser, formatVersion(ua.BrowserVer()), osName, device)
}

// formatBotName title-cases all lower-case names such as "curl".
func formatBotName(name string) string {
	switch {
	case name == "":
		return "Unknown Bot"
	case name == strings.ToLower(name):
		return cases.Title(language.English).String(name)
	}
	return name
}

// formatVersion shortens long dotted versions to ten bytes.
func formatVersion(version string) string {
	if version == "" {
		return "?"
	}
	if strings.Contains(version, ".") && len(version) > 10 {
		return strings.TrimRight(version[:10], ".")
	}
	return version
}
