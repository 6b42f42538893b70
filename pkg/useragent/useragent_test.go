package useragent_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/uaparser/pkg/uaparser"
	"github.com/dmitrymomot/uaparser/pkg/uaparser/extensions"
	"github.com/dmitrymomot/uaparser/pkg/useragent"
)

const (
	chromeDesktopUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
	safariMobileUA  = "Mozilla/5.0 (iPhone; CPU iPhone OS 14_4 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/14.0 Mobile/15E148 Safari/604.1"
	androidPixelUA  = "Mozilla/5.0 (Linux; Android 11; Pixel 5) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Mobile Safari/537.36"
	firefoxLinuxUA  = "Mozilla/5.0 (X11; Ubuntu; Linux x86_64; rv:89.0) Gecko/20100101 Firefox/89.0"
	googlebotUA     = "Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)"
	curlUA          = "curl/7.88.1"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		ua         string
		deviceType string
		isBot      bool
		isMobile   bool
		isDesktop  bool
		short      string
	}{
		{
			name:       "Chrome on Windows",
			ua:         chromeDesktopUA,
			deviceType: useragent.DeviceTypeDesktop,
			isDesktop:  true,
			short:      "Chrome/91.0.4472 (Windows, desktop)",
		},
		{
			name:       "Safari on iPhone",
			ua:         safariMobileUA,
			deviceType: useragent.DeviceTypeMobile,
			isMobile:   true,
			short:      "Mobile Safari/14.0 (iOS, mobile)",
		},
		{
			name:       "Chrome on Pixel",
			ua:         androidPixelUA,
			deviceType: useragent.DeviceTypeMobile,
			isMobile:   true,
			short:      "Mobile Chrome/91.0.4472 (Android, mobile)",
		},
		{
			name:       "Firefox on Ubuntu",
			ua:         firefoxLinuxUA,
			deviceType: useragent.DeviceTypeDesktop,
			isDesktop:  true,
			short:      "Firefox/89.0 (Ubuntu, desktop)",
		},
		{
			name:       "Googlebot",
			ua:         googlebotUA,
			deviceType: useragent.DeviceTypeBot,
			isBot:      true,
			short:      "Bot: Googlebot",
		},
		{
			name:       "curl",
			ua:         curlUA,
			deviceType: useragent.DeviceTypeBot,
			isBot:      true,
			short:      "Bot: Curl",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ua, err := useragent.Parse(tc.ua)
			require.NoError(t, err)
			assert.Equal(t, tc.ua, ua.String())
			assert.Equal(t, tc.deviceType, ua.DeviceType())
			assert.Equal(t, tc.isBot, ua.IsBot())
			assert.Equal(t, tc.isMobile, ua.IsMobile())
			assert.Equal(t, tc.isDesktop, ua.IsDesktop())
			assert.Equal(t, tc.short, ua.GetShortIdentifier())
		})
	}
}

func TestParse_Empty(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"", "   "} {
		ua, err := useragent.Parse(in)
		assert.ErrorIs(t, err, useragent.ErrEmptyUserAgent)
		assert.Equal(t, uaparser.Result{}, ua.Result())
		assert.True(t, ua.IsUnknown())
		assert.Equal(t, "Unknown device", ua.GetShortIdentifier())
	}
}

func TestUserAgentAccessors(t *testing.T) {
	t.Parallel()

	ua, err := useragent.Parse(safariMobileUA)
	require.NoError(t, err)

	assert.Equal(t, "Mobile Safari", ua.BrowserName())
	assert.Equal(t, "14.0", ua.BrowserVer())
	assert.Equal(t, "14", ua.Browser().Major)
	assert.Equal(t, "iOS", ua.OSName())
	assert.Equal(t, "14.4", ua.OS().Version)
	assert.Equal(t, "iPhone", ua.DeviceModel())
	assert.Equal(t, "Apple", ua.Device().Vendor)
	assert.Equal(t, "WebKit", ua.Engine().Name)
	assert.Empty(t, ua.CPU().Architecture)
	assert.False(t, ua.IsTablet())
	assert.False(t, ua.IsTV())
	assert.False(t, ua.IsConsole())
	assert.False(t, ua.IsWearable())
	assert.False(t, ua.IsEmbedded())
}

func TestClassifier_RuleSets(t *testing.T) {
	t.Parallel()

	t.Run("override replaces default browsers", func(t *testing.T) {
		t.Parallel()
		c, err := useragent.NewClassifier(useragent.WithRuleSets(extensions.Libraries))
		require.NoError(t, err)

		ua, err := c.Parse(chromeDesktopUA)
		require.NoError(t, err)
		assert.Empty(t, ua.BrowserName())
		assert.Equal(t, "Windows", ua.OSName())
	})

	t.Run("layered keeps default browsers", func(t *testing.T) {
		t.Parallel()
		c, err := useragent.NewClassifier(useragent.WithLayered(extensions.Libraries))
		require.NoError(t, err)

		ua, err := c.Parse(chromeDesktopUA)
		require.NoError(t, err)
		assert.Equal(t, "Chrome", ua.BrowserName())

		ua, err = c.Parse("axios/1.3.5")
		require.NoError(t, err)
		assert.True(t, ua.IsBot())
		assert.Equal(t, "Bot: Axios", ua.GetShortIdentifier())
	})

	t.Run("vehicles", func(t *testing.T) {
		t.Parallel()
		c, err := useragent.NewClassifier(useragent.WithLayered(extensions.Vehicles))
		require.NoError(t, err)

		ua, err := c.Parse("Mozilla/5.0 (Linux; Android 10; DiLink3.0 BYD Auto) AppleWebKit/537.36")
		require.NoError(t, err)
		assert.True(t, ua.IsEmbedded())
		assert.Equal(t, useragent.DeviceTypeEmbedded, ua.DeviceType())
	})

	t.Run("unsafe rules are rejected", func(t *testing.T) {
		t.Parallel()
		_, err := useragent.NewClassifier(useragent.WithRuleSets(uaparser.RuleSet{
			uaparser.CategoryOS: {uaparser.NewRule(`(a+)+$`, nil)},
		}))
		assert.ErrorIs(t, err, useragent.ErrInvalidRuleSets)
		assert.ErrorIs(t, err, uaparser.ErrUnsafePattern)
	})
}

func TestClassifier_Cache(t *testing.T) {
	t.Parallel()

	c, err := useragent.NewClassifier(useragent.WithCacheSize(2))
	require.NoError(t, err)

	first, err := c.Parse(chromeDesktopUA)
	require.NoError(t, err)
	again, err := c.Parse(chromeDesktopUA)
	require.NoError(t, err)
	assert.Equal(t, first, again)
	assert.Equal(t, 1, c.Cached())

	for _, s := range []string{safariMobileUA, firefoxLinuxUA, androidPixelUA} {
		_, err := c.Parse(s)
		require.NoError(t, err)
	}
	assert.Equal(t, 2, c.Cached(), "oldest entries are evicted")

	_, err = c.Parse("")
	require.ErrorIs(t, err, useragent.ErrEmptyUserAgent)
	assert.Equal(t, 2, c.Cached(), "empty input is never cached")
}

func TestClassifier_CacheDisabled(t *testing.T) {
	t.Parallel()

	c, err := useragent.NewClassifier(useragent.WithCacheSize(0))
	require.NoError(t, err)

	ua, err := c.Parse(firefoxLinuxUA)
	require.NoError(t, err)
	assert.Equal(t, "Firefox", ua.BrowserName())
	assert.Zero(t, c.Cached())
}

func TestClassifier_Concurrent(t *testing.T) {
	t.Parallel()

	c, err := useragent.NewClassifier(useragent.WithCacheSize(4))
	require.NoError(t, err)

	uas := []string{chromeDesktopUA, safariMobileUA, androidPixelUA, firefoxLinuxUA, googlebotUA, curlUA}
	done := make(chan struct{})
	for i := range 8 {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := range 50 {
				_, _ = c.Parse(uas[(i+j)%len(uas)])
			}
		}()
	}
	for range 8 {
		<-done
	}

	ua, err := c.Parse(safariMobileUA)
	require.NoError(t, err)
	assert.Equal(t, "Mobile Safari", ua.BrowserName())
	assert.LessOrEqual(t, c.Cached(), 4)
}
