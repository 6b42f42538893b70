package uaparser_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/uaparser/pkg/uaparser"
)

func TestResultString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Chrome 91.0", uaparser.Browser{Name: "Chrome", Version: "91.0", Major: "91"}.String())
	assert.Equal(t, "Chrome", uaparser.Browser{Name: "Chrome"}.String())
	assert.Equal(t, "", uaparser.Browser{}.String())
	assert.Equal(t, "amd64", uaparser.CPU{Architecture: "amd64"}.String())
	assert.Equal(t, "Apple iPhone", uaparser.Device{Vendor: "Apple", Model: "iPhone", Type: "mobile"}.String())
	assert.Equal(t, "Blink 91.0", uaparser.Engine{Name: "Blink", Version: "91.0"}.String())
	assert.Equal(t, "Mac OS", uaparser.OS{Name: "Mac OS"}.String())
}

func TestResultIs(t *testing.T) {
	t.Parallel()

	b := uaparser.Browser{Name: "Mobile Safari", Version: "14.0", Major: "14"}
	assert.True(t, b.Is("mobile safari"))
	assert.True(t, b.Is("MobileSafari"))
	assert.True(t, b.Is("14"))
	assert.False(t, b.Is("safari"))
	assert.False(t, b.Is(""))
	assert.False(t, uaparser.Browser{}.Is(""))

	assert.True(t, uaparser.Device{Type: uaparser.DeviceTypeMobile}.Is("Mobile"))
	assert.True(t, uaparser.OS{Name: "Chrome OS"}.Is("chromeos"))
	assert.True(t, uaparser.CPU{Architecture: "arm64"}.Is("ARM64"))
	assert.True(t, uaparser.Engine{Name: "Blink"}.Is("blink"))
}

func TestResultJSON(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(uaparser.Result{
		UA:      "Wget/1.21.1",
		Browser: uaparser.Browser{Name: "Wget", Version: "1.21.1", Major: "1", Type: "cli"},
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"ua": "Wget/1.21.1",
		"browser": {"name": "Wget", "version": "1.21.1", "major": "1", "type": "cli"},
		"cpu": {}, "device": {}, "engine": {}, "os": {}
	}`, string(data))
}
