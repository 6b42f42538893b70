package rulefile_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ua "github.com/dmitrymomot/uaparser/pkg/uaparser"
	"github.com/dmitrymomot/uaparser/pkg/uaparser/rulefile"
)

const acmeRules = `
name: acme
browser:
  - patterns:
      - '(?i)(acmebot)/([\w.]+)'
      - '(?i)(acmecrawler)_([\d_]+)'
    template:
      - {field: name, group: 1, transforms: [title]}
      - {field: version, group: 2, transforms: [version]}
      - {field: type, value: crawler}
os:
  - patterns: ['(?i)acmeos/(x|z)']
    template:
      - field: name
        group: 1
        transforms:
          - alias: {x: AcmeOS X, z: AcmeOS Z}
device:
  - patterns: ['(?i)acme-(tv[\w-]+)']
    template:
      - field: model
        group: 1
        transforms:
          - upper
          - replace: {pattern: '-', with: ' '}
      - {field: vendor, value: Acme}
      - {field: type, value: smarttv}
gadget:
  - patterns: ['.*']
    template: []
`

func TestLoad(t *testing.T) {
	t.Parallel()

	f, err := rulefile.Load(strings.NewReader(acmeRules))
	require.NoError(t, err)

	assert.Equal(t, "acme", f.Name)
	assert.Len(t, f.Rules[ua.CategoryBrowser], 2, "one rule per pattern")
	assert.NotContains(t, f.Rules, ua.Category("gadget"))

	tests := []struct {
		name  string
		ua    string
		check func(t *testing.T, r ua.Result)
	}{
		{
			name: "browser with version",
			ua:   "AcmeBot/2.4.",
			check: func(t *testing.T, r ua.Result) {
				assert.Equal(t, ua.Browser{Name: "Acmebot", Version: "2.4", Major: "2", Type: ua.BrowserTypeCrawler}, r.Browser)
			},
		},
		{
			name: "second pattern shares template",
			ua:   "acmecrawler_3_1",
			check: func(t *testing.T, r ua.Result) {
				assert.Equal(t, ua.Browser{Name: "Acmecrawler", Version: "3.1", Major: "3", Type: ua.BrowserTypeCrawler}, r.Browser)
			},
		},
		{
			name: "alias transform",
			ua:   "Mozilla/5.0 (AcmeOS/z)",
			check: func(t *testing.T, r ua.Result) {
				assert.Equal(t, ua.OS{Name: "AcmeOS Z"}, r.OS)
			},
		},
		{
			name: "chained transforms",
			ua:   "Mozilla/5.0 (acme-tv-55)",
			check: func(t *testing.T, r ua.Result) {
				assert.Equal(t, ua.Device{Vendor: "Acme", Model: "TV 55", Type: ua.DeviceTypeSmartTV}, r.Device)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			tc.check(t, ua.Parse(tc.ua, f.Rules))
		})
	}
}

func TestLoad_Empty(t *testing.T) {
	t.Parallel()

	f, err := rulefile.Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, f.Name)
	assert.Empty(t, f.Rules)
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		doc     string
		wantErr error
	}{
		{
			name:    "not a mapping",
			doc:     "- browser",
			wantErr: rulefile.ErrMalformedFile,
		},
		{
			name:    "category is not a list",
			doc:     "browser: nope",
			wantErr: rulefile.ErrMalformedFile,
		},
		{
			name: "unknown field",
			doc: `
browser:
  - patterns: ['x']
    template: [{field: colour, value: red}]`,
			wantErr: rulefile.ErrUnknownField,
		},
		{
			name: "group and value",
			doc: `
browser:
  - patterns: ['(x)']
    template: [{field: name, group: 1, value: X}]`,
			wantErr: rulefile.ErrAmbiguousSource,
		},
		{
			name: "zero group",
			doc: `
browser:
  - patterns: ['(x)']
    template: [{field: name, group: 0}]`,
			wantErr: rulefile.ErrInvalidGroup,
		},
		{
			name: "unknown transform",
			doc: `
browser:
  - patterns: ['(x)']
    template: [{field: name, group: 1, transforms: [reverse]}]`,
			wantErr: rulefile.ErrUnknownTransform,
		},
		{
			name: "empty transform mapping",
			doc: `
browser:
  - patterns: ['(x)']
    template: [{field: name, group: 1, transforms: [{}]}]`,
			wantErr: rulefile.ErrUnknownTransform,
		},
		{
			name: "no patterns",
			doc: `
browser:
  - template: [{field: name, value: X}]`,
			wantErr: rulefile.ErrNoPatterns,
		},
		{
			name: "bad regex",
			doc: `
os:
  - patterns: ['(unclosed']
    template: [{field: name, value: X}]`,
			wantErr: ua.ErrInvalidPattern,
		},
		{
			name: "bad replace regex",
			doc: `
os:
  - patterns: ['(x)']
    template: [{field: name, group: 1, transforms: [{replace: {pattern: '[', with: ''}}]}]`,
			wantErr: ua.ErrInvalidPattern,
		},
		{
			name: "unsafe regex",
			doc: `
os:
  - patterns: ['(a+)+$']
    template: [{field: name, value: X}]`,
			wantErr: ua.ErrUnsafePattern,
		},
		{
			name: "unsafe replace regex",
			doc: `
os:
  - patterns: ['(x)']
    template: [{field: name, group: 1, transforms: [{replace: {pattern: '(\w+)+$', with: ''}}]}]`,
			wantErr: ua.ErrUnsafePattern,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := rulefile.Load(strings.NewReader(tc.doc))
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "acme.yaml")
	require.NoError(t, os.WriteFile(path, []byte(acmeRules), 0o600))

	f, err := rulefile.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "acme", f.Name)
	require.NoError(t, ua.CheckRuleSet(f.Rules))

	_, err = rulefile.LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
