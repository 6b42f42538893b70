package uaparser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/uaparser/pkg/uaparser"
)

func TestRuleMatch(t *testing.T) {
	t.Parallel()

	r := uaparser.NewRule(`(?i)(wget)/([\w.]+)`, nil)

	groups, ok := r.Match("Wget/1.21.1")
	require.True(t, ok)
	assert.Equal(t, []string{"Wget/1.21.1", "Wget", "1.21.1"}, groups)

	groups, ok = r.Match("curl/8.0")
	assert.False(t, ok)
	assert.Nil(t, groups)

	_, ok = uaparser.Rule{}.Match("anything")
	assert.False(t, ok, "rule without pattern never matches")
}

func TestExtract(t *testing.T) {
	t.Parallel()

	groups := []string{"FooBot/1_2_ ", "FooBot", " 1_2_ ", ""}

	tests := []struct {
		name     string
		tmpl     uaparser.Template
		expected uaparser.Fields
	}{
		{
			name: "capture groups and literal",
			tmpl: uaparser.Template{
				uaparser.Bind(uaparser.FieldName, uaparser.Group(1)),
				uaparser.Bind(uaparser.FieldType, uaparser.Literal("crawler")),
			},
			expected: uaparser.Fields{uaparser.FieldName: "FooBot", uaparser.FieldType: "crawler"},
		},
		{
			name: "value is trimmed before transforms",
			tmpl: uaparser.Template{
				uaparser.Bind(uaparser.FieldVersion, uaparser.Group(2), uaparser.Version),
			},
			expected: uaparser.Fields{uaparser.FieldVersion: "1.2"},
		},
		{
			name: "group past the last capture is undefined",
			tmpl: uaparser.Template{
				uaparser.Bind(uaparser.FieldName, uaparser.Group(1)),
				uaparser.Bind(uaparser.FieldVersion, uaparser.Group(9)),
			},
			expected: uaparser.Fields{uaparser.FieldName: "FooBot"},
		},
		{
			name: "empty capture is undefined",
			tmpl: uaparser.Template{
				uaparser.Bind(uaparser.FieldModel, uaparser.Group(3), uaparser.Upper),
			},
			expected: uaparser.Fields{},
		},
		{
			name: "binding without field is skipped",
			tmpl: uaparser.Template{
				{},
				uaparser.Bind(uaparser.FieldName, uaparser.Group(1), uaparser.Lower),
			},
			expected: uaparser.Fields{uaparser.FieldName: "foobot"},
		},
		{
			name: "later binding overwrites earlier one",
			tmpl: uaparser.Template{
				uaparser.Bind(uaparser.FieldName, uaparser.Group(1)),
				uaparser.Bind(uaparser.FieldName, uaparser.Undefined()),
			},
			expected: uaparser.Fields{},
		},
		{
			name:     "empty template",
			tmpl:     nil,
			expected: uaparser.Fields{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, uaparser.Extract(groups, tc.tmpl))
		})
	}
}

func TestExtract_NoGroups(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() {
		f := uaparser.Extract(nil, uaparser.Template{
			uaparser.Bind(uaparser.FieldName, uaparser.Group(1)),
			uaparser.Bind(uaparser.FieldVersion, uaparser.Group(-1)),
		})
		assert.Empty(t, f)
	})
}

func TestTransforms(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		fn       uaparser.Transform
		in       string
		expected string
	}{
		{"alias hit", uaparser.Alias(map[string]string{"hbo": "HBO"}), "Hbo", "HBO"},
		{"alias miss", uaparser.Alias(map[string]string{"hbo": "HBO"}), "Sony", "Sony"},
		{"lookup substring", uaparser.Lookup(uaparser.LookupEntry{Value: "10", Tokens: []string{"10.0"}}), "NT 10.0", "10"},
		{"lookup miss", uaparser.Lookup(uaparser.LookupEntry{Value: "10", Tokens: []string{"10.0"}}), "NT 5.1", "NT 5.1"},
		{"replace", uaparser.Replace(`(.+)`, "$1 Browser"), "Huawei", "Huawei Browser"},
		{"version underscores", uaparser.Version, "10_15_7", "10.15.7"},
		{"version trailing separators", uaparser.Version, "1.2.", "1.2"},
		{"version keeps suffix", uaparser.Version, "4.0-beta", "4.0-beta"},
		{"title", uaparser.Title, "rIVIAN", "Rivian"},
		{"lower", uaparser.Lower, "ARM", "arm"},
		{"upper", uaparser.Upper, "byd", "BYD"},
		{"func", uaparser.Func(func(s string) string { return s + "!" }), "x", "x!"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, tc.fn(tc.in))
		})
	}
}
