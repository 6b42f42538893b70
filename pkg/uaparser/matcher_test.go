package uaparser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/uaparser/pkg/uaparser"
)

func literalName(name string) uaparser.Template {
	return uaparser.Template{uaparser.Bind(uaparser.FieldName, uaparser.Literal(name))}
}

func TestRuleTableClassify(t *testing.T) {
	t.Parallel()

	table := uaparser.RuleTable{
		uaparser.NewRule(`(?i)bot`, literalName("generic")),
		uaparser.NewRule(`(?i)googlebot`, literalName("google")),
	}

	t.Run("first match wins over a more specific rule", func(t *testing.T) {
		t.Parallel()
		f, ok := table.Classify("Googlebot/2.1")
		assert.True(t, ok)
		assert.Equal(t, "generic", f.Get(uaparser.FieldName))
	})

	t.Run("reordering changes the winner", func(t *testing.T) {
		t.Parallel()
		reversed := uaparser.RuleTable{table[1], table[0]}
		f, ok := reversed.Classify("Googlebot/2.1")
		assert.True(t, ok)
		assert.Equal(t, "google", f.Get(uaparser.FieldName))
	})

	t.Run("no match yields undefined fields", func(t *testing.T) {
		t.Parallel()
		f, ok := table.Classify("Mozilla/5.0")
		assert.False(t, ok)
		assert.Empty(t, f)
	})

	t.Run("matched empty template stops the search", func(t *testing.T) {
		t.Parallel()
		withEmpty := uaparser.RuleTable{
			uaparser.NewRule(`(?i)bot`, nil),
			uaparser.NewRule(`(?i)googlebot`, literalName("google")),
		}
		f, ok := withEmpty.Classify("Googlebot/2.1")
		assert.True(t, ok)
		assert.Empty(t, f)
	})

	t.Run("nil table", func(t *testing.T) {
		t.Parallel()
		var empty uaparser.RuleTable
		f, ok := empty.Classify("Googlebot/2.1")
		assert.False(t, ok)
		assert.Empty(t, f)
	})
}

func TestRuleTableClassify_Deterministic(t *testing.T) {
	t.Parallel()

	defaults := uaparser.Defaults()
	for _, ua := range []string{chromeDesktopUA, safariMobileUA, androidPixelUA, firefoxLinuxUA, ""} {
		for _, cat := range uaparser.Categories {
			first, _ := defaults[cat].Classify(ua)
			for range 3 {
				again, _ := defaults[cat].Classify(ua)
				assert.Equal(t, first, again)
			}
		}
	}
}
