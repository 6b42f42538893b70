package uaparser_test

import (
	"strings"
	"testing"

	"github.com/dmitrymomot/uaparser/pkg/uaparser"
	"github.com/dmitrymomot/uaparser/pkg/uaparser/extensions"
)

var benchResult uaparser.Result

func BenchmarkParse_ChromeDesktop(b *testing.B) {
	b.ReportAllocs()
	p := uaparser.New(uaparser.WithUA(chromeDesktopUA))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchResult = p.Result()
	}
}

func BenchmarkParse_SafariMobile(b *testing.B) {
	b.ReportAllocs()
	p := uaparser.New(uaparser.WithUA(safariMobileUA))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchResult = p.Result()
	}
}

func BenchmarkParse_Bots(b *testing.B) {
	b.ReportAllocs()
	p := uaparser.New(uaparser.WithUA(facebookBotUA), uaparser.WithExtension(extensions.Bots))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchResult = p.Result()
	}
}

// Pathological input: long runs of characters that most patterns can start
// matching on. Time must stay linear in the input length.
func BenchmarkParse_Adversarial(b *testing.B) {
	b.ReportAllocs()
	p := uaparser.New(uaparser.WithUA(strings.Repeat("android; droid ", 40)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchResult = p.Result()
	}
}
