package useragent_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/uaparser/pkg/useragent"
)

func TestMiddleware(t *testing.T) {
	t.Parallel()

	c, err := useragent.NewClassifier()
	require.NoError(t, err)

	var (
		got   useragent.UserAgent
		found bool
	)
	handler := useragent.Middleware(c)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, found = useragent.FromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	t.Run("with header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("User-Agent", firefoxLinuxUA)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		require.True(t, found)
		assert.Equal(t, "Firefox", got.BrowserName())
	})

	t.Run("without header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Del("User-Agent")

		handler.ServeHTTP(httptest.NewRecorder(), req)

		require.True(t, found)
		assert.Empty(t, got.UserAgent())
	})
}

func TestFromContext_Missing(t *testing.T) {
	t.Parallel()

	_, ok := useragent.FromContext(context.Background())
	assert.False(t, ok)
}

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()

	extract := useragent.LoggerExtractor()

	_, ok := extract(context.Background())
	assert.False(t, ok)

	ua, err := useragent.Parse(safariMobileUA)
	require.NoError(t, err)

	attr, ok := extract(useragent.SetToContext(context.Background(), ua))
	require.True(t, ok)
	assert.Equal(t, slog.String("client", "Mobile Safari/14.0 (iOS, mobile)"), attr)

	empty, _ := useragent.Parse("")
	_, ok = extract(useragent.SetToContext(context.Background(), empty))
	assert.False(t, ok, "blank user agents add nothing")
}
