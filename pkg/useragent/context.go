package useragent

import (
	"context"
	"log/slog"
	"net/http"
)

type userAgentContextKey struct{}

func SetToContext(ctx context.Context, ua UserAgent) context.Context {
	return context.WithValue(ctx, userAgentContextKey{}, ua)
}

// FromContext returns the UserAgent stored by Middleware or SetToContext.
func FromContext(ctx context.Context) (UserAgent, bool) {
	if ctx == nil {
		return UserAgent{}, false
	}
	ua, ok := ctx.Value(userAgentContextKey{}).(UserAgent)
	return ua, ok
}

// Parser is implemented by Classifier and Swappable.
type Parser interface {
	Parse(ua string) (UserAgent, error)
}

// Middleware classifies the request User-Agent header with c and stores the
// result in the request context. Requests without the header get an empty
// UserAgent.
func Middleware(c Parser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ua, _ := c.Parse(r.UserAgent())
			next.ServeHTTP(w, r.WithContext(SetToContext(r.Context(), ua)))
		})
	}
}

// LoggerExtractor returns a ContextExtractor for the logger that adds the
// short client identifier.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if ua, ok := FromContext(ctx); ok && ua.UserAgent() != "" {
			return slog.String("client", ua.GetShortIdentifier()), true
		}
		return slog.Attr{}, false
	}
}
