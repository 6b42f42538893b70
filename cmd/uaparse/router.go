package main

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/uaparser/pkg/clientip"
	"github.com/dmitrymomot/uaparser/pkg/httpserver"
	"github.com/dmitrymomot/uaparser/pkg/logger"
	"github.com/dmitrymomot/uaparser/pkg/metrics"
	"github.com/dmitrymomot/uaparser/pkg/ratelimiter"
	"github.com/dmitrymomot/uaparser/pkg/requestid"
	"github.com/dmitrymomot/uaparser/pkg/uaparser/extensions"
	"github.com/dmitrymomot/uaparser/pkg/useragent"
)

const (
	maxBatchSize = 100
	maxBodyBytes = 1 << 20

	// probeUA must classify to a named browser for the readiness check to pass.
	probeUA = "Mozilla/5.0 (X11; Linux x86_64; rv:120.0) Gecko/20100101 Firefox/120.0"
)

var (
	errMissingUserAgent = errors.New("user agent is required")
	errBatchTooLarge    = errors.New("too many user agents in one request")
	errInvalidBody      = errors.New("invalid request body")
	errProbeFailed      = errors.New("probe user agent was not classified")
)

type batchRequest struct {
	UserAgents []string `json:"user_agents"`
}

type batchResponse struct {
	Results []Classification `json:"results"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type bundlesResponse struct {
	Bundles  []string `json:"bundles"`
	Enabled  []string `json:"enabled"`
	Layered  bool     `json:"layered"`
	RuleFile string   `json:"rule_file,omitempty"`
}

type api struct {
	classifier useragent.Parser
	metrics    *metrics.Collector
	cfg        Config
	log        *slog.Logger
}

// routerDeps collects what the HTTP API needs. Metrics and Limiter are
// optional.
type routerDeps struct {
	Classifier useragent.Parser
	Metrics    *metrics.Collector
	Limiter    *ratelimiter.Bucket
	Config     Config
	Log        *slog.Logger
}

func newRouter(d routerDeps) http.Handler {
	a := &api{
		classifier: d.Classifier,
		metrics:    d.Metrics,
		cfg:        d.Config,
		log:        d.Log.With(logger.Component("api")),
	}

	r := chi.NewRouter()
	r.Use(
		requestid.Middleware,
		clientip.Middleware,
		middleware.Recoverer,
		useragent.Middleware(d.Classifier),
		a.accessLog,
	)

	r.Get("/healthz", httpserver.HealthCheckHandler(d.Log))
	r.Get("/readyz", httpserver.HealthCheckHandler(d.Log, a.probe))
	if d.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", d.Metrics.Handler())
	}

	r.Route("/v1", func(r chi.Router) {
		if d.Limiter != nil {
			r.Use(ratelimiter.Middleware(d.Limiter, clientKey, d.Log))
		}
		r.Get("/classify", a.classifyOne)
		r.Post("/classify", a.classifyBatch)
		r.Get("/bundles", a.bundles)
	})

	return r
}

func clientKey(r *http.Request) string { return clientip.FromContext(r.Context()) }

// classifyOne classifies ?ua= or, without it, the caller's own User-Agent.
func (a *api) classifyOne(w http.ResponseWriter, r *http.Request) {
	if s := r.URL.Query().Get("ua"); s != "" {
		ua, err := a.classifier.Parse(s)
		if err != nil {
			a.fail(w, r, http.StatusBadRequest, errMissingUserAgent)
			return
		}
		writeJSON(w, http.StatusOK, a.classification(ua))
		return
	}

	ua, ok := useragent.FromContext(r.Context())
	if !ok || ua.UserAgent() == "" {
		a.fail(w, r, http.StatusBadRequest, errMissingUserAgent)
		return
	}
	writeJSON(w, http.StatusOK, a.classification(ua))
}

func (a *api) classifyBatch(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		a.fail(w, r, http.StatusBadRequest, errors.Join(errInvalidBody, err))
		return
	}
	if len(req.UserAgents) == 0 {
		a.fail(w, r, http.StatusBadRequest, errMissingUserAgent)
		return
	}
	if len(req.UserAgents) > maxBatchSize {
		a.fail(w, r, http.StatusRequestEntityTooLarge, errBatchTooLarge)
		return
	}

	resp := batchResponse{Results: make([]Classification, 0, len(req.UserAgents))}
	for _, s := range req.UserAgents {
		// Blank entries keep their position with an empty classification.
		ua, _ := a.classifier.Parse(s)
		resp.Results = append(resp.Results, a.classification(ua))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (a *api) bundles(w http.ResponseWriter, _ *http.Request) {
	enabled := a.cfg.Extensions
	if enabled == nil {
		enabled = []string{}
	}
	writeJSON(w, http.StatusOK, bundlesResponse{
		Bundles:  extensions.Names(),
		Enabled:  enabled,
		Layered:  a.cfg.Layered,
		RuleFile: a.cfg.RulesFile,
	})
}

func (a *api) classification(ua useragent.UserAgent) Classification {
	c := newClassification(ua)
	if a.metrics != nil && c.UA != "" {
		a.metrics.ObserveClassification(c.DeviceType, c.Bot)
	}
	return c
}

func (a *api) probe(context.Context) error {
	ua, err := a.classifier.Parse(probeUA)
	if err != nil {
		return err
	}
	if ua.BrowserName() == "" {
		return errProbeFailed
	}
	return nil
}

func (a *api) fail(w http.ResponseWriter, r *http.Request, code int, err error) {
	a.log.DebugContext(r.Context(), "request rejected", slog.Int("status", code), logger.Error(err))
	msg := err.Error()
	if errors.Is(err, errInvalidBody) {
		msg = errInvalidBody.Error()
	}
	writeJSON(w, code, errorResponse{Error: msg})
}

func (a *api) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		elapsed := time.Since(start)
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		if a.metrics != nil {
			var route string
			if rc := chi.RouteContext(r.Context()); rc != nil {
				route = rc.RoutePattern()
			}
			a.metrics.ObserveRequest(route, r.Method, status, elapsed)
		}
		a.log.InfoContext(r.Context(), "request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", status),
			logger.Duration(elapsed),
		)
	})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
