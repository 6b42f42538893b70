package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Namespace prefixes every metric name.
const Namespace = "uaparse"

// Collector owns a private registry with the classification service metrics.
type Collector struct {
	registry *prometheus.Registry

	classifications *prometheus.CounterVec
	requests        *prometheus.CounterVec
	duration        *prometheus.HistogramVec
	reloads         *prometheus.CounterVec
}

// NewCollector registers all metrics on a fresh registry.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		classifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "classifications_total",
			Help:      "User agents classified, by derived device type and bot flag.",
		}, []string{"device_type", "bot"}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests served, by route pattern, method and status.",
		}, []string{"route", "method", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by route pattern.",
			Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .5},
		}, []string{"route"}),
		reloads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "rule_reloads_total",
			Help:      "Rule file reloads, by result.",
		}, []string{"result"}),
	}
	c.registry.MustRegister(c.classifications, c.requests, c.duration, c.reloads)
	return c
}

// ObserveClassification counts one classified user agent.
func (c *Collector) ObserveClassification(deviceType string, bot bool) {
	c.classifications.WithLabelValues(deviceType, strconv.FormatBool(bot)).Inc()
}

// ObserveRequest records one served HTTP request. route should be the router
// pattern, not the raw path, to keep label cardinality bounded.
func (c *Collector) ObserveRequest(route, method string, status int, d time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	c.requests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	c.duration.WithLabelValues(route).Observe(d.Seconds())
}

// ObserveReload counts a rule file reload attempt.
func (c *Collector) ObserveReload(err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	c.reloads.WithLabelValues(result).Inc()
}

// Registry exposes the underlying registry, mainly for tests and for adding
// process collectors.
func (c *Collector) Registry() *prometheus.Registry { return c.registry }

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
		ErrorHandling:     promhttp.ContinueOnError,
	})
}
