// Package metrics exposes Prometheus counters and histograms for the
// classification service: classifications by device type, HTTP traffic by
// route and rule file reloads. Every Collector uses its own registry so
// tests and multiple servers in one process never collide.
package metrics
