// Package metrics holds the dedicated Prometheus registry and the
// engine-level collectors.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	// Registry is the dedicated Prometheus registry for the service
	Registry = prometheus.NewRegistry()

	// OptimizeRequests counts optimize calls by outcome
	// (computed, cached, invalid, error)
	OptimizeRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "optimize_requests_total", Help: "Optimize requests by outcome."},
		[]string{"outcome"},
	)

	// CacheEvents counts result-cache lookups by event (hit, miss)
	CacheEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "optimize_cache_events_total", Help: "Result cache lookups by event."},
		[]string{"event"},
	)

	// OptimizeDuration records full optimize-call durations in seconds
	OptimizeDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{Name: "optimize_duration_seconds", Help: "Optimize call duration in seconds.", Buckets: prometheus.DefBuckets},
	)
)

var regOnce sync.Once

// RegisterDefault registers all collectors on the service registry.
func RegisterDefault() {
	regOnce.Do(func() {
		Registry.MustRegister(OptimizeRequests)
		Registry.MustRegister(CacheEvents)
		Registry.MustRegister(OptimizeDuration)
		// Go/process collectors on our registry
		Registry.MustRegister(collectors.NewGoCollector())
		Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	})
}
