// Package prometheus provides Prometheus instrumentation for the cache
// pipeline.
package prometheus

import (
	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the cache pipeline counters. A nil *Metrics is a valid
// no-op receiver so instrumentation stays optional.
type Metrics struct {
	hits               *prom.CounterVec
	misses             *prom.CounterVec
	extractions        *prom.CounterVec
	extractionFailures *prom.CounterVec
	staleServes        *prom.CounterVec
	fallbackServes     *prom.CounterVec
}

// NewMetrics creates pipeline metrics registered with reg.
func NewMetrics(reg prom.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		hits: factory.NewCounterVec(prom.CounterOpts{
			Namespace: "meshmcp",
			Name:      "cache_hits_total",
			Help:      "Fresh cache entries served without extraction.",
		}, []string{"namespace"}),
		misses: factory.NewCounterVec(prom.CounterOpts{
			Namespace: "meshmcp",
			Name:      "cache_misses_total",
			Help:      "Lookups that required joining or starting an extraction.",
		}, []string{"namespace"}),
		extractions: factory.NewCounterVec(prom.CounterOpts{
			Namespace: "meshmcp",
			Name:      "extractions_total",
			Help:      "Successful live extractions installed into the cache.",
		}, []string{"namespace"}),
		extractionFailures: factory.NewCounterVec(prom.CounterOpts{
			Namespace: "meshmcp",
			Name:      "extraction_failures_total",
			Help:      "Failed extractions by error code.",
		}, []string{"namespace", "code"}),
		staleServes: factory.NewCounterVec(prom.CounterOpts{
			Namespace: "meshmcp",
			Name:      "stale_serves_total",
			Help:      "Prior entries served after a failed refresh.",
		}, []string{"namespace"}),
		fallbackServes: factory.NewCounterVec(prom.CounterOpts{
			Namespace: "meshmcp",
			Name:      "fallback_serves_total",
			Help:      "Static fallback table entries served.",
		}, []string{"namespace"}),
	}
}

// Hit records a fresh cache hit.
func (m *Metrics) Hit(namespace string) {
	if m == nil {
		return
	}
	m.hits.WithLabelValues(namespace).Inc()
}

// Miss records a lookup that could not be served from a fresh entry.
func (m *Metrics) Miss(namespace string) {
	if m == nil {
		return
	}
	m.misses.WithLabelValues(namespace).Inc()
}

// Extraction records a successful live extraction.
func (m *Metrics) Extraction(namespace string) {
	if m == nil {
		return
	}
	m.extractions.WithLabelValues(namespace).Inc()
}

// ExtractionFailure records a failed extraction.
func (m *Metrics) ExtractionFailure(namespace, code string) {
	if m == nil {
		return
	}
	m.extractionFailures.WithLabelValues(namespace, code).Inc()
}

// StaleServe records a stale entry served after a failed refresh.
func (m *Metrics) StaleServe(namespace string) {
	if m == nil {
		return
	}
	m.staleServes.WithLabelValues(namespace).Inc()
}

// FallbackServe records a fallback entry served.
func (m *Metrics) FallbackServe(namespace string) {
	if m == nil {
		return
	}
	m.fallbackServes.WithLabelValues(namespace).Inc()
}
