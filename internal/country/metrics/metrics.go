package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds Prometheus metrics for the country query and refresh paths.
type Metrics struct {
	CacheHits       *prometheus.CounterVec
	CacheMisses     *prometheus.CounterVec
	LookupDuration  *prometheus.HistogramVec
	RefreshTotal    prometheus.Counter
	RefreshFailures prometheus.Counter
	RefreshDuration prometheus.Histogram
}

// New creates and registers all country metrics.
func New() *Metrics {
	return &Metrics{
		CacheHits: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "atlas_country_cache_hits_total",
			Help: "Total cache hits, labeled by view",
		}, []string{"view"}),
		CacheMisses: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "atlas_country_cache_misses_total",
			Help: "Total cache misses, labeled by view",
		}, []string{"view"}),
		LookupDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "atlas_country_cache_lookup_duration_seconds",
			Help:    "Duration of cache lookups, labeled by view",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"view"}),
		RefreshTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "atlas_country_refresh_total",
			Help: "Total number of dataset refreshes",
		}),
		RefreshFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "atlas_country_refresh_failures_total",
			Help: "Total number of failed dataset refreshes",
		}),
		RefreshDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "atlas_country_refresh_duration_seconds",
			Help:    "Duration of dataset refreshes",
			Buckets: []float64{0.5, 1, 2.5, 5, 10, 30, 60},
		}),
	}
}

// RecordCacheHit increments the hit counter for the given view.
func (m *Metrics) RecordCacheHit(view string) {
	m.CacheHits.WithLabelValues(view).Inc()
}

// RecordCacheMiss increments the miss counter for the given view.
func (m *Metrics) RecordCacheMiss(view string) {
	m.CacheMisses.WithLabelValues(view).Inc()
}

// ObserveLookupDuration records a cache lookup duration for the given view.
func (m *Metrics) ObserveLookupDuration(view string, seconds float64) {
	m.LookupDuration.WithLabelValues(view).Observe(seconds)
}

// ObserveRefresh records a completed refresh.
func (m *Metrics) ObserveRefresh(start time.Time, err error) {
	m.RefreshTotal.Inc()
	if err != nil {
		m.RefreshFailures.Inc()
	}
	m.RefreshDuration.Observe(time.Since(start).Seconds())
}
