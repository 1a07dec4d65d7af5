package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "setback_requests_total",
		Help: "Total number of /buildable-area requests",
	})
	RequestDurationMs = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "setback_request_duration_ms",
		Help:    "Request duration in milliseconds",
		Buckets: []float64{1, 5, 10, 20, 50, 100, 200, 500, 1000},
	})
	// Per-method counter so operators can audit how often approximate
	// results are served versus exact ones.
	CalculationMethodTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "setback_calculation_method_total",
		Help: "Results by calculation method tag",
	}, []string{"method"})
	ValidationErrorsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "setback_validation_errors_total",
		Help: "Requests rejected before any geometry ran",
	})
	CacheHitsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "setback_cache_hits_total",
		Help: "Total result cache hits",
	})
	CacheMissesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "setback_cache_misses_total",
		Help: "Total result cache misses",
	})
)

func init() {
	prometheus.MustRegister(RequestsTotal)
	prometheus.MustRegister(RequestDurationMs)
	prometheus.MustRegister(CalculationMethodTotal)
	prometheus.MustRegister(ValidationErrorsTotal)
	prometheus.MustRegister(CacheHitsTotal)
	prometheus.MustRegister(CacheMissesTotal)
}

// Handler exposes the default Prometheus registry.
func Handler() http.Handler { return promhttp.Handler() }
