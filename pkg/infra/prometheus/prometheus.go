package prometheus

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var registry = prometheus.NewRegistry()

var registerer prometheus.Registerer = registry

var (
	// Guard checks sit on the login hot path, so buckets are fine-grained
	// below 50ms.
	latencyBuckets = []float64{
		0.5, 1, 2.5, 5, 10, 25, 50, // store round-trips
		100, 250, 500, 1000, // degraded store
	}

	GuardDecisionsTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "authguard_decisions_total",
			Help: "Guard decisions by operation category and decision type",
		},
		[]string{"category", "decision"},
	)

	GuardCheckLatency = promauto.With(registerer).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "authguard_check_latency_ms",
			Help:    "Time spent evaluating guard checks in milliseconds",
			Buckets: latencyBuckets,
		},
		[]string{"category"},
	)

	StoreErrorsTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "authguard_store_errors_total",
			Help: "Store calls that failed, timed out or were short-circuited",
		},
		[]string{"store", "operation"},
	)

	FailuresRecordedTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "authguard_failures_recorded_total",
			Help: "Authentication failures observed from protected handlers",
		},
		[]string{"category"},
	)

	SecurityEventsDroppedTotal = promauto.With(registerer).NewCounter(
		prometheus.CounterOpts{
			Name: "authguard_security_events_dropped_total",
			Help: "Security events dropped because the dispatch buffer was full",
		},
	)
)

type MetricsConfig struct {
	Enabled bool
}

var Config MetricsConfig

func Initialize(cfg MetricsConfig) {
	Config = cfg
	registry.MustRegister(
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)

	prometheus.DefaultRegisterer = registry
	prometheus.DefaultGatherer = registry
}

func Handler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}
