package providers

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"mindcare/internal/structures"
	"time"
)

type MetricsProviderInterface interface {
	IncRequestsTotal(endpoint string, status int)
	ObserveRequestDuration(endpoint string, duration time.Duration)
	IncCacheHits()
	IncCacheMisses()
	ObserveLLMDuration(duration time.Duration, failed bool)
	IncCrisisDetected()
	ObservePersistenceDuration(duration time.Duration)
}

// RecordCounter reports the number of stored records per table.
type RecordCounter interface {
	Counts() map[string]int
}

type MetricsProvider struct {
	requestsTotal       *prometheus.CounterVec
	requestDuration     *prometheus.HistogramVec
	cacheHits           prometheus.Counter
	cacheMisses         prometheus.Counter
	llmDuration         *prometheus.HistogramVec
	crisisDetected      prometheus.Counter
	persistenceDuration prometheus.Histogram
}

func (m *MetricsProvider) IncRequestsTotal(endpoint string, status int) {
	m.requestsTotal.WithLabelValues(endpoint, httpStatusBucket(status)).Inc()
}

func (m *MetricsProvider) ObserveRequestDuration(endpoint string, duration time.Duration) {
	m.requestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *MetricsProvider) IncCacheHits() {
	m.cacheHits.Inc()
}

func (m *MetricsProvider) IncCacheMisses() {
	m.cacheMisses.Inc()
}

func (m *MetricsProvider) ObserveLLMDuration(duration time.Duration, failed bool) {
	outcome := "ok"
	if failed {
		outcome = "error"
	}
	m.llmDuration.WithLabelValues(outcome).Observe(duration.Seconds())
}

func (m *MetricsProvider) IncCrisisDetected() {
	m.crisisDetected.Inc()
}

func (m *MetricsProvider) ObservePersistenceDuration(duration time.Duration) {
	m.persistenceDuration.Observe(duration.Seconds())
}

func httpStatusBucket(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

func NewMetricsProvider(conf *structures.Config, counter RecordCounter) MetricsProviderInterface {
	if !conf.Metrics.Enabled {
		return &noopMetrics{}
	}

	m := &MetricsProvider{
		requestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "mindcare_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"endpoint", "status"}),

		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "mindcare_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),

		cacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "mindcare_token_cache_hits_total",
			Help: "Total number of token cache hits",
		}),

		cacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "mindcare_token_cache_misses_total",
			Help: "Total number of token cache misses",
		}),

		llmDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "mindcare_llm_duration_seconds",
			Help:    "Duration of LLM completion calls in seconds",
			Buckets: []float64{0.25, 0.5, 1, 2, 5, 10, 30, 60},
		}, []string{"outcome"}),

		crisisDetected: promauto.NewCounter(prometheus.CounterOpts{
			Name: "mindcare_crisis_detected_total",
			Help: "Total number of chat messages that triggered the crisis response",
		}),

		persistenceDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "mindcare_persistence_duration_seconds",
			Help:    "Duration of snapshot operations in seconds",
			Buckets: prometheus.DefBuckets,
		}),
	}

	for _, table := range []string{"users", "moods", "journal", "medications", "reminders", "chat", "feedback"} {
		table := table
		promauto.NewGaugeFunc(prometheus.GaugeOpts{
			Name:        "mindcare_records_total",
			Help:        "Total number of stored records per table",
			ConstLabels: prometheus.Labels{"table": table},
		}, func() float64 {
			return float64(counter.Counts()[table])
		})
	}

	return m
}

// noopMetrics is a no-op implementation for when metrics are disabled.
type noopMetrics struct{}

func (n *noopMetrics) IncRequestsTotal(_ string, _ int)                 {}
func (n *noopMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (n *noopMetrics) IncCacheHits()                                    {}
func (n *noopMetrics) IncCacheMisses()                                  {}
func (n *noopMetrics) ObserveLLMDuration(_ time.Duration, _ bool)       {}
func (n *noopMetrics) IncCrisisDetected()                               {}
func (n *noopMetrics) ObservePersistenceDuration(_ time.Duration)       {}
