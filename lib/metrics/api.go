package metrics

import (
	"github.com/go-kit/kit/metrics"
	"github.com/go-kit/kit/metrics/discard"
	prometheus "github.com/go-kit/kit/metrics/prometheus"
	stdprometheus "github.com/prometheus/client_golang/prometheus"
)

const (
	CacheHit  = "hit"
	CacheMiss = "miss"
)

// APIMetrics covers the http API; the request metrics are labelled by the
// route template, so `/accounts/{id}/voter` is counted once for every
// account.
type APIMetrics struct {
	Requests        metrics.Counter
	RequestErrors   metrics.Counter
	RequestDuration metrics.Histogram
	CacheLookups    metrics.Counter
	OpenStreams     metrics.Gauge
}

func (c *APIMetrics) AddCacheLookup(hit bool) {
	result := CacheMiss
	if hit {
		result = CacheHit
	}
	c.CacheLookups.With("result", result).Add(1)
}

func (c *APIMetrics) OpenStream() {
	c.OpenStreams.Add(1)
}

func (c *APIMetrics) CloseStream() {
	c.OpenStreams.Add(-1)
}

func PromAPIMetrics() *APIMetrics {
	requestLabels := []string{"endpoint", "method", "status"}

	return &APIMetrics{
		Requests: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: APISubsystem,
			Name:      "requests_total",
			Help:      "Total number of requests.",
		}, requestLabels),
		RequestErrors: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: APISubsystem,
			Name:      "request_errors_total",
			Help:      "Total number of requests answered with 4xx or 5xx.",
		}, requestLabels),
		RequestDuration: prometheus.NewSummaryFrom(stdprometheus.SummaryOpts{
			Namespace: Namespace,
			Subsystem: APISubsystem,
			Name:      "request_duration_seconds",
			Help:      "Request latency.",
		}, requestLabels),
		CacheLookups: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: APISubsystem,
			Name:      "cache_lookups_total",
			Help:      "Response cache lookups by result, hit or miss.",
		}, []string{"result"}),
		OpenStreams: prometheus.NewGaugeFrom(stdprometheus.GaugeOpts{
			Namespace: Namespace,
			Subsystem: APISubsystem,
			Name:      "open_streams",
			Help:      "Number of open receipt streams.",
		}, []string{}),
	}
}

func NopAPIMetrics() *APIMetrics {
	return &APIMetrics{
		Requests:        discard.NewCounter(),
		RequestErrors:   discard.NewCounter(),
		RequestDuration: discard.NewHistogram(),
		CacheLookups:    discard.NewCounter(),
		OpenStreams:     discard.NewGauge(),
	}
}
