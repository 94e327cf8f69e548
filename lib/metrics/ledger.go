package metrics

import (
	"strconv"

	"github.com/go-kit/kit/metrics"
	"github.com/go-kit/kit/metrics/discard"
	prometheus "github.com/go-kit/kit/metrics/prometheus"
	stdprometheus "github.com/prometheus/client_golang/prometheus"
)

type LedgerMetrics struct {
	Height    metrics.Gauge
	Timestamp metrics.Gauge

	AppliedTxs  metrics.Counter
	AppliedOps  metrics.Counter
	RejectedTxs metrics.Counter
}

func (c *LedgerMetrics) SetHeight(height uint64) {
	c.Height.Set(float64(height))
}

func (c *LedgerMetrics) SetTimestamp(ts uint64) {
	c.Timestamp.Set(float64(ts))
}

func (c *LedgerMetrics) AddApplied(opTypes ...string) {
	c.AppliedTxs.Add(1)
	for _, t := range opTypes {
		c.AppliedOps.With("type", t).Add(1)
	}
}

func (c *LedgerMetrics) AddRejected(code uint) {
	c.RejectedTxs.With("code", strconv.FormatUint(uint64(code), 10)).Add(1)
}

func PromLedgerMetrics() *LedgerMetrics {
	return &LedgerMetrics{
		Height: prometheus.NewGaugeFrom(stdprometheus.GaugeOpts{
			Namespace: Namespace,
			Subsystem: LedgerSubsystem,
			Name:      "height",
			Help:      "Number of applied transactions.",
		}, []string{}),
		Timestamp: prometheus.NewGaugeFrom(stdprometheus.GaugeOpts{
			Namespace: Namespace,
			Subsystem: LedgerSubsystem,
			Name:      "timestamp",
			Help:      "Latest ledger timestamp.",
		}, []string{}),
		AppliedTxs: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: LedgerSubsystem,
			Name:      "applied_txs_total",
			Help:      "Total number of applied transactions.",
		}, []string{}),
		AppliedOps: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: LedgerSubsystem,
			Name:      "applied_ops_total",
			Help:      "Total number of applied operations.",
		}, []string{"type"}),
		RejectedTxs: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: LedgerSubsystem,
			Name:      "rejected_txs_total",
			Help:      "Total number of rejected transactions.",
		}, []string{"code"}),
	}
}

func NopLedgerMetrics() *LedgerMetrics {
	return &LedgerMetrics{
		Height:      discard.NewGauge(),
		Timestamp:   discard.NewGauge(),
		AppliedTxs:  discard.NewCounter(),
		AppliedOps:  discard.NewCounter(),
		RejectedTxs: discard.NewCounter(),
	}
}
