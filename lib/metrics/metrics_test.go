package metrics

import (
	"testing"

	"github.com/go-kit/kit/metrics/generic"
	"github.com/stretchr/testify/require"
)

func TestLedgerMetrics(t *testing.T) {
	height := generic.NewGauge("height")
	timestamp := generic.NewGauge("timestamp")
	applied := generic.NewCounter("applied")

	m := &LedgerMetrics{
		Height:      height,
		Timestamp:   timestamp,
		AppliedTxs:  applied,
		AppliedOps:  generic.NewCounter("ops"),
		RejectedTxs: generic.NewCounter("rejected"),
	}

	m.SetHeight(3)
	m.SetTimestamp(1000)
	m.AddApplied("opt-in", "vote")
	m.AddApplied("vote")
	m.AddRejected(136)

	require.Equal(t, float64(3), height.Value())
	require.Equal(t, float64(1000), timestamp.Value())
	require.Equal(t, float64(2), applied.Value())
}

func TestNopMetrics(t *testing.T) {
	m := NopLedgerMetrics()
	m.SetHeight(1)
	m.SetTimestamp(1)
	m.AddApplied("vote")
	m.AddRejected(1)

	NopAPIMetrics().Requests.With("endpoint", "/").Add(1)
	SetVersion()
}

func TestAPIMetrics(t *testing.T) {
	lookups := generic.NewCounter("lookups")
	streams := generic.NewGauge("streams")

	m := NopAPIMetrics()
	m.CacheLookups = lookups
	m.OpenStreams = streams

	m.AddCacheLookup(true)
	m.AddCacheLookup(false)
	require.Equal(t, float64(2), lookups.Value())

	m.OpenStream()
	m.OpenStream()
	m.CloseStream()
	require.Equal(t, float64(1), streams.Value())
}
