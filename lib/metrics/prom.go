package metrics

func InitPrometheusMetrics() {
	Version = PromVersion()
	Ledger = PromLedgerMetrics()
	API = PromAPIMetrics()
}
