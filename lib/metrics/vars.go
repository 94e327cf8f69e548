package metrics

var (
	Ledger = NopLedgerMetrics()
	API    = NopAPIMetrics()
)
