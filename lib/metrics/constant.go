package metrics

const (
	Namespace       = "ballotbox"
	LedgerSubsystem = "ledger"
	APISubsystem    = "api"
)
