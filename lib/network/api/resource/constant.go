package resource

const (
	APIVersionV1 = "/v1"
	APIPrefix    = "/api"

	URLRoot              = APIPrefix + APIVersionV1 + "/"
	URLPoll              = APIPrefix + APIVersionV1 + "/poll"
	URLAccountVoter      = APIPrefix + APIVersionV1 + "/accounts/{id}/voter"
	URLTransactions      = APIPrefix + APIVersionV1 + "/transactions"
	URLTransactionByHash = APIPrefix + APIVersionV1 + "/transactions/{id}"
	URLMetrics           = "/metrics"
)
