package api

import (
	"fmt"
	"strings"

	"boscoin.io/ballotbox/lib/common/observer"
	"boscoin.io/ballotbox/lib/ledger"
	"boscoin.io/ballotbox/lib/network/api/resource"
	"boscoin.io/ballotbox/lib/network/httpcache"
)

const APIVersionV1 = "v1"

// API Endpoint patterns
const (
	GetNodeInfoPattern                 = "/"
	GetPollHandlerPattern              = "/poll"
	GetAccountVoterHandlerPattern      = "/accounts/{id}/voter"
	GetTransactionsHandlerPattern      = "/transactions"
	GetTransactionByHashHandlerPattern = "/transactions/{id}"
	PostTransactionPattern             = "/transactions"
)

type NetworkHandlerAPI struct {
	ledger    *ledger.Ledger
	cache     httpcache.Cache
	urlPrefix string
	version   string

	invalidateFunc func(...interface{})
}

//
// NewNetworkHandlerAPI serves `l`. Responses of the voter and receipt
// endpoints go through `cache`; the voter response of an account is
// dropped whenever a receipt of the account is applied.
//
func NewNetworkHandlerAPI(l *ledger.Ledger, cache httpcache.Cache, urlPrefix string) *NetworkHandlerAPI {
	if cache == nil {
		cache = httpcache.NewNopClient()
	}

	api := &NetworkHandlerAPI{
		ledger:    l,
		cache:     cache,
		urlPrefix: urlPrefix,
		version:   APIVersionV1,
	}

	api.invalidateFunc = func(args ...interface{}) {
		if len(args) < 1 {
			return
		}
		receipt, ok := args[0].(*ledger.Receipt)
		if !ok {
			return
		}
		api.cache.Remove(api.voterURL(receipt.Source))
	}
	observer.ReceiptObserver.On(
		observer.NewEvent(observer.ResourceReceipt, observer.ConditionAll, "").String(),
		api.invalidateFunc,
	)

	return api
}

// Close stops watching the ledger.
func (api *NetworkHandlerAPI) Close() {
	observer.ReceiptObserver.Off(
		observer.NewEvent(observer.ResourceReceipt, observer.ConditionAll, "").String(),
		api.invalidateFunc,
	)
}

func (api *NetworkHandlerAPI) HandlerURLPattern(pattern string) string {
	return fmt.Sprintf("%s/%s%s", api.urlPrefix, api.version, pattern)
}

func (api *NetworkHandlerAPI) voterURL(address string) string {
	return strings.Replace(resource.URLAccountVoter, "{id}", address, -1)
}
