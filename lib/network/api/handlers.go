package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"boscoin.io/ballotbox/lib/common"
)

type Router interface {
	AddHandler(pattern string, handler http.HandlerFunc) *mux.Route
}

func (api *NetworkHandlerAPI) AddHandlers(router Router) {
	router.AddHandler(
		api.HandlerURLPattern(GetNodeInfoPattern),
		api.GetNodeInfoHandler,
	).Methods("GET", "OPTIONS")
	router.AddHandler(
		api.HandlerURLPattern(GetPollHandlerPattern),
		api.GetPollHandler,
	).Methods("GET", "OPTIONS")
	router.AddHandler(
		api.HandlerURLPattern(GetAccountVoterHandlerPattern),
		api.cache.WrapHandlerFunc(api.GetAccountVoterHandler),
	).Methods("GET", "OPTIONS")
	router.AddHandler(
		api.HandlerURLPattern(GetTransactionByHashHandlerPattern),
		api.cache.WrapHandlerFunc(api.GetTransactionByHashHandler),
	).Methods("GET", "OPTIONS")
	router.AddHandler(
		api.HandlerURLPattern(PostTransactionPattern),
		api.PostTransactionsHandler,
	).Methods("POST").MatcherFunc(common.PostAndJSONMatcher)
	router.AddHandler(
		api.HandlerURLPattern(GetTransactionsHandlerPattern),
		api.GetTransactionsHandler,
	).Methods("GET", "OPTIONS")
}
