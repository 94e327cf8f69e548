package api

import (
	"net/http"

	"boscoin.io/ballotbox/lib/network/api/resource"
	"boscoin.io/ballotbox/lib/network/httputils"
)

// GetPollHandler renders the poll with `voting_open` at the timestamp the
// next transaction would get.
func (api *NetworkHandlerAPI) GetPollHandler(w http.ResponseWriter, r *http.Request) {
	p, err := api.ledger.Poll()
	if err != nil {
		httputils.WriteError(w, err)
		return
	}

	if err := httputils.WriteJSON(w, http.StatusOK, resource.NewPoll(p, api.ledger.Now())); err != nil {
		log.Error("failed to write poll", "error", err)
	}
}
