package api

import (
	"net/http"

	"boscoin.io/ballotbox/lib/contract/native/execfunc"
	"boscoin.io/ballotbox/lib/network/api/resource"
	"boscoin.io/ballotbox/lib/network/httputils"
)

func (api *NetworkHandlerAPI) GetNodeInfoHandler(w http.ResponseWriter, r *http.Request) {
	info := resource.NewNodeInfo(
		string(api.ledger.Config().NetworkID),
		execfunc.PollContractAddress,
		api.ledger.State(),
	)

	if err := httputils.WriteJSON(w, http.StatusOK, info); err != nil {
		log.Error("failed to write node info", "error", err)
	}
}
