package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"boscoin.io/ballotbox/lib/common/keypair"
	"boscoin.io/ballotbox/lib/errors"
	"boscoin.io/ballotbox/lib/network/api/resource"
	"boscoin.io/ballotbox/lib/network/httputils"
)

func (api *NetworkHandlerAPI) GetAccountVoterHandler(w http.ResponseWriter, r *http.Request) {
	address := mux.Vars(r)["id"]
	if _, err := keypair.Parse(address); err != nil {
		httputils.WriteError(w, errors.BadPublicAddress.Clone().SetData("address", address))
		return
	}

	record, err := api.ledger.Voter(address)
	if err != nil {
		if errors.IsError(err, errors.VoterRecordDoesNotExist) {
			err = errors.VoterRecordDoesNotExist.Clone().SetData("address", address)
		}
		httputils.WriteError(w, err)
		return
	}

	if err := httputils.WriteJSON(w, http.StatusOK, resource.NewVoter(address, record)); err != nil {
		log.Error("failed to write voter", "error", err)
	}
}
