package httputils

import (
	"net/http"

	"boscoin.io/ballotbox/lib/errors"
)

var (
	ErrorsToStatus = map[uint]int{
		errors.StorageRecordDoesNotExist.Code: http.StatusNotFound,
		errors.ReceiptDoesNotExist.Code:       http.StatusNotFound,
		errors.VoterRecordDoesNotExist.Code:   http.StatusNotFound,
		errors.PollDoesNotExist.Code:          http.StatusNotFound,
		errors.ContractNotFound.Code:          http.StatusNotFound,
		errors.TransactionAlreadyApplied.Code: http.StatusConflict,
		errors.PollAlreadyCreated.Code:        http.StatusConflict,
		errors.PollAlreadyVoted.Code:          http.StatusConflict,
		errors.NotImplemented.Code:            http.StatusNotImplemented,
		errors.StorageCoreError.Code:          http.StatusInternalServerError,
		errors.HTTPServerError.Code:           http.StatusInternalServerError,
		errors.Unknown.Code:                   http.StatusInternalServerError,
	}
)

//
// StatusCode maps `err` to the http status. Registered errors which are not
// in `ErrorsToStatus` are client errors; anything else is a server error.
//
func StatusCode(err error) int {
	e, ok := err.(*errors.Error)
	if !ok {
		return http.StatusInternalServerError
	}

	if status, found := ErrorsToStatus[e.Code]; found {
		return status
	}

	return http.StatusBadRequest
}

func WriteError(w http.ResponseWriter, err error) error {
	return WriteJSON(w, StatusCode(err), err)
}
