package api

import (
	"encoding/json"
	"io/ioutil"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"boscoin.io/ballotbox/lib/common/observer"
	"boscoin.io/ballotbox/lib/errors"
	"boscoin.io/ballotbox/lib/network/api/resource"
	"boscoin.io/ballotbox/lib/network/httputils"
	"boscoin.io/ballotbox/lib/transaction"
)

// MaxTransactionBodySize limits the body of `POST /transactions`.
var MaxTransactionBodySize int64 = 1 << 20

func (api *NetworkHandlerAPI) PostTransactionsHandler(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	body, err := ioutil.ReadAll(http.MaxBytesReader(w, r.Body, MaxTransactionBodySize))
	if err != nil {
		httputils.WriteError(w, errors.BadRequestParameter.Clone().SetData("error", err.Error()))
		return
	}

	var tx transaction.Transaction
	if err = json.Unmarshal(body, &tx); err != nil {
		if _, ok := err.(*errors.Error); !ok {
			err = errors.BadRequestParameter.Clone().SetData("error", err.Error())
		}
		httputils.WriteError(w, err)
		return
	}

	receipt, err := api.ledger.Apply(tx)
	if err != nil {
		httputils.WriteError(w, err)
		return
	}

	if err := httputils.WriteJSON(w, http.StatusOK, resource.NewReceipt(receipt)); err != nil {
		log.Error("failed to write receipt", "error", err)
	}
}

func (api *NetworkHandlerAPI) GetTransactionsHandler(w http.ResponseWriter, r *http.Request) {
	p, err := httputils.NewPageQuery(r)
	if err != nil {
		httputils.WriteError(w, err)
		return
	}

	if IsEventStream(r) {
		event := observer.NewEvent(observer.ResourceReceipt, observer.ConditionAll, "").String()
		if source := r.URL.Query().Get("source"); len(source) > 0 {
			event = observer.NewEvent(observer.ResourceReceipt, observer.ConditionSource, source).String()
		}
		NewDefaultEventStream(w, r).Run(observer.ReceiptObserver, event)
		return
	}

	receipts, err := api.ledger.Receipts(p.ListOptions())
	if err != nil {
		httputils.WriteError(w, err)
		return
	}

	var rs []resource.Resource
	for _, receipt := range receipts {
		rs = append(rs, resource.NewReceipt(receipt))
	}

	var first, last []byte
	if len(receipts) > 0 {
		first = []byte(strconv.FormatUint(receipts[0].Height, 10))
		last = []byte(strconv.FormatUint(receipts[len(receipts)-1].Height, 10))
	}

	list := resource.NewResourceList(rs, p.SelfLink(), p.NextLink(last), p.PrevLink(first))
	if err := httputils.WriteJSON(w, http.StatusOK, list); err != nil {
		log.Error("failed to write receipts", "error", err)
	}
}

func (api *NetworkHandlerAPI) GetTransactionByHashHandler(w http.ResponseWriter, r *http.Request) {
	hash := mux.Vars(r)["id"]

	receipt, err := api.ledger.Receipt(hash)
	if err != nil {
		if errors.IsError(err, errors.ReceiptDoesNotExist) {
			err = errors.ReceiptDoesNotExist.Clone().SetData("hash", hash)
		}
		httputils.WriteError(w, err)
		return
	}

	if err := httputils.WriteJSON(w, http.StatusOK, resource.NewReceipt(receipt)); err != nil {
		log.Error("failed to write receipt", "error", err)
	}
}
