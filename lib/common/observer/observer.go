package observer

import (
	"github.com/GianlucaGuarini/go-observable"
)

// ReceiptObserver is triggered whenever the ledger accepts a transaction
var ReceiptObserver = observable.New()

const (
	ResourceReceipt = "receipt"
	ResourcePoll    = "poll"
	ResourceVoter   = "voter"
	ConditionAll    = "*"
	ConditionSource = "source"
	ConditionTxHash = "txhash"
)

type Event struct {
	Resource  string `json:"resource"`
	Condition string `json:"condition"`
	Id        string `json:"id"`
}

func NewEvent(resource, condition, id string) Event {
	return Event{
		Resource:  resource,
		Condition: condition,
		Id:        id,
	}
}

func (e Event) String() string {
	toStr := e.Resource + "-"
	if e.Condition == ConditionAll {
		toStr += e.Condition
	} else {
		toStr += e.Condition + "="
		toStr += e.Id
	}
	return toStr
}
