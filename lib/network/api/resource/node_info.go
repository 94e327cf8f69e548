package resource

import (
	"github.com/nvellon/hal"

	"boscoin.io/ballotbox/lib/common"
	"boscoin.io/ballotbox/lib/ledger"
	"boscoin.io/ballotbox/lib/version"
)

type NodeInfo struct {
	networkID string
	contract  string
	state     ledger.State
}

func NewNodeInfo(networkID, contract string, state ledger.State) *NodeInfo {
	return &NodeInfo{networkID: networkID, contract: contract, state: state}
}

func (n NodeInfo) GetMap() hal.Entry {
	return hal.Entry{
		"version":    version.Version,
		"network_id": n.networkID,
		"contract":   n.contract,
		"height":     n.state.Height,
		"timestamp":  n.state.Timestamp,
		"latest":     common.FormatUnix(n.state.Timestamp),
	}
}

func (n NodeInfo) Resource() *hal.Resource {
	r := hal.NewResource(n, n.LinkSelf())
	r.AddLink("poll", hal.NewLink(URLPoll))
	r.AddLink("transactions", hal.NewLink(URLTransactions+"{?cursor,limit,reverse}", hal.LinkAttr{"templated": true}))
	r.AddLink("transaction", hal.NewLink(URLTransactionByHash, hal.LinkAttr{"templated": true}))
	r.AddLink("voter", hal.NewLink(URLAccountVoter, hal.LinkAttr{"templated": true}))
	return r
}

func (n NodeInfo) LinkSelf() string {
	return URLRoot
}
