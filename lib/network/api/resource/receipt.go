package resource

import (
	"github.com/nvellon/hal"

	"boscoin.io/ballotbox/lib/ledger"
)

type Receipt struct {
	r ledger.Receipt
}

func NewReceipt(r ledger.Receipt) *Receipt {
	return &Receipt{r: r}
}

func (r Receipt) GetMap() hal.Entry {
	return hal.Entry{
		"hash":            r.r.Hash,
		"source":          r.r.Source,
		"height":          r.r.Height,
		"timestamp":       r.r.Timestamp,
		"created":         r.r.Created,
		"operation_count": len(r.r.Operations),
		"operations":      r.r.Operations,
	}
}

func (r Receipt) Resource() *hal.Resource {
	res := hal.NewResource(r, r.LinkSelf())
	res.AddLink("voter", hal.NewLink(expand(URLAccountVoter, r.r.Source)))
	res.AddLink("poll", hal.NewLink(URLPoll))
	return res
}

func (r Receipt) LinkSelf() string {
	return expand(URLTransactionByHash, r.r.Hash)
}
