package resource

import (
	"github.com/nvellon/hal"

	"boscoin.io/ballotbox/lib/poll"
)

type Voter struct {
	address string
	record  poll.VoterRecord
}

func NewVoter(address string, record poll.VoterRecord) *Voter {
	return &Voter{address: address, record: record}
}

func (v Voter) GetMap() hal.Entry {
	return hal.Entry{
		"address":   v.address,
		"has_voted": v.record.HasVoted,
		"option":    v.record.Option,
	}
}

func (v Voter) Resource() *hal.Resource {
	r := hal.NewResource(v, v.LinkSelf())
	r.AddLink("poll", hal.NewLink(URLPoll))
	return r
}

func (v Voter) LinkSelf() string {
	return expand(URLAccountVoter, v.address)
}
