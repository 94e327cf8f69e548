package resource

import (
	"github.com/nvellon/hal"

	"boscoin.io/ballotbox/lib/common"
	"boscoin.io/ballotbox/lib/poll"
)

type Poll struct {
	p   poll.Poll
	now uint64
}

// NewPoll renders `p` as seen at ledger time `now`.
func NewPoll(p poll.Poll, now uint64) *Poll {
	return &Poll{p: p, now: now}
}

func (p Poll) GetMap() hal.Entry {
	entry := hal.Entry{
		"title":        p.p.Title,
		"description":  p.p.Description,
		"option_count": p.p.OptionCount,
		"options":      p.p.Options,
		"tallies":      p.p.Tallies,
		"total_votes":  p.p.TotalVotes(),
		"starts_at":    p.p.StartsAt,
		"ends_at":      p.p.EndsAt,
		"status":       p.p.Status.String(),
		"voting_open":  p.p.IsVotingOpen(p.now),
		"now":          p.now,
	}
	if p.p.IsCreated() {
		entry["starts"] = common.FormatUnix(p.p.StartsAt)
		entry["ends"] = common.FormatUnix(p.p.EndsAt)
	}

	return entry
}

func (p Poll) Resource() *hal.Resource {
	r := hal.NewResource(p, p.LinkSelf())
	r.AddLink("transactions", hal.NewLink(URLTransactions+"{?cursor,limit,reverse}", hal.LinkAttr{"templated": true}))
	r.AddLink("voter", hal.NewLink(URLAccountVoter, hal.LinkAttr{"templated": true}))
	return r
}

func (p Poll) LinkSelf() string {
	return URLPoll
}
