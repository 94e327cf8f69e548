package poll

import (
	"fmt"

	"boscoin.io/ballotbox/lib/common"
	"boscoin.io/ballotbox/lib/errors"
)

type CreateVoteArgs struct {
	Title       string
	Description string
	OptionCount uint64
	Options     [MaxOptions]string
	EndsAt      uint64
}

//
// Initialize deploys the empty poll. It does nothing when the poll record
// already exists, so the host can call it on every start.
//
func Initialize(st State) error {
	if _, err := st.GetPoll(); err == nil {
		return nil
	} else if !errors.IsError(err, errors.PollDoesNotExist) {
		return err
	}

	return st.PutPoll(Poll{Status: StatusNotCreated})
}

//
// CreateVote activates the poll. Anyone can create it, but only once; the
// first successful call wins.
//
func CreateVote(call Call, st State, args CreateVoteArgs) error {
	p, err := st.GetPoll()
	if err != nil {
		return err
	}

	checker := &CreateVoteChecker{
		DefaultChecker: common.DefaultChecker{Funcs: CreateVoteCheckerFuncs},
		Call:           call,
		Poll:           p,
		Args:           args,
	}
	if err = common.RunChecker(checker, common.DefaultDeferFunc); err != nil {
		return err
	}

	return st.PutPoll(Poll{
		Title:       args.Title,
		Description: args.Description,
		OptionCount: args.OptionCount,
		Options:     args.Options,
		StartsAt:    call.Now,
		EndsAt:      args.EndsAt,
		Status:      StatusActive,
	})
}

//
// Vote records the choice of `call.Sender` and counts it. `option` starts
// from 1.
//
func Vote(call Call, st State, option uint64) error {
	p, err := st.GetPoll()
	if err != nil {
		return err
	}

	checker := &VoteChecker{
		DefaultChecker: common.DefaultChecker{Funcs: VoteCheckerFuncs},
		Call:           call,
		State:          st,
		Poll:           p,
		Option:         option,
	}
	if err = common.RunChecker(checker, common.DefaultDeferFunc); err != nil {
		return err
	}

	increaseTally(&p, option)

	if err = st.PutVoterRecord(call.Sender, VoterRecord{HasVoted: true, Option: option}); err != nil {
		return err
	}

	return st.PutPoll(p)
}

// OptIn allocates the voter slot of `call.Sender` if it is absent.
func OptIn(call Call, st State) error {
	exists, err := st.HasVoterSlot(call.Sender)
	if err != nil || exists {
		return err
	}

	return st.PutVoterRecord(call.Sender, VoterRecord{})
}

// increaseTally panics when `option` is outside of the option slots. The
// vote checkers never let it happen; the panic is not an error to be
// handled, the host drops the whole call.
func increaseTally(p *Poll, option uint64) {
	if option < 1 || option > MaxOptions {
		panic(fmt.Sprintf("poll: tally index out of range: %d", option))
	}

	p.Tallies[option-1]++
}
