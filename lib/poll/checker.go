package poll

import (
	"boscoin.io/ballotbox/lib/common"
	"boscoin.io/ballotbox/lib/errors"
)

type CreateVoteChecker struct {
	common.DefaultChecker

	Call Call
	Poll Poll
	Args CreateVoteArgs
}

func CheckCreateVoteNotCreated(c common.Checker, args ...interface{}) (err error) {
	checker := c.(*CreateVoteChecker)
	if checker.Poll.Status != StatusNotCreated {
		err = errors.PollAlreadyCreated
		return
	}

	return
}

func CheckCreateVoteOptionCount(c common.Checker, args ...interface{}) (err error) {
	checker := c.(*CreateVoteChecker)
	if checker.Args.OptionCount < MinOptions || checker.Args.OptionCount > MaxOptions {
		err = errors.PollInvalidOptionCount
		return
	}

	return
}

func CheckCreateVoteDeadline(c common.Checker, args ...interface{}) (err error) {
	checker := c.(*CreateVoteChecker)
	if checker.Call.Now >= checker.Args.EndsAt {
		err = errors.PollInvalidDeadline
		return
	}

	return
}

var CreateVoteCheckerFuncs = []common.CheckerFunc{
	CheckCreateVoteNotCreated,
	CheckCreateVoteOptionCount,
	CheckCreateVoteDeadline,
}

type VoteChecker struct {
	common.DefaultChecker

	Call   Call
	State  State
	Poll   Poll
	Option uint64

	// Voter is loaded by `CheckVoteVoter`
	Voter VoterRecord
}

func CheckVoteNotEnded(c common.Checker, args ...interface{}) (err error) {
	checker := c.(*VoteChecker)
	if checker.Call.Now >= checker.Poll.EndsAt {
		err = errors.PollVotingEnded
		return
	}

	return
}

// CheckVoteStarted rejects `now == StartsAt` as well; voting at the
// creation instant is not allowed.
func CheckVoteStarted(c common.Checker, args ...interface{}) (err error) {
	checker := c.(*VoteChecker)
	if checker.Call.Now <= checker.Poll.StartsAt {
		err = errors.PollVotingNotStarted
		return
	}

	return
}

func CheckVoteOption(c common.Checker, args ...interface{}) (err error) {
	checker := c.(*VoteChecker)
	if checker.Option < 1 || checker.Option > checker.Poll.OptionCount {
		err = errors.PollInvalidOption
		return
	}

	return
}

func CheckVoteVoter(c common.Checker, args ...interface{}) (err error) {
	checker := c.(*VoteChecker)

	var exists bool
	if exists, err = checker.State.HasVoterSlot(checker.Call.Sender); err != nil {
		return
	} else if !exists {
		err = errors.PollNotOptedIn
		return
	}

	if checker.Voter, err = checker.State.GetVoterRecord(checker.Call.Sender); err != nil {
		return
	}
	if checker.Voter.HasVoted {
		err = errors.PollAlreadyVoted
		return
	}

	return
}

var VoteCheckerFuncs = []common.CheckerFunc{
	CheckVoteNotEnded,
	CheckVoteStarted,
	CheckVoteOption,
	CheckVoteVoter,
}
