package execfunc

import (
	"strconv"

	"boscoin.io/ballotbox/lib/common"
	"boscoin.io/ballotbox/lib/contract/api"
	"boscoin.io/ballotbox/lib/contract/native"
	"boscoin.io/ballotbox/lib/contract/payload"
	"boscoin.io/ballotbox/lib/contract/value"
	"boscoin.io/ballotbox/lib/errors"
	"boscoin.io/ballotbox/lib/poll"
)

const PollContractAddress = "BALLOTBOXPOLLCONTRACT"

const (
	MethodInitialize = "initialize"
	MethodCreateVote = "create_vote"
	MethodVote       = "vote"
	MethodOptIn      = "opt_in"
	MethodGetPoll    = "get_poll"
	MethodGetVoter   = "get_voter"
)

const (
	pollKey  = "poll"
	voterKey = "voter"
)

func init() {
	native.AddContract(PollContractAddress, RegisterPoll)
}

func RegisterPoll(ex *native.NativeExecutor) {
	ex.RegisterFunc(MethodInitialize, initialize)
	ex.RegisterFunc(MethodCreateVote, createVote)
	ex.RegisterFunc(MethodVote, vote)
	ex.RegisterFunc(MethodOptIn, optIn)
	ex.RegisterFunc(MethodGetPoll, getPoll)
	ex.RegisterFunc(MethodGetVoter, getVoter)
}

// PollState keeps the poll as the global item and the voter records as
// the local items of the contract.
type PollState struct {
	api *api.API
}

func NewPollState(a *api.API) PollState {
	return PollState{api: a}
}

func (s PollState) GetPoll() (p poll.Poll, err error) {
	var found bool
	if found, err = s.api.GetGlobal(pollKey, &p); err != nil {
		return
	} else if !found {
		err = errors.PollDoesNotExist
	}

	return
}

func (s PollState) PutPoll(p poll.Poll) error {
	return s.api.PutGlobal(pollKey, p)
}

func (s PollState) HasVoterSlot(address string) (bool, error) {
	return s.api.HasLocal(address, voterKey)
}

func (s PollState) GetVoterRecord(address string) (record poll.VoterRecord, err error) {
	var found bool
	if found, err = s.api.GetLocal(address, voterKey, &record); err != nil {
		return
	} else if !found {
		err = errors.VoterRecordDoesNotExist
	}

	return
}

func (s PollState) PutVoterRecord(address string, record poll.VoterRecord) error {
	return s.api.PutLocal(address, voterKey, record)
}

func call(ex *native.NativeExecutor) poll.Call {
	return poll.Call{
		Sender: ex.API().Sender(),
		Now:    ex.API().Now(),
	}
}

func checkArgs(execCode *payload.ExecCode, n int) error {
	if len(execCode.Args) != n {
		return errors.ContractInvalidArguments.Clone().
			SetData("method", execCode.Method).
			SetData("expected", n).
			SetData("given", len(execCode.Args))
	}

	return nil
}

func parseUint(execCode *payload.ExecCode, name, s string) (uint64, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, errors.ContractInvalidArguments.Clone().
			SetData("method", execCode.Method).
			SetData(name, s)
	}

	return n, nil
}

func initialize(ex *native.NativeExecutor, execCode *payload.ExecCode) (*value.Value, error) {
	if err := checkArgs(execCode, 0); err != nil {
		return nil, err
	}

	if err := poll.Initialize(NewPollState(ex.API())); err != nil {
		return nil, err
	}

	return value.ToValue(nil)
}

// createVote expects `title, description, option count, option 1..4,
// ends at`.
func createVote(ex *native.NativeExecutor, execCode *payload.ExecCode) (*value.Value, error) {
	if err := checkArgs(execCode, 8); err != nil {
		return nil, err
	}

	args := poll.CreateVoteArgs{
		Title:       execCode.Args[0],
		Description: execCode.Args[1],
	}
	copy(args.Options[:], execCode.Args[3:7])

	var err error
	if args.OptionCount, err = parseUint(execCode, "option_count", execCode.Args[2]); err != nil {
		return nil, err
	}
	if args.EndsAt, err = parseUint(execCode, "ends_at", execCode.Args[7]); err != nil {
		return nil, err
	}

	if err = poll.CreateVote(call(ex), NewPollState(ex.API()), args); err != nil {
		return nil, err
	}

	return value.ToValue(nil)
}

func vote(ex *native.NativeExecutor, execCode *payload.ExecCode) (*value.Value, error) {
	if err := checkArgs(execCode, 1); err != nil {
		return nil, err
	}

	option, err := parseUint(execCode, "option", execCode.Args[0])
	if err != nil {
		return nil, err
	}

	if err = poll.Vote(call(ex), NewPollState(ex.API()), option); err != nil {
		return nil, err
	}

	return value.ToValue(nil)
}

func optIn(ex *native.NativeExecutor, execCode *payload.ExecCode) (*value.Value, error) {
	if err := checkArgs(execCode, 0); err != nil {
		return nil, err
	}

	if err := poll.OptIn(call(ex), NewPollState(ex.API())); err != nil {
		return nil, err
	}

	return value.ToValue(nil)
}

// getPoll returns the poll in json.
func getPoll(ex *native.NativeExecutor, execCode *payload.ExecCode) (*value.Value, error) {
	if err := checkArgs(execCode, 0); err != nil {
		return nil, err
	}

	p, err := NewPollState(ex.API()).GetPoll()
	if err != nil {
		return nil, err
	}

	b, err := common.EncodeJSONValue(p)
	if err != nil {
		return nil, err
	}

	return value.ToValue(b)
}

// getVoter returns the voter record of the given address in json, or nil
// when the address never opted in.
func getVoter(ex *native.NativeExecutor, execCode *payload.ExecCode) (*value.Value, error) {
	if err := checkArgs(execCode, 1); err != nil {
		return nil, err
	}

	record, err := NewPollState(ex.API()).GetVoterRecord(execCode.Args[0])
	if errors.IsError(err, errors.VoterRecordDoesNotExist) {
		return value.ToValue(nil)
	} else if err != nil {
		return nil, err
	}

	b, err := common.EncodeJSONValue(record)
	if err != nil {
		return nil, err
	}

	return value.ToValue(b)
}
