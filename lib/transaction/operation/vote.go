package operation

import (
	"strconv"

	"boscoin.io/ballotbox/lib/common"
	"boscoin.io/ballotbox/lib/contract/native/execfunc"
	"boscoin.io/ballotbox/lib/contract/payload"
)

// Vote casts the vote of the transaction source. `Option` starts from 1.
type Vote struct {
	Option uint64 `json:"option"`
}

func NewVote(option uint64) Vote {
	return Vote{Option: option}
}

func (o Vote) IsWellFormed(common.Config) error {
	return nil
}

func (o Vote) ExecCode() *payload.ExecCode {
	return payload.NewExecCode(
		execfunc.PollContractAddress,
		execfunc.MethodVote,
		strconv.FormatUint(o.Option, 10),
	)
}
