package operation

import (
	"boscoin.io/ballotbox/lib/common"
	"boscoin.io/ballotbox/lib/contract/native/execfunc"
	"boscoin.io/ballotbox/lib/contract/payload"
)

// OptIn registers the transaction source as a voter.
type OptIn struct{}

func (o OptIn) IsWellFormed(common.Config) error {
	return nil
}

func (o OptIn) ExecCode() *payload.ExecCode {
	return payload.NewExecCode(execfunc.PollContractAddress, execfunc.MethodOptIn)
}
