package contract

import (
	"boscoin.io/ballotbox/lib/contract/api"
	"boscoin.io/ballotbox/lib/contract/context"
	"boscoin.io/ballotbox/lib/contract/native"
	"boscoin.io/ballotbox/lib/contract/payload"
	"boscoin.io/ballotbox/lib/contract/value"
	"boscoin.io/ballotbox/lib/errors"
)

type Executor interface {
	Execute(*payload.ExecCode) (*value.Value, error)
}

func NewExecutor(ctx *context.Context, execCode *payload.ExecCode) (Executor, error) {
	if !native.HasContract(execCode.ContractAddress) {
		return nil, errors.ContractNotFound.Clone().SetData("address", execCode.ContractAddress)
	}

	return native.NewNativeExecutor(ctx, api.NewAPI(ctx, execCode.ContractAddress)), nil
}

func Execute(ctx *context.Context, execCode *payload.ExecCode) (*value.Value, error) {
	ex, err := NewExecutor(ctx, execCode)
	if err != nil {
		return nil, err
	}

	return ex.Execute(execCode)
}
