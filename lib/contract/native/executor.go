package native

import (
	"boscoin.io/ballotbox/lib/contract/api"
	"boscoin.io/ballotbox/lib/contract/context"
	"boscoin.io/ballotbox/lib/contract/payload"
	"boscoin.io/ballotbox/lib/contract/value"
	"boscoin.io/ballotbox/lib/errors"
)

type ExecFunc func(e *NativeExecutor, code *payload.ExecCode) (*value.Value, error)

type NativeExecutor struct {
	Context *context.Context
	api     *api.API

	execFuncs map[string]ExecFunc
}

func NewNativeExecutor(ctx *context.Context, api *api.API) *NativeExecutor {
	ex := &NativeExecutor{
		Context:   ctx,
		api:       api,
		execFuncs: map[string]ExecFunc{},
	}

	return ex
}

func (ex *NativeExecutor) API() *api.API {
	return ex.api
}

func (ex *NativeExecutor) Execute(c *payload.ExecCode) (*value.Value, error) {
	ex.loadFuncs(c.ContractAddress)

	if f, ok := ex.execFuncs[c.Method]; ok {
		return f(ex, c)
	}

	return nil, errors.ContractMethodNotFound.Clone().SetData("method", c.Method)
}

func (ex *NativeExecutor) RegisterFunc(name string, f ExecFunc) {
	ex.execFuncs[name] = f
}

func (ex *NativeExecutor) loadFuncs(addr string) {
	contractsLock.RLock()
	r, ok := contracts[addr]
	contractsLock.RUnlock()

	if ok {
		r(ex)
	}
}
