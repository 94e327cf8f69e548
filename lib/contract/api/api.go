package api

import (
	"github.com/vmihailenco/msgpack"

	"boscoin.io/ballotbox/lib/contract/context"
	"boscoin.io/ballotbox/lib/contract/storage"
	"boscoin.io/ballotbox/lib/errors"
)

// API is used by the executors to reach the state of the current
// contract.
type API struct {
	contractAddress string // the current contract address
	ctx             *context.Context
}

func NewAPI(ctx *context.Context, contractAddr string) *API {
	return &API{
		contractAddress: contractAddr,
		ctx:             ctx,
	}
}

func (a *API) ContractAddress() string {
	return a.contractAddress
}

// Sender is the address of the transaction source.
func (a *API) Sender() string {
	return a.ctx.SenderAddress
}

// Now returns the ledger timestamp of the current call.
func (a *API) Now() uint64 {
	return a.ctx.Timestamp
}

func (a *API) Height() uint64 {
	return a.ctx.Height
}

// GetGlobal decodes the global value of `key` into `v`. It returns false
// when nothing was stored.
func (a *API) GetGlobal(key string, v interface{}) (bool, error) {
	item, err := storage.GetStorageItem(a.ctx.StateStore, a.contractAddress, key)
	if err != nil || item == nil {
		return false, err
	}

	return true, decode(item.Value, v)
}

func (a *API) PutGlobal(key string, v interface{}) error {
	b, err := msgpack.Marshal(v)
	if err != nil {
		return errors.StorageCoreError.Clone().SetData("error", err.Error())
	}

	item := storage.NewStorageItem(a.contractAddress, key)
	item.Value = b

	return item.Save(a.ctx.StateStore)
}

func (a *API) HasLocal(account, key string) (bool, error) {
	return storage.ExistsLocalItem(a.ctx.StateStore, a.contractAddress, account, key)
}

// GetLocal decodes the value of `key` of `account` into `v`. It returns
// false when the account has no such key.
func (a *API) GetLocal(account, key string, v interface{}) (bool, error) {
	item, err := storage.GetLocalItem(a.ctx.StateStore, a.contractAddress, account, key)
	if err != nil || item == nil {
		return false, err
	}

	return true, decode(item.Value, v)
}

func (a *API) PutLocal(account, key string, v interface{}) error {
	b, err := msgpack.Marshal(v)
	if err != nil {
		return errors.StorageCoreError.Clone().SetData("error", err.Error())
	}

	item := storage.NewLocalItem(a.contractAddress, account, key)
	item.Value = b

	return item.Save(a.ctx.StateStore)
}

func decode(b []byte, v interface{}) error {
	if err := msgpack.Unmarshal(b, v); err != nil {
		return errors.StorageCoreError.Clone().SetData("error", err.Error())
	}

	return nil
}
