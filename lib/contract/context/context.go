package context

import (
	dbstorage "boscoin.io/ballotbox/lib/storage"
)

//
// Context is what the host gives to one contract call: who calls, when,
// and the storage the call reads and writes. For the state changing calls
// `StateStore` is a transaction of the ledger storage, so nothing is
// written before the ledger commits it.
//
type Context struct {
	SenderAddress string
	Timestamp     uint64
	Height        uint64
	StateStore    *dbstorage.LevelDBBackend
}

func NewContext(senderAddr string, timestamp, height uint64, st *dbstorage.LevelDBBackend) *Context {
	return &Context{
		SenderAddress: senderAddr,
		Timestamp:     timestamp,
		Height:        height,
		StateStore:    st,
	}
}
