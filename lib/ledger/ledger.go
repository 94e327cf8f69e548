package ledger

import (
	"sync"

	"boscoin.io/ballotbox/lib/common"
	"boscoin.io/ballotbox/lib/common/observer"
	"boscoin.io/ballotbox/lib/contract"
	"boscoin.io/ballotbox/lib/contract/context"
	"boscoin.io/ballotbox/lib/contract/native/execfunc"
	"boscoin.io/ballotbox/lib/contract/payload"
	"boscoin.io/ballotbox/lib/contract/value"
	"boscoin.io/ballotbox/lib/errors"
	"boscoin.io/ballotbox/lib/metrics"
	"boscoin.io/ballotbox/lib/poll"
	"boscoin.io/ballotbox/lib/storage"
	"boscoin.io/ballotbox/lib/transaction"
)

//
// Ledger applies transactions one by one. Every transaction is executed in
// its own storage transaction: either all of its operations are committed
// together with the receipt, or nothing is written.
//
// The ledger timestamp of a transaction is the clock time, but never less
// than the timestamp of the previous transaction.
//
type Ledger struct {
	sync.RWMutex

	st    *storage.LevelDBBackend
	conf  common.Config
	clock common.Clock
	state State
}

func NewLedger(st *storage.LevelDBBackend, conf common.Config, clock common.Clock) (*Ledger, error) {
	state, err := GetState(st)
	if err != nil {
		return nil, err
	}

	l := &Ledger{
		st:    st,
		conf:  conf,
		clock: clock,
		state: state,
	}

	if err = l.deploy(); err != nil {
		return nil, err
	}

	metrics.Ledger.SetHeight(state.Height)
	metrics.Ledger.SetTimestamp(state.Timestamp)

	return l, nil
}

// deploy initializes the poll contract; the existing poll is kept.
func (l *Ledger) deploy() (err error) {
	var ts *storage.LevelDBBackend
	if ts, err = l.st.OpenTransaction(); err != nil {
		return
	}

	ctx := context.NewContext("", l.state.Timestamp, l.state.Height, ts)
	if _, err = contract.Execute(ctx, payload.NewExecCode(execfunc.PollContractAddress, execfunc.MethodInitialize)); err != nil {
		ts.Discard()
		return
	}
	if err = l.state.Save(ts); err != nil {
		ts.Discard()
		return
	}

	if err = ts.Commit(); err != nil {
		return
	}

	log.Debug("poll contract deployed", "address", execfunc.PollContractAddress, "height", l.state.Height)

	return
}

func (l *Ledger) Storage() *storage.LevelDBBackend {
	return l.st
}

func (l *Ledger) Config() common.Config {
	return l.conf
}

func (l *Ledger) State() State {
	l.RLock()
	defer l.RUnlock()

	return l.state
}

// Now returns the timestamp the next transaction would get.
func (l *Ledger) Now() uint64 {
	l.RLock()
	defer l.RUnlock()

	return l.now()
}

func (l *Ledger) now() uint64 {
	var ts uint64
	if unix := l.clock.Now().Unix(); unix > 0 {
		ts = uint64(unix)
	}

	if ts < l.state.Timestamp {
		return l.state.Timestamp
	}

	return ts
}

//
// Apply executes the operations of `tx` in order with `tx.B.Source` as the
// caller. The first failing operation rejects the whole transaction and
// its error is returned as is.
//
// A panic from the contract is not recovered; the storage transaction is
// discarded before the panic goes up.
//
// The receipt event is triggered after the ledger is unlocked, so a slow
// receipt subscriber does not hold back the next transaction.
//
func (l *Ledger) Apply(tx transaction.Transaction) (Receipt, error) {
	receipt, err := l.apply(tx)
	if err != nil {
		return receipt, err
	}

	observer.ReceiptObserver.Trigger(
		observer.NewEvent(observer.ResourceReceipt, observer.ConditionAll, "").String()+" "+
			observer.NewEvent(observer.ResourceReceipt, observer.ConditionSource, receipt.Source).String(),
		&receipt,
	)

	return receipt, nil
}

func (l *Ledger) apply(tx transaction.Transaction) (receipt Receipt, err error) {
	l.Lock()
	defer l.Unlock()

	defer func() {
		if err == nil {
			return
		}

		var code uint = errors.Unknown.Code
		if e, ok := err.(*errors.Error); ok {
			code = e.Code
		}
		metrics.Ledger.AddRejected(code)
		log.Debug("transaction rejected", "hash", tx.GetHash(), "source", tx.Source(), "error", err)
	}()

	if err = tx.IsWellFormed(l.conf); err != nil {
		return
	}

	var exists bool
	if exists, err = ExistsReceipt(l.st, tx.GetHash()); err != nil {
		return
	} else if exists {
		err = errors.TransactionAlreadyApplied
		return
	}

	var ts *storage.LevelDBBackend
	if ts, err = l.st.OpenTransaction(); err != nil {
		return
	}

	var committed bool
	defer func() {
		if !committed {
			ts.Discard()
		}
	}()

	state := State{
		Height:    l.state.Height + 1,
		Timestamp: l.now(),
	}

	ctx := context.NewContext(tx.Source(), state.Timestamp, state.Height, ts)
	for _, op := range tx.B.Operations {
		if _, err = contract.Execute(ctx, op.ExecCode()); err != nil {
			return
		}
	}

	receipt = NewReceipt(tx, state)
	if err = receipt.Save(ts); err != nil {
		return
	}
	if err = state.Save(ts); err != nil {
		return
	}

	if err = ts.Commit(); err != nil {
		return
	}
	committed = true
	l.state = state

	metrics.Ledger.SetHeight(state.Height)
	metrics.Ledger.SetTimestamp(state.Timestamp)
	metrics.Ledger.AddApplied(receipt.OperationTypes()...)

	log.Debug(
		"transaction applied",
		"hash", receipt.Hash,
		"source", receipt.Source,
		"height", receipt.Height,
		"timestamp", receipt.Timestamp,
	)

	return
}

func (l *Ledger) query(method string, args ...string) (*value.Value, error) {
	ctx := context.NewContext("", l.Now(), l.State().Height, l.st)
	return contract.Execute(ctx, payload.NewExecCode(execfunc.PollContractAddress, method, args...))
}

func (l *Ledger) Poll() (p poll.Poll, err error) {
	var v *value.Value
	if v, err = l.query(execfunc.MethodGetPoll); err != nil {
		return
	}

	err = common.DecodeJSONValue(v.Bytes(), &p)
	return
}

// Voter returns `errors.VoterRecordDoesNotExist` when `address` never
// opted in.
func (l *Ledger) Voter(address string) (record poll.VoterRecord, err error) {
	var v *value.Value
	if v, err = l.query(execfunc.MethodGetVoter, address); err != nil {
		return
	} else if v.IsNil() {
		err = errors.VoterRecordDoesNotExist
		return
	}

	err = common.DecodeJSONValue(v.Bytes(), &record)
	return
}

func (l *Ledger) Receipt(hash string) (Receipt, error) {
	return GetReceipt(l.st, hash)
}

func (l *Ledger) Receipts(options storage.ListOptions) ([]Receipt, error) {
	return GetReceipts(l.st, options)
}
