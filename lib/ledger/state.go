package ledger

import (
	"boscoin.io/ballotbox/lib/errors"
	"boscoin.io/ballotbox/lib/storage"
)

const stateKey = "ledger-state"

// State is the latest committed point of the ledger. `Height` is the
// number of applied transactions.
type State struct {
	Height    uint64 `json:"height"`
	Timestamp uint64 `json:"timestamp"`
}

func (s State) Save(st *storage.LevelDBBackend) error {
	return st.Put(stateKey, s)
}

// GetState returns the zero state for the empty storage.
func GetState(st *storage.LevelDBBackend) (s State, err error) {
	if err = st.Get(stateKey, &s); err != nil {
		if errors.IsError(err, errors.StorageRecordDoesNotExist) {
			err = nil
		}
		return
	}

	return
}
