package ledger

import (
	"time"

	"boscoin.io/ballotbox/lib/common"
	"boscoin.io/ballotbox/lib/storage"
)

var TestGenesisTime = time.Date(2018, 10, 1, 0, 0, 0, 0, time.UTC)

// NewTestLedger opens the ledger on the memory storage with a test clock
// starting at `TestGenesisTime`.
func NewTestLedger() (*Ledger, *common.TestClock) {
	clock := common.NewTestClock(TestGenesisTime)

	l, err := NewLedger(storage.NewTestStorage(), common.NewTestConfig(), clock)
	if err != nil {
		panic(err)
	}

	return l, clock
}
