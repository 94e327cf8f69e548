package transaction

import (
	"math/rand"

	"boscoin.io/ballotbox/lib/common/keypair"
	"boscoin.io/ballotbox/lib/transaction/operation"
)

func TestMakeTransaction(networkID []byte, kp *keypair.Full, ops ...operation.Operation) (tx Transaction) {
	tx, _ = NewTransaction(kp.Address(), rand.Uint64(), ops...)
	tx.Sign(kp, networkID)

	return
}
