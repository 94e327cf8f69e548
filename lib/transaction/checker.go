package transaction

import (
	"github.com/btcsuite/btcutil/base58"

	"boscoin.io/ballotbox/lib/common"
	"boscoin.io/ballotbox/lib/common/keypair"
	"boscoin.io/ballotbox/lib/errors"
	"boscoin.io/ballotbox/lib/transaction/operation"
)

type Checker struct {
	common.DefaultChecker

	NetworkID       []byte
	Transaction     Transaction
	Config          common.Config
	OperationsLimit int
}

func CheckSource(c common.Checker, args ...interface{}) (err error) {
	checker := c.(*Checker)
	if _, err = keypair.Parse(checker.Transaction.B.Source); err != nil {
		err = errors.BadPublicAddress
		return
	}

	return
}

func CheckOverOperationsLimit(c common.Checker, args ...interface{}) (err error) {
	checker := c.(*Checker)

	if len(checker.Transaction.B.Operations) > checker.OperationsLimit {
		err = errors.TransactionHasOverMaxOperations
		return
	}

	return
}

func CheckOperationTypes(c common.Checker, args ...interface{}) (err error) {
	checker := c.(*Checker)

	if len(checker.Transaction.B.Operations) < 1 {
		err = errors.TransactionEmptyOperations
		return
	}

	for _, op := range checker.Transaction.B.Operations {
		if !operation.IsValidOperationType(string(op.H.Type)) || op.B == nil {
			err = errors.UnknownOperationType
			return
		}
	}

	return
}

func CheckOperations(c common.Checker, args ...interface{}) (err error) {
	checker := c.(*Checker)

	for _, op := range checker.Transaction.B.Operations {
		if err = op.IsWellFormed(checker.Config); err != nil {
			return
		}
	}

	return
}

func CheckHash(c common.Checker, args ...interface{}) (err error) {
	checker := c.(*Checker)

	if checker.Transaction.H.Hash != checker.Transaction.B.MakeHashString() {
		err = errors.TransactionInvalidHash
		return
	}

	return
}

func CheckVerifySignature(c common.Checker, args ...interface{}) (err error) {
	checker := c.(*Checker)

	err = keypair.VerifySignature(
		checker.Transaction.B.Source,
		checker.NetworkID,
		checker.Transaction.H.Hash,
		base58.Decode(checker.Transaction.H.Signature),
	)
	if err != nil {
		err = errors.TransactionInvalidSignature
		return
	}

	return
}
