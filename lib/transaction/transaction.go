package transaction

import (
	"encoding/json"

	"github.com/btcsuite/btcutil/base58"

	"boscoin.io/ballotbox/lib/common"
	"boscoin.io/ballotbox/lib/common/keypair"
	"boscoin.io/ballotbox/lib/errors"
	"boscoin.io/ballotbox/lib/transaction/operation"
)

const Version = "1"

//
// Transaction is signed by the keypair of `B.Source`; the source is the
// caller identity of every operation in it. `B.Nonce` only makes the hash
// unique, so the same operations can be sent again as a new transaction.
//
type Transaction struct {
	H Header
	B Body
}

type Header struct {
	Version   string `json:"version"`
	Created   string `json:"created"`
	Hash      string `json:"hash"`
	Signature string `json:"signature"`
}

type Body struct {
	Source     string                `json:"source"`
	Nonce      uint64                `json:"nonce"`
	Operations []operation.Operation `json:"operations"`
}

func (tb Body) MakeHash() []byte {
	return common.MustMakeObjectHash(tb)
}

func (tb Body) MakeHashString() string {
	return base58.Encode(tb.MakeHash())
}

func NewTransaction(source string, nonce uint64, ops ...operation.Operation) (tx Transaction, err error) {
	if len(ops) < 1 {
		err = errors.TransactionEmptyOperations
		return
	}

	txBody := Body{
		Source:     source,
		Nonce:      nonce,
		Operations: ops,
	}

	tx = Transaction{
		H: Header{
			Version: Version,
			Created: common.NowISO8601(),
			Hash:    txBody.MakeHashString(),
		},
		B: txBody,
	}

	return
}

var WellFormedCheckerFuncs = []common.CheckerFunc{
	CheckOverOperationsLimit,
	CheckSource,
	CheckOperationTypes,
	CheckOperations,
	CheckHash,
	CheckVerifySignature,
}

func (tx Transaction) IsWellFormed(conf common.Config) (err error) {
	checker := &Checker{
		DefaultChecker:  common.DefaultChecker{Funcs: WellFormedCheckerFuncs},
		NetworkID:       conf.NetworkID,
		Transaction:     tx,
		Config:          conf,
		OperationsLimit: conf.OpsLimit,
	}
	if err = common.RunChecker(checker, common.DefaultDeferFunc); err != nil {
		return
	}

	return
}

func (tx Transaction) GetHash() string {
	return tx.H.Hash
}

func (tx Transaction) Source() string {
	return tx.B.Source
}

func (tx Transaction) Serialize() (encoded []byte, err error) {
	encoded, err = json.Marshal(tx)
	return
}

func (tx Transaction) String() string {
	encoded, _ := json.MarshalIndent(tx, "", "  ")
	return string(encoded)
}

func (tx *Transaction) Sign(kp keypair.KP, networkID []byte) {
	tx.H.Hash = tx.B.MakeHashString()
	signature, _ := keypair.MakeSignature(kp, networkID, tx.H.Hash)

	tx.H.Signature = base58.Encode(signature)

	return
}
