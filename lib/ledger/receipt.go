package ledger

import (
	"fmt"
	"strconv"

	"boscoin.io/ballotbox/lib/common"
	"boscoin.io/ballotbox/lib/errors"
	"boscoin.io/ballotbox/lib/storage"
	"boscoin.io/ballotbox/lib/transaction"
	"boscoin.io/ballotbox/lib/transaction/operation"
)

const (
	receiptPrefixHash   = "lr-hash-"   // lr-hash-{hash}
	receiptPrefixHeight = "lr-height-" // lr-height-{height}
)

// Receipt is kept for every applied transaction.
type Receipt struct {
	Hash       string                `json:"hash"`
	Source     string                `json:"source"`
	Height     uint64                `json:"height"`
	Timestamp  uint64                `json:"timestamp"`
	Created    string                `json:"created"`
	Operations []operation.Operation `json:"operations"`
}

func NewReceipt(tx transaction.Transaction, state State) Receipt {
	return Receipt{
		Hash:       tx.GetHash(),
		Source:     tx.Source(),
		Height:     state.Height,
		Timestamp:  state.Timestamp,
		Created:    common.FormatUnix(state.Timestamp),
		Operations: tx.B.Operations,
	}
}

func (r Receipt) OperationTypes() (types []string) {
	for _, op := range r.Operations {
		types = append(types, string(op.H.Type))
	}

	return
}

func GetReceiptKey(hash string) string {
	return receiptPrefixHash + hash
}

func GetReceiptHeightKey(height uint64) string {
	return fmt.Sprintf("%s%020d", receiptPrefixHeight, height)
}

func (r Receipt) Save(st *storage.LevelDBBackend) error {
	return st.News(
		storage.Item{Key: GetReceiptKey(r.Hash), Value: r},
		storage.Item{Key: GetReceiptHeightKey(r.Height), Value: r.Hash},
	)
}

func ExistsReceipt(st *storage.LevelDBBackend, hash string) (bool, error) {
	return st.Has(GetReceiptKey(hash))
}

func GetReceipt(st *storage.LevelDBBackend, hash string) (r Receipt, err error) {
	if err = st.Get(GetReceiptKey(hash), &r); err != nil {
		if errors.IsError(err, errors.StorageRecordDoesNotExist) {
			err = errors.ReceiptDoesNotExist
		}
		return
	}

	return
}

//
// GetReceipts lists the receipts by height. The cursor of `options` is a
// height; the receipt of that height is not included.
//
func GetReceipts(st *storage.LevelDBBackend, options storage.ListOptions) (receipts []Receipt, err error) {
	var reverse bool
	var cursor []byte
	var limit uint64
	if options != nil {
		reverse = options.Reverse()
		limit = options.Limit()
		if c := options.Cursor(); len(c) > 0 {
			var height uint64
			if height, err = strconv.ParseUint(string(c), 10, 64); err != nil {
				err = errors.BadRequestParameter.Clone().SetData("cursor", string(c))
				return
			}
			cursor = []byte(GetReceiptHeightKey(height))
		}
	}

	iterFunc, closeFunc := st.GetIterator(
		receiptPrefixHeight,
		storage.NewDefaultListOptions(reverse, cursor, limit),
	)
	defer closeFunc()

	for {
		item, next := iterFunc()
		if !next {
			break
		}

		var hash string
		common.MustUnmarshalJSON(item.Value, &hash)

		var r Receipt
		if r, err = GetReceipt(st, hash); err != nil {
			return
		}
		receipts = append(receipts, r)
	}

	return
}
