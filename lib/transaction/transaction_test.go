package transaction

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"boscoin.io/ballotbox/lib/common"
	"boscoin.io/ballotbox/lib/common/keypair"
	"boscoin.io/ballotbox/lib/errors"
	"boscoin.io/ballotbox/lib/transaction/operation"
)

func TestNewTransaction(t *testing.T) {
	kp := keypair.Random()

	_, err := NewTransaction(kp.Address(), 0)
	require.Equal(t, errors.TransactionEmptyOperations, err)

	tx, err := NewTransaction(kp.Address(), 1, operation.MakeTestOptIn())
	require.NoError(t, err)
	require.Equal(t, Version, tx.H.Version)
	require.Equal(t, tx.B.MakeHashString(), tx.H.Hash)
	require.Equal(t, kp.Address(), tx.Source())

	// nonce makes the hash different
	other, _ := NewTransaction(kp.Address(), 2, operation.MakeTestOptIn())
	require.NotEqual(t, tx.GetHash(), other.GetHash())
}

func TestTransactionIsWellFormed(t *testing.T) {
	conf := common.NewTestConfig()
	kp := keypair.Random()

	tx := TestMakeTransaction(conf.NetworkID, kp,
		operation.MakeTestOptIn(),
		operation.MakeTestVote(1),
	)
	require.NoError(t, tx.IsWellFormed(conf))

	{ // json round trip keeps it valid
		b, err := tx.Serialize()
		require.NoError(t, err)

		var decoded Transaction
		require.NoError(t, json.Unmarshal(b, &decoded))
		require.NoError(t, decoded.IsWellFormed(conf))
		require.Equal(t, tx.GetHash(), decoded.GetHash())
	}
}

func TestTransactionIsWellFormedOperationsLimit(t *testing.T) {
	conf := common.NewTestConfig()
	conf.OpsLimit = 2
	kp := keypair.Random()

	tx := TestMakeTransaction(conf.NetworkID, kp, operation.MakeTestOptIn(), operation.MakeTestOptIn())
	require.NoError(t, tx.IsWellFormed(conf))

	tx = TestMakeTransaction(conf.NetworkID, kp,
		operation.MakeTestOptIn(),
		operation.MakeTestOptIn(),
		operation.MakeTestOptIn(),
	)
	require.Equal(t, errors.TransactionHasOverMaxOperations, tx.IsWellFormed(conf))

	tx.B.Operations = nil
	tx.Sign(kp, conf.NetworkID)
	require.Equal(t, errors.TransactionEmptyOperations, tx.IsWellFormed(conf))
}

func TestTransactionIsWellFormedSource(t *testing.T) {
	conf := common.NewTestConfig()
	kp := keypair.Random()

	tx := TestMakeTransaction(conf.NetworkID, kp, operation.MakeTestOptIn())
	tx.B.Source = "findme"
	require.Equal(t, errors.BadPublicAddress, tx.IsWellFormed(conf))
}

func TestTransactionIsWellFormedUnknownOperation(t *testing.T) {
	conf := common.NewTestConfig()
	kp := keypair.Random()

	op := operation.MakeTestOptIn()
	op.H.Type = "payment"

	tx := TestMakeTransaction(conf.NetworkID, kp, op)
	require.Equal(t, errors.UnknownOperationType, tx.IsWellFormed(conf))
}

func TestTransactionIsWellFormedInvalidOperation(t *testing.T) {
	conf := common.NewTestConfig()
	kp := keypair.Random()

	op := operation.MakeTestCreateVote(100)
	body := op.B.(operation.CreateVote)
	body.Options[0] = string(make([]byte, operation.MaxOptionLength+1))
	op.B = body

	tx := TestMakeTransaction(conf.NetworkID, kp, op)
	require.True(t, errors.IsError(tx.IsWellFormed(conf), errors.InvalidOperation))
}

func TestTransactionIsWellFormedHash(t *testing.T) {
	conf := common.NewTestConfig()
	kp := keypair.Random()

	tx := TestMakeTransaction(conf.NetworkID, kp, operation.MakeTestVote(1))
	tx.B.Operations[0] = operation.MakeTestVote(2)
	require.Equal(t, errors.TransactionInvalidHash, tx.IsWellFormed(conf))
}

func TestTransactionIsWellFormedSignature(t *testing.T) {
	conf := common.NewTestConfig()
	kp := keypair.Random()

	{ // signed by other keypair
		tx := TestMakeTransaction(conf.NetworkID, kp, operation.MakeTestVote(1))
		tx.Sign(keypair.Random(), conf.NetworkID)
		require.Equal(t, errors.TransactionInvalidSignature, tx.IsWellFormed(conf))
	}

	{ // signed for other network
		tx := TestMakeTransaction([]byte("other-network"), kp, operation.MakeTestVote(1))
		require.Equal(t, errors.TransactionInvalidSignature, tx.IsWellFormed(conf))
	}

	{ // claims other source
		tx := TestMakeTransaction(conf.NetworkID, kp, operation.MakeTestVote(1))
		tx.B.Source = keypair.Random().Address()
		tx.H.Hash = tx.B.MakeHashString()
		require.Equal(t, errors.TransactionInvalidSignature, tx.IsWellFormed(conf))
	}
}
