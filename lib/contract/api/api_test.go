package api

import (
	"testing"

	"github.com/stretchr/testify/require"

	"boscoin.io/ballotbox/lib/contract/context"
	dbstorage "boscoin.io/ballotbox/lib/storage"
)

type testRecord struct {
	Name  string
	Count uint64
	Slots [2]string
}

func TestAPIGlobal(t *testing.T) {
	st := dbstorage.NewTestStorage()
	defer st.Close()

	ctx := context.NewContext("sender", 100, 3, st)
	a := NewAPI(ctx, "contract")

	require.Equal(t, "sender", a.Sender())
	require.Equal(t, uint64(100), a.Now())
	require.Equal(t, uint64(3), a.Height())
	require.Equal(t, "contract", a.ContractAddress())

	var fetched testRecord
	found, err := a.GetGlobal("record", &fetched)
	require.NoError(t, err)
	require.False(t, found)

	record := testRecord{Name: "showme", Count: 9, Slots: [2]string{"a", "b"}}
	require.NoError(t, a.PutGlobal("record", record))

	found, err = a.GetGlobal("record", &fetched)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, record, fetched)

	// other contract does not see it
	found, err = NewAPI(ctx, "other").GetGlobal("record", &fetched)
	require.NoError(t, err)
	require.False(t, found)
}

func TestAPILocal(t *testing.T) {
	st := dbstorage.NewTestStorage()
	defer st.Close()

	a := NewAPI(context.NewContext("sender", 100, 3, st), "contract")

	exists, err := a.HasLocal("sender", "record")
	require.NoError(t, err)
	require.False(t, exists)

	require.NoError(t, a.PutLocal("sender", "record", testRecord{Count: 1}))

	exists, _ = a.HasLocal("sender", "record")
	require.True(t, exists)
	exists, _ = a.HasLocal("someone", "record")
	require.False(t, exists)

	var fetched testRecord
	found, err := a.GetLocal("sender", "record", &fetched)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, uint64(1), fetched.Count)
}

func TestAPIInTransaction(t *testing.T) {
	st := dbstorage.NewTestStorage()
	defer st.Close()

	ts, err := st.OpenTransaction()
	require.NoError(t, err)

	a := NewAPI(context.NewContext("sender", 100, 3, ts), "contract")
	require.NoError(t, a.PutGlobal("record", testRecord{Count: 1}))
	require.NoError(t, ts.Discard())

	var fetched testRecord
	found, err := NewAPI(context.NewContext("sender", 100, 3, st), "contract").GetGlobal("record", &fetched)
	require.NoError(t, err)
	require.False(t, found)
}
