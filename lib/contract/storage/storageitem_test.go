package storage

import (
	"testing"

	"github.com/stretchr/testify/require"

	dbstorage "boscoin.io/ballotbox/lib/storage"
)

func TestStorageItem(t *testing.T) {
	st := dbstorage.NewTestStorage()
	defer st.Close()

	item, err := GetStorageItem(st, "contract", "findme")
	require.NoError(t, err)
	require.Nil(t, item)

	item = NewStorageItem("contract", "findme")
	item.Value = []byte("showme")
	require.NoError(t, item.Save(st))

	fetched, err := GetStorageItem(st, "contract", "findme")
	require.NoError(t, err)
	require.Equal(t, item, fetched)

	// same key, other contract
	other, err := GetStorageItem(st, "other", "findme")
	require.NoError(t, err)
	require.Nil(t, other)

	item.Value = []byte("killme")
	require.NoError(t, item.Save(st))
	fetched, _ = GetStorageItem(st, "contract", "findme")
	require.Equal(t, []byte("killme"), fetched.Value)
}

func TestLocalItem(t *testing.T) {
	st := dbstorage.NewTestStorage()
	defer st.Close()

	exists, err := ExistsLocalItem(st, "contract", "account", "findme")
	require.NoError(t, err)
	require.False(t, exists)

	item := NewLocalItem("contract", "account", "findme")
	item.Value = []byte("showme")
	require.NoError(t, item.Save(st))

	exists, _ = ExistsLocalItem(st, "contract", "account", "findme")
	require.True(t, exists)
	exists, _ = ExistsLocalItem(st, "contract", "other-account", "findme")
	require.False(t, exists)

	fetched, err := GetLocalItem(st, "contract", "account", "findme")
	require.NoError(t, err)
	require.Equal(t, item, fetched)

	// the global item does not see the local one
	global, err := GetStorageItem(st, "contract", "findme")
	require.NoError(t, err)
	require.Nil(t, global)
}
