package storage

import (
	"fmt"
	"io/ioutil"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"boscoin.io/ballotbox/lib/errors"
)

func TestLevelDBBackendInitFileStorage(t *testing.T) {
	path, _ := ioutil.TempDir("", "ballotbox")
	defer CleanDB(path)

	st := &LevelDBBackend{}
	config, err := NewConfigFromString("file://" + filepath.Join(path, "db"))
	require.NoError(t, err)
	require.NoError(t, st.Init(config))
	defer st.Close()

	require.NoError(t, st.New("showme", 1))
	exists, err := st.Has("showme")
	require.NoError(t, err)
	require.True(t, exists)
}

func TestLevelDBBackendInitMemStorage(t *testing.T) {
	st := &LevelDBBackend{}
	defer st.Close()

	config, _ := NewConfigFromString("memory://")
	if err := st.Init(config); err != nil {
		t.Errorf("failed to initialize mem db: %v", err)
	}
}

func TestLevelDBBackendInitUnknownScheme(t *testing.T) {
	st := &LevelDBBackend{}
	err := st.Init(&Config{Scheme: "redis"})
	require.True(t, errors.IsError(err, errors.StorageUnknownScheme))
}

func TestLevelDBBackendNew(t *testing.T) {
	st := NewTestStorage()
	defer st.Close()

	key := "showme"
	input := map[int]string{
		90: "99",
		91: "91",
		92: "92",
	}
	if err := st.New(key, input); err != nil {
		t.Errorf("failed to 'New' in leveldb: %v", err)
		return
	}

	fetched := map[int]string{}
	err := st.Get(key, &fetched)
	if err != nil {
		t.Errorf("failed to 'Get' in leveldb: %v", err)
		return
	}

	if !reflect.DeepEqual(input, fetched) {
		t.Errorf("failed to 'Get' the same input in leveldb")
		return
	}

	err = st.New(key, input)
	require.Equal(t, errors.StorageRecordAlreadyExists, err)
}

func TestLevelDBBackendNews(t *testing.T) {
	st := NewTestStorage()
	defer st.Close()

	var args []Item
	for i := 0; i < 100; i++ {
		args = append(args, Item{Key: fmt.Sprintf("%d", i), Value: i})
	}

	require.NoError(t, st.News(args...))

	for _, i := range args {
		var fetched int
		require.NoError(t, st.Get(i.Key, &fetched))
		require.Equal(t, i.Value, fetched)
	}

	// one existing key makes the whole batch fail
	err := st.News(Item{Key: "new-one", Value: 1}, Item{Key: "0", Value: 1})
	require.Equal(t, errors.StorageRecordAlreadyExists, err)

	exists, _ := st.Has("new-one")
	require.False(t, exists)
}

func TestLevelDBBackendHas(t *testing.T) {
	st := NewTestStorage()
	defer st.Close()

	key := "showme"
	if exists, _ := st.Has(key); exists {
		t.Error("failed to 'Has' in leveldb")
		return
	}

	st.New(key, 10)

	if exists, _ := st.Has(key); !exists {
		t.Error("failed to 'Has' in leveldb")
		return
	}

	st.Remove(key)
	if exists, _ := st.Has(key); exists {
		t.Error("failed to 'Has' in leveldb")
		return
	}
}

func TestLevelDBBackendGetRaw(t *testing.T) {
	st := NewTestStorage()
	defer st.Close()

	st.New("showme", "input")

	// when record does not exist, it should return StorageRecordDoesNotExist
	_, err := st.GetRaw("vacuum")
	require.Equal(t, errors.StorageRecordDoesNotExist, err)

	b, err := st.GetRaw("showme")
	require.NoError(t, err)
	require.Equal(t, `"input"`, string(b))
}

func TestLevelDBBackendSet(t *testing.T) {
	st := NewTestStorage()
	defer st.Close()

	key := "showme"
	input := 20

	if err := st.Set(key, input); err == nil {
		t.Errorf("'Set' must be failed with new key")
		return
	}

	st.New(key, input)

	require.NoError(t, st.Set(key, input+1))

	var fetched int
	require.NoError(t, st.Get(key, &fetched))
	require.Equal(t, input+1, fetched)
}

func TestLevelDBBackendPut(t *testing.T) {
	st := NewTestStorage()
	defer st.Close()

	require.NoError(t, st.Put("showme", 1))
	require.NoError(t, st.Put("showme", 2))

	var fetched int
	require.NoError(t, st.Get("showme", &fetched))
	require.Equal(t, 2, fetched)
}

type rawValue []byte

func (r rawValue) Serialize() ([]byte, error) {
	return []byte(r), nil
}

func TestLevelDBBackendSerializable(t *testing.T) {
	st := NewTestStorage()
	defer st.Close()

	require.NoError(t, st.New("showme", rawValue("findme")))

	b, err := st.GetRaw("showme")
	require.NoError(t, err)
	require.Equal(t, "findme", string(b))
}

func TestLevelDBBackendRemove(t *testing.T) {
	st := NewTestStorage()
	defer st.Close()

	key := "showme"
	input := 20

	if err := st.Remove(key); err == nil {
		t.Errorf("'Remove' must be failed with new key")
		return
	}

	st.New(key, input)

	if err := st.Remove(key); err != nil {
		t.Errorf("failed to 'Remove': %v", err)
		return
	}
	if exists, _ := st.Has(key); exists {
		t.Errorf("failed to 'Remove': key must be removed")
		return
	}
}

func TestLevelDBBackendTransactionCommit(t *testing.T) {
	st := NewTestStorage()
	defer st.Close()

	ts, err := st.OpenTransaction()
	require.NoError(t, err)
	require.True(t, ts.IsTransaction())

	key := uuid.New().String()
	require.NoError(t, ts.New(key, "findme"))

	{ // not yet visible outside of the transaction
		exists, err := st.Has(key)
		require.NoError(t, err)
		require.False(t, exists)
	}

	require.NoError(t, ts.Commit())

	var fetched string
	require.NoError(t, st.Get(key, &fetched))
	require.Equal(t, "findme", fetched)
}

func TestLevelDBBackendTransactionDiscard(t *testing.T) {
	st := NewTestStorage()
	defer st.Close()

	ts, err := st.OpenTransaction()
	require.NoError(t, err)

	key := uuid.New().String()
	require.NoError(t, ts.New(key, "findme"))
	require.NoError(t, ts.Discard())

	exists, err := st.Has(key)
	require.NoError(t, err)
	require.False(t, exists)

	// the database is usable after discard
	ts, err = st.OpenTransaction()
	require.NoError(t, err)
	require.NoError(t, ts.New(key, "findme"))
	require.NoError(t, ts.Commit())
}

func TestLevelDBBackendTransactionNested(t *testing.T) {
	st := NewTestStorage()
	defer st.Close()

	ts, err := st.OpenTransaction()
	require.NoError(t, err)
	defer ts.Discard()

	_, err = ts.OpenTransaction()
	require.Error(t, err)

	require.Error(t, st.Commit())
	require.Error(t, st.Discard())
}

func prepareIteratorData(st *LevelDBBackend, prefix string, count int) (keys []string) {
	for i := 0; i < count; i++ {
		key := fmt.Sprintf("%s%03d", prefix, i)
		if err := st.New(key, i); err != nil {
			panic(err)
		}
		keys = append(keys, key)
	}

	st.New("other-000", 0)

	return
}

func collectKeys(iterFunc func() (IterItem, bool), closeFunc func()) (keys []string) {
	defer closeFunc()
	for {
		item, next := iterFunc()
		if !next {
			break
		}
		keys = append(keys, string(item.Key))
	}
	return
}

func TestLevelDBIterator(t *testing.T) {
	st := NewTestStorage()
	defer st.Close()

	keys := prepareIteratorData(st, "test-", 10)

	{ // all
		fetched := collectKeys(st.GetIterator("test-", nil))
		require.Equal(t, keys, fetched)
	}

	{ // reverse
		fetched := collectKeys(st.GetIterator("test-", NewDefaultListOptions(true, nil, 0)))
		require.Equal(t, 10, len(fetched))
		require.Equal(t, keys[9], fetched[0])
		require.Equal(t, keys[0], fetched[9])
	}

	{ // limit
		fetched := collectKeys(st.GetIterator("test-", NewDefaultListOptions(false, nil, 3)))
		require.Equal(t, keys[:3], fetched)
	}

	{ // cursor excludes itself
		fetched := collectKeys(st.GetIterator("test-", NewDefaultListOptions(false, []byte(keys[2]), 3)))
		require.Equal(t, keys[3:6], fetched)
	}

	{ // cursor with reverse
		fetched := collectKeys(st.GetIterator("test-", NewDefaultListOptions(true, []byte(keys[5]), 2)))
		require.Equal(t, []string{keys[4], keys[3]}, fetched)
	}

	{ // cursor beyond the end
		fetched := collectKeys(st.GetIterator("test-", NewDefaultListOptions(false, []byte("test-999"), 0)))
		require.Empty(t, fetched)
	}
}
