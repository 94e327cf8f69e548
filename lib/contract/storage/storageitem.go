package storage

import (
	"fmt"

	"github.com/vmihailenco/msgpack"

	"boscoin.io/ballotbox/lib/errors"
	dbstorage "boscoin.io/ballotbox/lib/storage"
)

const (
	StorageItemKeyPrefix = "ct-si-" // ct-si-{address}-{key}
	LocalItemKeyPrefix   = "ct-li-" // ct-li-{address}-{account}-{key}
)

// StorageItem is a global value of a contract.
type StorageItem struct {
	Address string
	Key     string
	Value   []byte
}

func NewStorageItem(addr, key string) *StorageItem {
	return &StorageItem{
		Address: addr,
		Key:     key,
	}
}

func (s *StorageItem) Serialize() ([]byte, error) {
	return msgpack.Marshal(s)
}

func (s *StorageItem) Deserialize(encoded []byte) error {
	return msgpack.Unmarshal(encoded, s)
}

func (s *StorageItem) Save(st *dbstorage.LevelDBBackend) error {
	return st.Put(GetStorageItemDBKey(s.Address, s.Key), s)
}

func GetStorageItemDBKey(addr, key string) string {
	return fmt.Sprintf("%s%s-%s", StorageItemKeyPrefix, addr, key)
}

// GetStorageItem returns nil without error when the item does not exist.
func GetStorageItem(st *dbstorage.LevelDBBackend, addr, key string) (*StorageItem, error) {
	b, err := st.GetRaw(GetStorageItemDBKey(addr, key))
	if err != nil {
		if errors.IsError(err, errors.StorageRecordDoesNotExist) {
			return nil, nil
		}
		return nil, err
	}

	item := &StorageItem{}
	if err = item.Deserialize(b); err != nil {
		return nil, errors.StorageCoreError.Clone().SetData("error", err.Error())
	}

	return item, nil
}

// LocalItem is a value of a contract kept per account.
type LocalItem struct {
	Address string
	Account string
	Key     string
	Value   []byte
}

func NewLocalItem(addr, account, key string) *LocalItem {
	return &LocalItem{
		Address: addr,
		Account: account,
		Key:     key,
	}
}

func (s *LocalItem) Serialize() ([]byte, error) {
	return msgpack.Marshal(s)
}

func (s *LocalItem) Deserialize(encoded []byte) error {
	return msgpack.Unmarshal(encoded, s)
}

func (s *LocalItem) Save(st *dbstorage.LevelDBBackend) error {
	return st.Put(GetLocalItemDBKey(s.Address, s.Account, s.Key), s)
}

func GetLocalItemDBKey(addr, account, key string) string {
	return fmt.Sprintf("%s%s-%s-%s", LocalItemKeyPrefix, addr, account, key)
}

func ExistsLocalItem(st *dbstorage.LevelDBBackend, addr, account, key string) (bool, error) {
	return st.Has(GetLocalItemDBKey(addr, account, key))
}

// GetLocalItem returns nil without error when the item does not exist.
func GetLocalItem(st *dbstorage.LevelDBBackend, addr, account, key string) (*LocalItem, error) {
	b, err := st.GetRaw(GetLocalItemDBKey(addr, account, key))
	if err != nil {
		if errors.IsError(err, errors.StorageRecordDoesNotExist) {
			return nil, nil
		}
		return nil, err
	}

	item := &LocalItem{}
	if err = item.Deserialize(b); err != nil {
		return nil, errors.StorageCoreError.Clone().SetData("error", err.Error())
	}

	return item, nil
}
