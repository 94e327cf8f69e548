package storage

import "os"

// CleanDB removes the on-disk database created by a file storage test.
func CleanDB(path string) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return
	}

	os.RemoveAll(path)
}

// NewTestStorage opens a memory backed LevelDB; it panics when the backend
// can not be initialized.
func NewTestStorage() *LevelDBBackend {
	config, err := NewConfigFromString("memory://")
	if err != nil {
		panic(err)
	}

	st := &LevelDBBackend{}
	if err := st.Init(config); err != nil {
		panic(err)
	}

	return st
}
