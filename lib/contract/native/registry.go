package native

import "sync"

var (
	contractsLock sync.RWMutex
	contracts     = make(map[string]Register)
)

type (
	Register func(executor *NativeExecutor)
)

func AddContract(addr string, r Register) {
	contractsLock.Lock()
	defer contractsLock.Unlock()

	contracts[addr] = r
}

func HasContract(addr string) bool {
	contractsLock.RLock()
	defer contractsLock.RUnlock()

	_, ok := contracts[addr]
	return ok
}
