package common

import "time"

const (
	DefaultOperationsInTransactionLimit = 10

	HTTPCacheMemoryAdapterName = "mem"
	HTTPCachePoolSize          = 1024
	HTTPCacheExpire            = 10 * time.Second
)

// Config holds the node-wide settings which must be shared by every
// component applying or serving transactions.
type Config struct {
	NetworkID []byte

	// OpsLimit is the maximum number of operations in one transaction
	OpsLimit int

	// Those fields are not ledger-related; empty `HTTPCacheAdapter` disables
	// the response cache of the API.
	HTTPCacheAdapter  string
	HTTPCachePoolSize int
	HTTPCacheExpire   time.Duration
}

func NewConfig(networkID []byte) Config {
	p := Config{}

	p.NetworkID = networkID
	p.OpsLimit = DefaultOperationsInTransactionLimit
	p.HTTPCacheAdapter = HTTPCacheMemoryAdapterName
	p.HTTPCachePoolSize = HTTPCachePoolSize
	p.HTTPCacheExpire = HTTPCacheExpire

	return p
}
