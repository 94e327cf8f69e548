package httpcache

import (
	"boscoin.io/ballotbox/lib/common"
	"boscoin.io/ballotbox/lib/errors"
)

func NewAdapter(cfg common.Config) (Adapter, error) {
	switch cfg.HTTPCacheAdapter {
	case common.HTTPCacheMemoryAdapterName:
		return NewMemCacheAdapter(cfg.HTTPCachePoolSize), nil
	default:
		return nil, errors.New("adapter not found")
	}
}
