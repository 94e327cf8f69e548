package ledger

import (
	logging "github.com/inconshreveable/log15"

	"boscoin.io/ballotbox/lib/common/test"
)

func init() {
	SetLogging(logging.LvlDebug, test.LogHandler())
}
