package common

import (
	"sync"
	"time"

	"github.com/beevik/ntp"

	"boscoin.io/ballotbox/lib/errors"
)

// Clock is the source of the ledger time.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

//
// NTPClock keeps the offset against a NTP server and applies it to the
// local clock. The offset is measured once by `Sync()`; calling `Sync()`
// again refreshes it.
//
type NTPClock struct {
	sync.RWMutex

	server string
	offset time.Duration
}

func NewNTPClock(server string) *NTPClock {
	return &NTPClock{server: server}
}

func (c *NTPClock) Sync() error {
	response, err := ntp.Query(c.server)
	if err != nil {
		return errors.ClockNTPQueryFailed.Clone().SetData("error", err.Error())
	}
	if err = response.Validate(); err != nil {
		return errors.ClockNTPQueryFailed.Clone().SetData("error", err.Error())
	}

	c.Lock()
	c.offset = response.ClockOffset
	c.Unlock()

	log.Debug("ntp offset updated", "server", c.server, "offset", response.ClockOffset)

	return nil
}

func (c *NTPClock) Offset() time.Duration {
	c.RLock()
	defer c.RUnlock()

	return c.offset
}

func (c *NTPClock) Now() time.Time {
	return time.Now().Add(c.Offset()).UTC()
}

// TestClock is a settable clock for unit tests.
type TestClock struct {
	sync.RWMutex

	now time.Time
}

func NewTestClock(now time.Time) *TestClock {
	return &TestClock{now: now}
}

func (c *TestClock) Now() time.Time {
	c.RLock()
	defer c.RUnlock()

	return c.now
}

func (c *TestClock) Set(now time.Time) {
	c.Lock()
	defer c.Unlock()

	c.now = now
}

func (c *TestClock) Add(d time.Duration) {
	c.Lock()
	defer c.Unlock()

	c.now = c.now.Add(d)
}
