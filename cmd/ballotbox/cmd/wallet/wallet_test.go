package wallet

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	cmdcommon "boscoin.io/ballotbox/cmd/ballotbox/common"
	"boscoin.io/ballotbox/lib/common"
	"boscoin.io/ballotbox/lib/common/keypair"
	"boscoin.io/ballotbox/lib/ledger"
	"boscoin.io/ballotbox/lib/network"
	"boscoin.io/ballotbox/lib/node/runner"
)

type testWallet struct {
	t      *testing.T
	ts     *httptest.Server
	nr     *runner.NodeRunner
	clock  *common.TestClock
	exited []int
}

func prepareWallet(t *testing.T) *testWallet {
	l, clock := ledger.NewTestLedger()

	nr, err := runner.NewNodeRunner(l, network.NewTestHTTP2Network(t))
	require.NoError(t, err)
	require.NoError(t, nr.Ready())

	w := &testWallet{
		t:     t,
		ts:    httptest.NewServer(nr.Network().Handler()),
		nr:    nr,
		clock: clock,
	}

	flagEndpoint = w.ts.URL
	flagNetworkID = string(l.Config().NetworkID)
	flagFormat = "json"
	flagDryRun = false
	flagOptIn = false
	flagDescription = ""
	flagEnds = "72h"

	cmdcommon.Exit = func(code int) {
		w.exited = append(w.exited, code)
	}

	return w
}

func (w *testWallet) Close() {
	w.ts.Close()
	w.nr.Stop()
	w.nr.Ledger().Storage().Close()
	cmdcommon.Exit = os.Exit
}

func (w *testWallet) run(runFunc func(), out *bytes.Buffer) map[string]interface{} {
	out.Reset()
	runFunc()

	var m map[string]interface{}
	if out.Len() > 0 {
		require.NoError(w.t, json.Unmarshal(out.Bytes(), &m), out.String())
	}
	return m
}

func TestWalletCommands(t *testing.T) {
	w := prepareWallet(t)
	defer w.Close()

	var out bytes.Buffer
	CreateVoteCmd.SetOutput(&out)
	OptInCmd.SetOutput(&out)
	VoteCmd.SetOutput(&out)

	creator := keypair.Random()
	voter := keypair.Random()

	{ // create-vote
		flagDescription = "findme"
		m := w.run(func() {
			CreateVoteCmd.Run(CreateVoteCmd, []string{creator.Seed(), "showme", "A", "B", "C"})
		}, &out)
		require.Empty(t, w.exited)
		require.Equal(t, creator.Address(), m["source"])

		p, err := w.nr.Ledger().Poll()
		require.NoError(t, err)
		require.Equal(t, "showme", p.Title)
		require.Equal(t, "findme", p.Description)
		require.Equal(t, uint64(3), p.OptionCount)
	}

	w.clock.Add(time.Second)

	{ // vote without opt-in
		m := w.run(func() {
			VoteCmd.Run(VoteCmd, []string{voter.Seed(), "1"})
		}, &out)
		require.Nil(t, m)
		require.Equal(t, []int{1}, w.exited)
		w.exited = nil
	}

	{ // opt-in
		m := w.run(func() {
			OptInCmd.Run(OptInCmd, []string{voter.Seed()})
		}, &out)
		require.Empty(t, w.exited)
		require.Equal(t, voter.Address(), m["source"])
	}

	{ // vote
		m := w.run(func() {
			VoteCmd.Run(VoteCmd, []string{voter.Seed(), "3"})
		}, &out)
		require.Empty(t, w.exited)
		require.Equal(t, voter.Address(), m["source"])

		record, err := w.nr.Ledger().Voter(voter.Address())
		require.NoError(t, err)
		require.True(t, record.HasVoted)
		require.Equal(t, uint64(3), record.Option)
	}

	{ // opt-in and vote in one transaction
		other := keypair.Random()
		flagOptIn = true
		m := w.run(func() {
			VoteCmd.Run(VoteCmd, []string{other.Seed(), "2"})
		}, &out)
		require.Empty(t, w.exited)
		require.Equal(t, float64(2), m["operation_count"])

		p, err := w.nr.Ledger().Poll()
		require.NoError(t, err)
		require.Equal(t, [4]uint64{0, 1, 1, 0}, p.Tallies)
	}
}

func TestWalletDryRun(t *testing.T) {
	w := prepareWallet(t)
	defer w.Close()

	var out bytes.Buffer
	OptInCmd.SetOutput(&out)

	kp := keypair.Random()
	flagDryRun = true

	m := w.run(func() {
		OptInCmd.Run(OptInCmd, []string{kp.Seed()})
	}, &out)
	require.Empty(t, w.exited)
	require.Equal(t, kp.Address(), m["B"].(map[string]interface{})["source"])

	// nothing is applied
	require.Equal(t, uint64(0), w.nr.Ledger().State().Height)
}

func TestWalletMissingNetworkID(t *testing.T) {
	w := prepareWallet(t)
	defer w.Close()

	var out bytes.Buffer
	OptInCmd.SetOutput(&out)

	flagNetworkID = ""
	OptInCmd.Run(OptInCmd, []string{keypair.Random().Seed()})
	require.Equal(t, []int{1}, w.exited)
}
