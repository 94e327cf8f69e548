package contract

import (
	"encoding/json"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"boscoin.io/ballotbox/lib/contract/context"
	"boscoin.io/ballotbox/lib/contract/native/execfunc"
	"boscoin.io/ballotbox/lib/contract/payload"
	"boscoin.io/ballotbox/lib/errors"
	"boscoin.io/ballotbox/lib/poll"
	dbstorage "boscoin.io/ballotbox/lib/storage"
)

func execPoll(t *testing.T, st *dbstorage.LevelDBBackend, sender string, now uint64, method string, args ...string) error {
	ctx := context.NewContext(sender, now, 1, st)
	_, err := Execute(ctx, payload.NewExecCode(execfunc.PollContractAddress, method, args...))
	return err
}

func loadPoll(t *testing.T, st *dbstorage.LevelDBBackend) (p poll.Poll) {
	ctx := context.NewContext("", 0, 1, st)
	ret, err := Execute(ctx, payload.NewExecCode(execfunc.PollContractAddress, execfunc.MethodGetPoll))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(ret.Bytes(), &p))

	return
}

func TestContractExecutorNotFound(t *testing.T) {
	st := dbstorage.NewTestStorage()
	defer st.Close()

	ctx := context.NewContext("sender", 1, 1, st)
	_, err := Execute(ctx, payload.NewExecCode("NOWHERE", "hello"))
	require.True(t, errors.IsError(err, errors.ContractNotFound))

	_, err = Execute(ctx, payload.NewExecCode(execfunc.PollContractAddress, "hello"))
	require.True(t, errors.IsError(err, errors.ContractMethodNotFound))
}

func TestContractExecutorPoll(t *testing.T) {
	st := dbstorage.NewTestStorage()
	defer st.Close()

	var now uint64 = 1000
	require.NoError(t, execPoll(t, st, "", now, execfunc.MethodInitialize))
	require.Equal(t, poll.StatusNotCreated, loadPoll(t, st).Status)

	endsAt := strconv.FormatUint(now+100, 10)
	require.NoError(t, execPoll(t, st, "creator", now, execfunc.MethodCreateVote,
		"title", "description", "2", "Yes", "No", "", "", endsAt,
	))

	p := loadPoll(t, st)
	require.Equal(t, poll.StatusActive, p.Status)
	require.Equal(t, []string{"Yes", "No"}, p.Labels())
	require.Equal(t, now, p.StartsAt)

	require.NoError(t, execPoll(t, st, "voter", now+1, execfunc.MethodOptIn))
	require.NoError(t, execPoll(t, st, "voter", now+1, execfunc.MethodVote, "2"))

	err := execPoll(t, st, "voter", now+2, execfunc.MethodVote, "1")
	require.True(t, errors.IsError(err, errors.PollAlreadyVoted))

	err = execPoll(t, st, "stranger", now+2, execfunc.MethodVote, "1")
	require.True(t, errors.IsError(err, errors.PollNotOptedIn))

	require.Equal(t, [poll.MaxOptions]uint64{0, 1}, loadPoll(t, st).Tallies)

	{ // voter record
		ctx := context.NewContext("", 0, 1, st)
		ret, err := Execute(ctx, payload.NewExecCode(execfunc.PollContractAddress, execfunc.MethodGetVoter, "voter"))
		require.NoError(t, err)

		var record poll.VoterRecord
		require.NoError(t, json.Unmarshal(ret.Bytes(), &record))
		require.Equal(t, poll.VoterRecord{HasVoted: true, Option: 2}, record)

		ret, err = Execute(ctx, payload.NewExecCode(execfunc.PollContractAddress, execfunc.MethodGetVoter, "stranger"))
		require.NoError(t, err)
		require.True(t, ret.IsNil())
	}
}

func TestContractExecutorPollInvalidArguments(t *testing.T) {
	st := dbstorage.NewTestStorage()
	defer st.Close()

	require.NoError(t, execPoll(t, st, "", 1, execfunc.MethodInitialize))

	cases := [][]string{
		{execfunc.MethodCreateVote, "title"},
		{execfunc.MethodCreateVote, "t", "d", "two", "a", "b", "", "", "100"},
		{execfunc.MethodCreateVote, "t", "d", "2", "a", "b", "", "", "-1"},
		{execfunc.MethodVote},
		{execfunc.MethodVote, "first"},
		{execfunc.MethodOptIn, "extra"},
		{execfunc.MethodGetVoter},
	}

	for _, c := range cases {
		err := execPoll(t, st, "sender", 1, c[0], c[1:]...)
		require.True(t, errors.IsError(err, errors.ContractInvalidArguments), "%v", c)
	}
}
