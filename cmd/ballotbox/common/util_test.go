package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"boscoin.io/ballotbox/lib/common/keypair"
)

func TestParseDeadline(t *testing.T) {
	now := time.Date(2018, 10, 1, 0, 0, 0, 0, time.UTC)

	{ // duration
		u, err := ParseDeadline("72h", now)
		require.NoError(t, err)
		require.Equal(t, uint64(now.Add(72*time.Hour).Unix()), u)
	}

	{ // rfc3339
		u, err := ParseDeadline("2018-10-02T00:00:00Z", now)
		require.NoError(t, err)
		require.Equal(t, uint64(now.Add(24*time.Hour).Unix()), u)
	}

	{ // unix seconds
		u, err := ParseDeadline("1538352000", now)
		require.NoError(t, err)
		require.Equal(t, uint64(1538352000), u)
	}

	for _, s := range []string{"", "-1h", "0s", "showme", "-10", "1969-12-31T23:59:59Z", "0001-01-01T00:00:00Z"} {
		_, err := ParseDeadline(s, now)
		require.Error(t, err, s)
	}

	{ // the duration is added to a time before 1970
		_, err := ParseDeadline("1h", time.Date(1960, 1, 1, 0, 0, 0, 0, time.UTC))
		require.Error(t, err)
	}

	{ // the unix epoch itself is not negative
		u, err := ParseDeadline("1970-01-01T00:00:00Z", now)
		require.NoError(t, err)
		require.Equal(t, uint64(0), u)
	}
}

func TestParseSecretSeed(t *testing.T) {
	kp := keypair.Random()

	parsed, err := ParseSecretSeed(kp.Seed())
	require.NoError(t, err)
	require.Equal(t, kp.Address(), parsed.Address())

	_, err = ParseSecretSeed(kp.Address())
	require.Error(t, err)

	_, err = ParseSecretSeed("showme")
	require.Error(t, err)
}
