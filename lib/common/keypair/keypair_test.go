package keypair

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSignatureRoundTrip(t *testing.T) {
	networkID := []byte("ballotbox-unittest")
	kp := Random()

	signature, err := MakeSignature(kp, networkID, "findme")
	require.NoError(t, err)

	require.NoError(t, VerifySignature(kp.Address(), networkID, "findme", signature))
	require.Error(t, VerifySignature(kp.Address(), networkID, "killme", signature))
	require.Error(t, VerifySignature(kp.Address(), []byte("other-network"), "findme", signature))
	require.Error(t, VerifySignature(Random().Address(), networkID, "findme", signature))
}

func TestParseSeed(t *testing.T) {
	kp := Master("find me").(*Full)
	parsed, err := Parse(kp.Seed())
	require.NoError(t, err)
	require.Equal(t, kp.Address(), parsed.Address())

	_, err = Parse("killme")
	require.Error(t, err)
}
