package key

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"boscoin.io/ballotbox/lib/common/keypair"
)

func TestGenerateKP(t *testing.T) {
	{ // random
		kp, err := generateKP("", false)
		require.NoError(t, err)
		require.NotEmpty(t, kp.Seed())
	}

	{ // network passphrase
		kp0, err := generateKP("showme", false)
		require.NoError(t, err)
		kp1, err := generateKP("showme", false)
		require.NoError(t, err)
		require.Equal(t, kp0.Address(), kp1.Address())
	}

	{ // from seed
		expected := keypair.Random()
		kp, err := generateKP(expected.Seed(), true)
		require.NoError(t, err)
		require.Equal(t, expected.Address(), kp.Address())

		_, err = generateKP(expected.Address(), true)
		require.Error(t, err)
	}
}

func TestKeyEncoders(t *testing.T) {
	kp := keypair.Random()
	v := keyPair{Seed: kp.Seed(), Address: kp.Address()}

	{
		var b bytes.Buffer
		require.NoError(t, encoders["oneline"](v, &b))
		require.Equal(t, kp.Seed()+" "+kp.Address()+"\n", b.String())
	}

	{
		var b bytes.Buffer
		require.NoError(t, encoders["json"](v, &b))

		var m map[string]interface{}
		require.NoError(t, json.Unmarshal(b.Bytes(), &m))
		require.Equal(t, kp.Address(), m["address"])
		_, found := m["network_passphrase"]
		require.False(t, found)
	}

	{
		var b bytes.Buffer
		require.NoError(t, encoders["default"](v, &b))
		require.True(t, strings.Contains(b.String(), "Public Address: "+kp.Address()))
		require.False(t, strings.Contains(b.String(), "Network Passphrase"))
	}
}
