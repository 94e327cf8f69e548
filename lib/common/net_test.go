package common

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseEndpoint(t *testing.T) {
	{ // missing scheme
		_, err := ParseEndpoint("localhost:12345")
		require.Error(t, err)
	}

	{ // default port
		e, err := ParseEndpoint("http://LocalHost")
		require.NoError(t, err)
		require.Equal(t, "http://localhost:12345", e.String())
	}

	{ // empty host
		e, err := ParseEndpoint("https://:5000?TLSCertFile=a")
		require.NoError(t, err)
		require.Equal(t, "https://localhost:5000", e.String())
		require.Equal(t, "a", e.Query().Get("TLSCertFile"))
	}

	{ // invalid port
		_, err := ParseEndpoint("http://localhost:0")
		require.Error(t, err)
	}
}

func TestEndpointJSON(t *testing.T) {
	e, err := ParseEndpoint("http://127.0.0.1:5000")
	require.NoError(t, err)

	b, err := json.Marshal(e)
	require.NoError(t, err)
	require.Equal(t, `"http://127.0.0.1:5000"`, string(b))

	var restored Endpoint
	require.NoError(t, json.Unmarshal(b, &restored))
	require.Equal(t, e.String(), restored.String())
}

func TestCheckBindString(t *testing.T) {
	require.NoError(t, CheckBindString("0.0.0.0:5000"))
	require.Error(t, CheckBindString("0.0.0.0"))
	require.Error(t, CheckBindString(":0"))
}
