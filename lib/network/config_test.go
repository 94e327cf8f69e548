package network

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"boscoin.io/ballotbox/lib/common"
)

func makeEndpoint(t *testing.T, scheme string, query url.Values) *common.Endpoint {
	endpoint, err := common.ParseEndpoint(scheme + "://localhost:5000?" + query.Encode())
	require.NoError(t, err)
	return endpoint
}

func TestHTTP2NetworkConfigHTTPSAndTLS(t *testing.T) {
	nodeName := "showme"

	{ // HTTPS + TLSCertFile + TLSKeyFile
		q := url.Values{}
		q.Set("TLSCertFile", "faketlscert")
		q.Set("TLSKeyFile", "faketlskey")

		config, err := NewHTTP2NetworkConfigFromEndpoint(nodeName, makeEndpoint(t, "https", q))
		require.NoError(t, err)
		require.True(t, config.IsHTTPS())
		require.Equal(t, "localhost:5000", config.Addr)
	}

	{ // HTTPS + TLSCertFile
		q := url.Values{}
		q.Set("TLSCertFile", "faketlscert")

		_, err := NewHTTP2NetworkConfigFromEndpoint(nodeName, makeEndpoint(t, "https", q))
		require.Error(t, err)
	}

	{ // HTTPS + TLSKeyFile
		q := url.Values{}
		q.Set("TLSKeyFile", "faketlskey")

		_, err := NewHTTP2NetworkConfigFromEndpoint(nodeName, makeEndpoint(t, "https", q))
		require.Error(t, err)
	}

	{ // HTTP
		config, err := NewHTTP2NetworkConfigFromEndpoint(nodeName, makeEndpoint(t, "http", url.Values{}))
		require.NoError(t, err)
		require.False(t, config.IsHTTPS())
	}
}

func TestHTTP2NetworkConfigTimeouts(t *testing.T) {
	{ // defaults
		config, err := NewHTTP2NetworkConfigFromEndpoint("showme", makeEndpoint(t, "http", url.Values{}))
		require.NoError(t, err)
		require.Equal(t, time.Duration(0), config.ReadTimeout)
		require.Equal(t, 5*time.Second, config.IdleTimeout)
	}

	{ // given
		q := url.Values{}
		q.Set("ReadTimeout", "3s")
		q.Set("WriteTimeout", "1m")

		config, err := NewHTTP2NetworkConfigFromEndpoint("showme", makeEndpoint(t, "http", q))
		require.NoError(t, err)
		require.Equal(t, 3*time.Second, config.ReadTimeout)
		require.Equal(t, time.Minute, config.WriteTimeout)
	}

	for _, key := range []string{"ReadTimeout", "ReadHeaderTimeout", "WriteTimeout", "IdleTimeout"} {
		q := url.Values{}
		q.Set(key, "-1s")
		_, err := NewHTTP2NetworkConfigFromEndpoint("showme", makeEndpoint(t, "http", q))
		require.Error(t, err, key)

		q.Set(key, "findme")
		_, err = NewHTTP2NetworkConfigFromEndpoint("showme", makeEndpoint(t, "http", q))
		require.Error(t, err, key)
	}
}
