package network

import (
	"io/ioutil"
	"testing"

	"github.com/stretchr/testify/require"

	"boscoin.io/ballotbox/lib/common"
)

func NewTestHTTP2Network(t *testing.T) *HTTP2Network {
	endpoint, err := common.ParseEndpoint("http://localhost:5000")
	require.NoError(t, err)

	config, err := NewHTTP2NetworkConfigFromEndpoint("test", endpoint)
	require.NoError(t, err)
	config.HTTP2LogOutput = ioutil.Discard

	return NewHTTP2Network(config)
}
