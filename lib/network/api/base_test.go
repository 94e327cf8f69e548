package api

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"boscoin.io/ballotbox/lib/common"
	"boscoin.io/ballotbox/lib/common/keypair"
	"boscoin.io/ballotbox/lib/ledger"
	"boscoin.io/ballotbox/lib/network"
	"boscoin.io/ballotbox/lib/network/httpcache"
	"boscoin.io/ballotbox/lib/transaction"
	"boscoin.io/ballotbox/lib/transaction/operation"
)

type testAPI struct {
	t      *testing.T
	ts     *httptest.Server
	ledger *ledger.Ledger
	clock  *common.TestClock
	api    *NetworkHandlerAPI
}

func prepareAPIServer(t *testing.T) *testAPI {
	l, clock := ledger.NewTestLedger()

	cache, err := httpcache.NewClient(httpcache.WithAdapter(httpcache.NewMemCacheAdapter(10)))
	require.NoError(t, err)

	api := NewNetworkHandlerAPI(l, cache, network.UrlPathPrefixAPI)

	h2n := network.NewTestHTTP2Network(t)
	h2n.AddMiddleware("", network.RecoverMiddleware(common.NopLogger()))
	h2n.AddMiddleware(network.RouterNameAPI, network.MetricsMiddleware)
	api.AddHandlers(h2n)
	h2n.Ready()

	return &testAPI{
		t:      t,
		ts:     httptest.NewServer(h2n.Handler()),
		ledger: l,
		clock:  clock,
		api:    api,
	}
}

func (a *testAPI) Close() {
	a.ts.Close()
	a.api.Close()
	a.ledger.Storage().Close()
}

func (a *testAPI) get(path string) (*http.Response, map[string]interface{}) {
	resp, err := http.Get(a.ts.URL + path)
	require.NoError(a.t, err)

	return resp, readJSON(a.t, resp)
}

func (a *testAPI) post(tx transaction.Transaction) (*http.Response, map[string]interface{}) {
	b, err := tx.Serialize()
	require.NoError(a.t, err)

	return a.postRaw(b)
}

func (a *testAPI) postRaw(b []byte) (*http.Response, map[string]interface{}) {
	resp, err := http.Post(a.ts.URL+"/api/v1/transactions", "application/json", bytes.NewBuffer(b))
	require.NoError(a.t, err)

	return resp, readJSON(a.t, resp)
}

func (a *testAPI) submit(kp *keypair.Full, ops ...operation.Operation) (*http.Response, map[string]interface{}) {
	return a.post(transaction.TestMakeTransaction(a.ledger.Config().NetworkID, kp, ops...))
}

func (a *testAPI) now() uint64 {
	return uint64(a.clock.Now().Unix())
}

func readJSON(t *testing.T, resp *http.Response) map[string]interface{} {
	defer resp.Body.Close()

	b, err := ioutil.ReadAll(resp.Body)
	require.NoError(t, err)

	var m map[string]interface{}
	if len(b) > 0 {
		require.NoError(t, json.Unmarshal(b, &m), string(b))
	}
	return m
}

func links(m map[string]interface{}) map[string]interface{} {
	return m["_links"].(map[string]interface{})
}

func href(m map[string]interface{}, rel string) string {
	return links(m)[rel].(map[string]interface{})["href"].(string)
}
