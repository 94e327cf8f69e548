package network

import (
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHTTP2NetworkReady(t *testing.T) {
	h2n := NewTestHTTP2Network(t)
	h2n.AddHandler(UrlPathPrefixAPI+"/v1/showme", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("findme"))
	})

	ts := httptest.NewServer(h2n.Handler())
	defer ts.Close()

	{ // not ready yet
		resp, err := http.Get(ts.URL + "/api/v1/showme")
		require.NoError(t, err)
		resp.Body.Close()
		require.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	}

	h2n.Ready()

	{
		resp, err := http.Get(ts.URL + "/api/v1/showme")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.NotEmpty(t, resp.Header.Get(HeaderRequestID))

		b, err := ioutil.ReadAll(resp.Body)
		require.NoError(t, err)
		require.Equal(t, "findme", string(b))
	}

	{ // unknown path
		resp, err := http.Get(ts.URL + "/api/v1/unknown")
		require.NoError(t, err)
		resp.Body.Close()
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
	}
}

func TestHTTP2NetworkRequestID(t *testing.T) {
	h2n := NewTestHTTP2Network(t)
	h2n.AddHandler("/", func(w http.ResponseWriter, r *http.Request) {})
	h2n.Ready()

	ts := httptest.NewServer(h2n.Handler())
	defer ts.Close()

	req, err := http.NewRequest("GET", ts.URL+"/", nil)
	require.NoError(t, err)
	req.Header.Set(HeaderRequestID, "showme")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, "showme", resp.Header.Get(HeaderRequestID))
}

func TestHTTP2NetworkAddMiddleware(t *testing.T) {
	h2n := NewTestHTTP2Network(t)

	var called []string
	mark := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = append(called, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	require.NoError(t, h2n.AddMiddleware(RouterNameAPI, mark("api")))
	require.NoError(t, h2n.AddMiddleware(RouterNameMetric, mark("metric")))
	require.Error(t, h2n.AddMiddleware("findme", mark("findme")))

	h2n.AddHandler(UrlPathPrefixAPI+"/v1/poll", func(w http.ResponseWriter, r *http.Request) {})
	h2n.AddHandler(UrlPathPrefixMetric, func(w http.ResponseWriter, r *http.Request) {})
	h2n.Ready()

	ts := httptest.NewServer(h2n.Handler())
	defer ts.Close()

	for _, path := range []string{"/api/v1/poll", "/metrics"} {
		resp, err := http.Get(ts.URL + path)
		require.NoError(t, err)
		resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode, path)
	}

	require.Equal(t, []string{"api", "metric"}, called)
}
