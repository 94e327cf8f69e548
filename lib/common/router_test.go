package common

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
)

func TestPostAndJSONMatcher(t *testing.T) {
	router := mux.NewRouter()
	router.HandleFunc("/transactions", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}).Methods("GET", "POST").MatcherFunc(PostAndJSONMatcher)

	server := httptest.NewServer(router)
	defer server.Close()

	cases := []struct {
		method      string
		contentType string
		expected    int
	}{
		{"GET", "", http.StatusNoContent},
		{"GET", "text/plain", http.StatusNoContent},
		{"POST", "", http.StatusNotFound},
		{"POST", "text/plain", http.StatusNotFound},
		{"POST", "application/jsonx", http.StatusNotFound},
		{"POST", "application/json", http.StatusNoContent},
		{"POST", "application/json; charset=utf-8", http.StatusNoContent},
		{"POST", "Application/JSON", http.StatusNoContent},
	}

	for _, c := range cases {
		req, err := http.NewRequest(c.method, server.URL+"/transactions", nil)
		require.NoError(t, err)
		if len(c.contentType) > 0 {
			req.Header.Set("Content-Type", c.contentType)
		}

		resp, err := server.Client().Do(req)
		require.NoError(t, err)
		resp.Body.Close()
		require.Equal(t, c.expected, resp.StatusCode, "%s %q", c.method, c.contentType)
	}
}
