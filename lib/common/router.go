package common

import (
	"mime"
	"net/http"

	"github.com/gorilla/mux"
)

// PostAndJSONMatcher rejects the POST requests whose body is not JSON; the
// other methods pass.
func PostAndJSONMatcher(r *http.Request, rm *mux.RouteMatch) bool {
	if r.Method != "POST" {
		return true
	}

	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return false
	}

	return mediaType == "application/json"
}
