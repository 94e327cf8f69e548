package httputils

import (
	"net/http"

	"github.com/nvellon/hal"

	"boscoin.io/ballotbox/lib/common"
)

const (
	ContentTypeJSON    = "application/json"
	ContentTypeHAL     = "application/hal+json"
	ContentTypeProblem = "application/problem+json"
)

type HALResource interface {
	Resource() *hal.Resource
}

// WriteJSON writes the value v to the http response as json encoding
func WriteJSON(w http.ResponseWriter, code int, v interface{}) error {
	if h, ok := v.(HALResource); ok {
		w.Header().Set("Content-Type", ContentTypeHAL)
		v = h.Resource()
	} else if e, ok := v.(error); ok {
		w.Header().Set("Content-Type", ContentTypeProblem)
		v = NewErrorProblem(e, code)
	} else if _, ok := v.(Problem); ok {
		w.Header().Set("Content-Type", ContentTypeProblem)
	} else {
		w.Header().Set("Content-Type", ContentTypeJSON)
	}

	w.WriteHeader(code)

	bs, err := common.JSONMarshalWithoutEscapeHTML(v)
	if err != nil {
		return err
	}

	if _, err := w.Write(bs); err != nil {
		return err
	}

	return nil
}
