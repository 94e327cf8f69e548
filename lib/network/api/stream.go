package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	observable "github.com/GianlucaGuarini/go-observable"

	"boscoin.io/ballotbox/lib/errors"
	"boscoin.io/ballotbox/lib/ledger"
	"boscoin.io/ballotbox/lib/metrics"
	"boscoin.io/ballotbox/lib/network/api/resource"
	"boscoin.io/ballotbox/lib/network/httputils"
)

// DefaultContentType is "application/json"
const DefaultContentType = "application/json"

// IsEventStream checks request header accept is text/event-stream
func IsEventStream(r *http.Request) bool {
	return r.Header.Get("Accept") == "text/event-stream"
}

// EventStream handles chunked responses of a observable trigger
//
// renderFunc uses on observable.On() and Render function
type EventStream struct {
	contentType string
	renderFunc  RenderFunc
	request     *http.Request
	writer      http.ResponseWriter
	flusher     http.Flusher
	err         error
	rendered    bool
}

// RenderFunc gets the event name first and the triggered values after it.
type RenderFunc func(args ...interface{}) ([]byte, error)

// RenderJSONFunc renders the first triggered value; HAL resources are
// rendered as HAL.
var RenderJSONFunc = func(args ...interface{}) ([]byte, error) {
	if len(args) <= 1 {
		return nil, errors.HTTPServerError.Clone().SetData("error", "render: value is empty")
	}

	v := args[1]
	switch t := v.(type) {
	case nil:
		return nil, nil
	case *ledger.Receipt:
		return json.Marshal(resource.NewReceipt(*t).Resource())
	case httputils.HALResource:
		return json.Marshal(t.Resource())
	}

	return json.Marshal(v)
}

// NewDefaultEventStream returns *EventStream with RenderJSONFunc and DefaultContentType
func NewDefaultEventStream(w http.ResponseWriter, r *http.Request) *EventStream {
	return NewEventStream(w, r, RenderJSONFunc, DefaultContentType)
}

// NewEventStream makes *EventStream and checks http.Flusher by type assertion.
func NewEventStream(w http.ResponseWriter, r *http.Request, renderFunc RenderFunc, ct string) *EventStream {
	es := &EventStream{
		request:     r,
		writer:      w,
		renderFunc:  renderFunc,
		contentType: ct,
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		es.err = fmt.Errorf("http: can't do chunked response")
	} else {
		es.flusher = flusher
	}

	return es
}

// Render make a chunked response by using RenderFunc and flush it.
func (s *EventStream) Render(args ...interface{}) {
	if s.err != nil {
		return
	}

	var bs []byte
	renderArgs := append([]interface{}{"pre"}, args...)
	if payload, err := s.renderFunc(renderArgs...); err != nil {
		bs = s.errMessage(err)
	} else {
		bs = payload
	}

	s.setHeader()
	fmt.Fprintf(s.writer, "%s\n", bs)
	s.flusher.Flush()
}

func (s *EventStream) setHeader() {
	if s.rendered {
		return
	}
	s.writer.Header().Set("Content-Type", s.contentType)
	s.rendered = true
}

// Run start observing events.
//
// Simple use case:
//
// 	es := NewDefaultEventStream(w, r)
// 	es.Render(receipt)
// 	es.Run(observer.ReceiptObserver, "receipt-source=GABC")
func (s *EventStream) Run(ob *observable.Observable, events ...string) {
	s.Start(ob, events...)()
}

// Start prepares for observing events and returns run func.
//
// In most case, Use Run instead of Start
func (s *EventStream) Start(ob *observable.Observable, events ...string) func() {
	if s.err != nil {
		http.Error(s.writer, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return func() {}
	}

	event := strings.Join(events, " ")
	msg := make(chan []byte)
	stop := make(chan struct{})

	onFunc := func(args ...interface{}) {
		payload, err := s.renderFunc(append([]interface{}{event}, args...)...)
		if err != nil {
			payload = s.errMessage(err)
		}

		select {
		case msg <- payload:
		case <-stop:
		}
	}
	ob.On(event, onFunc)

	s.setHeader()
	s.flusher.Flush()

	metrics.API.OpenStream()

	return func() {
		defer metrics.API.CloseStream()
		defer ob.Off(event, onFunc)

		for {
			select {
			case payload := <-msg:
				fmt.Fprintf(s.writer, "%s\n", payload)
				s.flusher.Flush()
			case <-s.request.Context().Done():
				close(stop)
				return
			}
		}
	}
}

func (s *EventStream) errMessage(err error) []byte {
	p := httputils.NewErrorProblem(err, httputils.StatusCode(err))
	b, err := json.Marshal(p)
	if err != nil {
		b = []byte{}
	}
	return b
}
