package network

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	logging "github.com/inconshreveable/log15"

	"boscoin.io/ballotbox/lib/errors"
	"boscoin.io/ballotbox/lib/metrics"
	"boscoin.io/ballotbox/lib/network/httputils"
)

func RecoverMiddleware(logger logging.Logger) mux.MiddlewareFunc {
	if logger == nil {
		logger = log
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rcv := recover(); rcv != nil {
					err := errors.HTTPServerError.Clone().SetData("error", fmt.Sprintf("panic: %v", rcv))
					problem := httputils.NewErrorProblem(err, http.StatusInternalServerError).SetInstance(r.URL.Path)
					httputils.WriteJSON(w, http.StatusInternalServerError, problem)
					logger.Error("recover an panic", "error", err, "stack", string(debug.Stack()))
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// MetricsMiddleware counts the requests by the route template, so the
// `{id}` of the path does not explode the label values.
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		begin := time.Now()

		writer := &HTTP2ResponseLog15Writer{w: w}
		next.ServeHTTP(writer, r)

		endpoint := r.URL.Path
		if route := mux.CurrentRoute(r); route != nil {
			if tpl, err := route.GetPathTemplate(); err == nil {
				endpoint = tpl
			}
		}

		status := writer.Status()
		if status == 0 {
			status = http.StatusOK
		}
		labels := []string{
			"endpoint", endpoint,
			"method", r.Method,
			"status", strconv.Itoa(status),
		}

		metrics.API.Requests.With(labels...).Add(1)
		if status >= 400 {
			metrics.API.RequestErrors.With(labels...).Add(1)
		}
		metrics.API.RequestDuration.With(labels...).Observe(time.Since(begin).Seconds())
	})
}
