package network

import (
	"context"
	"fmt"
	"io/ioutil"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"golang.org/x/net/http2"

	"boscoin.io/ballotbox/lib/errors"
)

const (
	RouterNameAPI    = "api"
	RouterNameMetric = "metric"

	UrlPathPrefixAPI    = "/api"
	UrlPathPrefixMetric = "/metrics"

	shutdownTimeout = 5 * time.Second
)

//
// HTTP2Network serves the routers of ballotbox. Until `Ready()` is called,
// every request gets `503 Service Unavailable`.
//
type HTTP2Network struct {
	sync.RWMutex

	config  *HTTP2NetworkConfig
	server  *http.Server
	router  *mux.Router
	routers map[string]*mux.Router
	ready   bool
}

func NewHTTP2Network(config *HTTP2NetworkConfig) (h2n *HTTP2Network) {
	server := &http.Server{
		Addr:              config.Addr,
		ReadTimeout:       config.ReadTimeout,
		ReadHeaderTimeout: config.ReadHeaderTimeout,
		WriteTimeout:      config.WriteTimeout,
		ErrorLog:          newHTTP2ErrorLogger(log),
	}
	server.SetKeepAlivesEnabled(true)

	http2.ConfigureServer(
		server,
		&http2.Server{
			IdleTimeout: config.IdleTimeout,
		},
	)

	router := mux.NewRouter()
	h2n = &HTTP2Network{
		config: config,
		server: server,
		router: router,
		routers: map[string]*mux.Router{
			RouterNameAPI:    router.PathPrefix(UrlPathPrefixAPI).Subrouter(),
			RouterNameMetric: router.PathPrefix(UrlPathPrefixMetric).Subrouter(),
		},
	}

	logOutput := config.HTTP2LogOutput
	if logOutput == nil {
		logOutput = ioutil.Discard
	}
	server.Handler = handlers.CombinedLoggingHandler(
		logOutput,
		HTTP2Log15Handler{log: log, handler: http.HandlerFunc(h2n.serveHTTP)},
	)

	return
}

func (t *HTTP2Network) Config() *HTTP2NetworkConfig {
	return t.config
}

func (t *HTTP2Network) Handler() http.Handler {
	return t.server.Handler
}

func (t *HTTP2Network) serveHTTP(w http.ResponseWriter, r *http.Request) {
	if !t.IsReady() {
		http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
		return
	}

	t.router.ServeHTTP(w, r)
}

// AddMiddleware adds middlewares to the router of `routerName`; empty name
// means the base router, which affects every sub router.
func (t *HTTP2Network) AddMiddleware(routerName string, mws ...mux.MiddlewareFunc) error {
	if routerName == "" {
		t.router.Use(mws...)
		return nil
	}

	router, ok := t.routers[routerName]
	if !ok {
		return errors.New(fmt.Sprintf("router not found: %s", routerName))
	}
	router.Use(mws...)

	return nil
}

// AddHandler registers `handler` on the sub router whose prefix matches
// `pattern`; otherwise on the base router.
func (t *HTTP2Network) AddHandler(pattern string, handler http.HandlerFunc) *mux.Route {
	switch {
	case strings.HasPrefix(pattern, UrlPathPrefixAPI):
		return t.routers[RouterNameAPI].HandleFunc(strings.TrimPrefix(pattern, UrlPathPrefixAPI), handler)
	case strings.HasPrefix(pattern, UrlPathPrefixMetric):
		return t.routers[RouterNameMetric].Handle(strings.TrimPrefix(pattern, UrlPathPrefixMetric), handler)
	default:
		return t.router.HandleFunc(pattern, handler)
	}
}

func (t *HTTP2Network) Ready() {
	t.Lock()
	defer t.Unlock()

	t.ready = true
}

func (t *HTTP2Network) IsReady() bool {
	t.RLock()
	defer t.RUnlock()

	return t.ready
}

// Start blocks until the server is stopped.
func (t *HTTP2Network) Start() (err error) {
	log.Debug("starting http2 network", "config", t.config)

	if t.config.IsHTTPS() {
		err = t.server.ListenAndServeTLS(t.config.TLSCertFile, t.config.TLSKeyFile)
	} else {
		err = t.server.ListenAndServe()
	}

	if err == http.ErrServerClosed {
		err = nil
	}

	return
}

func (t *HTTP2Network) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := t.server.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown http2 network", "error", err)
		t.server.Close()
	}
}
