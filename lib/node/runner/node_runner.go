package runner

import (
	ghandlers "github.com/gorilla/handlers"
	logging "github.com/inconshreveable/log15"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"boscoin.io/ballotbox/lib/ledger"
	"boscoin.io/ballotbox/lib/network"
	"boscoin.io/ballotbox/lib/network/api"
	"boscoin.io/ballotbox/lib/network/httpcache"
)

// NodeRunner serves the ledger thru the network.
type NodeRunner struct {
	ledger  *ledger.Ledger
	network *network.HTTP2Network
	cache   httpcache.Cache
	api     *api.NetworkHandlerAPI

	log logging.Logger
}

func NewNodeRunner(l *ledger.Ledger, n *network.HTTP2Network) (nr *NodeRunner, err error) {
	nr = &NodeRunner{
		ledger:  l,
		network: n,
		log:     log.New(logging.Ctx{"node": n.Config().NodeName}),
	}

	if nr.cache, err = newCache(l, nr.log); err != nil {
		return nil, err
	}

	return nr, nil
}

func newCache(l *ledger.Ledger, logger logging.Logger) (httpcache.Cache, error) {
	conf := l.Config()
	if len(conf.HTTPCacheAdapter) < 1 {
		return httpcache.NewNopClient(), nil
	}

	adapter, err := httpcache.NewAdapter(conf)
	if err != nil {
		return nil, err
	}

	return httpcache.NewClient(
		httpcache.WithAdapter(adapter),
		httpcache.WithExpire(conf.HTTPCacheExpire),
		httpcache.WithLogger(logger),
	)
}

func (nr *NodeRunner) Ledger() *ledger.Ledger {
	return nr.ledger
}

func (nr *NodeRunner) Network() *network.HTTP2Network {
	return nr.network
}

// Ready registers the middlewares and handlers and opens the network to
// the requests.
func (nr *NodeRunner) Ready() error {
	// BaseRouter's middlewares impact all sub routers.
	if err := nr.network.AddMiddleware("", network.RecoverMiddleware(nr.log)); err != nil {
		nr.log.Error("Middleware has an error", "err", err)
		return err
	}
	if err := nr.network.AddMiddleware(network.RouterNameAPI, network.MetricsMiddleware); err != nil {
		nr.log.Error("`network.MetricsMiddleware` for `RouterNameAPI` has an error", "err", err)
		return err
	}

	{ //CORS
		allowedOrigins := ghandlers.AllowedOrigins([]string{"*"})
		allowedMethods := ghandlers.AllowedMethods([]string{"GET", "POST"})
		allowedHeaders := ghandlers.AllowedHeaders([]string{"Content-Type", "X-Requested-With", "Cache-Control", "Access-Control"})

		cors := ghandlers.CORS(allowedOrigins, allowedMethods, allowedHeaders)
		if err := nr.network.AddMiddleware(network.RouterNameAPI, cors); err != nil {
			nr.log.Error("Middleware has an error", "err", err)
			return err
		}
	}

	nr.network.AddHandler(network.UrlPathPrefixMetric, promhttp.Handler().ServeHTTP)

	nr.api = api.NewNetworkHandlerAPI(nr.ledger, nr.cache, network.UrlPathPrefixAPI)
	nr.api.AddHandlers(nr.network)

	nr.network.Ready()

	return nil
}

func (nr *NodeRunner) Start() (err error) {
	if err = nr.Ready(); err != nil {
		return
	}

	state := nr.ledger.State()
	nr.log.Info(
		"starting node",
		"endpoint", nr.network.Config().Endpoint,
		"height", state.Height,
		"timestamp", state.Timestamp,
	)

	return nr.network.Start()
}

func (nr *NodeRunner) Stop() {
	nr.network.Stop()
	if nr.api != nil {
		nr.api.Close()
	}
	nr.cache.Purge()

	nr.log.Info("node stopped")
}
