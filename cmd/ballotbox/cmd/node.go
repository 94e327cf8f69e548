package cmd

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"

	logging "github.com/inconshreveable/log15"
	"github.com/mattn/go-isatty"
	"github.com/oklog/run"
	"github.com/spf13/cobra"
	"golang.org/x/net/http2"

	cmdcommon "boscoin.io/ballotbox/cmd/ballotbox/common"
	"boscoin.io/ballotbox/lib/common"
	"boscoin.io/ballotbox/lib/ledger"
	"boscoin.io/ballotbox/lib/metrics"
	"boscoin.io/ballotbox/lib/network"
	"boscoin.io/ballotbox/lib/network/api"
	"boscoin.io/ballotbox/lib/node/runner"
	"boscoin.io/ballotbox/lib/storage"
	"boscoin.io/ballotbox/lib/version"
)

const (
	defaultNetwork  string      = "http"
	defaultHost     string      = "0.0.0.0"
	defaultLogLevel logging.Lvl = logging.LvlInfo
	defaultNTPSync  string      = "10m"
)

var (
	flagNetworkID string = common.GetENVValue("BALLOTBOX_NETWORK_ID", "")
	flagNodeName  string = common.GetENVValue("BALLOTBOX_NODE_NAME", "")
	flagLogLevel  string = common.GetENVValue("BALLOTBOX_LOG_LEVEL", defaultLogLevel.String())
	flagLogOutput string = common.GetENVValue("BALLOTBOX_LOG_OUTPUT", "")
	flagHTTPLog   string = common.GetENVValue("BALLOTBOX_HTTP_LOG", "")
	flagVerbose   bool   = common.GetENVValue("BALLOTBOX_VERBOSE", "0") == "1"
	flagBindURL   string = common.GetENVValue(
		"BALLOTBOX_BIND",
		fmt.Sprintf("%s://%s:%d", defaultNetwork, defaultHost, common.DefaultEndpointPort),
	)
	flagStorageConfigString string
	flagTLSCertFile         string = common.GetENVValue("BALLOTBOX_TLS_CERT", "")
	flagTLSKeyFile          string = common.GetENVValue("BALLOTBOX_TLS_KEY", "")
	flagNTPServer           string = common.GetENVValue("BALLOTBOX_NTP_SERVER", "")
	flagNTPSyncInterval     string = common.GetENVValue("BALLOTBOX_NTP_SYNC_INTERVAL", defaultNTPSync)
	flagOperationsLimit     string = common.GetENVValue("BALLOTBOX_OPERATIONS_LIMIT", strconv.Itoa(common.DefaultOperationsInTransactionLimit))
	flagHTTPCacheAdapter    string = common.GetENVValue("BALLOTBOX_HTTP_CACHE_ADAPTER", common.HTTPCacheMemoryAdapterName)
	flagHTTPCachePoolSize   string = common.GetENVValue("BALLOTBOX_HTTP_CACHE_POOL_SIZE", strconv.Itoa(common.HTTPCachePoolSize))
	flagHTTPCacheExpire     string = common.GetENVValue("BALLOTBOX_HTTP_CACHE_EXPIRE", common.HTTPCacheExpire.String())
)

var (
	nodeCmd *cobra.Command

	bindEndpoint    *common.Endpoint
	storageConfig   *storage.Config
	nodeConfig      common.Config
	clock           common.Clock
	ntpSyncInterval time.Duration
	logLevel        logging.Lvl
	logHandler      logging.Handler
	log             logging.Logger = logging.New("module", "main")
)

func init() {
	var err error

	nodeCmd = &cobra.Command{
		Use:   "node",
		Short: "Run ballotbox node",
		Run: func(c *cobra.Command, args []string) {
			if err := parseFlagsNode(); err != nil {
				return
			}

			runNode()
		},
	}

	// storage
	var currentDirectory string
	if currentDirectory, err = os.Getwd(); err != nil {
		cmdcommon.PrintFlagsError(nodeCmd, "--storage", err)
	}
	if currentDirectory, err = filepath.Abs(currentDirectory); err != nil {
		cmdcommon.PrintFlagsError(nodeCmd, "--storage", err)
	}
	flagStorageConfigString = common.GetENVValue("BALLOTBOX_STORAGE", fmt.Sprintf("file://%s/db", currentDirectory))

	if len(flagNodeName) < 1 {
		flagNodeName, _ = os.Hostname()
	}

	nodeCmd.Flags().StringVar(&flagNetworkID, "network-id", flagNetworkID, "network id")
	nodeCmd.Flags().StringVar(&flagNodeName, "node-name", flagNodeName, "name of this node in the logs")
	nodeCmd.Flags().StringVar(&flagLogLevel, "log-level", flagLogLevel, "log level, {crit, error, warn, info, debug}")
	nodeCmd.Flags().StringVar(&flagLogOutput, "log-output", flagLogOutput, "set log output file")
	nodeCmd.Flags().StringVar(&flagHTTPLog, "http-log", flagHTTPLog, "set the access log file of http server")
	nodeCmd.Flags().BoolVar(&flagVerbose, "verbose", flagVerbose, "verbose")
	nodeCmd.Flags().StringVar(&flagBindURL, "bind", flagBindURL, "bind to listen on")
	nodeCmd.Flags().StringVar(&flagStorageConfigString, "storage", flagStorageConfigString, "storage uri, {file:///path, memory://}")
	nodeCmd.Flags().StringVar(&flagTLSCertFile, "tls-cert", flagTLSCertFile, "tls certificate file; needed for https")
	nodeCmd.Flags().StringVar(&flagTLSKeyFile, "tls-key", flagTLSKeyFile, "tls key file; needed for https")
	nodeCmd.Flags().StringVar(&flagNTPServer, "ntp-server", flagNTPServer, "ntp server for the ledger time; system clock is used when empty")
	nodeCmd.Flags().StringVar(&flagNTPSyncInterval, "ntp-sync-interval", flagNTPSyncInterval, "interval to refresh the ntp offset")
	nodeCmd.Flags().StringVar(&flagOperationsLimit, "operations-limit", flagOperationsLimit, "maximum number of operations in one transaction")
	nodeCmd.Flags().StringVar(&flagHTTPCacheAdapter, "http-cache-adapter", flagHTTPCacheAdapter, "http cache adapter, {mem}; empty disables the cache")
	nodeCmd.Flags().StringVar(&flagHTTPCachePoolSize, "http-cache-pool-size", flagHTTPCachePoolSize, "number of the cached responses")
	nodeCmd.Flags().StringVar(&flagHTTPCacheExpire, "http-cache-expire", flagHTTPCacheExpire, "lifetime of a cached response")

	rootCmd.AddCommand(nodeCmd)
}

func parseFlagsNode() (err error) {
	fail := func(flagName string, e error) error {
		cmdcommon.PrintFlagsError(nodeCmd, flagName, e)
		return e
	}

	if len(flagNetworkID) < 1 {
		return fail("--network-id", errors.New("--network-id must be given"))
	}

	if bindEndpoint, err = common.ParseEndpoint(flagBindURL); err != nil {
		return fail("--bind", err)
	}
	flagBindURL = bindEndpoint.String()

	queries := bindEndpoint.Query()
	if bindEndpoint.Scheme == "https" {
		if _, err = os.Stat(flagTLSCertFile); os.IsNotExist(err) {
			return fail("--tls-cert", err)
		}
		if _, err = os.Stat(flagTLSKeyFile); os.IsNotExist(err) {
			return fail("--tls-key", err)
		}
		queries.Set("TLSCertFile", flagTLSCertFile)
		queries.Set("TLSKeyFile", flagTLSKeyFile)
	}
	queries.Set("IdleTimeout", "3s")
	if len(flagHTTPLog) > 0 {
		queries.Set("HTTP2LogOutput", flagHTTPLog)
	}
	bindEndpoint.RawQuery = queries.Encode()

	if storageConfig, err = storage.NewConfigFromString(flagStorageConfigString); err != nil {
		return fail("--storage", err)
	}

	nodeConfig = common.NewConfig([]byte(flagNetworkID))
	if nodeConfig.OpsLimit, err = strconv.Atoi(flagOperationsLimit); err != nil || nodeConfig.OpsLimit < 1 {
		return fail("--operations-limit", fmt.Errorf("invalid number: %q", flagOperationsLimit))
	}
	switch flagHTTPCacheAdapter {
	case "", common.HTTPCacheMemoryAdapterName:
		nodeConfig.HTTPCacheAdapter = flagHTTPCacheAdapter
	default:
		return fail("--http-cache-adapter", fmt.Errorf("unknown adapter: %q", flagHTTPCacheAdapter))
	}
	if nodeConfig.HTTPCachePoolSize, err = strconv.Atoi(flagHTTPCachePoolSize); err != nil || nodeConfig.HTTPCachePoolSize < 1 {
		return fail("--http-cache-pool-size", fmt.Errorf("invalid number: %q", flagHTTPCachePoolSize))
	}
	if nodeConfig.HTTPCacheExpire, err = time.ParseDuration(flagHTTPCacheExpire); err != nil || nodeConfig.HTTPCacheExpire <= 0 {
		return fail("--http-cache-expire", fmt.Errorf("invalid duration: %q", flagHTTPCacheExpire))
	}

	if len(flagNTPServer) > 0 {
		if ntpSyncInterval, err = time.ParseDuration(flagNTPSyncInterval); err != nil {
			return fail("--ntp-sync-interval", err)
		}
		if ntpSyncInterval <= 0 {
			return fail("--ntp-sync-interval", fmt.Errorf("must be positive: %q", flagNTPSyncInterval))
		}

		ntpClock := common.NewNTPClock(flagNTPServer)
		if err = ntpClock.Sync(); err != nil {
			return fail("--ntp-server", err)
		}
		clock = ntpClock
	} else {
		clock = common.SystemClock{}
	}

	if logLevel, err = logging.LvlFromString(flagLogLevel); err != nil {
		return fail("--log-level", err)
	}

	logHandler = logging.StreamHandler(os.Stdout, common.LogFormat(isatty.IsTerminal(os.Stdout.Fd())))

	if len(flagLogOutput) < 1 {
		flagLogOutput = "<stdout>"
	} else {
		if logHandler, err = logging.FileHandler(flagLogOutput, common.JSONLineFormat()); err != nil {
			return fail("--log-output", err)
		}
	}

	if logLevel == logging.LvlDebug {
		logHandler = logging.CallerFileHandler(logHandler)
	}

	log.SetHandler(logging.LvlFilterHandler(logLevel, logHandler))
	common.SetLogging(logLevel, logHandler)
	ledger.SetLogging(logLevel, logHandler)
	network.SetLogging(logLevel, logHandler)
	api.SetLogging(logLevel, logHandler)
	runner.SetLogging(logLevel, logHandler)

	// print flags
	parsedFlags := []interface{}{}
	parsedFlags = append(parsedFlags, "\n\tnetwork-id", flagNetworkID)
	parsedFlags = append(parsedFlags, "\n\tnode-name", flagNodeName)
	parsedFlags = append(parsedFlags, "\n\tbind", flagBindURL)
	parsedFlags = append(parsedFlags, "\n\tstorage", flagStorageConfigString)
	parsedFlags = append(parsedFlags, "\n\ttls-cert", flagTLSCertFile)
	parsedFlags = append(parsedFlags, "\n\ttls-key", flagTLSKeyFile)
	parsedFlags = append(parsedFlags, "\n\tntp-server", flagNTPServer)
	parsedFlags = append(parsedFlags, "\n\toperations-limit", nodeConfig.OpsLimit)
	parsedFlags = append(parsedFlags, "\n\thttp-cache-adapter", flagHTTPCacheAdapter)
	parsedFlags = append(parsedFlags, "\n\thttp-cache-pool-size", nodeConfig.HTTPCachePoolSize)
	parsedFlags = append(parsedFlags, "\n\thttp-cache-expire", nodeConfig.HTTPCacheExpire)
	parsedFlags = append(parsedFlags, "\n\tlog-level", flagLogLevel)
	parsedFlags = append(parsedFlags, "\n\tlog-output", flagLogOutput)

	log.Debug("parsed flags:", parsedFlags...)

	// NOTE instead of set `http2.VerboseLogs`, just use
	// `GODEBUG="http2debug=2"`.
	if flagVerbose {
		http2.VerboseLogs = true
	}

	return nil
}

func openStorage(config *storage.Config) (*storage.LevelDBBackend, error) {
	st := &storage.LevelDBBackend{}
	if err := st.Init(config); err != nil {
		return nil, err
	}
	return st, nil
}

func newNodeRunner(st *storage.LevelDBBackend) (*runner.NodeRunner, error) {
	l, err := ledger.NewLedger(st, nodeConfig, clock)
	if err != nil {
		return nil, err
	}

	networkConfig, err := network.NewHTTP2NetworkConfigFromEndpoint(flagNodeName, bindEndpoint)
	if err != nil {
		return nil, err
	}

	return runner.NewNodeRunner(l, network.NewHTTP2Network(networkConfig))
}

func runNode() {
	log.Info("Starting ballotbox", "url", nodeURL(bindEndpoint), "version", version.Version)

	metrics.InitPrometheusMetrics()
	metrics.SetVersion()

	st, err := openStorage(storageConfig)
	if err != nil {
		log.Crit("failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer st.Close()

	nr, err := newNodeRunner(st)
	if err != nil {
		log.Crit("failed to launch node", "error", err)
		os.Exit(1)
	}

	// Execution group.
	var g run.Group
	{
		g.Add(func() error {
			if err := nr.Start(); err != nil {
				log.Crit("failed to start node", "error", err)
				return err
			}
			return nil
		}, func(error) {
			nr.Stop()
		})
	}
	if ntpClock, ok := clock.(*common.NTPClock); ok {
		cancel := make(chan struct{})
		g.Add(func() error {
			ticker := time.NewTicker(ntpSyncInterval)
			defer ticker.Stop()

			for {
				select {
				case <-ticker.C:
					if err := ntpClock.Sync(); err != nil {
						log.Error("failed to sync ntp clock", "error", err)
					}
				case <-cancel:
					return nil
				}
			}
		}, func(error) {
			close(cancel)
		})
	}
	{
		cancel := make(chan struct{})
		g.Add(func() error {
			return cmdcommon.Interrupt(cancel)
		}, func(error) {
			close(cancel)
		})
	}

	if err := g.Run(); err != nil {
		log.Info("node stopped", "reason", err)
	}
}

// nodeURL is the endpoint which the other commands use to reach the node
// bound to `bind`.
func nodeURL(bind *common.Endpoint) string {
	u := url.URL(*bind)
	u.RawQuery = ""
	if u.Hostname() == defaultHost {
		u.Host = fmt.Sprintf("localhost:%s", u.Port())
	}
	return u.String()
}
