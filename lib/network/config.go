package network

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"
	"time"

	"boscoin.io/ballotbox/lib/common"
)

type HTTP2NetworkConfig struct {
	NodeName string
	Endpoint *common.Endpoint
	Addr     string

	ReadTimeout,
	ReadHeaderTimeout,
	WriteTimeout,
	IdleTimeout time.Duration

	TLSCertFile,
	TLSKeyFile string

	HTTP2LogOutput io.Writer `json:"-"`
}

func parseTimeout(query url.Values, key, defaultValue string) (time.Duration, error) {
	d, err := time.ParseDuration(common.GetUrlQuery(query, key, defaultValue))
	if err != nil {
		return 0, fmt.Errorf("invalid '%s': %v", key, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid '%s': negative duration", key)
	}

	return d, nil
}

//
// NewHTTP2NetworkConfigFromEndpoint reads the server settings from the query
// of `endpoint`, for example,
// `https://localhost:12345?TLSCertFile=a.crt&TLSKeyFile=a.key&IdleTimeout=5s`.
//
func NewHTTP2NetworkConfigFromEndpoint(nodeName string, endpoint *common.Endpoint) (*HTTP2NetworkConfig, error) {
	query := endpoint.Query()

	config := &HTTP2NetworkConfig{
		NodeName:    nodeName,
		Endpoint:    endpoint,
		Addr:        endpoint.Host,
		TLSCertFile: query.Get("TLSCertFile"),
		TLSKeyFile:  query.Get("TLSKeyFile"),
	}

	timeouts := []struct {
		key          string
		defaultValue string
		target       *time.Duration
	}{
		{"ReadTimeout", "0s", &config.ReadTimeout},
		{"ReadHeaderTimeout", "0s", &config.ReadHeaderTimeout},
		{"WriteTimeout", "0s", &config.WriteTimeout},
		{"IdleTimeout", "5s", &config.IdleTimeout},
	}
	for _, t := range timeouts {
		d, err := parseTimeout(query, t.key, t.defaultValue)
		if err != nil {
			return nil, err
		}
		*t.target = d
	}

	if strings.ToLower(endpoint.Scheme) == "https" && !config.IsHTTPS() {
		return nil, fmt.Errorf("HTTPS needs `TLSCertFile` and `TLSKeyFile`")
	}

	if v := query.Get("HTTP2LogOutput"); len(v) < 1 {
		config.HTTP2LogOutput = os.Stdout
	} else {
		f, err := os.OpenFile(v, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return nil, err
		}
		config.HTTP2LogOutput = f
	}

	return config, nil
}

func (config HTTP2NetworkConfig) IsHTTPS() bool {
	return len(config.TLSCertFile) > 0 && len(config.TLSKeyFile) > 0
}

func (config HTTP2NetworkConfig) String() string {
	return string(common.MustJSONMarshal(config))
}
