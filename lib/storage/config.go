package storage

import (
	"net/url"
	"path/filepath"

	"boscoin.io/ballotbox/lib/errors"
)

//
// Config is parsed from the storage uri, which the `node` command gets thru
// `--storage`.
//  * `memory://`: in-memory leveldb, useful for testing
//  * `file:///var/lib/ballotbox/db`: leveldb on the given directory
//
type Config struct {
	Scheme string
	Path   string
}

func NewConfigFromString(s string) (*Config, error) {
	parsed, err := url.Parse(s)
	if err != nil {
		return nil, errors.StorageUnknownScheme.Clone().SetData("error", err.Error())
	}

	switch parsed.Scheme {
	case "memory":
		return &Config{Scheme: "memory"}, nil
	case "file":
		path := parsed.Path
		if len(parsed.Host) > 0 {
			path = filepath.Join(parsed.Host, parsed.Path)
		}
		if len(path) < 1 {
			return nil, errors.StorageUnknownScheme.Clone().SetData("error", "empty path")
		}
		return &Config{Scheme: "file", Path: path}, nil
	default:
		return nil, errors.StorageUnknownScheme.Clone().SetData("scheme", parsed.Scheme)
	}
}

func (c Config) String() string {
	if c.Scheme == "memory" {
		return "memory://"
	}

	return (&url.URL{Scheme: c.Scheme, Path: c.Path}).String()
}
