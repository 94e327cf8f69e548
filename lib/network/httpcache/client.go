package httpcache

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"sort"
	"strings"
	"sync"
	"time"

	logging "github.com/inconshreveable/log15"

	"boscoin.io/ballotbox/lib/common"
	"boscoin.io/ballotbox/lib/errors"
	"boscoin.io/ballotbox/lib/metrics"
)

// Client caches the responses of the wrapped handlers by path and query.
// A response is stored only when no `Remove` or `Purge` happened while it
// was rendered, so it never outlives an invalidation which ran in the
// meantime.
type Client struct {
	sync.Mutex

	generation uint64
	adapter    Adapter
	ttl        time.Duration
	logger     logging.Logger
}

type ClientOption func(c *Client) error

func NewClient(opts ...ClientOption) (*Client, error) {
	c := &Client{
		ttl:    time.Duration(0),
		logger: common.NopLogger(),
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	if c.adapter == nil {
		return nil, errors.New("cache client adapter is nil")
	}

	return c, nil
}

func WithAdapter(a Adapter) ClientOption {
	return func(c *Client) error {
		c.adapter = a
		return nil
	}
}

func WithExpire(ttl time.Duration) ClientOption {
	return func(c *Client) error {
		c.ttl = ttl
		return nil
	}
}

func WithLogger(logger logging.Logger) ClientOption {
	return func(c *Client) error {
		c.logger = logger
		return nil
	}
}

func (c *Client) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ok := c.handleCache(next, w, r); !ok {
			c.logger.Debug("page not cached", "url", r.URL.String())
			next.ServeHTTP(w, r)
		}
	})
}

func (c *Client) WrapHandlerFunc(handlerFunc http.HandlerFunc) http.HandlerFunc {
	return c.Middleware(handlerFunc).ServeHTTP
}

// Remove drops every cached response of the path of `rawurl`, whatever
// the query was.
func (c *Client) Remove(rawurl string) {
	u, err := url.Parse(rawurl)
	if err != nil {
		return
	}

	c.Lock()
	defer c.Unlock()

	c.generation++
	for _, key := range c.adapter.Keys() {
		if keyPath(key) == u.Path {
			c.adapter.Remove(key)
		}
	}
	c.logger.Debug("cache removed", "path", u.Path)
}

func (c *Client) Purge() {
	c.Lock()
	defer c.Unlock()

	c.generation++
	c.adapter.Purge()
}

func (c *Client) currentGeneration() uint64 {
	c.Lock()
	defer c.Unlock()

	return c.generation
}

// store keeps `resp` unless the cache was invalidated after `generation`.
func (c *Client) store(generation uint64, key string, resp *Response) bool {
	c.Lock()
	defer c.Unlock()

	if generation != c.generation {
		return false
	}
	c.adapter.Set(key, resp, resp.Expiration)

	return true
}

func (c *Client) handleCache(next http.Handler, w http.ResponseWriter, r *http.Request) bool {
	if r.Method != "GET" {
		return false
	}
	key := cacheKey(r.URL)
	resp, ok := c.adapter.Get(key)
	if ok {
		if resp.Expiration.IsZero() || resp.Expiration.After(time.Now()) {
			metrics.API.AddCacheLookup(true)
			writeResponse(w, resp.Header, resp.StatusCode, resp.Value)
			c.logger.Debug("return cache", "url", r.URL.String())
			return true
		}
		c.adapter.Remove(key)
	}
	metrics.API.AddCacheLookup(false)

	generation := c.currentGeneration()
	rec := httptest.NewRecorder()
	next.ServeHTTP(rec, r)
	var (
		result              = rec.Result()
		statusCode          = result.StatusCode
		value               = rec.Body.Bytes()
		expiration, caching = c.cachingExpiration(statusCode)
	)
	if caching {
		resp := &Response{
			Value:      value,
			StatusCode: statusCode,
			Header:     result.Header,
			Expiration: expiration,
		}
		if c.store(generation, key, resp) {
			c.logger.Debug("page cached", "url", r.URL.String(), "code", statusCode, "expir", expiration)
		}
	}
	writeResponse(w, result.Header, statusCode, value)

	return true
}

func (c *Client) cachingExpiration(code int) (time.Time, bool) {
	if code >= 400 {
		return time.Time{}, false
	}

	return expiration(c.ttl), true
}

func writeResponse(w http.ResponseWriter, header http.Header, statusCode int, value []byte) {
	for k, v := range header {
		w.Header().Set(k, strings.Join(v, ","))
	}
	if statusCode == 0 {
		statusCode = http.StatusOK
	}
	w.WriteHeader(statusCode)
	w.Write(value)
}

func expiration(ttl time.Duration) time.Time {
	if ttl == 0 {
		return time.Time{}
	}
	return time.Now().Add(ttl)
}

func cacheKey(u *url.URL) string {
	params := u.Query()
	for _, p := range params {
		sort.Strings(p)
	}

	return (&url.URL{Path: u.Path, RawQuery: params.Encode()}).String()
}

func keyPath(key string) string {
	u, err := url.Parse(key)
	if err != nil {
		return key
	}

	return u.Path
}
