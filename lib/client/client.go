package client

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	neturl "net/url"
	"strings"

	"boscoin.io/ballotbox/lib/network/httputils"
	"boscoin.io/ballotbox/lib/transaction"
)

const (
	UrlPrefixForAPIV1 = "/api/v1"

	UrlNodeInfo          = "/"
	UrlPoll              = "/poll"
	UrlAccountVoter      = "/accounts/{id}/voter"
	UrlTransactions      = "/transactions"
	UrlTransactionByHash = "/transactions/{id}"
)

type QueryKey string

func (qk QueryKey) String() string {
	return string(qk)
}

const (
	QueryLimit   QueryKey = "limit"
	QueryReverse QueryKey = "reverse"
	QueryCursor  QueryKey = "cursor"
	QuerySource  QueryKey = "source"
)

type Q struct {
	Key   QueryKey
	Value string
}

type Queries []Q

func (qs Queries) toQueryString() string {
	if len(qs) == 0 {
		return ""
	}

	urlValues := neturl.Values{}
	for _, q := range qs {
		switch q.Key {
		case QueryLimit, QueryReverse, QueryCursor, QuerySource:
			urlValues.Add(q.Key.String(), q.Value)
		}
	}
	return "?" + urlValues.Encode()
}

type Client struct {
	URL string

	HTTP *HTTP2Client
}

func NewClient(url string) *Client {
	httpClient, err := NewHTTP2Client(0, 0, true)
	if err != nil {
		panic(err)
	}
	return &Client{
		URL:  strings.TrimRight(url, "/"),
		HTTP: httpClient,
	}
}

// NewPersistentClient retries the failed requests by `retrySetting`.
func NewPersistentClient(url string, retrySetting *RetrySetting) (*Client, error) {
	httpClient, err := NewPersistentHTTP2Client(0, 0, true, retrySetting)
	if err != nil {
		return nil, err
	}
	return &Client{
		URL:  strings.TrimRight(url, "/"),
		HTTP: httpClient,
	}, nil
}

func (c *Client) Close() {
	c.HTTP.Close()
}

// toResponse decodes the body of a 2xx response into `response`. The
// other responses are problems; the problem is turned back into
// `errors.Error`, so `errors.IsError` works on the returned error.
func (c *Client) toResponse(resp *http.Response, response interface{}) (err error) {
	defer resp.Body.Close()
	decoder := json.NewDecoder(resp.Body)

	if !(resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices) {
		p := httputils.NewStatusProblem(resp.StatusCode)
		if err = decoder.Decode(&p); err != nil {
			p = httputils.NewDetailedStatusProblem(resp.StatusCode, err.Error())
		}
		if p.Status == 0 {
			p.Status = resp.StatusCode
		}
		return p.ToError()
	}

	return decoder.Decode(response)
}

func (c *Client) Get(path string, headers http.Header) (response *http.Response, err error) {
	url := c.URL + UrlPrefixForAPIV1 + path
	return c.HTTP.Get(url, headers)
}

func (c *Client) Post(path string, body []byte, headers http.Header) (response *http.Response, err error) {
	url := c.URL + UrlPrefixForAPIV1 + path
	return c.HTTP.Post(url, body, headers)
}

func (c *Client) load(path string, response interface{}) (err error) {
	headers := http.Header{}
	headers.Set("Content-Type", "application/json")

	resp, err := c.Get(path, headers)
	if err != nil {
		return
	}
	return c.toResponse(resp, response)
}

func (c *Client) NodeInfo() (info NodeInfo, err error) {
	err = c.load(UrlNodeInfo, &info)
	return
}

func (c *Client) LoadPoll() (poll Poll, err error) {
	err = c.load(UrlPoll, &poll)
	return
}

func (c *Client) LoadVoter(address string) (voter Voter, err error) {
	err = c.load(strings.Replace(UrlAccountVoter, "{id}", address, -1), &voter)
	return
}

func (c *Client) LoadReceipt(hash string) (receipt Receipt, err error) {
	err = c.load(strings.Replace(UrlTransactionByHash, "{id}", hash, -1), &receipt)
	return
}

func (c *Client) LoadReceipts(queries ...Q) (page ReceiptsPage, err error) {
	err = c.load(UrlTransactions+Queries(queries).toQueryString(), &page)
	return
}

func (c *Client) SubmitTransaction(tx transaction.Transaction) (receipt Receipt, err error) {
	var body []byte
	if body, err = tx.Serialize(); err != nil {
		return
	}

	headers := http.Header{}
	headers.Set("Content-Type", "application/json")

	resp, err := c.Post(UrlTransactions, body, headers)
	if err != nil {
		return
	}
	err = c.toResponse(resp, &receipt)
	return
}

// Stream reads the chunked response of `path` line by line until `ctx` is
// done or the server closes the stream.
func (c *Client) Stream(ctx context.Context, path string, handler func(data []byte) error) (err error) {
	request, err := http.NewRequest("GET", c.URL+UrlPrefixForAPIV1+path, nil)
	if err != nil {
		return
	}
	request.Header.Set("Accept", "text/event-stream")

	resp, err := c.HTTP.Do(request.WithContext(ctx))
	if err != nil {
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return c.toResponse(resp, nil)
	}

	reader := bufio.NewReader(resp.Body)
	for {
		line, err := reader.ReadBytes('\n')
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}

		line = []byte(strings.TrimSpace(string(line)))
		if len(line) == 0 {
			continue
		}
		if err = handler(line); err != nil {
			return err
		}
	}
}

// StreamReceipts streams the receipts applied after the call. An empty
// `source` streams the receipts of every account.
func (c *Client) StreamReceipts(ctx context.Context, source string, handler func(Receipt)) error {
	path := UrlTransactions
	if len(source) > 0 {
		path += Queries{{Key: QuerySource, Value: source}}.toQueryString()
	}

	return c.Stream(ctx, path, func(b []byte) error {
		var v Receipt
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		handler(v)
		return nil
	})
}
