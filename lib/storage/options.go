package storage

import (
	"net/url"
	"strconv"

	"boscoin.io/ballotbox/lib/errors"
)

var DefaultMaxLimitListOptions uint64 = 100

type ListOptions interface {
	Reverse() bool
	Cursor() []byte
	Limit() uint64
	URLValues() url.Values
}

type DefaultListOptions struct {
	reverse bool
	cursor  []byte
	limit   uint64
}

func NewDefaultListOptions(reverse bool, cursor []byte, limit uint64) *DefaultListOptions {
	return &DefaultListOptions{
		reverse: reverse,
		cursor:  cursor,
		limit:   limit,
	}
}

//
// NewDefaultListOptionsFromQuery reads `cursor`, `limit` and `reverse` from
// the url query. `limit` is capped by `DefaultMaxLimitListOptions`.
//
func NewDefaultListOptionsFromQuery(v url.Values) (*DefaultListOptions, error) {
	options := &DefaultListOptions{limit: DefaultMaxLimitListOptions}

	if s := v.Get("reverse"); len(s) > 0 {
		reverse, err := strconv.ParseBool(s)
		if err != nil {
			return nil, errors.BadRequestParameter.Clone().SetData("reverse", s)
		}
		options.reverse = reverse
	}

	if s := v.Get("cursor"); len(s) > 0 {
		options.cursor = []byte(s)
	}

	if s := v.Get("limit"); len(s) > 0 {
		limit, err := strconv.ParseUint(s, 10, 64)
		if err != nil || limit < 1 {
			return nil, errors.BadRequestParameter.Clone().SetData("limit", s)
		}
		if limit > DefaultMaxLimitListOptions {
			limit = DefaultMaxLimitListOptions
		}
		options.limit = limit
	}

	return options, nil
}

func (o DefaultListOptions) Reverse() bool {
	return o.reverse
}

func (o DefaultListOptions) Cursor() []byte {
	return o.cursor
}

func (o DefaultListOptions) Limit() uint64 {
	return o.limit
}

func (o DefaultListOptions) URLValues() url.Values {
	v := url.Values{
		"reverse": []string{strconv.FormatBool(o.reverse)},
	}

	if len(o.cursor) > 0 {
		v.Set("cursor", string(o.cursor))
	}
	if o.limit > 0 {
		v.Set("limit", strconv.FormatUint(o.limit, 10))
	}

	return v
}
