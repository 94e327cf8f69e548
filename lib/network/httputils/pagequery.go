package httputils

import (
	"fmt"
	"net/http"

	"boscoin.io/ballotbox/lib/storage"
)

type PageQuery struct {
	request *http.Request
	options *storage.DefaultListOptions
}

func NewPageQuery(r *http.Request) (*PageQuery, error) {
	options, err := storage.NewDefaultListOptionsFromQuery(r.URL.Query())
	if err != nil {
		return nil, err
	}

	return &PageQuery{request: r, options: options}, nil
}

func (p *PageQuery) Limit() uint64 {
	return p.options.Limit()
}

func (p *PageQuery) Reverse() bool {
	return p.options.Reverse()
}

func (p *PageQuery) Cursor() []byte {
	return p.options.Cursor()
}

func (p *PageQuery) ListOptions() storage.ListOptions {
	return p.options
}

func (p *PageQuery) SelfLink() string {
	return p.request.URL.String()
}

// NextLink continues in the same direction after `cursor`.
func (p *PageQuery) NextLink(cursor []byte) string {
	return p.link(cursor, p.Reverse())
}

// PrevLink goes back from `cursor` in the opposite direction.
func (p *PageQuery) PrevLink(cursor []byte) string {
	return p.link(cursor, !p.Reverse())
}

func (p *PageQuery) link(cursor []byte, reverse bool) string {
	query := storage.NewDefaultListOptions(reverse, cursor, p.Limit()).URLValues().Encode()
	return fmt.Sprintf("%s?%s", p.request.URL.Path, query)
}
