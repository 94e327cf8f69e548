package poll

const (
	MinOptions uint64 = 2
	MaxOptions uint64 = 4
)

type Status uint64

const (
	StatusNotCreated Status = iota
	StatusActive
)

func (s Status) String() string {
	switch s {
	case StatusNotCreated:
		return "not-created"
	case StatusActive:
		return "active"
	default:
		return "unknown"
	}
}

//
// Poll is the singleton record of the contract. All four option slots are
// stored even when `OptionCount` is smaller; only the first `OptionCount`
// slots are meaningful. `StartsAt` and `EndsAt` are ledger timestamps in
// unix seconds.
//
// There is no closed status; whether voting is open is derived from the
// ledger time on every call, see `IsVotingOpen()`.
//
type Poll struct {
	Title       string             `json:"title" msgpack:"title"`
	Description string             `json:"description" msgpack:"description"`
	OptionCount uint64             `json:"option_count" msgpack:"option_count"`
	Options     [MaxOptions]string `json:"options" msgpack:"options"`
	Tallies     [MaxOptions]uint64 `json:"tallies" msgpack:"tallies"`
	StartsAt    uint64             `json:"starts_at" msgpack:"starts_at"`
	EndsAt      uint64             `json:"ends_at" msgpack:"ends_at"`
	Status      Status             `json:"status" msgpack:"status"`
}

func (p Poll) IsCreated() bool {
	return p.Status != StatusNotCreated
}

// IsVotingOpen reports whether `vote` could pass the window checks at
// `now`. Both ends are exclusive, so the creation instant itself is not
// open.
func (p Poll) IsVotingOpen(now uint64) bool {
	return p.Status == StatusActive && p.StartsAt < now && now < p.EndsAt
}

func (p Poll) TotalVotes() (total uint64) {
	for _, t := range p.Tallies {
		total += t
	}

	return
}

// Labels returns the meaningful options.
func (p Poll) Labels() []string {
	n := p.OptionCount
	if n > MaxOptions {
		n = MaxOptions
	}

	return append([]string{}, p.Options[:n]...)
}
