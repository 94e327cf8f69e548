package client

import "boscoin.io/ballotbox/lib/transaction/operation"

type Link struct {
	Href      string `json:"href"`
	Templated bool   `json:"templated,omitempty"`
}

type NodeInfo struct {
	Links struct {
		Self         Link `json:"self"`
		Poll         Link `json:"poll"`
		Transactions Link `json:"transactions"`
	} `json:"_links"`

	Version   string `json:"version"`
	NetworkID string `json:"network_id"`
	Contract  string `json:"contract"`
	Height    uint64 `json:"height"`
	Timestamp uint64 `json:"timestamp"`
	Latest    string `json:"latest"`
}

type Poll struct {
	Links struct {
		Self         Link `json:"self"`
		Transactions Link `json:"transactions"`
		Voter        Link `json:"voter"`
	} `json:"_links"`

	Title       string    `json:"title"`
	Description string    `json:"description"`
	OptionCount uint64    `json:"option_count"`
	Options     [4]string `json:"options"`
	Tallies     [4]uint64 `json:"tallies"`
	TotalVotes  uint64    `json:"total_votes"`
	StartsAt    uint64    `json:"starts_at"`
	EndsAt      uint64    `json:"ends_at"`
	Starts      string    `json:"starts,omitempty"`
	Ends        string    `json:"ends,omitempty"`
	Status      string    `json:"status"`
	VotingOpen  bool      `json:"voting_open"`
	Now         uint64    `json:"now"`
}

type Voter struct {
	Links struct {
		Self Link `json:"self"`
		Poll Link `json:"poll"`
	} `json:"_links"`

	Address  string `json:"address"`
	HasVoted bool   `json:"has_voted"`
	Option   uint64 `json:"option"`
}

type Receipt struct {
	Links struct {
		Self  Link `json:"self"`
		Voter Link `json:"voter"`
		Poll  Link `json:"poll"`
	} `json:"_links"`

	Hash           string `json:"hash"`
	Source         string `json:"source"`
	Height         uint64 `json:"height"`
	Timestamp      uint64 `json:"timestamp"`
	Created        string `json:"created"`
	OperationCount uint64 `json:"operation_count"`

	Operations []operation.Operation `json:"operations"`
}

type ReceiptsPage struct {
	Links struct {
		Self Link `json:"self"`
		Next Link `json:"next"`
		Prev Link `json:"prev"`
	} `json:"_links"`
	Embedded struct {
		Records []Receipt `json:"records"`
	} `json:"_embedded"`
}
