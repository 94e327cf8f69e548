package poll

// VoterRecord is the per-account slot, allocated by opt-in.
type VoterRecord struct {
	HasVoted bool   `json:"has_voted" msgpack:"has_voted"`
	Option   uint64 `json:"option" msgpack:"option"`
}
