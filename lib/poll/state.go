package poll

//
// State is the handle to the persistent storage of one deployed contract.
// The host supplies it for every call, so the contract itself holds
// nothing between calls.
//
// `GetPoll()` returns `errors.PollDoesNotExist` before `Initialize()`.
// `GetVoterRecord()` returns `errors.VoterRecordDoesNotExist` when the
// account never opted in.
//
type State interface {
	GetPoll() (Poll, error)
	PutPoll(Poll) error
	HasVoterSlot(address string) (bool, error)
	GetVoterRecord(address string) (VoterRecord, error)
	PutVoterRecord(address string, record VoterRecord) error
}

// Call is the context of one call, given by the host.
type Call struct {
	Sender string
	Now    uint64
}
