package poll

import (
	"sync"

	"boscoin.io/ballotbox/lib/errors"
)

// MemoryState is the in-memory `State` for testing.
type MemoryState struct {
	sync.RWMutex

	poll   *Poll
	voters map[string]VoterRecord
}

func NewMemoryState() *MemoryState {
	return &MemoryState{voters: map[string]VoterRecord{}}
}

func (m *MemoryState) GetPoll() (Poll, error) {
	m.RLock()
	defer m.RUnlock()

	if m.poll == nil {
		return Poll{}, errors.PollDoesNotExist
	}

	return *m.poll, nil
}

func (m *MemoryState) PutPoll(p Poll) error {
	m.Lock()
	defer m.Unlock()

	m.poll = &p
	return nil
}

func (m *MemoryState) HasVoterSlot(address string) (bool, error) {
	m.RLock()
	defer m.RUnlock()

	_, found := m.voters[address]
	return found, nil
}

func (m *MemoryState) GetVoterRecord(address string) (VoterRecord, error) {
	m.RLock()
	defer m.RUnlock()

	record, found := m.voters[address]
	if !found {
		return VoterRecord{}, errors.VoterRecordDoesNotExist
	}

	return record, nil
}

func (m *MemoryState) PutVoterRecord(address string, record VoterRecord) error {
	m.Lock()
	defer m.Unlock()

	m.voters[address] = record
	return nil
}

// CountVoted returns the number of accounts which have voted.
func (m *MemoryState) CountVoted() (n uint64) {
	m.RLock()
	defer m.RUnlock()

	for _, record := range m.voters {
		if record.HasVoted {
			n++
		}
	}

	return
}

func MakeTestCreateVoteArgs(endsAt uint64, options ...string) CreateVoteArgs {
	args := CreateVoteArgs{
		Title:       "showme",
		Description: "findme",
		OptionCount: uint64(len(options)),
		EndsAt:      endsAt,
	}
	copy(args.Options[:], options)

	return args
}
