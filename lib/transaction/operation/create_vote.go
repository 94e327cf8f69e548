package operation

import (
	"strconv"

	"boscoin.io/ballotbox/lib/common"
	"boscoin.io/ballotbox/lib/contract/native/execfunc"
	"boscoin.io/ballotbox/lib/contract/payload"
	"boscoin.io/ballotbox/lib/errors"
	"boscoin.io/ballotbox/lib/poll"
)

const (
	MaxTitleLength       = 200
	MaxDescriptionLength = 2000
	MaxOptionLength      = 100
)

//
// CreateVote creates the poll. `OptionCount` and `EndsAt` are checked by
// the contract, not here; a transaction with an invalid option count is
// well-formed and is rejected when it is applied.
//
type CreateVote struct {
	Title       string                  `json:"title"`
	Description string                  `json:"description"`
	OptionCount uint64                  `json:"option_count"`
	Options     [poll.MaxOptions]string `json:"options"`
	EndsAt      uint64                  `json:"ends_at"`
}

func NewCreateVote(title, description string, endsAt uint64, options ...string) CreateVote {
	o := CreateVote{
		Title:       title,
		Description: description,
		OptionCount: uint64(len(options)),
		EndsAt:      endsAt,
	}
	copy(o.Options[:], options)

	return o
}

func (o CreateVote) IsWellFormed(common.Config) (err error) {
	if len(o.Title) > MaxTitleLength {
		return errors.InvalidOperation.Clone().SetData("title", "too long")
	}
	if len(o.Description) > MaxDescriptionLength {
		return errors.InvalidOperation.Clone().SetData("description", "too long")
	}
	for i, option := range o.Options {
		if len(option) > MaxOptionLength {
			return errors.InvalidOperation.Clone().SetData("option", i+1)
		}
	}

	return
}

func (o CreateVote) ExecCode() *payload.ExecCode {
	args := []string{o.Title, o.Description, strconv.FormatUint(o.OptionCount, 10)}
	args = append(args, o.Options[:]...)
	args = append(args, strconv.FormatUint(o.EndsAt, 10))

	return payload.NewExecCode(execfunc.PollContractAddress, execfunc.MethodCreateVote, args...)
}
