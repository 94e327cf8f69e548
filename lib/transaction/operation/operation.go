package operation

import (
	"encoding/json"
	"reflect"

	"boscoin.io/ballotbox/lib/common"
	"boscoin.io/ballotbox/lib/contract/payload"
	"boscoin.io/ballotbox/lib/errors"
)

type OperationType string

const (
	TypeCreateVote OperationType = "create-vote"
	TypeVote       OperationType = "vote"
	TypeOptIn      OperationType = "opt-in"
)

func IsValidOperationType(oType string) bool {
	_, b := common.InStringArray([]string{
		string(TypeCreateVote),
		string(TypeVote),
		string(TypeOptIn),
	}, oType)
	return b
}

type Operation struct {
	H Header `json:"H"`
	B Body   `json:"B"`
}

func NewOperation(opb Body) (op Operation, err error) {
	var t OperationType
	switch opb.(type) {
	case CreateVote:
		t = TypeCreateVote
	case Vote:
		t = TypeVote
	case OptIn:
		t = TypeOptIn
	default:
		err = errors.UnknownOperationType
		return
	}

	op = Operation{
		H: Header{Type: t},
		B: opb,
	}

	return
}

type Header struct {
	Type OperationType `json:"type"`
}

type Body interface {
	//
	// Check that this operation is self consistent. Only the static
	// checks are done here; the checks against the poll state are done
	// by the contract.
	//
	IsWellFormed(common.Config) error

	// ExecCode is the contract call this operation makes.
	ExecCode() *payload.ExecCode
}

func (o Operation) IsWellFormed(conf common.Config) (err error) {
	return o.B.IsWellFormed(conf)
}

func (o Operation) ExecCode() *payload.ExecCode {
	return o.B.ExecCode()
}

func (o Operation) MakeHash() []byte {
	return common.MustMakeObjectHash(o)
}

func (o Operation) MakeHashString() string {
	return common.MustMakeObjectHashString(o)
}

func (o Operation) Serialize() (encoded []byte, err error) {
	encoded, err = json.Marshal(o)
	return
}

func (o Operation) String() string {
	encoded, _ := json.MarshalIndent(o, "", "  ")

	return string(encoded)
}

type envelop struct {
	H Header
	B interface{}
}

func (o *Operation) UnmarshalJSON(b []byte) (err error) {
	var raw json.RawMessage
	oj := envelop{
		B: &raw,
	}
	if err = json.Unmarshal(b, &oj); err != nil {
		return
	}

	o.H = oj.H

	var body Body
	if body, err = UnmarshalBodyJSON(oj.H.Type, raw); err != nil {
		return
	}
	o.B = body
	return nil
}

func UnmarshalBodyJSON(t OperationType, b []byte) (Body, error) {
	if bi, err := newBodyFromType(t); err != nil {
		return nil, err
	} else if err = json.Unmarshal(b, bi); err != nil {
		return nil, err
	} else {
		// No other way to go from interface-to-pointer to interface-to-value
		// because values within interfaces are not addressable
		return reflect.ValueOf(bi).Elem().Interface().(Body), nil
	}
}

// Returns: A pointer to a body with a type matching `ty`
func newBodyFromType(ty OperationType) (interface{}, error) {
	switch ty {
	case TypeCreateVote:
		return &CreateVote{}, nil
	case TypeVote:
		return &Vote{}, nil
	case TypeOptIn:
		return &OptIn{}, nil
	default:
		return nil, errors.UnknownOperationType
	}
}
