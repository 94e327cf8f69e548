package payload

import "boscoin.io/ballotbox/lib/common"

// ExecCode is one call of a contract method.
type ExecCode struct {
	ContractAddress string   `json:"contract_address"`
	Method          string   `json:"method"`
	Args            []string `json:"args"`
}

func NewExecCode(address, method string, args ...string) *ExecCode {
	if args == nil {
		args = []string{}
	}

	return &ExecCode{
		ContractAddress: address,
		Method:          method,
		Args:            args,
	}
}

func (ec *ExecCode) Serialize() (encoded []byte, err error) {
	encoded, err = common.EncodeJSONValue(ec)
	return
}

func (ec *ExecCode) Deserialize(encoded []byte) (err error) {
	err = common.DecodeJSONValue(encoded, ec)
	return
}
