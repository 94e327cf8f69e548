package value

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"boscoin.io/ballotbox/lib/errors"
)

type Type byte

const (
	Nil     Type = 0x00
	SInt    Type = 0x01
	UInt    Type = 0x02
	String  Type = 0x03
	Boolean Type = 0x04
	Bytes   Type = 0x05
)

const (
	True  = 0x01
	False = 0x00
)

// Value is the typed return value of contract methods.
type Value struct {
	Type  Type
	value interface{}
}

func ToValue(iv interface{}) (v *Value, err error) {
	v = &Value{value: iv}

	switch t := iv.(type) {
	case nil:
		v.Type = Nil
	case string:
		v.Type = String
	case bool:
		v.Type = Boolean
	case []byte:
		v.Type = Bytes
		v.value = append([]byte{}, t...)
	case int:
		v.Type, v.value = SInt, int64(t)
	case int8:
		v.Type, v.value = SInt, int64(t)
	case int16:
		v.Type, v.value = SInt, int64(t)
	case int32:
		v.Type, v.value = SInt, int64(t)
	case int64:
		v.Type = SInt
	case uint:
		v.Type, v.value = UInt, uint64(t)
	case uint8:
		v.Type, v.value = UInt, uint64(t)
	case uint16:
		v.Type, v.value = UInt, uint64(t)
	case uint32:
		v.Type, v.value = UInt, uint64(t)
	case uint64:
		v.Type = UInt
	default:
		v.Type, v.value = Nil, nil
		err = errors.ContractValueNotSupported.Clone().SetData("type", fmt.Sprintf("%T", iv))
	}

	return
}

// Deserialize decodes the output of `Value.Serialize()`.
func Deserialize(b []byte) (v *Value, err error) {
	if len(b) < 1 {
		err = errors.ContractValueNotSupported.Clone().SetData("error", "empty")
		return
	}

	encoded := b[1:]
	switch Type(b[0]) {
	case Nil:
		return ToValue(nil)
	case String:
		return ToValue(string(encoded))
	case Bytes:
		return ToValue(encoded)
	case SInt, UInt:
		if len(encoded) != 8 {
			err = errors.ContractValueNotSupported.Clone().SetData("error", "invalid integer")
			return
		}
		n := binary.LittleEndian.Uint64(encoded)
		if Type(b[0]) == SInt {
			return ToValue(int64(n))
		}
		return ToValue(n)
	case Boolean:
		if len(encoded) != 1 {
			err = errors.ContractValueNotSupported.Clone().SetData("error", "invalid boolean")
			return
		}
		return ToValue(encoded[0] == True)
	default:
		err = errors.ContractValueNotSupported.Clone().SetData("type", b[0])
		return
	}
}

func (v *Value) Serialize() (encoded []byte, err error) {
	switch v.Type {
	case Nil:
		encoded = []byte{}
	case SInt:
		encoded = make([]byte, 8)
		binary.LittleEndian.PutUint64(encoded, uint64(v.value.(int64)))
	case UInt:
		encoded = make([]byte, 8)
		binary.LittleEndian.PutUint64(encoded, v.value.(uint64))
	case String:
		encoded = []byte(v.value.(string))
	case Bytes:
		encoded = append([]byte{}, v.value.([]byte)...)
	case Boolean:
		if v.value.(bool) {
			encoded = []byte{True}
		} else {
			encoded = []byte{False}
		}
	}

	encoded = append([]byte{byte(v.Type)}, encoded...)

	return
}

func (v *Value) Interface() interface{} {
	return v.value
}

func (v *Value) IsNil() bool {
	return v == nil || v.Type == Nil
}

// Bytes returns nil unless the type is `Bytes`.
func (v *Value) Bytes() []byte {
	if b, ok := v.value.([]byte); ok {
		return b
	}

	return nil
}

func (v *Value) String() string {
	switch v.Type {
	case Nil:
		return "nil"
	case Bytes:
		return fmt.Sprintf("%x", v.value)
	default:
		return fmt.Sprintf("%v", v.value)
	}
}

func (v *Value) Equal(o *Value) bool {
	if v.Type != o.Type {
		return false
	}

	if v.Type == Bytes {
		return bytes.Equal(v.Bytes(), o.Bytes())
	}

	return v.value == o.value
}

func (v *Value) EqualNative(iv interface{}) bool {
	o, err := ToValue(iv)
	if err != nil {
		return false
	}

	return v.Equal(o)
}
