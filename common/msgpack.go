package common

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"github.com/vmihailenco/msgpack/v4"
)

const FractionExtId = 0

func init() {
	msgpack.RegisterExt(FractionExtId, (*Fraction)(nil))
}

// MarshalMsgpack writes the numerator as a signed varint followed by the
// denominator as an unsigned varint. The wrapped math.MinInt64 denominator is
// written as 2^63 and decodes back to the same value.
func (f Fraction) MarshalMsgpack() ([]byte, error) {
	buf := make([]byte, binary.MaxVarintLen64*2)
	l := binary.PutVarint(buf, f.n)
	l += binary.PutUvarint(buf[l:], f.denominator())
	return buf[:l], nil
}

func (f *Fraction) UnmarshalMsgpack(data []byte) error {
	n, l := binary.Varint(data)
	if l <= 0 {
		return fmt.Errorf("invalid fraction numerator %x", data)
	}
	d, m := binary.Uvarint(data[l:])
	if m <= 0 || l+m != len(data) || d > minInt64Magnitude {
		return fmt.Errorf("invalid fraction denominator %x", data)
	}
	if d == 0 {
		return ErrDivideByZero
	}
	*f = fromProduct(n, d)
	return nil
}

func MsgpackMarshalPanic(val interface{}) []byte {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf).UseCompactEncoding(true).SortMapKeys(true)
	err := enc.Encode(val)
	if err != nil {
		panic(fmt.Errorf("MsgpackMarshalPanic: %#v %s", val, err.Error()))
	}
	return buf.Bytes()
}

func MsgpackUnmarshal(data []byte, val interface{}) error {
	err := msgpack.Unmarshal(data, val)
	if err == nil {
		return err
	}
	return fmt.Errorf("MsgpackUnmarshal: %s %s", hex.EncodeToString(data), err.Error())
}
