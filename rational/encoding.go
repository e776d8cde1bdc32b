package rational

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/vmihailenco/msgpack/v4"
)

// MsgpackExtType is the msgpack extension type a Rational encodes to. The
// payload is the numerator and the denominator as big-endian int64.
const MsgpackExtType = 1

func init() {
	msgpack.RegisterExt(MsgpackExtType, (*Rational)(nil))
}

func (x Rational) MarshalMsgpack() ([]byte, error) {
	b := make([]byte, 16)
	binary.BigEndian.PutUint64(b[:8], uint64(x.a))
	binary.BigEndian.PutUint64(b[8:], uint64(x.den()))
	return b, nil
}

func (x *Rational) UnmarshalMsgpack(data []byte) error {
	if len(data) != 16 {
		return newError("UnmarshalMsgpack", KindMalformedRationalString, hex.EncodeToString(data),
			fmt.Errorf("payload size %d", len(data)))
	}
	a := int64(binary.BigEndian.Uint64(data[:8]))
	b := int64(binary.BigEndian.Uint64(data[8:]))
	r, err := construct("UnmarshalMsgpack", a, b)
	if err != nil {
		return err
	}
	*x = r
	return nil
}

func (x Rational) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(x.String())), nil
}

// UnmarshalJSON accepts a JSON string in any form Create accepts for strings,
// or a bare JSON number.
func (x *Rational) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == "null" {
		return nil
	}
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = unquoted
	}
	r, err := create("UnmarshalJSON", s)
	if err != nil {
		return err
	}
	*x = r
	return nil
}

func (x Rational) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

func (x *Rational) UnmarshalText(b []byte) error {
	r, err := create("UnmarshalText", string(b))
	if err != nil {
		return err
	}
	*x = r
	return nil
}
