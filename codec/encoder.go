package codec

import (
	"github.com/wippyai/uniconv/codec/internal/scalar"
	"github.com/wippyai/uniconv/errors"
)

// EncodeScalar converts one scalar value into its canonical UTF-8 form and
// returns the encoded bytes by value along with their count. Surrogate
// values and scalars beyond U+10FFFF are rejected; the check runs even for
// scalars that were just decoded, because this path is also reached with
// raw 32-bit input straight from the caller.
func EncodeScalar(r rune) (buf [4]byte, n int, err error) {
	v := uint32(r)
	if r < 0 || v > scalar.Max {
		return buf, 0, errors.OutOfRange(errors.PhaseEncode, v)
	}
	if scalar.IsSurrogate(v) {
		return buf, 0, errors.SurrogateScalar(errors.PhaseEncode, v)
	}

	switch {
	case v <= scalar.Max1:
		buf[0] = byte(v)
		return buf, 1, nil
	case v <= scalar.Max2:
		buf[0] = scalar.Tag2 | byte(v>>6)
		buf[1] = scalar.ContTag | byte(v)&scalar.ContMask
		return buf, 2, nil
	case v <= scalar.Max3:
		buf[0] = scalar.Tag3 | byte(v>>12)
		buf[1] = scalar.ContTag | byte(v>>6)&scalar.ContMask
		buf[2] = scalar.ContTag | byte(v)&scalar.ContMask
		return buf, 3, nil
	default:
		buf[0] = scalar.Tag4 | byte(v>>18)
		buf[1] = scalar.ContTag | byte(v>>12)&scalar.ContMask
		buf[2] = scalar.ContTag | byte(v>>6)&scalar.ContMask
		buf[3] = scalar.ContTag | byte(v)&scalar.ContMask
		return buf, 4, nil
	}
}
