package scalar

// Unicode scalar-value bounds.
const (
	Max = 0x10FFFF // maximum valid code point

	// 0xD800-0xDC00 encodes the high 10 bits of a surrogate pair,
	// 0xDC00-0xE000 the low 10 bits; the pair's value is those 20 bits
	// plus 0x10000. Nothing in the range is a scalar value on its own.
	SurrHigh = 0xD800
	SurrLow  = 0xDC00
	SurrEnd  = 0xE000
	SurrSelf = 0x10000
)

// UTF-8 bit layout.
const (
	ContMask = 0x3F // low six payload bits of a continuation byte
	ContTag  = 0x80 // 10xxxxxx

	Tag2 = 0xC0 // 110xxxxx
	Tag3 = 0xE0 // 1110xxxx
	Tag4 = 0xF0 // 11110xxx

	// Minimum scalar for each multi-byte sequence length. Anything below
	// the floor for its length is an overlong encoding.
	Floor2 = 0x80
	Floor3 = 0x800
	Floor4 = 0x10000

	Max1 = 0x7F
	Max2 = 0x7FF
	Max3 = 0xFFFF
)

// Valid reports whether v is a Unicode scalar value: in range and not a
// surrogate.
func Valid(v uint32) bool {
	if v >= SurrHigh && v < SurrEnd {
		return false
	}
	return v <= Max
}

// IsSurrogate reports whether v lies anywhere in the surrogate range.
func IsSurrogate(v uint32) bool {
	return v >= SurrHigh && v < SurrEnd
}

// IsHighSurrogate reports whether u is the leading half of a pair.
func IsHighSurrogate(u uint16) bool {
	return u >= SurrHigh && u < SurrLow
}

// IsLowSurrogate reports whether u is the trailing half of a pair.
func IsLowSurrogate(u uint16) bool {
	return u >= SurrLow && u < SurrEnd
}

// IsContinuation reports whether b matches 10xxxxxx.
func IsContinuation(b byte) bool {
	return b&0xC0 == ContTag
}

// Combine folds a surrogate pair into the scalar it encodes.
// Both halves must already be range-checked.
func Combine(hi, lo uint16) uint32 {
	return (uint32(hi-SurrHigh)<<10 | uint32(lo-SurrLow)) + SurrSelf
}

// Split divides a scalar >= 0x10000 into its surrogate halves.
func Split(v uint32) (hi, lo uint16) {
	v -= SurrSelf
	return uint16(SurrHigh + (v >> 10)), uint16(SurrLow + (v & 0x3FF))
}

// EncodedLen returns the number of UTF-8 bytes needed for a valid scalar.
func EncodedLen(v uint32) int {
	switch {
	case v <= Max1:
		return 1
	case v <= Max2:
		return 2
	case v <= Max3:
		return 3
	default:
		return 4
	}
}
