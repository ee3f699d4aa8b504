package codec

import (
	"github.com/wippyai/uniconv/codec/internal/scalar"
	"github.com/wippyai/uniconv/errors"
)

// DecodeByte consumes one UTF-8 code unit, resuming any sequence already in
// progress in s. It returns (r, true, nil) when a scalar completes,
// (0, false, nil) when more bytes are required, and (0, false, err) on an
// illegal sequence. An illegal sequence resets s; incomplete input persists
// the partial scalar so the next call continues it.
func (s *State) DecodeByte(b byte) (rune, bool, error) {
	if s.bytesLeft == 0 {
		switch {
		case b <= scalar.Max1:
			return rune(b), true, nil
		case b&0xE0 == scalar.Tag2:
			s.bytesLeft = 1
			s.partial = uint32(b & 0x1F)
			s.lower = scalar.Floor2
		case b&0xF0 == scalar.Tag3:
			s.bytesLeft = 2
			s.partial = uint32(b & 0x0F)
			s.lower = scalar.Floor3
		case b&0xF8 == scalar.Tag4:
			s.bytesLeft = 3
			s.partial = uint32(b & 0x07)
			s.lower = scalar.Floor4
		default:
			// Continuation byte with nothing in progress, or 0xF8-0xFF.
			s.Reset()
			return 0, false, errors.BadLead(b)
		}
		return 0, false, nil
	}

	if !scalar.IsContinuation(b) {
		s.Reset()
		return 0, false, errors.BadContinuation(b)
	}

	s.partial = s.partial<<6 | uint32(b&scalar.ContMask)
	s.bytesLeft--
	if s.bytesLeft > 0 {
		return 0, false, nil
	}

	v, lower := s.partial, s.lower
	s.partial, s.lower = 0, 0
	switch {
	case v < lower:
		s.Reset()
		return 0, false, errors.Overlong(v, lower)
	case scalar.IsSurrogate(v):
		s.Reset()
		return 0, false, errors.SurrogateScalar(errors.PhaseDecode, v)
	case v > scalar.Max:
		s.Reset()
		return 0, false, errors.OutOfRange(errors.PhaseDecode, v)
	}
	return rune(v), true, nil
}

// DecodeBytes drives DecodeByte across p, resuming any sequence already in
// progress. It returns the completed scalar, the number of bytes of p
// consumed, and whether a scalar completed. When p is exhausted
// mid-sequence it returns (0, len(p), false, nil) and the partial progress
// stays in s. Feeding one byte stream through any sequence of DecodeBytes
// calls yields the same scalars and the same total consumed count as
// feeding it whole.
func (s *State) DecodeBytes(p []byte) (rune, int, bool, error) {
	for i, b := range p {
		r, done, err := s.DecodeByte(b)
		if err != nil {
			return 0, i, false, err
		}
		if done {
			return r, i + 1, true, nil
		}
	}
	return 0, len(p), false, nil
}
