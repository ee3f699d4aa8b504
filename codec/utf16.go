package codec

import (
	"github.com/wippyai/uniconv/codec/internal/scalar"
	"github.com/wippyai/uniconv/errors"
)

// SplitScalar packs a scalar into UTF-16 code units. BMP scalars fit in a
// single unit and pair is false; supplementary scalars return the high and
// low surrogate halves with pair true. The scalar must already be valid.
func SplitScalar(r rune) (hi, lo uint16, pair bool) {
	v := uint32(r)
	if v < scalar.SurrSelf {
		return uint16(v), 0, false
	}
	hi, lo = scalar.Split(v)
	return hi, lo, true
}

// DecodeUnit consumes one UTF-16 code unit, pairing surrogates across calls
// through s. A unit outside the surrogate range completes immediately. A
// high surrogate is stored and the call returns (0, false, nil), more input
// needed; the next unit must then be a low surrogate, which completes the
// pair, while anything else is an illegal sequence. A lone low surrogate is
// an illegal sequence outright. Illegal sequences reset s.
func (s *State) DecodeUnit(u uint16) (rune, bool, error) {
	if scalar.IsHighSurrogate(s.surr) {
		hi := s.surr
		if !scalar.IsLowSurrogate(u) {
			s.Reset()
			return 0, false, errors.New(errors.PhasePair, errors.KindUnpairedSurrogate).
				Unit16(u).
				Detail("low surrogate required after stored high 0x%04X", hi).
				Build()
		}
		s.surr = 0
		return rune(scalar.Combine(hi, u)), true, nil
	}

	switch {
	case scalar.IsHighSurrogate(u):
		s.surr = u
		return 0, false, nil
	case scalar.IsLowSurrogate(u):
		return 0, false, errors.UnpairedSurrogate(errors.PhasePair, u)
	}
	return rune(u), true, nil
}
