package codec

import (
	"github.com/wippyai/uniconv/codec/internal/scalar"
)

// State is the persistent record of one in-progress conversion stream.
// The zero value is the initial, restart-ready state.
//
// A State carries two independent kinds of carry-over: the partially decoded
// input sequence (bytesLeft, partial, lower, or a stored high surrogate in
// surr) and the not-yet-delivered output units (the pending byte queue, or a
// queued low surrogate in surr). A state is initial exactly when it carries
// neither.
type State struct {
	partial uint32 // bits accumulated for the in-progress scalar
	lower   uint32 // minimum scalar legal for the sequence length in progress

	// surr is 0, a low surrogate queued for emission on the next call, or
	// a high surrogate stored while its trailing half is awaited. The two
	// uses cannot collide: the ranges are disjoint and no operation needs
	// both at once.
	surr uint16

	bytesLeft  uint8 // continuation bytes still expected
	pending    [4]byte
	pendingLen uint8
	pendingPos uint8
}

// IsInitial reports whether s is restart-ready: no partial input sequence
// and no queued output units.
func (s *State) IsInitial() bool {
	return s.bytesLeft == 0 && s.pendingPos == s.pendingLen && !scalar.IsSurrogate(uint32(s.surr))
}

// Reset returns s to the initial state, discarding all partial progress.
func (s *State) Reset() {
	*s = State{}
}

// Expecting returns the number of continuation bytes still required to
// complete the scalar being decoded.
func (s *State) Expecting() int {
	return int(s.bytesLeft)
}

// Queued returns the number of output units waiting to be replayed.
// A queued low surrogate counts as one unit.
func (s *State) Queued() int {
	n := int(s.pendingLen - s.pendingPos)
	if scalar.IsLowSurrogate(s.surr) {
		n++
	}
	return n
}

// PendingSurrogate returns the surrogate unit held in the state, either a
// stored high half awaiting its pair or a queued low half awaiting emission.
func (s *State) PendingSurrogate() (uint16, bool) {
	if scalar.IsSurrogate(uint32(s.surr)) {
		return s.surr, true
	}
	return 0, false
}
