package codec

import (
	"github.com/wippyai/uniconv/codec/internal/scalar"
)

// The emitter side of State: output units produced by one encoding step but
// not yet handed to the caller. The queue holds at most the three trailing
// bytes of a four-byte UTF-8 form, or the low half of a surrogate pair, so
// its capacity never exceeds the fixed in-struct storage.

// QueueBytes accepts the full encoded form of one scalar, returns its first
// byte for immediate delivery, and queues the remainder for replay on
// subsequent calls. p must hold between one and four bytes.
func (s *State) QueueBytes(p []byte) byte {
	if len(p) > 1 {
		n := copy(s.pending[:], p[1:])
		s.pendingLen = uint8(n)
		s.pendingPos = 0
	}
	return p[0]
}

// NextPending pops the next queued output byte, if any. Draining the last
// byte returns the queue to its empty (initial) form.
func (s *State) NextPending() (byte, bool) {
	if s.pendingPos >= s.pendingLen {
		return 0, false
	}
	b := s.pending[s.pendingPos]
	s.pendingPos++
	if s.pendingPos == s.pendingLen {
		s.pendingPos, s.pendingLen = 0, 0
	}
	return b, true
}

// QueueLow stores the low half of a surrogate pair for replay on the
// immediately following call.
func (s *State) QueueLow(lo uint16) {
	s.surr = lo
}

// TakeQueuedLow pops a queued low surrogate, if one is waiting. A stored
// high surrogate (awaiting input, not emission) is left untouched.
func (s *State) TakeQueuedLow() (uint16, bool) {
	if !scalar.IsLowSurrogate(s.surr) {
		return 0, false
	}
	u := s.surr
	s.surr = 0
	return u, true
}
