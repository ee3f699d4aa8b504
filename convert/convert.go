package convert

import (
	"go.uber.org/zap"

	"github.com/wippyai/uniconv/codec"
	"github.com/wippyai/uniconv/errors"
)

// State holds one stream's conversion progress. The zero value is initial.
type State = codec.State

// MaxBytes is the largest number of bytes any single scalar encodes to.
const MaxBytes = 4

// Count is the result of one conversion call. Positive values report units
// consumed or produced; the named values report the other outcomes.
type Count int

const (
	// Terminator reports that a NUL was decoded or encoded.
	Terminator Count = 0
	// Illegal reports an illegal sequence; the state has been reset.
	Illegal Count = -1
	// Incomplete reports that more input units are required.
	Incomplete Count = -2
	// Replayed reports a unit produced from queued output; the caller must
	// present the same unconsumed input again before advancing.
	Replayed Count = -3
)

// C8ToBytes feeds one byte of a UTF-8 stream and, once a scalar completes,
// writes its normalized UTF-8 form to dst, returning the byte count. dst
// must hold at least MaxBytes bytes unless the caller knows the scalar's
// width; a shorter dst yields Illegal with nothing written. Mid-sequence
// calls return Incomplete. A nil dst probes: output is discarded and c8 is
// treated as 0.
func C8ToBytes(dst []byte, c8 byte, st *State) (Count, error) {
	if st == nil {
		r := Region()
		r.Acquire()
		defer r.Release()
		st = &fallback
	}
	if dst == nil {
		c8 = 0
	}

	r, done, err := st.DecodeByte(c8)
	if err != nil {
		return Illegal, tag(err, "c8_to_bytes")
	}
	if !done {
		return Incomplete, nil
	}
	return writeScalar(dst, r, "c8_to_bytes")
}

// C16ToBytes feeds one UTF-16 code unit and writes the UTF-8 form of the
// completed scalar to dst, which must hold at least MaxBytes bytes. A high
// surrogate is held in the state and the call returns Incomplete; the next
// unit must be its low half. A nil dst probes: output is discarded and c16
// is treated as 0.
func C16ToBytes(dst []byte, c16 uint16, st *State) (Count, error) {
	if st == nil {
		r := Region()
		r.Acquire()
		defer r.Release()
		st = &fallback
	}
	if dst == nil {
		c16 = 0
	}

	r, done, err := st.DecodeUnit(c16)
	if err != nil {
		return Illegal, tag(err, "c16_to_bytes")
	}
	if !done {
		return Incomplete, nil
	}
	return writeScalar(dst, r, "c16_to_bytes")
}

// C32ToBytes writes the UTF-8 form of one scalar value to dst, returning
// the byte count. dst must hold at least MaxBytes bytes unless the caller
// knows the scalar's width; a shorter dst yields Illegal with nothing
// written. The state is reset first: a raw scalar always starts a fresh
// conversion. A nil dst probes: output is discarded and c32 is treated
// as 0.
func C32ToBytes(dst []byte, c32 rune, st *State) (Count, error) {
	if st == nil {
		r := Region()
		r.Acquire()
		defer r.Release()
		st = &fallback
	}
	if dst == nil {
		c32 = 0
	}

	st.Reset()
	return writeScalar(dst, c32, "c32_to_bytes")
}

// BytesToC8 decodes the next scalar from p and delivers its normalized
// UTF-8 form one byte per call. The first byte arrives with the consumed
// count; the remaining bytes arrive on subsequent calls as Replayed, before
// any new input is consumed. A zero-length p reports Terminator. A nil out
// discards the produced byte.
func BytesToC8(out *byte, p []byte, st *State) (Count, error) {
	if st == nil {
		r := Region()
		r.Acquire()
		defer r.Release()
		st = &fallback
	}

	// Queued output first, whatever the new input is.
	if b, ok := st.NextPending(); ok {
		if out != nil {
			*out = b
		}
		return Replayed, nil
	}

	if len(p) == 0 {
		if out != nil {
			*out = 0
		}
		return Terminator, nil
	}

	r, n, done, err := st.DecodeBytes(p)
	if err != nil {
		return Illegal, tag(err, "bytes_to_c8")
	}
	if !done {
		return Incomplete, nil
	}

	buf, en, err := codec.EncodeScalar(r)
	if err != nil {
		st.Reset()
		return Illegal, tag(err, "bytes_to_c8")
	}
	first := st.QueueBytes(buf[:en])
	if out != nil {
		*out = first
	}
	if r == 0 {
		return Terminator, nil
	}
	return Count(n), nil
}

// BytesToC16 decodes the next scalar from p and delivers it as UTF-16. A
// BMP scalar arrives in one call with the consumed count; a supplementary
// scalar delivers its high surrogate now and its low surrogate on the next
// call as Replayed. A zero-length p reports Terminator. A nil out discards
// the produced unit.
func BytesToC16(out *uint16, p []byte, st *State) (Count, error) {
	if st == nil {
		r := Region()
		r.Acquire()
		defer r.Release()
		st = &fallback
	}

	if lo, ok := st.TakeQueuedLow(); ok {
		if out != nil {
			*out = lo
		}
		return Replayed, nil
	}

	if len(p) == 0 {
		if out != nil {
			*out = 0
		}
		return Terminator, nil
	}

	r, n, done, err := st.DecodeBytes(p)
	if err != nil {
		return Illegal, tag(err, "bytes_to_c16")
	}
	if !done {
		return Incomplete, nil
	}

	hi, lo, pair := codec.SplitScalar(r)
	if pair {
		st.QueueLow(lo)
		if out != nil {
			*out = hi
		}
		return Count(n), nil
	}

	if out != nil {
		*out = hi
	}
	if r == 0 {
		return Terminator, nil
	}
	return Count(n), nil
}

// BytesToC32 decodes one scalar value from p, returning the number of bytes
// consumed by this call. A zero-length p reports Terminator with scalar 0.
// A nil out discards the scalar.
func BytesToC32(out *rune, p []byte, st *State) (Count, error) {
	if st == nil {
		r := Region()
		r.Acquire()
		defer r.Release()
		st = &fallback
	}

	if len(p) == 0 {
		if out != nil {
			*out = 0
		}
		return Terminator, nil
	}

	r, n, done, err := st.DecodeBytes(p)
	if err != nil {
		return Illegal, tag(err, "bytes_to_c32")
	}
	if !done {
		return Incomplete, nil
	}
	if out != nil {
		*out = r
	}
	if r == 0 {
		return Terminator, nil
	}
	return Count(n), nil
}

// IsInitial reports whether st is in the initial, restart-ready state. A
// nil state is initial: the caller holds no conversion progress at all.
func IsInitial(st *State) bool {
	if st == nil {
		return true
	}
	return st.IsInitial()
}

// writeScalar encodes r into dst (when dst is non-nil) and maps the result
// onto the Count convention. A non-nil dst too small for the encoding is
// rejected without writing anything.
func writeScalar(dst []byte, r rune, op string) (Count, error) {
	buf, n, err := codec.EncodeScalar(r)
	if err != nil {
		return Illegal, tag(err, op)
	}
	if dst != nil {
		if len(dst) < n {
			return Illegal, tag(errors.ShortBuffer(n, len(dst)), op)
		}
		copy(dst, buf[:n])
	}
	if r == 0 {
		return Terminator, nil
	}
	return Count(n), nil
}

// tag stamps the operation name onto a codec error and logs it.
func tag(err error, op string) error {
	if e, ok := err.(*errors.Error); ok {
		e.Op = op
	}
	Logger().Debug("illegal sequence",
		zap.String("op", op),
		zap.Error(err),
	)
	return err
}
