// Package codec implements the restartable UTF-8/UTF-16 conversion core.
//
// All in-progress conversion state lives in a State value owned by the
// caller. The decoder, encoder and surrogate codec operate one code unit at
// a time and persist partial progress in the State, so a conversion split
// across any number of calls produces exactly the bytes and scalars the
// unsplit conversion would.
//
// # Key Types
//
//	State         - Per-stream conversion state, zero value ready to use
//	DecodeByte    - Restartable UTF-8 byte-at-a-time decoding
//	DecodeBytes   - Restartable UTF-8 decoding over a byte range
//	EncodeScalar  - Scalar to canonical 1-4 byte UTF-8 form
//	DecodeUnit    - Restartable UTF-16 decoding with surrogate pairing
//	SplitScalar   - Scalar to one or two UTF-16 units
//
// # Validation
//
// The decoder rejects, as an illegal sequence: bytes that cannot start a
// sequence, missing continuation bytes, overlong encodings, encoded
// surrogate values, and scalars beyond U+10FFFF. The encoder re-checks the
// surrogate and range rules even for scalars that arrive pre-validated,
// because it is also reachable from paths that accept raw caller input.
//
// # Failure Model
//
// An illegal sequence resets the State to initial; the malformed input is
// discarded, not retried. Incomplete input is not an error: the State keeps
// the partial scalar and the next call resumes it.
//
// # Allocation
//
// No function in this package allocates on a success path. Pending output
// units are stored inline in the State's fixed four-byte queue.
//
// # Thread Safety
//
// State is NOT safe for concurrent use. Use one State per stream, or
// serialize access externally.
package codec
