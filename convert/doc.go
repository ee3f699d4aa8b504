// Package convert exposes the public restartable conversion operations.
//
// Seven operations compose the codec core. Three feed single input units of
// some width and emit UTF-8 bytes; three decode a UTF-8 byte range into a
// single unit of some width; one inspects a state.
//
//	C8ToBytes   - one UTF-8 byte in, normalized UTF-8 bytes out
//	C16ToBytes  - one UTF-16 unit in (surrogate-aware), UTF-8 bytes out
//	C32ToBytes  - one scalar in, UTF-8 bytes out
//	BytesToC8   - byte range in, one UTF-8 byte out per call
//	BytesToC16  - byte range in, one UTF-16 unit out per call
//	BytesToC32  - byte range in, one scalar out
//	IsInitial   - reports whether a state is restart-ready
//
// # Result Codes
//
// Every operation returns a Count:
//
//	> 0         units consumed or produced by this call
//	Terminator  a NUL was decoded or encoded; nothing further follows
//	Illegal     illegal sequence; the error return carries diagnostics
//	Incomplete  valid so far, more input units required
//	Replayed    a unit was produced from queued output without consuming
//	            input; call again with the same unconsumed input
//
// The error return is non-nil exactly when the Count is Illegal. After
// Illegal the state has been reset; the malformed sequence is discarded.
//
// # Output Buffers
//
// The byte-producing operations write up to MaxBytes bytes into dst; a
// non-nil dst shorter than the completed scalar's encoding is rejected
// with Illegal and nothing is written. A nil dst is a probe: output is
// discarded and the input unit is treated as 0, exactly as if a NUL had
// been fed. A nil output pointer on the decode operations discards the
// produced unit while still consuming input.
//
// # Shared Fallback State
//
// Passing a nil *State selects one process-wide fallback instance, guarded
// for the duration of the call by the package's Exclusion region (a mutex
// by default; see SetRegion). Distinct explicit states need no locking.
package convert
