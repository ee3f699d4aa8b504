// Package uniconv provides a restartable Unicode conversion engine.
//
// The engine translates text between three code-unit granularities (8-bit
// UTF-8 bytes, 16-bit UTF-16 units including surrogate pairs, and 32-bit
// scalar values) one unit at a time, with all in-progress decode state held
// in an explicit, caller-owned record. Conversion results are independent of
// how input is split across calls.
//
// # Architecture Overview
//
// The library is organized into a small set of packages:
//
//	uniconv/         Root package with the Exclusion capability interface
//	├── convert/     Public conversion operations and result codes
//	├── codec/       Core restartable UTF-8/UTF-16 codec and state record
//	├── errors/      Structured error types for diagnostics
//	└── cmd/uniconv/ Command-line driver and interactive stepper
//
// # Quick Start
//
// Decode a UTF-8 byte stream into scalar values:
//
//	var st convert.State
//	var r rune
//	n, err := convert.BytesToC32(&r, input, &st)
//	switch {
//	case err != nil:
//	    // illegal sequence, state has been reset
//	case n == convert.Incomplete:
//	    // feed more bytes on the next call
//	case n == convert.Terminator:
//	    // NUL reached
//	default:
//	    input = input[n:]
//	}
//
// # State Model
//
// Each independent text stream owns one State. The zero value is the
// initial, restart-ready state. Passing a nil State to any operation
// selects a process-wide fallback instance guarded by an Exclusion region;
// see the convert package for details.
//
// # Allocation
//
// The codec core never allocates. All in-progress bytes and queued output
// units live inline in the State record, so operations are safe to call
// from contexts where the heap is unavailable.
//
// # Thread Safety
//
// Distinct State values are independent. Concurrent calls against the same
// explicit State are undefined; the engine locks only the shared fallback.
package uniconv
