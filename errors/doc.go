// Package errors provides structured error types for the uniconv library.
//
// Errors are categorized by Phase (which conversion direction detected the
// error) and Kind (what was wrong with the input). The Error type carries
// the offending code unit when it is known, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindOverlong).
//		Byte(0xC0).
//		Detail("2-byte form below U+0080").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.BadLead(0xFF)
//	err := errors.UnpairedSurrogate(errors.PhasePair, 0xDC00)
//
// All errors implement the standard error interface and support errors.Is/As.
// Two *Error values match under errors.Is when their Phase and Kind agree.
package errors
