// Package scalar provides internal Unicode scalar-value utilities.
//
// This package contains the bit-layout constants and range predicates shared
// by the UTF-8 decoder, the UTF-8 encoder, and the UTF-16 surrogate codec.
//
// # Contents
//
//   - scalar.go: Code-unit bit masks, surrogate ranges, range predicates
//
// This package is internal to the codec.
package scalar
