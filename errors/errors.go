package errors

import (
	"fmt"
	"strings"
)

// Phase indicates which conversion direction detected the error
type Phase string

const (
	PhaseDecode Phase = "decode" // UTF-8 bytes to scalar
	PhaseEncode Phase = "encode" // scalar to UTF-8 bytes
	PhasePair   Phase = "pair"   // UTF-16 surrogate pairing
)

// Kind categorizes the error
type Kind string

const (
	KindBadLead           Kind = "bad_lead"           // byte cannot start a sequence
	KindBadContinuation   Kind = "bad_continuation"   // byte is not 10xxxxxx where one is required
	KindOverlong          Kind = "overlong"           // sequence longer than the minimal form
	KindSurrogate         Kind = "surrogate"          // scalar in 0xD800..0xDFFF
	KindOutOfRange        Kind = "out_of_range"       // scalar above 0x10FFFF
	KindUnpairedSurrogate Kind = "unpaired_surrogate" // lone or misordered surrogate unit
	KindShortBuffer       Kind = "short_buffer"       // destination too small for the encoding
)

// Unit is a code unit attached to an Error for diagnostics.
// Width records how the value should be displayed (8, 16 or 32 bits).
type Unit struct {
	Value uint32
	Width int
}

func (u Unit) String() string {
	switch u.Width {
	case 8:
		return fmt.Sprintf("byte 0x%02X", u.Value)
	case 16:
		return fmt.Sprintf("unit 0x%04X", u.Value)
	default:
		return fmt.Sprintf("scalar 0x%X", u.Value)
	}
}

// Error is the structured error type used throughout uniconv
type Error struct {
	Cause   error
	Phase   Phase
	Kind    Kind
	Op      string // operation name, when set by the dispatcher
	Unit    Unit   // offending code unit, valid when HasUnit
	Detail  string
	HasUnit bool
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Op != "" {
		b.WriteString(" in ")
		b.WriteString(e.Op)
	}

	if e.HasUnit {
		b.WriteString(": ")
		b.WriteString(e.Unit.String())
	}

	if e.Detail != "" {
		if e.HasUnit {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Op sets the operation name
func (b *Builder) Op(op string) *Builder {
	b.err.Op = op
	return b
}

// Byte attaches an offending 8-bit code unit
func (b *Builder) Byte(v byte) *Builder {
	b.err.Unit = Unit{Value: uint32(v), Width: 8}
	b.err.HasUnit = true
	return b
}

// Unit16 attaches an offending 16-bit code unit
func (b *Builder) Unit16(v uint16) *Builder {
	b.err.Unit = Unit{Value: uint32(v), Width: 16}
	b.err.HasUnit = true
	return b
}

// Scalar attaches an offending 32-bit scalar value
func (b *Builder) Scalar(v uint32) *Builder {
	b.err.Unit = Unit{Value: v, Width: 32}
	b.err.HasUnit = true
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// BadLead creates an error for a byte that cannot start a UTF-8 sequence
func BadLead(b byte) *Error {
	return &Error{
		Phase:   PhaseDecode,
		Kind:    KindBadLead,
		Unit:    Unit{Value: uint32(b), Width: 8},
		HasUnit: true,
		Detail:  "not a valid lead byte",
	}
}

// BadContinuation creates an error for a byte that is not a continuation byte
func BadContinuation(b byte) *Error {
	return &Error{
		Phase:   PhaseDecode,
		Kind:    KindBadContinuation,
		Unit:    Unit{Value: uint32(b), Width: 8},
		HasUnit: true,
		Detail:  "continuation byte 10xxxxxx required",
	}
}

// Overlong creates an error for a non-minimal UTF-8 encoding
func Overlong(scalar, floor uint32) *Error {
	return &Error{
		Phase:   PhaseDecode,
		Kind:    KindOverlong,
		Unit:    Unit{Value: scalar, Width: 32},
		HasUnit: true,
		Detail:  fmt.Sprintf("non-minimal form, minimum for this length is 0x%X", floor),
	}
}

// SurrogateScalar creates an error for a scalar in the surrogate range
func SurrogateScalar(phase Phase, scalar uint32) *Error {
	return &Error{
		Phase:   phase,
		Kind:    KindSurrogate,
		Unit:    Unit{Value: scalar, Width: 32},
		HasUnit: true,
		Detail:  "surrogate values are not scalar values",
	}
}

// OutOfRange creates an error for a scalar above 0x10FFFF
func OutOfRange(phase Phase, scalar uint32) *Error {
	return &Error{
		Phase:   phase,
		Kind:    KindOutOfRange,
		Unit:    Unit{Value: scalar, Width: 32},
		HasUnit: true,
		Detail:  "beyond U+10FFFF",
	}
}

// UnpairedSurrogate creates an error for a lone or misordered surrogate unit
func UnpairedSurrogate(phase Phase, unit uint16) *Error {
	return &Error{
		Phase:   phase,
		Kind:    KindUnpairedSurrogate,
		Unit:    Unit{Value: uint32(unit), Width: 16},
		HasUnit: true,
		Detail:  "surrogate unit without its pair",
	}
}

// ShortBuffer creates an error for a destination buffer that cannot hold
// the encoded sequence
func ShortBuffer(need, have int) *Error {
	return &Error{
		Phase:  PhaseEncode,
		Kind:   KindShortBuffer,
		Detail: fmt.Sprintf("need %d bytes, destination holds %d", need, have),
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
