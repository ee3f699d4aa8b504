package errors

import (
	"errors"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:   PhaseDecode,
				Kind:    KindOverlong,
				Op:      "bytes_to_c32",
				Unit:    Unit{Value: 0, Width: 32},
				HasUnit: true,
				Detail:  "non-minimal form",
			},
			contains: []string{"[decode]", "overlong", "bytes_to_c32", "scalar 0x0", "non-minimal form"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhasePair,
				Kind:  KindUnpairedSurrogate,
			},
			contains: []string{"[pair]", "unpaired_surrogate"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseEncode,
				Kind:   KindOutOfRange,
				Detail: "beyond U+10FFFF",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[encode]", "out_of_range", "beyond U+10FFFF", "caused by", "underlying error"},
		},
		{
			name: "byte unit formatting",
			err: &Error{
				Phase:   PhaseDecode,
				Kind:    KindBadLead,
				Unit:    Unit{Value: 0xFF, Width: 8},
				HasUnit: true,
			},
			contains: []string{"byte 0xFF"},
		},
		{
			name: "16-bit unit formatting",
			err: &Error{
				Phase:   PhasePair,
				Kind:    KindUnpairedSurrogate,
				Unit:    Unit{Value: 0xDC00, Width: 16},
				HasUnit: true,
			},
			contains: []string{"unit 0xDC00"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !containsSubstring(msg, s) {
					t.Errorf("Error() = %q, want substring %q", msg, s)
				}
			}
		})
	}
}

func TestError_Is(t *testing.T) {
	overlong := &Error{Phase: PhaseDecode, Kind: KindOverlong, Detail: "a"}

	if !errors.Is(overlong, &Error{Phase: PhaseDecode, Kind: KindOverlong}) {
		t.Error("expected match on same phase and kind")
	}
	if errors.Is(overlong, &Error{Phase: PhaseEncode, Kind: KindOverlong}) {
		t.Error("expected no match on different phase")
	}
	if errors.Is(overlong, &Error{Phase: PhaseDecode, Kind: KindSurrogate}) {
		t.Error("expected no match on different kind")
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Wrap(PhaseDecode, KindBadContinuation, cause, "wrapped")

	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to find the cause through Unwrap")
	}
	if errors.Unwrap(err) != cause {
		t.Error("Unwrap did not return the cause")
	}
}

func TestBuilder(t *testing.T) {
	err := New(PhaseDecode, KindBadContinuation).
		Op("c8_to_bytes").
		Byte(0x41).
		Detail("expected continuation, got %q", 'A').
		Build()

	if err.Phase != PhaseDecode || err.Kind != KindBadContinuation {
		t.Errorf("builder lost phase/kind: %+v", err)
	}
	if err.Op != "c8_to_bytes" {
		t.Errorf("Op = %q, want c8_to_bytes", err.Op)
	}
	if !err.HasUnit || err.Unit.Value != 0x41 || err.Unit.Width != 8 {
		t.Errorf("Unit = %+v, want byte 0x41", err.Unit)
	}
	if !containsSubstring(err.Detail, "'A'") {
		t.Errorf("Detail = %q, want formatted arg", err.Detail)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		kind     Kind
		contains string
	}{
		{"BadLead", BadLead(0x80), KindBadLead, "byte 0x80"},
		{"BadContinuation", BadContinuation(0x00), KindBadContinuation, "byte 0x00"},
		{"Overlong", Overlong(0x00, 0x80), KindOverlong, "0x80"},
		{"SurrogateScalar", SurrogateScalar(PhaseEncode, 0xD800), KindSurrogate, "scalar 0xD800"},
		{"OutOfRange", OutOfRange(PhaseEncode, 0x110000), KindOutOfRange, "scalar 0x110000"},
		{"UnpairedSurrogate", UnpairedSurrogate(PhasePair, 0xDFFF), KindUnpairedSurrogate, "unit 0xDFFF"},
		{"ShortBuffer", ShortBuffer(3, 2), KindShortBuffer, "need 3 bytes, destination holds 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Kind != tt.kind {
				t.Errorf("Kind = %q, want %q", tt.err.Kind, tt.kind)
			}
			if !containsSubstring(tt.err.Error(), tt.contains) {
				t.Errorf("Error() = %q, want substring %q", tt.err.Error(), tt.contains)
			}
		})
	}
}

func containsSubstring(s, sub string) bool {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return true
		}
	}
	return false
}
