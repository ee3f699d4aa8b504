package codec

import (
	"bytes"
	"errors"
	"testing"

	uerrors "github.com/wippyai/uniconv/errors"
)

func TestEncodeScalar(t *testing.T) {
	tests := []struct {
		name string
		r    rune
		want []byte
	}{
		{"NUL", 0x0000, []byte{0x00}},
		{"ASCII A", 0x0041, []byte{0x41}},
		{"max 1-byte", 0x007F, []byte{0x7F}},
		{"min 2-byte", 0x0080, []byte{0xC2, 0x80}},
		{"max 2-byte", 0x07FF, []byte{0xDF, 0xBF}},
		{"min 3-byte", 0x0800, []byte{0xE0, 0xA0, 0x80}},
		{"water", 0x6C34, []byte{0xE6, 0xB0, 0xB4}},
		{"max 3-byte", 0xFFFF, []byte{0xEF, 0xBF, 0xBF}},
		{"min 4-byte", 0x10000, []byte{0xF0, 0x90, 0x80, 0x80}},
		{"emoji", 0x1F600, []byte{0xF0, 0x9F, 0x98, 0x80}},
		{"max scalar", 0x10FFFF, []byte{0xF4, 0x8F, 0xBF, 0xBF}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, n, err := EncodeScalar(tt.r)
			if err != nil {
				t.Fatalf("EncodeScalar(0x%X) failed: %v", tt.r, err)
			}
			if !bytes.Equal(buf[:n], tt.want) {
				t.Errorf("EncodeScalar(0x%X) = % X, want % X", tt.r, buf[:n], tt.want)
			}
		})
	}
}

func TestEncodeScalar_Rejects(t *testing.T) {
	tests := []struct {
		name string
		r    rune
		kind uerrors.Kind
	}{
		{"first surrogate", 0xD800, uerrors.KindSurrogate},
		{"low surrogate", 0xDC00, uerrors.KindSurrogate},
		{"last surrogate", 0xDFFF, uerrors.KindSurrogate},
		{"beyond max", 0x110000, uerrors.KindOutOfRange},
		{"negative", -1, uerrors.KindOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := EncodeScalar(tt.r)
			if err == nil {
				t.Fatalf("EncodeScalar(0x%X) accepted, want error", tt.r)
			}
			if !errors.Is(err, &uerrors.Error{Phase: uerrors.PhaseEncode, Kind: tt.kind}) {
				t.Errorf("error = %v, want kind %q", err, tt.kind)
			}
		})
	}
}

// Every scalar value must survive an encode/decode round trip.
func TestEncodeScalar_RoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("full-range round trip")
	}
	for v := rune(0); v <= 0x10FFFF; v++ {
		if v >= 0xD800 && v <= 0xDFFF {
			continue
		}
		buf, n, err := EncodeScalar(v)
		if err != nil {
			t.Fatalf("EncodeScalar(0x%X) failed: %v", v, err)
		}
		var st State
		r, consumed, done, err := st.DecodeBytes(buf[:n])
		if err != nil || !done {
			t.Fatalf("decode of encoded 0x%X: done=%v err=%v", v, done, err)
		}
		if r != v || consumed != n {
			t.Fatalf("round trip of 0x%X = (0x%X, %d bytes), encoded %d bytes", v, r, consumed, n)
		}
	}
}
