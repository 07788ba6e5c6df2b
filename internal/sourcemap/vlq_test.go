package sourcemap

import (
	"strings"
	"testing"
)

func TestVLQRoundTrip(t *testing.T) {
	values := []int{0, 1, -1, 15, 16, -16, 31, 32, 1000, -123456, 1 << 20}
	var sb strings.Builder
	for _, v := range values {
		encodeVLQ(&sb, v)
	}
	// a single segment can carry any number of values
	got, err := decodeSegment(sb.String(), nil)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != len(values) {
		t.Fatalf("decoded %d values, want %d", len(got), len(values))
	}
	for i := range values {
		if got[i] != values[i] {
			t.Errorf("value %d: got %d, want %d", i, got[i], values[i])
		}
	}
}

func TestVLQKnownEncodings(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "A"},
		{1, "C"},
		{-1, "D"},
		{16, "gB"},
	}
	for _, tt := range tests {
		var sb strings.Builder
		encodeVLQ(&sb, tt.in)
		if sb.String() != tt.want {
			t.Errorf("encode(%d) = %q, want %q", tt.in, sb.String(), tt.want)
		}
	}
}

func TestVLQErrors(t *testing.T) {
	for _, seg := range []string{"g", "A!", "ggggggggggggggggA"} {
		if _, err := decodeSegment(seg, nil); err == nil {
			t.Errorf("decodeSegment(%q) should fail", seg)
		}
	}
}
